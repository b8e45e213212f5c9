package assemble_test

import (
	"testing"

	"github.com/avherb/herbdb/pkg/assemble"
	"github.com/avherb/herbdb/pkg/document"
	"github.com/avherb/herbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesEnglishSplit(t *testing.T) {
	ir := document.IR{
		SpeciesID:    11,
		EnglishNames: "Mango, Indian Mango , ,Common Mango",
	}

	names, warns := assemble.Names(ir, schema.DefaultLanguages())
	require.Empty(t, warns)
	require.Len(t, names, 3)

	for _, n := range names {
		assert.Equal(t, 11, n.SpeciesID)
		assert.Equal(t, 1, n.LanguageID)
	}
	assert.Equal(t, "Mango", names[0].Name)
	assert.Equal(t, "Indian Mango", names[1].Name)
	assert.Equal(t, "Common Mango", names[2].Name)
}

func TestNamesLocalizedOrder(t *testing.T) {
	ir := document.IR{
		SpeciesID:    11,
		EnglishNames: "Mango",
		IndianNames: []document.LocalNames{
			{Language: "Tamil", Names: []string{"Maa", "Mamaram"}},
			{Language: "Hindi", Names: []string{"Aam"}},
			{Language: "Sanskrit", Names: []string{"Amra"}},
		},
	}

	names, warns := assemble.Names(ir, schema.DefaultLanguages())
	require.Empty(t, warns)
	require.Len(t, names, 5)

	// English first, then vocabulary order: Hindi before Sanskrit
	// before Tamil.
	got := make([][2]any, len(names))
	for i, n := range names {
		got[i] = [2]any{n.LanguageID, n.Name}
	}
	assert.Equal(t, [][2]any{
		{1, "Mango"},
		{3, "Aam"},
		{7, "Amra"},
		{8, "Maa"},
		{8, "Mamaram"},
	}, got)
}

func TestNamesUnknownLanguage(t *testing.T) {
	ir := document.IR{
		SpeciesID: 4,
		IndianNames: []document.LocalNames{
			{Language: "Konkani", Names: []string{"Ambo", "Ambe"}},
			{Language: "Tamil", Names: []string{"Maa"}},
		},
	}

	names, warns := assemble.Names(ir, schema.DefaultLanguages())

	require.Len(t, names, 1, "unknown languages are skipped, not fatal")
	assert.Equal(t, "Maa", names[0].Name)

	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "Konkani")
	assert.Contains(t, warns[0], "species 4")
}

func TestNamesEnglishInLocalized(t *testing.T) {
	ir := document.IR{
		SpeciesID:    5,
		EnglishNames: "Mango",
		IndianNames: []document.LocalNames{
			{Language: "English", Names: []string{"Common Mango", "Mango Tree"}},
			{Language: "Hindi", Names: []string{"Aam"}},
		},
	}

	names, warns := assemble.Names(ir, schema.DefaultLanguages())

	require.Len(t, names, 2, "misfiled English entries are dropped")
	assert.Equal(t, "Mango", names[0].Name)
	assert.Equal(t, "Aam", names[1].Name)

	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "species 5")
	assert.Contains(t, warns[0], "2 English name(s)")
	assert.Contains(t, warns[0], "english_names is authoritative")
}

func TestNamesEmpty(t *testing.T) {
	names, warns := assemble.Names(document.IR{SpeciesID: 2}, schema.DefaultLanguages())
	assert.Empty(t, names)
	assert.Empty(t, warns)
}
