package schema_test

import (
	"testing"

	"github.com/avherb/herbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLanguages(t *testing.T) {
	vocab := schema.DefaultLanguages()
	require.Len(t, vocab, 9)

	// Ids must be assigned in order and stay stable: names reference
	// them, and re-seeding must not renumber.
	for i, l := range vocab {
		assert.Equal(t, i+1, l.ID)
		assert.NotEmpty(t, l.Code)
		assert.NotEmpty(t, l.Name)
	}

	assert.Equal(t, "English", vocab[0].Name)
	assert.Equal(t, "en", vocab[0].Code)
	assert.Equal(t, "Telugu", vocab[8].Name)
}

func TestLanguageByName(t *testing.T) {
	vocab := schema.DefaultLanguages()

	tests := []struct {
		msg, name string
		id        int
		found     bool
	}{
		{"english", "English", 1, true},
		{"tamil", "Tamil", 8, true},
		{"sanskrit", "Sanskrit", 7, true},
		{"unknown", "Konkani", 0, false},
		{"case sensitive", "tamil", 0, false},
		{"empty", "", 0, false},
	}

	for _, v := range tests {
		l, ok := schema.LanguageByName(vocab, v.name)
		assert.Equal(t, v.found, ok, v.msg)
		assert.Equal(t, v.id, l.ID, v.msg)
	}
}

func TestLanguageByNameCustomVocab(t *testing.T) {
	vocab := []schema.Language{
		{ID: 1, Code: "en", Name: "English"},
		{ID: 2, Code: "mi", Name: "Maori"},
	}

	l, ok := schema.LanguageByName(vocab, "Maori")
	require.True(t, ok)
	assert.Equal(t, 2, l.ID)

	// Names outside the injected vocabulary do not resolve even if
	// the default vocabulary knows them.
	_, ok = schema.LanguageByName(vocab, "Tamil")
	assert.False(t, ok)
}
