package schema_test

import (
	"strings"
	"testing"

	"github.com/avherb/herbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpeciesTableDDL tests DDL generation for Species model
func TestSpeciesTableDDL(t *testing.T) {
	sp := schema.Species{}
	ddl := sp.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE species")

	// Should have INT primary key (document-supplied ids, not serial)
	assert.Contains(t, ddl, "id INT PRIMARY KEY")

	// Should have required fields
	assert.Contains(t, ddl, "scientific_name VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "family VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "category VARCHAR(50) NOT NULL")

	// Canonical name is optional (missing when the name failed to parse)
	assert.Contains(t, ddl, "canonical_name VARCHAR(255)")
	assert.NotContains(t, ddl, "canonical_name VARCHAR(255) NOT NULL")

	// Weak curator reference
	assert.Contains(t, ddl, "common_name_id BIGINT")
}

// TestSpeciesIndexDDL tests index generation for Species model
func TestSpeciesIndexDDL(t *testing.T) {
	sp := schema.Species{}
	indexes := sp.IndexDDL()

	require.NotEmpty(t, indexes, "Species should have secondary indexes")

	allIndexes := strings.Join(indexes, "\n")

	// Scientific name lookup must be unique
	assert.Contains(t, allIndexes,
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_species_scientific_name")
	assert.Contains(t, allIndexes, "idx_species_family")
	assert.Contains(t, allIndexes, "idx_species_category")
}

// TestIndexDDLIdempotent verifies every index statement can re-run
// on an existing schema.
func TestIndexDDLIdempotent(t *testing.T) {
	for _, model := range schema.AllModels() {
		gen, ok := model.(schema.DDLGenerator)
		require.True(t, ok)
		for _, stmt := range gen.IndexDDL() {
			assert.Contains(t, stmt, "IF NOT EXISTS",
				"index on %s", gen.TableName())
		}
	}
}

// TestNotNullColumns verifies NOT NULL extraction from the DDL tags.
func TestNotNullColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"scientific_name", "family", "category"},
		schema.NotNullColumns(schema.Species{}))

	assert.Equal(t,
		[]string{"code", "name"},
		schema.NotNullColumns(schema.Language{}))

	// Pointer models work too; primary keys are implicitly not null
	// and stay out of the list.
	assert.Equal(t,
		[]string{"species_id", "language_id", "name"},
		schema.NotNullColumns(&schema.Name{}))
}

// TestSectionTableDDL tests DDL generation for Section model
func TestSectionTableDDL(t *testing.T) {
	s := schema.Section{}
	ddl := s.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE sections")

	// Synthetic deterministic id, not serial
	assert.Contains(t, ddl, "id INT PRIMARY KEY")

	assert.Contains(t, ddl, "species_id INT NOT NULL")
	assert.Contains(t, ddl, "section_order INT NOT NULL")

	// Body fields are individually optional
	assert.Contains(t, ddl, "content_text TEXT")
	assert.Contains(t, ddl, "content_html TEXT")
}

// TestNameTableDDL tests DDL generation for Name model
func TestNameTableDDL(t *testing.T) {
	n := schema.Name{}
	ddl := n.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE names")
	assert.Contains(t, ddl, "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, ddl, "species_id INT NOT NULL")
	assert.Contains(t, ddl, "language_id SMALLINT NOT NULL")
	assert.Contains(t, ddl, "name VARCHAR(255) NOT NULL")
}

// TestNameIndexDDL tests index generation for Name model
func TestNameIndexDDL(t *testing.T) {
	n := schema.Name{}
	indexes := n.IndexDDL()

	require.NotEmpty(t, indexes)

	allIndexes := strings.Join(indexes, "\n")
	assert.Contains(t, allIndexes, "idx_names_species_id")
	assert.Contains(t, allIndexes, "idx_names_language_id")
}

// TestLanguageTableDDL tests DDL generation for Language model
func TestLanguageTableDDL(t *testing.T) {
	l := schema.Language{}
	ddl := l.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE languages")
	assert.Contains(t, ddl, "id SMALLINT PRIMARY KEY")
	assert.Contains(t, ddl, "code VARCHAR(10) UNIQUE NOT NULL")
	assert.Contains(t, ddl, "name VARCHAR(50) NOT NULL")
}

// TestSectionImageTableDDL tests DDL generation for SectionImage model
func TestSectionImageTableDDL(t *testing.T) {
	si := schema.SectionImage{}
	ddl := si.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE section_images")
	assert.Contains(t, ddl, "section_id INT NOT NULL")
	assert.Contains(t, ddl, "image_url VARCHAR(500) NOT NULL")
	assert.Contains(t, ddl, "image_order INT NOT NULL")
}

// TestTableNames tests TableName methods for all models
func TestTableNames(t *testing.T) {
	tests := []struct {
		msg   string
		model schema.DDLGenerator
		table string
	}{
		{"species", schema.Species{}, "species"},
		{"languages", schema.Language{}, "languages"},
		{"names", schema.Name{}, "names"},
		{"sections", schema.Section{}, "sections"},
		{"section_images", schema.SectionImage{}, "section_images"},
		{"sources", schema.Source{}, "sources"},
		{"synonyms", schema.Synonym{}, "synonyms"},
		{"attributes", schema.Attribute{}, "attributes"},
		{"species_attributes", schema.SpeciesAttribute{}, "species_attributes"},
	}

	for _, v := range tests {
		assert.Equal(t, v.table, v.model.TableName(), v.msg)
	}
}

// TestAllModels verifies every table is registered for migration.
func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 9)
}

// TestDDLGeneratorInterface verifies all models implement the interface.
func TestDDLGeneratorInterface(t *testing.T) {
	models := []schema.DDLGenerator{
		schema.Species{},
		schema.Language{},
		schema.Name{},
		schema.Section{},
		schema.SectionImage{},
		schema.Source{},
		schema.Synonym{},
		schema.Attribute{},
		schema.SpeciesAttribute{},
	}

	for _, m := range models {
		assert.NotEmpty(t, m.TableDDL())
		assert.NotEmpty(t, m.TableName())
		assert.NotNil(t, m.IndexDDL())
	}
}
