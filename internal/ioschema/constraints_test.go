package ioschema

import (
	"strings"
	"testing"

	"github.com/avherb/herbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findConstraint returns the first rule for a table whose definition
// contains the given fragment.
func findConstraint(table, fragment string) (constraint, bool) {
	for _, c := range constraints {
		if c.table == table && strings.Contains(c.def, fragment) {
			return c, true
		}
	}
	return constraint{}, false
}

// TestConstraintsLanguageCodeUnique verifies the language seed has a
// unique arbiter: SeedLanguages inserts with ON CONFLICT (code), and
// AutoMigrate alone creates no unique rule on that column.
func TestConstraintsLanguageCodeUnique(t *testing.T) {
	c, ok := findConstraint("languages", "UNIQUE (code)")
	require.True(t, ok,
		"languages.code needs a unique constraint before seeding")
	assert.Equal(t, "uq_languages_code", c.name)
}

// TestConstraintsAttributeNameUnique verifies attribute names stay
// unique after AutoMigrate.
func TestConstraintsAttributeNameUnique(t *testing.T) {
	c, ok := findConstraint("attributes", "UNIQUE (name)")
	require.True(t, ok)
	assert.Equal(t, "uq_attributes_name", c.name)
}

// TestConstraintNamesUnique verifies constraint names do not clash;
// applyConstraints checks existence by conname alone.
func TestConstraintNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range constraints {
		assert.False(t, seen[c.name], "duplicate constraint name %s", c.name)
		seen[c.name] = true
	}
}

// TestConstraintsCascadeFromSpecies verifies every species child
// table cascades its rows with the parent.
func TestConstraintsCascadeFromSpecies(t *testing.T) {
	for _, table := range []string{
		"names", "sections", "sources", "synonyms", "species_attributes",
	} {
		c, ok := findConstraint(table, "REFERENCES species(id)")
		require.True(t, ok, "missing species FK on %s", table)
		assert.Contains(t, c.def, "ON DELETE CASCADE", table)
	}
}

// TestScientificNameUniqueIndex verifies the unique rule on
// species.scientific_name is part of the index statements the
// manager executes during Create and Migrate.
func TestScientificNameUniqueIndex(t *testing.T) {
	var stmts []string
	for _, model := range schema.AllModels() {
		if gen, ok := model.(schema.DDLGenerator); ok {
			stmts = append(stmts, gen.IndexDDL()...)
		}
	}

	all := strings.Join(stmts, "\n")
	assert.Contains(t, all,
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_species_scientific_name "+
			"ON species(scientific_name)")
}
