package ioschema

import (
	"context"
	"fmt"
)

// constraint is one referential or uniqueness rule added after
// AutoMigrate. The ddl tags describe columns only, so foreign keys
// live here.
type constraint struct {
	table string
	name  string
	def   string
}

// constraints lists the referential and uniqueness rules of the
// schema. Child rows cascade with their parents; the curator-owned
// common_name_id reference stays weak on purpose, so a re-import can
// replace name rows without tripping it. The uq_languages_code
// constraint is the arbiter of the language seed's ON CONFLICT
// clause, so it must exist before SeedLanguages runs.
var constraints = []constraint{
	{
		"languages", "uq_languages_code",
		"UNIQUE (code)",
	},
	{
		"attributes", "uq_attributes_name",
		"UNIQUE (name)",
	},
	{
		"names", "fk_names_species",
		"FOREIGN KEY (species_id) REFERENCES species(id) ON DELETE CASCADE",
	},
	{
		"names", "fk_names_language",
		"FOREIGN KEY (language_id) REFERENCES languages(id)",
	},
	{
		"sections", "fk_sections_species",
		"FOREIGN KEY (species_id) REFERENCES species(id) ON DELETE CASCADE",
	},
	{
		"section_images", "fk_section_images_section",
		"FOREIGN KEY (section_id) REFERENCES sections(id) ON DELETE CASCADE",
	},
	{
		"sources", "fk_sources_species",
		"FOREIGN KEY (species_id) REFERENCES species(id) ON DELETE CASCADE",
	},
	{
		"synonyms", "fk_synonyms_species",
		"FOREIGN KEY (species_id) REFERENCES species(id) ON DELETE CASCADE",
	},
	{
		"species_attributes", "fk_species_attributes_species",
		"FOREIGN KEY (species_id) REFERENCES species(id) ON DELETE CASCADE",
	},
	{
		"species_attributes", "fk_species_attributes_attribute",
		"FOREIGN KEY (attribute_id) REFERENCES attributes(id) ON DELETE CASCADE",
	},
	{
		"species_attributes", "uq_species_attributes",
		"UNIQUE (species_id, attribute_id)",
	},
}

// applyConstraints adds the constraints idempotently; re-running
// Create or Migrate must not fail on rules that already exist.
func (m *Manager) applyConstraints(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	for _, c := range constraints {
		q := fmt.Sprintf(
			`DO $$
BEGIN
  IF NOT EXISTS (
    SELECT FROM pg_constraint WHERE conname = '%s'
  ) THEN
    ALTER TABLE %s ADD CONSTRAINT %s %s;
  END IF;
END
$$`,
			c.name, c.table, c.name, c.def,
		)
		if _, err := pool.Exec(ctx, q); err != nil {
			return ErrConstraint(c.table, c.name, err)
		}
	}

	return nil
}
