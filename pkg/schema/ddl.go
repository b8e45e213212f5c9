package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// NotNullColumns returns the db column names of a model whose DDL
// declares NOT NULL. AutoMigrate creates columns nullable, so the
// schema manager enforces these with ALTER statements after
// migration.
func NotNullColumns(model interface{}) []string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && strings.Contains(ddlTag, "NOT NULL") {
			cols = append(cols, dbTag)
		}
	}
	return cols
}

// Species DDL methods
func (s Species) TableDDL() string {
	return generateDDL(s, "species")
}

func (s Species) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_species_scientific_name ON species(scientific_name);",
		"CREATE INDEX IF NOT EXISTS idx_species_family ON species(family);",
		"CREATE INDEX IF NOT EXISTS idx_species_category ON species(category);",
	}
}

func (s Species) TableName() string {
	return "species"
}

// Language DDL methods
func (l Language) TableDDL() string {
	return generateDDL(l, "languages")
}

func (l Language) IndexDDL() []string {
	return []string{}
}

func (l Language) TableName() string {
	return "languages"
}

// Name DDL methods
func (n Name) TableDDL() string {
	return generateDDL(n, "names")
}

func (n Name) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_names_species_id ON names(species_id);",
		"CREATE INDEX IF NOT EXISTS idx_names_language_id ON names(language_id);",
	}
}

func (n Name) TableName() string {
	return "names"
}

// Section DDL methods
func (s Section) TableDDL() string {
	return generateDDL(s, "sections")
}

func (s Section) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_sections_species_id ON sections(species_id);",
	}
}

func (s Section) TableName() string {
	return "sections"
}

// SectionImage DDL methods
func (si SectionImage) TableDDL() string {
	return generateDDL(si, "section_images")
}

func (si SectionImage) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_section_images_section_id ON section_images(section_id);",
	}
}

func (si SectionImage) TableName() string {
	return "section_images"
}

// Source DDL methods
func (s Source) TableDDL() string {
	return generateDDL(s, "sources")
}

func (s Source) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_sources_species_id ON sources(species_id);",
	}
}

func (s Source) TableName() string {
	return "sources"
}

// Synonym DDL methods
func (s Synonym) TableDDL() string {
	return generateDDL(s, "synonyms")
}

func (s Synonym) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_synonyms_species_id ON synonyms(species_id);",
	}
}

func (s Synonym) TableName() string {
	return "synonyms"
}

// Attribute DDL methods
func (a Attribute) TableDDL() string {
	return generateDDL(a, "attributes")
}

func (a Attribute) IndexDDL() []string {
	return []string{}
}

func (a Attribute) TableName() string {
	return "attributes"
}

// SpeciesAttribute DDL methods
func (sa SpeciesAttribute) TableDDL() string {
	return generateDDL(sa, "species_attributes")
}

func (sa SpeciesAttribute) IndexDDL() []string {
	return []string{}
}

func (sa SpeciesAttribute) TableName() string {
	return "species_attributes"
}
