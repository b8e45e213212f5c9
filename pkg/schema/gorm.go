package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&Species{},
		&Language{},
		&Name{},
		&Section{},
		&SectionImage{},
		&Source{},
		&Synonym{},
		&Attribute{},
		&SpeciesAttribute{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
