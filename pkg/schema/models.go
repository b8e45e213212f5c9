// Package schema provides database schema models for HerbDB.
// The sections/attributes shape is intentionally generic so that
// biologically dissimilar categories (plants, mammals, insects) share
// one schema without per-category changes.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Species is one row per taxon.
type Species struct {
	// ID is supplied by the source document (the herbarium's own species
	// identifier), never generated here. Stable across re-imports so the
	// delete/insert cycle of an import is idempotent.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// ScientificName is the accepted scientific name with authorship
	// stripped, as scraped from the specimen page.
	ScientificName string `db:"scientific_name" ddl:"VARCHAR(255) NOT NULL"`

	// CanonicalName is the simple canonical form produced by GNparser.
	// Empty when the name did not parse.
	CanonicalName sql.NullString `db:"canonical_name" ddl:"VARCHAR(255)"`

	// Authority is the author citation of the name.
	Authority sql.NullString `db:"authority" ddl:"VARCHAR(255)"`

	// Family is the taxonomic family.
	Family string `db:"family" ddl:"VARCHAR(255) NOT NULL"`

	// Category is a free-text classification ("plants", "mammals", ...).
	// It is configuration, not scraped data.
	Category string `db:"category" ddl:"VARCHAR(50) NOT NULL"`

	// MainImageURL is the main specimen photograph.
	MainImageURL sql.NullString `db:"main_image_url" ddl:"VARCHAR(500)"`

	// MainImageAlt is the alt text for the main image.
	MainImageAlt sql.NullString `db:"main_image_alt" ddl:"VARCHAR(255)"`

	// HerbariumImageURL is the dry herbarium sheet photograph.
	HerbariumImageURL sql.NullString `db:"herbarium_image_url" ddl:"VARCHAR(500)"`

	// CommonNameID is a weak reference into names, chosen by a curator
	// through the web application. Import never writes it; the reader
	// validates it on the way out.
	CommonNameID sql.NullInt64 `db:"common_name_id" ddl:"BIGINT"`

	// Collector is who collected the specimen.
	Collector sql.NullString `db:"collector" ddl:"VARCHAR(255)"`

	// CollectedDate is the date of collection as printed on the sheet.
	CollectedDate sql.NullString `db:"collected_date" ddl:"VARCHAR(100)"`

	// Locality is the collection locality.
	Locality sql.NullString `db:"locality" ddl:"VARCHAR(255)"`

	// Latitude and Longitude keep the GPS reading verbatim; the source
	// prints them as strings like "11.99621 N".
	Latitude  sql.NullString `db:"latitude" ddl:"VARCHAR(50)"`
	Longitude sql.NullString `db:"longitude" ddl:"VARCHAR(50)"`

	// UpdatedAt records the timestamp of the last import.
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Language is a reference row for a naming language. Seeded once,
// never touched by species import.
type Language struct {
	// ID is fixed by the seed vocabulary; names reference it, so it must
	// stay stable once seeded.
	ID int `db:"id" ddl:"SMALLINT PRIMARY KEY"`

	// Code is an ISO-ish two-letter code.
	Code string `db:"code" ddl:"VARCHAR(10) UNIQUE NOT NULL"`

	// Name is the display name ("English", "Tamil", ...).
	Name string `db:"name" ddl:"VARCHAR(50) NOT NULL"`
}

// Name is one vernacular name of a species in one language.
// Several names per species per language are allowed.
type Name struct {
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY"`

	SpeciesID int `db:"species_id" ddl:"INT NOT NULL"`

	LanguageID int `db:"language_id" ddl:"SMALLINT NOT NULL"`

	Name string `db:"name" ddl:"VARCHAR(255) NOT NULL"`
}

// Section is one logical content block of a species page ("Leaf",
// "Human Uses", "Distribution", ...). The shape carries no
// plant-specific columns so other categories reuse it as-is.
type Section struct {
	// ID is synthetic: species_id*100 + n, n counting emitted sections
	// from zero. Deterministic so a re-import reproduces identical ids.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	SpeciesID int `db:"species_id" ddl:"INT NOT NULL"`

	Title string `db:"title" ddl:"VARCHAR(100) NOT NULL"`

	// SectionOrder is 1-based and contiguous per species.
	SectionOrder int `db:"section_order" ddl:"INT NOT NULL"`

	// ContentText is the plain-text body; at least one of ContentText
	// and ContentHTML is present on an emitted section.
	ContentText sql.NullString `db:"content_text" ddl:"TEXT"`

	// ContentHTML is the marked-up body as scraped.
	ContentHTML sql.NullString `db:"content_html" ddl:"TEXT"`
}

// SectionImage belongs to exactly one section and dies with it.
type SectionImage struct {
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY"`

	SectionID int `db:"section_id" ddl:"INT NOT NULL"`

	ImageURL string `db:"image_url" ddl:"VARCHAR(500) NOT NULL"`

	Caption sql.NullString `db:"caption" ddl:"VARCHAR(500)"`

	// ImageOrder is 1-based within the section.
	ImageOrder int `db:"image_order" ddl:"INT NOT NULL"`

	// Credit is not populated by the current pipeline.
	Credit sql.NullString `db:"credit" ddl:"VARCHAR(255)"`
}

// Source is a citation for a species. The current pipeline emits one
// row (the canonical document URL) but the shape supports many.
type Source struct {
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY"`

	SpeciesID int `db:"species_id" ddl:"INT NOT NULL"`

	URL string `db:"url" ddl:"VARCHAR(500) NOT NULL"`

	Title sql.NullString `db:"title" ddl:"VARCHAR(255)"`

	Description sql.NullString `db:"description" ddl:"TEXT"`

	SourceOrder int `db:"source_order" ddl:"INT NOT NULL"`
}

// Synonym is a scientific synonym from the nomenclature page.
type Synonym struct {
	ID int64 `db:"id" ddl:"BIGSERIAL PRIMARY KEY"`

	SpeciesID int `db:"species_id" ddl:"INT NOT NULL"`

	Value string `db:"value" ddl:"VARCHAR(255) NOT NULL"`

	SynonymOrder int `db:"synonym_order" ddl:"INT NOT NULL"`
}

// Attribute is a generic tag vocabulary entry ("nocturnal",
// "deciduous"). Reserved for cross-category use; the import pipeline
// never writes it.
type Attribute struct {
	ID int `db:"id" ddl:"SERIAL PRIMARY KEY"`

	Name string `db:"name" ddl:"VARCHAR(100) UNIQUE NOT NULL"`

	Category sql.NullString `db:"category" ddl:"VARCHAR(50)"`

	Description sql.NullString `db:"description" ddl:"TEXT"`
}

// SpeciesAttribute links species to attributes. Reserved, unused by
// the current pipeline.
type SpeciesAttribute struct {
	SpeciesID int `db:"species_id" ddl:"INT NOT NULL"`

	AttributeID int `db:"attribute_id" ddl:"INT NOT NULL"`
}
