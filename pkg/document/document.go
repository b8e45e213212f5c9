// Package document defines the shape of scraped species documents and
// validates them into a canonical intermediate representation. This is
// a pure package: no I/O, no database access.
package document

// Document is one scraped species record as produced by the crawler,
// one JSON object per species.
type Document struct {
	// SpeciesID is the herbarium's own identifier, stable across
	// re-scrapes.
	SpeciesID int    `json:"species_id"`
	URL       string `json:"url"`
	ScrapedAt string `json:"scraped_at,omitempty"`

	BasicInfo BasicInfo `json:"basic_info"`
	Images    Images    `json:"images"`

	CollectionMetadata *CollectionMetadata `json:"collection_metadata,omitempty"`

	Nomenclature Nomenclature `json:"nomenclature"`

	// Description holds the fixed subsections: habit, stem_bark, leaf,
	// flower, fruit, seed. Keys outside the fixed set are ignored.
	Description map[string]*SectionLike `json:"description,omitempty"`

	// Ecology holds ecology, distribution, phenology and
	// reproduction_dispersal entries.
	Ecology map[string]*SectionLike `json:"ecology,omitempty"`

	// HumanUses keys vary by species (culinary, veterinary,
	// handicrafts, ...).
	HumanUses map[string]*SectionLike `json:"human_uses,omitempty"`

	// Conservation holds status and reforestation entries.
	Conservation map[string]*SectionLike `json:"conservation,omitempty"`
}

// BasicInfo is the specimen header of a document.
type BasicInfo struct {
	ScientificName string  `json:"scientific_name"`
	Authority      *string `json:"authority,omitempty"`
	Family         string  `json:"family"`
}

// Images are the page-level photographs of a document.
type Images struct {
	MainSpecimen *string `json:"main_specimen,omitempty"`
	DryHerbarium *string `json:"dry_herbarium,omitempty"`
}

// CollectionMetadata describes the physical specimen collection.
type CollectionMetadata struct {
	Date           *string `json:"date,omitempty"`
	CollectedBy    *string `json:"collected_by,omitempty"`
	GPSCoordinates *GPS    `json:"gps_coordinates,omitempty"`
	Locality       *string `json:"locality,omitempty"`
}

// GPS keeps coordinates verbatim; the source prints them as strings.
type GPS struct {
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
	Raw       string `json:"raw,omitempty"`
}

// Nomenclature is the naming block of a document.
type Nomenclature struct {
	// EnglishNames is a comma-separated string.
	EnglishNames *string `json:"english_names,omitempty"`

	// IndianNames maps a language display name to a list of names.
	// May be null in the source.
	IndianNames map[string][]string `json:"indian_names,omitempty"`

	Synonyms []string `json:"synonyms,omitempty"`

	Etymology     *string `json:"etymology,omitempty"`
	EtymologyHTML *string `json:"etymology_html,omitempty"`
}

// SectionLike is a content-bearing region: free text, marked-up text,
// and captioned images. All parts are optional.
type SectionLike struct {
	Text     *string    `json:"text"`
	TextHTML *string    `json:"text_html,omitempty"`
	Images   []ImageRef `json:"images,omitempty"`
}

// ImageRef is one captioned image inside a SectionLike.
type ImageRef struct {
	URL     string  `json:"url"`
	Caption *string `json:"caption,omitempty"`
}
