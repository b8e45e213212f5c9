package document

// IR is the canonical intermediate representation of a validated
// document. Absence is expressed uniformly: empty string for scalar
// fields, nil for Content pointers. Downstream stages never see raw
// documents.
type IR struct {
	SpeciesID int
	URL       string

	ScientificName string
	Authority      string
	Family         string

	// CanonicalName is filled in by the importer after scientific
	// name parsing; the validator leaves it empty.
	CanonicalName string

	// Category is stamped by the importer from configuration.
	Category string

	MainImageURL      string
	HerbariumImageURL string

	Collector     string
	CollectedDate string
	Locality      string
	Latitude      string
	Longitude     string

	EnglishNames string
	IndianNames  []LocalNames
	Synonyms     []string

	// Description contains only subsections present in the document,
	// already arranged in canonical order.
	Description []Subsection

	// HumanUses preserves a deterministic order: well-known keys
	// first, then the rest sorted alphabetically.
	HumanUses []Subsection

	Ecology      *Content
	Distribution *Content
	Phenology    *Content
	Reproduction *Content

	ConservationStatus *Content
	Reforestation      *Content

	Etymology *Content
}

// LocalNames is a deduplicated list of common names in one language.
// Language is the display name from the document ("Tamil", "Hindi").
type LocalNames struct {
	Language string
	Names    []string
}

// Content is one normalized content block. A block with neither Text
// nor HTML is considered empty even when it carries images.
type Content struct {
	Text   string
	HTML   string
	Images []Image
}

// Image is a captioned image with a guaranteed non-empty URL.
type Image struct {
	URL     string
	Caption string
}

// Subsection is a keyed content block within description or human
// uses, in the order it should be rendered.
type Subsection struct {
	Key     string
	Content Content
}

// IsEmpty reports whether the block has no textual body.
func (c Content) IsEmpty() bool {
	return c.Text == "" && c.HTML == ""
}
