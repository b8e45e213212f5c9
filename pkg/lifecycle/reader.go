package lifecycle

import (
	"context"

	"github.com/avherb/herbdb/pkg/schema"
)

// SpeciesPage is the full projection of one species for the web UI:
// the species row, names grouped by language, ordered sections with
// their ordered images, ordered synonyms, and ordered sources.
type SpeciesPage struct {
	Species schema.Species `json:"species"`

	// CommonName resolves the species' weak common_name_id reference.
	// Nil when unset or when the referenced name no longer exists.
	CommonName *schema.Name `json:"commonName,omitempty"`

	Names    []NamesByLanguage `json:"names,omitempty"`
	Sections []SectionView     `json:"sections,omitempty"`
	Synonyms []schema.Synonym  `json:"synonyms,omitempty"`
	Sources  []schema.Source   `json:"sources,omitempty"`
}

// NamesByLanguage groups common names under one language, languages
// ordered by the fixed vocabulary.
type NamesByLanguage struct {
	Language schema.Language `json:"language"`
	Names    []schema.Name   `json:"names"`
}

// SectionView is one content section with its images.
type SectionView struct {
	Section schema.Section        `json:"section"`
	Images  []schema.SectionImage `json:"images,omitempty"`
}

// SpeciesSummary is one row of the species listing.
type SpeciesSummary struct {
	ID             int    `json:"id"`
	ScientificName string `json:"scientificName"`
	Family         string `json:"family"`
	Category       string `json:"category"`
	CommonName     string `json:"commonName,omitempty"`
	MainImageURL   string `json:"mainImageUrl,omitempty"`
}

// Reader is the read-only projection of the database for the UI,
// plus the single curator mutation: designating a common name.
type Reader interface {
	// SpeciesPage loads the full page projection for one species.
	SpeciesPage(ctx context.Context, speciesID int) (*SpeciesPage, error)

	// ListSpecies lists species ordered by scientific name. A limit
	// of zero or less lists every species.
	ListSpecies(ctx context.Context, limit, offset int) ([]SpeciesSummary, error)

	// SetCommonName points species.common_name_id at an existing name
	// row. The name must belong to the same species.
	SetCommonName(ctx context.Context, speciesID int, nameID int64) error
}
