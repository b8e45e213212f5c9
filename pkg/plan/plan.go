// Package plan builds the ordered mutation batch for one species.
// A batch is idempotent: executing it twice leaves the database in
// the same state, because every child table is cleared by species id
// before the inserts run. The package produces SQL but never talks to
// the database itself.
package plan

import (
	"fmt"
	"strings"

	"github.com/avherb/herbdb/pkg/assemble"
	"github.com/avherb/herbdb/pkg/document"
)

// Op is one parameterized SQL statement within a batch.
type Op struct {
	// Step is a short human label for logs ("delete sections",
	// "insert species").
	Step  string
	Table string
	SQL   string
	Args  []any
}

// Batch is the full ordered mutation sequence for one species. It
// must execute inside a single transaction.
type Batch struct {
	SpeciesID int
	Ops       []Op
}

// Build produces the mutation batch for a species: deletes scoped by
// species id in child-first order, then inserts in parent-first
// order. The species upsert never touches common_name_id; that column
// belongs to curators and survives re-imports.
func Build(ir document.IR, secs []assemble.Section, names []assemble.Name) Batch {
	b := Batch{SpeciesID: ir.SpeciesID}

	b.deletes(ir.SpeciesID)
	b.upsertSpecies(ir)
	b.insertNames(names)
	b.insertSections(secs)
	b.insertSynonyms(ir)
	b.insertSources(ir)

	return b
}

func (b *Batch) add(step, table, sql string, args ...any) {
	b.Ops = append(b.Ops, Op{Step: step, Table: table, SQL: sql, Args: args})
}

// deletes clears all per-species child rows, children before parents.
func (b *Batch) deletes(speciesID int) {
	b.add("delete section images", "section_images",
		`DELETE FROM section_images
WHERE section_id IN (SELECT id FROM sections WHERE species_id = $1)`,
		speciesID,
	)
	b.add("delete sections", "sections",
		"DELETE FROM sections WHERE species_id = $1", speciesID)
	b.add("delete names", "names",
		"DELETE FROM names WHERE species_id = $1", speciesID)
	b.add("delete synonyms", "synonyms",
		"DELETE FROM synonyms WHERE species_id = $1", speciesID)
	b.add("delete sources", "sources",
		"DELETE FROM sources WHERE species_id = $1", speciesID)
}

func (b *Batch) upsertSpecies(ir document.IR) {
	alt := ""
	if ir.MainImageURL != "" {
		alt = ir.ScientificName
	}
	b.add("upsert species", "species",
		`INSERT INTO species (
  id, scientific_name, canonical_name, authority, family, category,
  main_image_url, main_image_alt, herbarium_image_url,
  collector, collected_date, locality, latitude, longitude, updated_at
) VALUES (
  $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now()
)
ON CONFLICT (id) DO UPDATE SET
  scientific_name = EXCLUDED.scientific_name,
  canonical_name = EXCLUDED.canonical_name,
  authority = EXCLUDED.authority,
  family = EXCLUDED.family,
  category = EXCLUDED.category,
  main_image_url = EXCLUDED.main_image_url,
  main_image_alt = EXCLUDED.main_image_alt,
  herbarium_image_url = EXCLUDED.herbarium_image_url,
  collector = EXCLUDED.collector,
  collected_date = EXCLUDED.collected_date,
  locality = EXCLUDED.locality,
  latitude = EXCLUDED.latitude,
  longitude = EXCLUDED.longitude,
  updated_at = EXCLUDED.updated_at`,
		ir.SpeciesID,
		ir.ScientificName,
		nullable(ir.CanonicalName),
		nullable(ir.Authority),
		ir.Family,
		ir.Category,
		nullable(ir.MainImageURL),
		nullable(alt),
		nullable(ir.HerbariumImageURL),
		nullable(ir.Collector),
		nullable(ir.CollectedDate),
		nullable(ir.Locality),
		nullable(ir.Latitude),
		nullable(ir.Longitude),
	)
}

// insertNames emits one multi-row insert; rows arrive already ordered
// English-first by the extractor.
func (b *Batch) insertNames(names []assemble.Name) {
	if len(names) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO names (species_id, language_id, name) VALUES ")
	args := make([]any, 0, len(names)*3)
	for i, n := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, n.SpeciesID, n.LanguageID, n.Name)
	}
	b.add("insert names", "names", sb.String(), args...)
}

// insertSections interleaves each section with its image inserts so
// foreign keys resolve in order.
func (b *Batch) insertSections(secs []assemble.Section) {
	for _, sec := range secs {
		b.add("insert section", "sections",
			`INSERT INTO sections
  (id, species_id, title, section_order, content_text, content_html)
VALUES ($1, $2, $3, $4, $5, $6)`,
			sec.ID, sec.SpeciesID, sec.Title, sec.Order,
			nullable(sec.Text), nullable(sec.HTML),
		)
		for _, img := range sec.Images {
			b.add("insert section image", "section_images",
				`INSERT INTO section_images
  (section_id, image_url, caption, image_order, credit)
VALUES ($1, $2, $3, $4, $5)`,
				sec.ID, img.URL, nullable(img.Caption),
				img.Order, nullable(img.Credit),
			)
		}
	}
}

func (b *Batch) insertSynonyms(ir document.IR) {
	for i, syn := range ir.Synonyms {
		b.add("insert synonym", "synonyms",
			`INSERT INTO synonyms (species_id, value, synonym_order)
VALUES ($1, $2, $3)`,
			ir.SpeciesID, syn, i+1,
		)
	}
}

// insertSources records the page the document was scraped from as the
// species' primary source.
func (b *Batch) insertSources(ir document.IR) {
	b.add("insert source", "sources",
		`INSERT INTO sources (species_id, url, title, description, source_order)
VALUES ($1, $2, $3, $4, $5)`,
		ir.SpeciesID, ir.URL, nil, nil, 1,
	)
}

// nullable maps the IR's empty-string absence convention to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
