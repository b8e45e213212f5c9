// Package ioread implements the read-only projection of the database
// for the web UI, plus the single curator mutation of designating a
// species' common name. This is an impure I/O package.
package ioread

import (
	"context"
	"errors"

	"github.com/avherb/herbdb/pkg/db"
	"github.com/avherb/herbdb/pkg/lifecycle"
	"github.com/avherb/herbdb/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// Reader implements lifecycle.Reader.
type Reader struct {
	operator db.Operator
}

// New creates a new Reader.
func New(op db.Operator) lifecycle.Reader {
	return &Reader{operator: op}
}

// SpeciesPage loads the full page projection for one species: the
// species row, names grouped by language, ordered sections with
// ordered images, ordered synonyms, and ordered sources.
func (r *Reader) SpeciesPage(
	ctx context.Context,
	speciesID int,
) (*lifecycle.SpeciesPage, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, ErrNotConnected()
	}

	var page lifecycle.SpeciesPage

	err := pool.QueryRow(ctx, `
		SELECT id, scientific_name, canonical_name, authority, family,
		       category, main_image_url, main_image_alt,
		       herbarium_image_url, common_name_id, collector,
		       collected_date, locality, latitude, longitude, updated_at
		FROM species WHERE id = $1`, speciesID,
	).Scan(
		&page.Species.ID,
		&page.Species.ScientificName,
		&page.Species.CanonicalName,
		&page.Species.Authority,
		&page.Species.Family,
		&page.Species.Category,
		&page.Species.MainImageURL,
		&page.Species.MainImageAlt,
		&page.Species.HerbariumImageURL,
		&page.Species.CommonNameID,
		&page.Species.Collector,
		&page.Species.CollectedDate,
		&page.Species.Locality,
		&page.Species.Latitude,
		&page.Species.Longitude,
		&page.Species.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSpeciesNotFound(speciesID)
	}
	if err != nil {
		return nil, ErrQuery("species", err)
	}

	if page.Names, err = r.namesByLanguage(ctx, speciesID); err != nil {
		return nil, err
	}
	if page.Sections, err = r.sections(ctx, speciesID); err != nil {
		return nil, err
	}
	if page.Synonyms, err = r.synonyms(ctx, speciesID); err != nil {
		return nil, err
	}
	if page.Sources, err = r.sources(ctx, speciesID); err != nil {
		return nil, err
	}

	// The common-name reference is weak: a re-import replaces name
	// rows, so a dangling id simply reads as unset.
	if page.Species.CommonNameID.Valid {
		page.CommonName, err = r.nameByID(
			ctx, page.Species.CommonNameID.Int64,
		)
		if err != nil {
			return nil, err
		}
	}

	return &page, nil
}

// namesByLanguage loads names grouped by language in vocabulary
// order.
func (r *Reader) namesByLanguage(
	ctx context.Context,
	speciesID int,
) ([]lifecycle.NamesByLanguage, error) {
	pool := r.operator.Pool()

	rows, err := pool.Query(ctx, `
		SELECT n.id, n.species_id, n.language_id, n.name,
		       l.id, l.code, l.name
		FROM names n
		JOIN languages l ON l.id = n.language_id
		WHERE n.species_id = $1
		ORDER BY l.id, n.id`, speciesID)
	if err != nil {
		return nil, ErrQuery("names", err)
	}
	defer rows.Close()

	var res []lifecycle.NamesByLanguage
	for rows.Next() {
		var n schema.Name
		var l schema.Language
		err = rows.Scan(
			&n.ID, &n.SpeciesID, &n.LanguageID, &n.Name,
			&l.ID, &l.Code, &l.Name,
		)
		if err != nil {
			return nil, ErrQuery("names", err)
		}
		if len(res) == 0 || res[len(res)-1].Language.ID != l.ID {
			res = append(res, lifecycle.NamesByLanguage{Language: l})
		}
		last := &res[len(res)-1]
		last.Names = append(last.Names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrQuery("names", err)
	}
	return res, nil
}

// sections loads ordered sections, each with its ordered images.
func (r *Reader) sections(
	ctx context.Context,
	speciesID int,
) ([]lifecycle.SectionView, error) {
	pool := r.operator.Pool()

	rows, err := pool.Query(ctx, `
		SELECT id, species_id, title, section_order,
		       content_text, content_html
		FROM sections
		WHERE species_id = $1
		ORDER BY section_order`, speciesID)
	if err != nil {
		return nil, ErrQuery("sections", err)
	}
	defer rows.Close()

	var res []lifecycle.SectionView
	byID := make(map[int]int)
	for rows.Next() {
		var s schema.Section
		err = rows.Scan(
			&s.ID, &s.SpeciesID, &s.Title, &s.SectionOrder,
			&s.ContentText, &s.ContentHTML,
		)
		if err != nil {
			return nil, ErrQuery("sections", err)
		}
		byID[s.ID] = len(res)
		res = append(res, lifecycle.SectionView{Section: s})
	}
	if err := rows.Err(); err != nil {
		return nil, ErrQuery("sections", err)
	}
	if len(res) == 0 {
		return nil, nil
	}

	imgRows, err := pool.Query(ctx, `
		SELECT si.id, si.section_id, si.image_url, si.caption,
		       si.image_order, si.credit
		FROM section_images si
		JOIN sections s ON s.id = si.section_id
		WHERE s.species_id = $1
		ORDER BY si.section_id, si.image_order`, speciesID)
	if err != nil {
		return nil, ErrQuery("section images", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img schema.SectionImage
		err = imgRows.Scan(
			&img.ID, &img.SectionID, &img.ImageURL, &img.Caption,
			&img.ImageOrder, &img.Credit,
		)
		if err != nil {
			return nil, ErrQuery("section images", err)
		}
		if i, ok := byID[img.SectionID]; ok {
			res[i].Images = append(res[i].Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, ErrQuery("section images", err)
	}
	return res, nil
}

// synonyms loads scientific synonyms in synonym order.
func (r *Reader) synonyms(
	ctx context.Context,
	speciesID int,
) ([]schema.Synonym, error) {
	pool := r.operator.Pool()

	rows, err := pool.Query(ctx, `
		SELECT id, species_id, value, synonym_order
		FROM synonyms
		WHERE species_id = $1
		ORDER BY synonym_order`, speciesID)
	if err != nil {
		return nil, ErrQuery("synonyms", err)
	}
	defer rows.Close()

	var res []schema.Synonym
	for rows.Next() {
		var s schema.Synonym
		err = rows.Scan(&s.ID, &s.SpeciesID, &s.Value, &s.SynonymOrder)
		if err != nil {
			return nil, ErrQuery("synonyms", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrQuery("synonyms", err)
	}
	return res, nil
}

// sources loads sources in source order.
func (r *Reader) sources(
	ctx context.Context,
	speciesID int,
) ([]schema.Source, error) {
	pool := r.operator.Pool()

	rows, err := pool.Query(ctx, `
		SELECT id, species_id, url, title, description, source_order
		FROM sources
		WHERE species_id = $1
		ORDER BY source_order`, speciesID)
	if err != nil {
		return nil, ErrQuery("sources", err)
	}
	defer rows.Close()

	var res []schema.Source
	for rows.Next() {
		var s schema.Source
		err = rows.Scan(
			&s.ID, &s.SpeciesID, &s.URL, &s.Title,
			&s.Description, &s.SourceOrder,
		)
		if err != nil {
			return nil, ErrQuery("sources", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrQuery("sources", err)
	}
	return res, nil
}

// nameByID resolves one name row; nil when the id dangles.
func (r *Reader) nameByID(
	ctx context.Context,
	id int64,
) (*schema.Name, error) {
	pool := r.operator.Pool()

	var n schema.Name
	err := pool.QueryRow(ctx, `
		SELECT id, species_id, language_id, name
		FROM names WHERE id = $1`, id,
	).Scan(&n.ID, &n.SpeciesID, &n.LanguageID, &n.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, ErrQuery("common name", err)
	}
	return &n, nil
}
