package ioread

import (
	"context"
	"database/sql"

	"github.com/avherb/herbdb/pkg/lifecycle"
)

// ListSpecies lists species ordered by scientific name. A limit of
// zero or less lists every species. The "C" collation on the
// scientific_name column keeps the order stable across locales.
func (r *Reader) ListSpecies(
	ctx context.Context,
	limit, offset int,
) ([]lifecycle.SpeciesSummary, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, ErrNotConnected()
	}

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	// NULLIF turns the zero limit into LIMIT NULL, which is no limit.
	rows, err := pool.Query(ctx, `
		SELECT s.id, s.scientific_name, s.family, s.category,
		       n.name, s.main_image_url
		FROM species s
		LEFT JOIN names n ON n.id = s.common_name_id
		ORDER BY s.scientific_name
		LIMIT NULLIF($1, 0) OFFSET $2`, limit, offset)
	if err != nil {
		return nil, ErrQuery("species list", err)
	}
	defer rows.Close()

	var res []lifecycle.SpeciesSummary
	for rows.Next() {
		var sum lifecycle.SpeciesSummary
		var commonName, mainImage sql.NullString
		err = rows.Scan(
			&sum.ID, &sum.ScientificName, &sum.Family,
			&sum.Category, &commonName, &mainImage,
		)
		if err != nil {
			return nil, ErrQuery("species list", err)
		}
		sum.CommonName = commonName.String
		sum.MainImageURL = mainImage.String
		res = append(res, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrQuery("species list", err)
	}
	return res, nil
}

// SetCommonName points species.common_name_id at an existing name
// row. The name must belong to the same species; the guard runs in
// the UPDATE itself so the check and the write cannot race a
// re-import.
func (r *Reader) SetCommonName(
	ctx context.Context,
	speciesID int,
	nameID int64,
) error {
	pool := r.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	tag, err := pool.Exec(ctx, `
		UPDATE species
		SET common_name_id = $2
		WHERE id = $1
		  AND EXISTS (
		    SELECT FROM names
		    WHERE id = $2 AND species_id = $1
		  )`, speciesID, nameID)
	if err != nil {
		return ErrQuery("set common name", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNameMismatch(speciesID, nameID)
	}
	return nil
}
