package ioimport

import (
	"context"

	"github.com/avherb/herbdb/pkg/plan"
	"github.com/avherb/herbdb/pkg/schema"
)

// loadLanguages reads the language vocabulary seeded by schema
// creation. Names in languages outside this set are skipped with a
// warning during assembly.
func (imp *Importer) loadLanguages(
	ctx context.Context,
) ([]schema.Language, error) {
	pool := imp.operator.Pool()
	if pool == nil {
		return nil, ErrNotConnected()
	}

	rows, err := pool.Query(ctx,
		"SELECT id, code, name FROM languages ORDER BY id")
	if err != nil {
		return nil, ErrLanguagesLoad(err)
	}
	defer rows.Close()

	var res []schema.Language
	for rows.Next() {
		var l schema.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, ErrLanguagesLoad(err)
		}
		res = append(res, l)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrLanguagesLoad(err)
	}
	if len(res) == 0 {
		return nil, ErrLanguagesMissing()
	}
	return res, nil
}

// execBatch runs one species' mutation batch inside a single
// transaction. Either every operation lands or none of them do, so a
// failed import never leaves a species half-written.
func (imp *Importer) execBatch(ctx context.Context, b plan.Batch) error {
	pool := imp.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return ErrExecution(b.SpeciesID, "begin transaction", err)
	}
	defer tx.Rollback(ctx)

	for _, op := range b.Ops {
		if _, err := tx.Exec(ctx, op.SQL, op.Args...); err != nil {
			return ErrExecution(b.SpeciesID, op.Step, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return ErrExecution(b.SpeciesID, "commit", err)
	}
	return nil
}
