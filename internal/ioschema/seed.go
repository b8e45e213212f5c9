package ioschema

import (
	"context"

	"github.com/avherb/herbdb/pkg/schema"
)

// SeedLanguages inserts the fixed language vocabulary. The insert is
// idempotent, so concurrent or repeated runs converge on the same
// rows; per-species imports never touch this table.
func (m *Manager) SeedLanguages(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	q := `INSERT INTO languages (id, code, name)
VALUES ($1, $2, $3)
ON CONFLICT (code) DO NOTHING`

	for _, lang := range schema.DefaultLanguages() {
		if _, err := pool.Exec(ctx, q, lang.ID, lang.Code, lang.Name); err != nil {
			return ErrSeedLanguages(lang.Name, err)
		}
	}

	return nil
}
