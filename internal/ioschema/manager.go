// Package ioschema implements the SchemaManager interface for
// database schema management. This is an impure I/O package that
// wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/avherb/herbdb/pkg/config"
	"github.com/avherb/herbdb/pkg/db"
	"github.com/avherb/herbdb/pkg/lifecycle"
	"github.com/avherb/herbdb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager implements lifecycle.SchemaManager using GORM AutoMigrate.
type Manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &Manager{operator: op}
}

// Create creates the database schema, applies the constraints,
// indexes and NOT NULL rules AutoMigrate does not cover, sets
// collation for correct scientific-name sorting, and seeds the
// language vocabulary.
func (m *Manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return ErrCreateSchema(err)
	}

	if err := m.applyConstraints(ctx); err != nil {
		return err
	}
	if err := m.applyIndexes(ctx); err != nil {
		return err
	}
	if err := m.applyNotNull(ctx); err != nil {
		return err
	}
	if err := m.setCollation(ctx); err != nil {
		return err
	}
	if err := m.SeedLanguages(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates the database schema to the latest shape without
// touching data.
func (m *Manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return ErrMigrateSchema(err)
	}

	if err := m.applyConstraints(ctx); err != nil {
		return err
	}
	if err := m.applyIndexes(ctx); err != nil {
		return err
	}
	if err := m.applyNotNull(ctx); err != nil {
		return err
	}

	return nil
}

// gormDB opens a GORM session on top of the pgx pool.
func (m *Manager) gormDB() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, ErrNotConnected()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, ErrGORMConnection(err)
	}
	return gormDB, nil
}

// applyIndexes creates the secondary indexes of every model,
// including the unique index on species.scientific_name that keeps
// re-imports from duplicating a species under a new id. The
// statements use IF NOT EXISTS so Create and Migrate can re-run.
func (m *Manager) applyIndexes(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	for _, model := range schema.AllModels() {
		gen, ok := model.(schema.DDLGenerator)
		if !ok {
			continue
		}
		for _, q := range gen.IndexDDL() {
			if _, err := pool.Exec(ctx, q); err != nil {
				return ErrIndex(gen.TableName(), err)
			}
		}
	}

	return nil
}

// applyNotNull enforces NOT NULL on every column whose DDL declares
// it. AutoMigrate creates the columns nullable.
func (m *Manager) applyNotNull(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	for _, model := range schema.AllModels() {
		gen, ok := model.(schema.DDLGenerator)
		if !ok {
			continue
		}
		table := gen.TableName()
		for _, col := range schema.NotNullColumns(model) {
			q := formatNotNullSQL(table, col)
			if _, err := pool.Exec(ctx, q); err != nil {
				return ErrNotNull(table, col, err)
			}
		}
	}

	return nil
}

// setCollation sets "C" collation on name columns. Scientific names
// must sort bytewise for deterministic listings across locales.
func (m *Manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"species", "scientific_name", 255},
		{"species", "canonical_name", 255},
		{"names", "name", 255},
		{"synonyms", "value", 255},
	}

	for _, col := range columns {
		q := formatCollationSQL(col.table, col.column, col.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return ErrCollation(col.table, col.column, err)
		}
	}

	return nil
}
