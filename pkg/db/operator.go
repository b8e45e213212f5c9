// Package db defines the low-level database contract. Higher-level
// lifecycle components receive an Operator and run their own SQL
// through its pool.
package db

import (
	"context"

	"github.com/avherb/herbdb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the database connection lifecycle and exposes the
// pgx pool for lifecycle components (SchemaManager, Importer, Reader)
// to run their specialized SQL. The interface stays minimal on
// purpose: schema creation and migration belong to SchemaManager, and
// transactional import batches go straight through Pool().
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// transactions and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether schema creation should prompt
	// before dropping data.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema. Used when
	// the user asks for a clean re-initialization.
	DropAllTables(ctx context.Context) error
}
