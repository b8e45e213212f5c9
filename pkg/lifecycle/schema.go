// Package lifecycle defines the high-level contracts of the herbdb
// pipeline. Implementations live under internal/io*; pure packages
// never import them.
package lifecycle

import (
	"context"

	"github.com/avherb/herbdb/pkg/config"
)

// SchemaManager manages the database schema through GORM AutoMigrate,
// so both initial creation and later migrations are idempotent.
type SchemaManager interface {
	// Create creates the schema and seeds the fixed language
	// vocabulary. If tables already exist the caller decides, via
	// Operator.DropAllTables, whether to wipe them first.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates an existing schema to the latest shape without
	// touching data.
	Migrate(ctx context.Context, cfg *config.Config) error
}
