package ioschema

import (
	"fmt"

	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNotConnected reports a schema operation attempted without a
// database connection.
func ErrNotConnected() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ErrGORMConnection reports a GORM session failure.
func ErrGORMConnection(err error) error {
	msg := `Cannot connect to database with GORM

<em>How to fix:</em>
  1. Ensure the database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// ErrCreateSchema reports a schema creation failure.
func ErrCreateSchema(err error) error {
	msg := `Cannot create database schema

<em>How to fix:</em>
  1. Check the database user has CREATE permissions
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// ErrMigrateSchema reports a schema migration failure.
func ErrMigrateSchema(err error) error {
	msg := `Cannot migrate database schema

<em>How to fix:</em>
  1. Review migration compatibility
  2. Back up data before migrating`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// ErrCollation reports a collation setting failure.
func ErrCollation(table, column string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  "Cannot set collation on <em>%s.%s</em>",
		Vars: []any{table, column},
		Err: fmt.Errorf(
			"failed to set collation on %s.%s: %w", table, column, err),
	}
}

// ErrConstraint reports a failed constraint application.
func ErrConstraint(table, name string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaConstraintError,
		Msg:  "Cannot apply constraint <em>%s</em> on <em>%s</em>",
		Vars: []any{name, table},
		Err: fmt.Errorf(
			"failed to apply constraint %s on %s: %w", name, table, err),
	}
}

// ErrIndex reports a failed index creation.
func ErrIndex(table string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaIndexError,
		Msg:  "Cannot create indexes on <em>%s</em>",
		Vars: []any{table},
		Err: fmt.Errorf(
			"failed to create indexes on %s: %w", table, err),
	}
}

// ErrNotNull reports a failed NOT NULL enforcement. On an existing
// database this usually means the column already holds NULLs.
func ErrNotNull(table, column string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaNotNullError,
		Msg:  "Cannot enforce NOT NULL on <em>%s.%s</em>",
		Vars: []any{table, column},
		Err: fmt.Errorf(
			"failed to enforce NOT NULL on %s.%s: %w", table, column, err),
	}
}

// ErrSeedLanguages reports a failed language vocabulary seed.
func ErrSeedLanguages(language string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaSeedLanguagesError,
		Msg:  "Cannot seed language <em>%s</em>",
		Vars: []any{language},
		Err:  fmt.Errorf("failed to seed language %s: %w", language, err),
	}
}
