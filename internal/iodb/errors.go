package iodb

import (
	"errors"
	"fmt"

	"github.com/avherb/herbdb/pkg/config"
	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrConnection wraps a failed connection attempt with enough context
// for the user to diagnose it.
func ErrConnection(cfg *config.DatabaseConfig, cause error) error {
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg: fmt.Sprintf(
			"<err>Could not connect to PostgreSQL.</err>\n"+
				"   Check that the server is running and reachable:\n"+
				"   <em>pg_isready -h %s -p %d</em>\n"+
				"   Connection settings: host=%s port=%d db=%s user=%s",
			cfg.Host, cfg.Port,
			cfg.Host, cfg.Port, cfg.Database, cfg.User,
		),
		Err: fmt.Errorf(
			"connect to %s:%d/%s: %w",
			cfg.Host, cfg.Port, cfg.Database, cause,
		),
	}
}

// ErrNotConnected reports use of the operator before Connect.
func ErrNotConnected() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "<err>Database is not connected.</err>",
		Err:  errors.New("operator used before Connect"),
	}
}

// ErrTableCheck reports a failed table existence query.
func ErrTableCheck(what string, cause error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "<err>Could not verify database state.</err>",
		Err:  fmt.Errorf("check %s: %w", what, cause),
	}
}

// ErrDropTables reports a failure while wiping the public schema.
// table is empty when the table list itself could not be read.
func ErrDropTables(table string, cause error) error {
	detail := "list tables"
	if table != "" {
		detail = fmt.Sprintf("drop table %s", table)
	}
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "<err>Could not drop existing tables.</err>",
		Err:  fmt.Errorf("%s: %w", detail, cause),
	}
}
