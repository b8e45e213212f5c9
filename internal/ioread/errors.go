package ioread

import (
	"errors"
	"fmt"

	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNotConnected reports a read attempted without a database
// connection.
func ErrNotConnected() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Read attempted without database connection",
		Err:  errors.New("not connected to database"),
	}
}

// ErrSpeciesNotFound reports an unknown species id.
func ErrSpeciesNotFound(speciesID int) error {
	return &gn.Error{
		Code: errcode.ReaderSpeciesNotFoundError,
		Msg:  "Species <em>%d</em> is not in the database",
		Vars: []any{speciesID},
		Err:  fmt.Errorf("species %d not found", speciesID),
	}
}

// ErrNameMismatch reports a common-name assignment whose name row
// does not exist or belongs to a different species.
func ErrNameMismatch(speciesID int, nameID int64) error {
	return &gn.Error{
		Code: errcode.ReaderNameMismatchError,
		Msg: "Name <em>%d</em> does not belong to species <em>%d</em>" +
			" (or does not exist)",
		Vars: []any{nameID, speciesID},
		Err: fmt.Errorf(
			"name %d does not belong to species %d", nameID, speciesID),
	}
}

// ErrQuery wraps a failed read query.
func ErrQuery(what string, err error) error {
	return &gn.Error{
		Code: errcode.ReaderQueryError,
		Msg:  "Could not read %s from the database",
		Vars: []any{what},
		Err:  fmt.Errorf("query %s: %w", what, err),
	}
}
