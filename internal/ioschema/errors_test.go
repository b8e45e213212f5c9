package ioschema

import (
	"errors"
	"testing"

	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrNotConnected_Structure verifies error structure.
func TestErrNotConnected_Structure(t *testing.T) {
	err := ErrNotConnected()

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

// TestErrGORMConnection_Structure verifies error structure.
func TestErrGORMConnection_Structure(t *testing.T) {
	originalErr := errors.New("connection failed")

	err := ErrGORMConnection(originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaGORMConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestErrCreateSchema_Structure verifies error structure.
func TestErrCreateSchema_Structure(t *testing.T) {
	originalErr := errors.New("create failed")

	err := ErrCreateSchema(originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaCreateError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestErrConstraint_Structure verifies the constraint name and
// table reach the message variables.
func TestErrConstraint_Structure(t *testing.T) {
	originalErr := errors.New("constraint failed")

	err := ErrConstraint("names", "fk_names_species", originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaConstraintError, gnErr.Code)
	assert.Equal(t, []any{"fk_names_species", "names"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestErrSeedLanguages_Structure verifies error structure.
func TestErrSeedLanguages_Structure(t *testing.T) {
	originalErr := errors.New("insert failed")

	err := ErrSeedLanguages("Tamil", originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaSeedLanguagesError, gnErr.Code)
	assert.Equal(t, []any{"Tamil"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestErrIndex_Structure verifies error structure.
func TestErrIndex_Structure(t *testing.T) {
	originalErr := errors.New("index failed")

	err := ErrIndex("species", originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaIndexError, gnErr.Code)
	assert.Equal(t, []any{"species"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestErrNotNull_Structure verifies error structure.
func TestErrNotNull_Structure(t *testing.T) {
	originalErr := errors.New("column contains null values")

	err := ErrNotNull("species", "family", originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaNotNullError, gnErr.Code)
	assert.Equal(t, []any{"species", "family"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
