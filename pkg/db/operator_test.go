package db_test

import (
	"testing"

	"github.com/avherb/herbdb/internal/iodb"
	"github.com/avherb/herbdb/pkg/db"
)

// TestPgxOperatorImplementsInterface verifies that PgxOperator
// implements the db.Operator interface at compile time.
func TestPgxOperatorImplementsInterface(t *testing.T) {
	var _ db.Operator = (*iodb.PgxOperator)(nil)
}
