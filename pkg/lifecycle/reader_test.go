package lifecycle_test

import (
	"testing"

	"github.com/avherb/herbdb/internal/ioread"
	"github.com/avherb/herbdb/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestReaderContract ensures that ioread.Reader satisfies the
// lifecycle.Reader interface. The assignment is a compile-time check.
func TestReaderContract(t *testing.T) {
	var _ lifecycle.Reader = &ioread.Reader{}

	assert.True(t, true,
		"ioread.Reader should implement lifecycle.Reader")
}
