package lifecycle

import (
	"context"

	"github.com/avherb/herbdb/pkg/config"
)

// ImportSummary reports the outcome of a bulk import run.
type ImportSummary struct {
	Total     int
	Succeeded int
	Failed    int

	// FailedIDs lists species whose batch did not commit, in
	// ascending order.
	FailedIDs []int

	// Warnings collects non-fatal notes, such as common names in
	// languages outside the fixed vocabulary.
	Warnings []string
}

// Importer runs scraped species documents through the transform
// pipeline into the database. Each species imports atomically: its
// delete/insert batch either commits in full or not at all, and one
// species' failure never aborts a bulk run.
type Importer interface {
	// ImportFile imports a single document file.
	ImportFile(ctx context.Context, cfg *config.Config, path string) error

	// ImportAll imports every document in the configured documents
	// directory, possibly in parallel, and returns a per-species
	// summary.
	ImportAll(ctx context.Context, cfg *config.Config) (ImportSummary, error)
}
