package ioimport

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/avherb/herbdb/internal/iofs"
	"github.com/avherb/herbdb/pkg/config"
	"github.com/avherb/herbdb/pkg/lifecycle"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ImportAll imports every document in the configured documents
// directory. Species import in parallel, each in its own
// transaction, so one failure never corrupts or aborts the others.
func (imp *Importer) ImportAll(
	ctx context.Context,
	cfg *config.Config,
) (lifecycle.ImportSummary, error) {
	var sum lifecycle.ImportSummary

	pool := imp.operator.Pool()
	if pool == nil {
		return sum, ErrNotConnected()
	}

	docsDir := cfg.Import.DocumentsDir
	if docsDir == "" {
		docsDir = config.DocumentsDir(cfg.HomeDir)
	}

	files, err := iofs.ListDocuments(docsDir)
	if err != nil {
		return sum, err
	}
	if len(files) == 0 {
		return sum, ErrNoDocuments(docsDir)
	}

	// Languages must be visible before any per-species batch runs.
	vocab, err := imp.loadLanguages(ctx)
	if err != nil {
		return sum, err
	}

	runID := uuid.New().String()
	start := time.Now()
	sum.Total = len(files)

	slog.Info("Starting bulk import",
		"run_id", runID,
		"documents", len(files),
		"jobs", cfg.JobsNumber,
	)
	gn.Info("Importing <em>%s</em> documents from <em>%s</em>",
		humanize.Comma(int64(len(files))), docsDir)

	bar := pb.Full.Start(len(files))
	bar.Set(pb.CleanOnFinish, true)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.JobsNumber, 1))

	for _, path := range files {
		g.Go(func() error {
			sp, warns, err := imp.importOne(gctx, cfg, path, vocab)

			mu.Lock()
			defer mu.Unlock()
			bar.Increment()
			sum.Warnings = append(sum.Warnings, warns...)

			if err != nil {
				// One species' failure must not abort the run.
				sum.Failed++
				id := sp.SpeciesID
				if id == 0 {
					id = speciesIDFromFilename(path)
				}
				if id > 0 {
					sum.FailedIDs = append(sum.FailedIDs, id)
				}
				slog.Error("Species import failed",
					"run_id", runID,
					"file", path,
					"error", err,
				)
				return nil
			}

			sum.Succeeded++
			slog.Info("Species imported",
				"run_id", runID,
				"species_id", sp.SpeciesID,
				"scientific_name", sp.ScientificName,
				"sections", sp.Sections,
				"names", sp.Names,
			)
			return nil
		})
	}

	// Workers swallow per-species errors; only context cancellation
	// propagates here.
	if err := g.Wait(); err != nil {
		bar.Finish()
		return sum, err
	}
	bar.Finish()

	sort.Ints(sum.FailedIDs)
	imp.report(&sum, runID, start)

	if sum.Succeeded == 0 {
		return sum, ErrAllFailed(sum.Total)
	}
	if sum.Failed > 0 {
		return sum, ErrSomeFailed(sum.Failed, sum.Total)
	}
	return sum, nil
}

func (imp *Importer) report(
	sum *lifecycle.ImportSummary,
	runID string,
	start time.Time,
) {
	duration := gnfmt.TimeString(time.Since(start).Seconds())

	slog.Info("Bulk import finished",
		"run_id", runID,
		"total", sum.Total,
		"succeeded", sum.Succeeded,
		"failed", sum.Failed,
		"duration", duration,
	)

	gn.Info("Imported <em>%s</em> of <em>%s</em> species in %s",
		humanize.Comma(int64(sum.Succeeded)),
		humanize.Comma(int64(sum.Total)),
		duration,
	)
	for _, w := range sum.Warnings {
		gn.Warn(w)
	}
}
