// Package ioimport implements the Importer interface: it runs
// scraped species documents through validation, assembly and
// planning, and executes each species' mutation batch in a single
// transaction. This is an impure I/O package.
package ioimport

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/avherb/herbdb/pkg/assemble"
	"github.com/avherb/herbdb/pkg/config"
	"github.com/avherb/herbdb/pkg/db"
	"github.com/avherb/herbdb/pkg/document"
	"github.com/avherb/herbdb/pkg/lifecycle"
	"github.com/avherb/herbdb/pkg/parserpool"
	"github.com/avherb/herbdb/pkg/plan"
	"github.com/avherb/herbdb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib/ent/nomcode"
)

// Importer implements lifecycle.Importer.
type Importer struct {
	operator db.Operator
	parsers  parserpool.Pool
}

// New creates a new Importer. The parser pool is shared across
// species so bulk mode does not pay parser startup per document.
func New(op db.Operator, parsers parserpool.Pool) lifecycle.Importer {
	return &Importer{operator: op, parsers: parsers}
}

// ImportFile imports one species document in a single transaction.
func (imp *Importer) ImportFile(
	ctx context.Context,
	cfg *config.Config,
	path string,
) error {
	pool := imp.operator.Pool()
	if pool == nil {
		return ErrNotConnected()
	}

	vocab, err := imp.loadLanguages(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	sp, warns, err := imp.importOne(ctx, cfg, path, vocab)
	if err != nil {
		return err
	}
	for _, w := range warns {
		slog.Warn("Import warning", "warning", w)
		gn.Warn(w)
	}

	slog.Info("Species imported",
		"species_id", sp.SpeciesID,
		"scientific_name", sp.ScientificName,
		"sections", sp.Sections,
		"names", sp.Names,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info("Imported <em>%s</em> (species %d)",
		sp.ScientificName, sp.SpeciesID)
	return nil
}

// speciesResult is what importOne reports about a committed species.
type speciesResult struct {
	SpeciesID      int
	ScientificName string
	Sections       int
	Names          int
}

// importOne runs the full transform for one document: decode,
// validate, enrich with the parsed canonical name, assemble, plan,
// and execute inside one transaction.
func (imp *Importer) importOne(
	ctx context.Context,
	cfg *config.Config,
	path string,
	vocab []schema.Language,
) (speciesResult, []string, error) {
	var res speciesResult

	doc, err := readDocument(path)
	if err != nil {
		return res, nil, err
	}

	ir, err := document.Validate(doc)
	if err != nil {
		return res, nil, err
	}
	ir.Category = cfg.Import.Category

	if err = imp.enrichName(&ir); err != nil {
		return res, nil, err
	}

	secs, err := assemble.Sections(ir)
	if err != nil {
		return res, nil, err
	}
	names, warns := assemble.Names(ir, vocab)

	batch := plan.Build(ir, secs, names)
	if err = imp.execBatch(ctx, batch); err != nil {
		return res, warns, err
	}

	res = speciesResult{
		SpeciesID:      ir.SpeciesID,
		ScientificName: ir.ScientificName,
		Sections:       len(secs),
		Names:          len(names),
	}
	return res, warns, nil
}

// enrichName parses the scientific name and stores its canonical
// form. Unparseable names are not fatal: the verbatim name is still
// imported, only the canonical column stays empty.
func (imp *Importer) enrichName(ir *document.IR) error {
	code := nomcode.Zoological
	if ir.Category == "plants" {
		code = nomcode.Botanical
	}

	parsed, err := imp.parsers.Parse(ir.ScientificName, code)
	if err != nil {
		return err
	}
	if parsed.Parsed {
		ir.CanonicalName = parsed.Canonical.Simple
		if ir.Authority == "" && parsed.Authorship != nil {
			ir.Authority = parsed.Authorship.Verbatim
		}
	} else {
		slog.Warn("Could not parse scientific name",
			"species_id", ir.SpeciesID,
			"scientific_name", ir.ScientificName,
		)
	}
	return nil
}

// readDocument decodes one species document file.
func readDocument(path string) (document.Document, error) {
	var doc document.Document

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, ErrDocumentRead(path, err)
	}

	enc := gnfmt.GNjson{}
	if err := enc.Decode(data, &doc); err != nil {
		return doc, ErrDocumentDecode(path, err)
	}
	return doc, nil
}
