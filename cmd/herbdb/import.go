package main

import (
	"context"
	"errors"

	"github.com/avherb/herbdb/internal/iodb"
	"github.com/avherb/herbdb/internal/ioimport"
	"github.com/avherb/herbdb/pkg/config"
	"github.com/avherb/herbdb/pkg/parserpool"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var (
		importAll bool
		jobsNum   int
		docsDir   string
	)

	importCmd := &cobra.Command{
		Use:   "import [document-file]",
		Short: "Import scraped species documents",
		Long: `Import scraped species documents into the database.

A single file imports in one transaction. With --all, every document
in the documents directory imports in parallel; each species commits
or rolls back independently, and a summary reports the failures.

Re-importing a species replaces all of its derived rows while
preserving curator-designated common names.

Examples:
  herbdb import species-42.json
  herbdb import --all
  herbdb import --all --jobs 8 --dir /data/documents`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if importAll == (len(args) == 1) {
				return errors.New(
					"provide either a document file or --all")
			}

			opts := []config.Option{}
			if jobsNum > 0 {
				opts = append(opts, config.OptJobsNumber(jobsNum))
			}
			if docsDir != "" {
				opts = append(opts, config.OptImportDocumentsDir(docsDir))
			}
			cfg.Update(opts)

			if importAll {
				return runImportAll()
			}
			return runImportFile(args[0])
		},
	}

	importCmd.Flags().BoolVarP(&importAll, "all", "a", false,
		"import every document in the documents directory")
	importCmd.Flags().IntVarP(&jobsNum, "jobs", "j", 0,
		"number of concurrent import workers")
	importCmd.Flags().StringVarP(&docsDir, "dir", "d", "",
		"directory with scraped documents")

	return importCmd
}

func runImportFile(path string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	parsers := parserpool.NewPool(1)
	defer parsers.Close()

	imp := ioimport.New(op, parsers)
	if err := imp.ImportFile(ctx, cfg, path); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

func runImportAll() error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	parsers := parserpool.NewPool(cfg.JobsNumber)
	defer parsers.Close()

	imp := ioimport.New(op, parsers)
	if _, err := imp.ImportAll(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
