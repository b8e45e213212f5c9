package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avherb/herbdb/internal/iodb"
	"github.com/avherb/herbdb/internal/ioread"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <species-id>",
		Short: "Show one species as the web UI sees it",
		Long: `Show the full page projection of one species: the species
row, names grouped by language, ordered sections with images, and
sources. Output is JSON.

Examples:
  herbdb show 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			speciesID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("species id must be a number: %q", args[0])
			}
			return runShow(speciesID)
		},
	}
}

func runShow(speciesID int) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	reader := ioread.New(op)
	page, err := reader.SpeciesPage(ctx, speciesID)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	enc := gnfmt.GNjson{Pretty: true}
	out, err := enc.Encode(page)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
