package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/avherb/herbdb/internal/iodb"
	"github.com/avherb/herbdb/internal/ioread"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var (
	listLimit  int
	listOffset int
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List imported species",
		Long: `List imported species ordered by scientific name.

Examples:
  herbdb list
  herbdb list --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}

	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0,
		"list at most this many species, 0 for all")
	listCmd.Flags().IntVarP(&listOffset, "offset", "o", 0,
		"skip this many species")

	return listCmd
}

func runList() error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	reader := ioread.New(op)
	list, err := reader.ListSpecies(ctx, listLimit, listOffset)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCIENTIFIC NAME\tFAMILY\tCOMMON NAME")
	for _, sp := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			sp.ID, sp.ScientificName, sp.Family, sp.CommonName)
	}
	w.Flush()

	gn.Info("\n<em>%s</em> species listed",
		humanize.Comma(int64(len(list))))
	return nil
}
