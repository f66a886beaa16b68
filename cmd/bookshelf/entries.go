package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

type entriesOptions struct {
	jsonOutput bool
}

func newAuthorsCmd(rootFlags *rootFlags) *cobra.Command {
	return newEntriesCmd(rootFlags, "authors", "List author ids usable with list --author",
		(*browse.Controller).AuthorOptions)
}

func newGenresCmd(rootFlags *rootFlags) *cobra.Command {
	return newEntriesCmd(rootFlags, "genres", "List genre ids usable with list --genre",
		(*browse.Controller).GenreOptions)
}

// newEntriesCmd builds a command printing one of the controller's option
// lists, the same choices the dashboard search form offers.
func newEntriesCmd(rootFlags *rootFlags, use, short string, options func(*browse.Controller) []catalog.Entry) *cobra.Command {
	opts := &entriesOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			entries := options(app.NewController(&browse.Collector{}))
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return renderEntriesTable(cmd, entries)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderEntriesTable(cmd *cobra.Command, entries []catalog.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME")
	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\n", entry.ID, entry.Name)
	}
	return writer.Flush()
}
