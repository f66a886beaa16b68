package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	catalogPath string
	verbose     bool
	theme       string
	pageSize    int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Bookshelf browses a book catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (default $XDG_CONFIG_HOME/bookshelf/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Catalog YAML document (default: built-in catalog)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme: day or night")
	cmd.PersistentFlags().IntVar(&flags.pageSize, "page-size", 0, "Books revealed per page")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newAuthorsCmd(flags))
	cmd.AddCommand(newGenresCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
