package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/tui/components"
)

const emptyListMessage = "No results found. Your filters might be too narrow."

type listOptions struct {
	title      string
	author     string
	genre      string
	pages      int
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books matching a filter",
		Long: `List books in catalog order, filtered by title substring, author id and genre id.
Only the first page is shown unless --page asks for more.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Case-insensitive title substring")
	cmd.Flags().StringVarP(&opts.author, "author", "a", browse.Any, "Author id, or 'any'")
	cmd.Flags().StringVarP(&opts.genre, "genre", "g", browse.Any, "Genre id, or 'any'")
	cmd.Flags().IntVarP(&opts.pages, "page", "p", 1, "Number of pages to reveal")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	if opts.pages < 1 {
		return newCommandError("list", "validating flags", fmt.Errorf("--page must be at least 1, got %d", opts.pages), "Pass --page 1 or higher.")
	}

	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	view := &browse.Collector{}
	ctrl := app.NewController(view)
	ctrl.Start()

	criteria := browse.Criteria{Title: opts.title, Author: opts.author, Genre: opts.genre}
	if !criteria.IsZero() {
		if err := ctrl.SubmitFilter(criteria); err != nil {
			return newCommandError("list", "applying filters", err, "Run 'bookshelf authors' or 'bookshelf genres' to see valid ids.")
		}
	}

	for page := 1; page < opts.pages; page++ {
		if !ctrl.RequestMorePages() {
			break
		}
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, ctrl, view)
	}
	return renderListTable(cmd, ctrl, view)
}

func renderListTable(cmd *cobra.Command, ctrl *browse.Controller, view *browse.Collector) error {
	out := cmd.OutOrStdout()
	if view.Empty {
		fmt.Fprintln(out, emptyListMessage)
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tAUTHOR")
	for _, item := range view.Items {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", item.ID, item.Title, item.AuthorName)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	summary := components.NewSummary(components.SummaryData{
		Shown:     len(view.Items),
		Total:     ctrl.State().Total(),
		Remaining: view.Remaining,
	})
	fmt.Fprintf(out, "\n%s\n", summary.View())
	return nil
}

type listJSONPayload struct {
	Version   string            `json:"version"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
	Count     int               `json:"count"`
	Total     int               `json:"total"`
	Remaining int               `json:"remaining"`
	Criteria  listJSONCriteria  `json:"criteria"`
	Books     []catalog.Preview `json:"books"`
}

type listJSONCriteria struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

func renderListJSON(cmd *cobra.Command, ctrl *browse.Controller, view *browse.Collector) error {
	state := ctrl.State()
	criteria := ctrl.Criteria()

	books := view.Items
	if books == nil {
		books = []catalog.Preview{}
	}

	return writeJSON(cmd.OutOrStdout(), listJSONPayload{
		Version:   "1.0",
		Page:      state.Page(),
		PageSize:  state.PageSize(),
		Count:     len(books),
		Total:     state.Total(),
		Remaining: view.Remaining,
		Criteria:  listJSONCriteria{Title: criteria.Title, Author: criteria.Author, Genre: criteria.Genre},
		Books:     books,
	})
}
