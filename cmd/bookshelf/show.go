package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show detailed information about a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output book details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, id string, opts *showOptions) error {
	if strings.TrimSpace(id) == "" {
		return newCommandError("show", "validating book ID", errors.New("book ID cannot be empty"), "Provide the book ID you wish to inspect.")
	}

	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	view := &browse.Collector{}
	ctrl := app.NewController(view)
	if !ctrl.SelectItem(id) || view.Detail == nil {
		return newCommandError("show", fmt.Sprintf("looking up book %q", id), apperrors.NewNotFoundError("book", id), "Run 'bookshelf list' to view book ids.")
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, *view.Detail)
	}
	return renderShowText(cmd, *view.Detail)
}

func renderShowText(cmd *cobra.Command, detail catalog.Detail) error {
	out := cmd.OutOrStdout()
	book := detail.Book

	fmt.Fprintln(out, book.Title)
	fmt.Fprintln(out, ruler(len([]rune(book.Title)), supportsUnicode(out)))
	fmt.Fprintf(out, "By:     %s\n", detail.Subtitle())
	fmt.Fprintf(out, "ID:     %s\n", book.ID)
	fmt.Fprintf(out, "Genres: %s\n", valueOrFallback(strings.Join(detail.GenreNames, ", "), "(none)"))
	fmt.Fprintf(out, "Cover:  %s\n", book.Image)
	fmt.Fprintf(out, "\nDescription:\n  %s\n", valueOrFallback(book.Description, "(none)"))
	return nil
}

type showJSONPayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	AuthorID    string   `json:"author_id"`
	Author      string   `json:"author"`
	Subtitle    string   `json:"subtitle"`
	GenreIDs    []string `json:"genre_ids"`
	Genres      []string `json:"genres"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Published   string   `json:"published,omitempty"`
}

func renderShowJSON(cmd *cobra.Command, detail catalog.Detail) error {
	book := detail.Book
	payload := showJSONPayload{
		ID:          book.ID,
		Title:       book.Title,
		AuthorID:    book.Author,
		Author:      detail.AuthorName,
		Subtitle:    detail.Subtitle(),
		GenreIDs:    book.Genres,
		Genres:      detail.GenreNames,
		Image:       book.Image,
		Description: book.Description,
	}
	if !book.Published.IsZero() {
		payload.Published = book.Published.Format("2006-01-02")
	}

	return writeJSON(cmd.OutOrStdout(), payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
