package catalog

import (
	"fmt"
	"slices"
	"time"
)

// Book is a single catalog entry. Books are immutable once loaded.
type Book struct {
	ID          string    `yaml:"id" validate:"required,catalog_id"`
	Title       string    `yaml:"title" validate:"required"`
	Author      string    `yaml:"author" validate:"required,catalog_id"`
	Genres      []string  `yaml:"genres" validate:"required,min=1,dive,catalog_id"`
	Image       string    `yaml:"image" validate:"required"`
	Description string    `yaml:"description"`
	Published   time.Time `yaml:"published" validate:"required"`
}

// HasGenre reports whether the book is tagged with the genre id.
func (b Book) HasGenre(genre string) bool {
	return slices.Contains(b.Genres, genre)
}

// Preview is the minimal projection shown in list views.
type Preview struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author"`
	Image      string `json:"image"`
}

// Detail is everything the detail overlay needs about one book.
type Detail struct {
	Book       Book
	AuthorName string
	GenreNames []string
}

// Subtitle renders "<author> (<year>)" the way the detail overlay shows it.
func (d Detail) Subtitle() string {
	if d.Book.Published.IsZero() {
		return d.AuthorName
	}
	return fmt.Sprintf("%s (%d)", d.AuthorName, d.Book.Published.Year())
}

// Entry is one id/name pair from the author or genre lookup tables.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
