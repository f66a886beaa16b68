package catalog

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// Catalog is the fixed, read-only set of books plus the author and genre
// display-name tables. Book order is the order books were supplied in.
type Catalog struct {
	books   []Book
	index   map[string]int
	authors map[string]string
	genres  map[string]string
}

// New builds a Catalog, rejecting duplicate book ids and references to
// authors or genres missing from the lookup tables.
func New(books []Book, authors, genres map[string]string) (*Catalog, error) {
	c := &Catalog{
		books:   make([]Book, 0, len(books)),
		index:   make(map[string]int, len(books)),
		authors: maps.Clone(authors),
		genres:  maps.Clone(genres),
	}
	if c.authors == nil {
		c.authors = map[string]string{}
	}
	if c.genres == nil {
		c.genres = map[string]string{}
	}

	for i, book := range books {
		if _, exists := c.index[book.ID]; exists {
			return nil, apperrors.NewValidationError(fieldForBook(i, "id"), fmt.Sprintf("duplicate book id %q", book.ID), nil)
		}
		if _, ok := c.authors[book.Author]; !ok {
			return nil, apperrors.NewValidationError(fieldForBook(i, "author"), fmt.Sprintf("references unknown author %q", book.Author), nil)
		}
		for _, genre := range book.Genres {
			if _, ok := c.genres[genre]; !ok {
				return nil, apperrors.NewValidationError(fieldForBook(i, "genres"), fmt.Sprintf("references unknown genre %q", genre), nil)
			}
		}

		book.Genres = slices.Clone(book.Genres)
		c.index[book.ID] = len(c.books)
		c.books = append(c.books, book)
	}

	return c, nil
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.books)
}

// Books returns the books in catalog order. The slice is a copy.
func (c *Catalog) Books() []Book {
	if c == nil {
		return nil
	}
	return slices.Clone(c.books)
}

// FindByID looks a book up by id. A miss is a normal outcome.
func (c *Catalog) FindByID(id string) (Book, bool) {
	if c == nil {
		return Book{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// AuthorName returns the display name for an author id, or the id itself
// when the table has no entry.
func (c *Catalog) AuthorName(id string) string {
	if name, ok := c.authors[id]; ok {
		return name
	}
	return id
}

// GenreName returns the display name for a genre id, or the id itself.
func (c *Catalog) GenreName(id string) string {
	if name, ok := c.genres[id]; ok {
		return name
	}
	return id
}

// HasAuthor reports whether id is in the author table.
func (c *Catalog) HasAuthor(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.authors[id]
	return ok
}

// HasGenre reports whether id is in the genre table.
func (c *Catalog) HasGenre(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.genres[id]
	return ok
}

// Authors returns the author table sorted by display name.
func (c *Catalog) Authors() []Entry {
	return sortedEntries(c.authors)
}

// Genres returns the genre table sorted by display name.
func (c *Catalog) Genres() []Entry {
	return sortedEntries(c.genres)
}

// Preview projects a book to its list-view record.
func (c *Catalog) Preview(b Book) Preview {
	return Preview{
		ID:         b.ID,
		Title:      b.Title,
		AuthorName: c.AuthorName(b.Author),
		Image:      b.Image,
	}
}

// Previews projects books in order.
func (c *Catalog) Previews(books []Book) []Preview {
	out := make([]Preview, len(books))
	for i, b := range books {
		out[i] = c.Preview(b)
	}
	return out
}

// Detail resolves the names the detail view shows for b.
func (c *Catalog) Detail(b Book) Detail {
	names := make([]string, len(b.Genres))
	for i, g := range b.Genres {
		names[i] = c.GenreName(g)
	}
	return Detail{Book: b, AuthorName: c.AuthorName(b.Author), GenreNames: names}
}

func sortedEntries(table map[string]string) []Entry {
	entries := make([]Entry, 0, len(table))
	for id, name := range table {
		entries = append(entries, Entry{ID: id, Name: name})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if n := cmp.Compare(a.Name, b.Name); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return entries
}

func fieldForBook(index int, field string) string {
	return fmt.Sprintf("books[%d].%s", index, field)
}
