package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

func sampleBooks() []Book {
	return []Book{
		{ID: "dune", Title: "Dune", Author: "herbert", Genres: []string{"sf"}, Image: "dune.jpg", Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "foundation", Title: "Foundation", Author: "asimov", Genres: []string{"sf", "classic"}, Image: "foundation.jpg", Published: time.Date(1951, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func sampleAuthors() map[string]string {
	return map[string]string{"herbert": "Frank Herbert", "asimov": "Isaac Asimov"}
}

func sampleGenres() map[string]string {
	return map[string]string{"sf": "Science Fiction", "classic": "Classic"}
}

func TestNewPreservesOrderAndIndexes(t *testing.T) {
	t.Parallel()

	c, err := New(sampleBooks(), sampleAuthors(), sampleGenres())
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	books := c.Books()
	require.Equal(t, "dune", books[0].ID)
	require.Equal(t, "foundation", books[1].ID)

	book, ok := c.FindByID("foundation")
	require.True(t, ok)
	require.Equal(t, "Foundation", book.Title)

	_, ok = c.FindByID("missing")
	require.False(t, ok)
}

func TestBooksReturnsCopy(t *testing.T) {
	t.Parallel()

	c, err := New(sampleBooks(), sampleAuthors(), sampleGenres())
	require.NoError(t, err)

	books := c.Books()
	books[0].Title = "changed"

	book, _ := c.FindByID("dune")
	require.Equal(t, "Dune", book.Title)
}

func TestNewRejectsBadReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mut   func([]Book) []Book
		field string
	}{
		{
			name:  "duplicate id",
			mut:   func(b []Book) []Book { return append(b, b[0]) },
			field: "books[2].id",
		},
		{
			name: "unknown author",
			mut: func(b []Book) []Book {
				b[1].Author = "nobody"
				return b
			},
			field: "books[1].author",
		},
		{
			name: "unknown genre",
			mut: func(b []Book) []Book {
				b[0].Genres = []string{"poetry"}
				return b
			},
			field: "books[0].genres",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.mut(sampleBooks()), sampleAuthors(), sampleGenres())
			var valErr *apperrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestLookupsAndProjections(t *testing.T) {
	t.Parallel()

	c, err := New(sampleBooks(), sampleAuthors(), sampleGenres())
	require.NoError(t, err)

	assert.Equal(t, "Frank Herbert", c.AuthorName("herbert"))
	assert.Equal(t, "ghost", c.AuthorName("ghost"))
	assert.Equal(t, "Classic", c.GenreName("classic"))
	assert.True(t, c.HasAuthor("asimov"))
	assert.False(t, c.HasGenre("poetry"))

	assert.Equal(t, []Entry{{ID: "herbert", Name: "Frank Herbert"}, {ID: "asimov", Name: "Isaac Asimov"}}, c.Authors())
	assert.Equal(t, []Entry{{ID: "classic", Name: "Classic"}, {ID: "sf", Name: "Science Fiction"}}, c.Genres())

	book, _ := c.FindByID("foundation")
	assert.Equal(t, Preview{ID: "foundation", Title: "Foundation", AuthorName: "Isaac Asimov", Image: "foundation.jpg"}, c.Preview(book))
	assert.Len(t, c.Previews(c.Books()), 2)

	detail := c.Detail(book)
	assert.Equal(t, []string{"Science Fiction", "Classic"}, detail.GenreNames)
	assert.Equal(t, "Isaac Asimov (1951)", detail.Subtitle())
	assert.True(t, book.HasGenre("classic"))
	assert.False(t, book.HasGenre("horror"))
}

func TestSubtitleWithoutDate(t *testing.T) {
	t.Parallel()

	d := Detail{Book: Book{ID: "x"}, AuthorName: "Anon"}
	require.Equal(t, "Anon", d.Subtitle())
}

func TestSeedLoads(t *testing.T) {
	t.Parallel()

	c, err := Seed()
	require.NoError(t, err)
	require.Equal(t, 40, c.Len())

	dune, ok := c.FindByID("dune")
	require.True(t, ok)
	require.Equal(t, "Frank Herbert (1965)", c.Detail(dune).Subtitle())
	require.Equal(t, "Dune", c.Books()[0].Title)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `authors:
  herbert: Frank Herbert
genres:
  sf: Science Fiction
books:
  - id: dune
    title: Dune
    author: herbert
    genres: [sf]
    image: dune.jpg
    description: Spice.
    published: 1965-08-01
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	book, ok := c.FindByID("dune")
	require.True(t, ok)
	require.Equal(t, 1965, book.Published.Year())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseReportsSyntaxLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad.yaml", []byte("authors:\n  a: A\ngenres: [\n"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "bad.yaml", parseErr.Path)
}

func TestParseValidatesDocument(t *testing.T) {
	t.Parallel()

	doc := `authors:
  herbert: Frank Herbert
genres:
  sf: Science Fiction
books:
  - id: dune
    author: herbert
    genres: [sf]
    image: dune.jpg
    published: 1965-08-01
`
	_, err := Parse("doc.yaml", []byte(doc))
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "catalog.books[0].title", valErr.Field)
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Parse("empty.yaml", []byte("{}"))
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}
