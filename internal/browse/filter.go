package browse

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// Filter returns the books of cat that satisfy c, in catalog order.
func Filter(cat *catalog.Catalog, c Criteria) []catalog.Book {
	return FilterBooks(cat.Books(), c)
}

// FilterBooks applies c to books and keeps their order. It never fails; no
// match yields an empty, non-nil slice.
func FilterBooks(books []catalog.Book, c Criteria) []catalog.Book {
	m := newMatcher(c)
	matches := make([]catalog.Book, 0, len(books))
	for _, book := range books {
		if m.match(book) {
			matches = append(matches, book)
		}
	}
	return matches
}

type matcher struct {
	criteria Criteria
	fold     cases.Caser
	needle   string
	anyTitle bool
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{criteria: c, fold: cases.Fold(), anyTitle: isBlank(c.Title)}
	if !m.anyTitle {
		// Only the emptiness check trims; the needle itself is matched as typed.
		m.needle = m.fold.String(c.Title)
	}
	return m
}

func (m *matcher) match(book catalog.Book) bool {
	return m.matchGenre(book) && m.matchTitle(book) && m.matchAuthor(book)
}

func (m *matcher) matchGenre(book catalog.Book) bool {
	return m.criteria.Genre == Any || book.HasGenre(m.criteria.Genre)
}

func (m *matcher) matchTitle(book catalog.Book) bool {
	if m.anyTitle {
		return true
	}
	return strings.Contains(m.fold.String(book.Title), m.needle)
}

func (m *matcher) matchAuthor(book catalog.Book) bool {
	return m.criteria.Author == Any || m.criteria.Author == book.Author
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
