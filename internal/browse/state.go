package browse

import (
	"slices"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// DefaultPageSize is the number of books revealed per page.
const DefaultPageSize = 36

// State is the browsing state: how many pages are revealed and the full
// match set they are drawn from. State values are never mutated in place;
// transitions return a new State.
type State struct {
	page     int
	pageSize int
	matches  []catalog.Book
}

// NewState starts at page 1 over matches. Page sizes below 1 are raised to 1.
func NewState(pageSize int, matches []catalog.Book) State {
	if pageSize < 1 {
		pageSize = 1
	}
	return State{page: 1, pageSize: pageSize, matches: matches}
}

// Page is the 1-based number of revealed pages.
func (s State) Page() int {
	return s.page
}

// PageSize is the fixed page length.
func (s State) PageSize() int {
	return s.pageSize
}

// Matches returns a copy of the current match set.
func (s State) Matches() []catalog.Book {
	return slices.Clone(s.matches)
}

// Total is the number of matches.
func (s State) Total() int {
	return len(s.matches)
}

// Remaining is the number of matches not yet revealed, never negative.
func (s State) Remaining() int {
	return max(len(s.matches)-s.page*s.pageSize, 0)
}

// CanAdvance reports whether another page can be revealed.
func (s State) CanAdvance() bool {
	return s.Remaining() > 0
}

// VisibleSlice returns every match revealed so far.
func (s State) VisibleSlice() []catalog.Book {
	return s.window(0, s.page*s.pageSize)
}

// CurrentPage returns only the most recently revealed page.
func (s State) CurrentPage() []catalog.Book {
	return s.window((s.page-1)*s.pageSize, s.page*s.pageSize)
}

// NextSlice returns what the next page would reveal.
func (s State) NextSlice() []catalog.Book {
	return s.window(s.page*s.pageSize, (s.page+1)*s.pageSize)
}

// WithMatches replaces the match set and resets to the first page.
func (s State) WithMatches(matches []catalog.Book) State {
	return NewState(s.pageSize, matches)
}

// Advance reveals one more page. When nothing remains it returns s
// unchanged and false.
func (s State) Advance() (State, bool) {
	if !s.CanAdvance() {
		return s, false
	}
	s.page++
	return s, true
}

func (s State) window(from, to int) []catalog.Book {
	from = min(from, len(s.matches))
	to = min(to, len(s.matches))
	return slices.Clone(s.matches[from:to])
}
