package components

import (
	"slices"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// BookList is the ordered set of previews currently on screen.
type BookList struct {
	entries []catalog.Preview
}

// NewBookList constructs a list from previews, keeping their order.
func NewBookList(items []catalog.Preview) BookList {
	return BookList{entries: slices.Clone(items)}
}

// Append returns a list with items added after the existing entries.
func (b BookList) Append(items []catalog.Preview) BookList {
	entries := make([]catalog.Preview, 0, len(b.entries)+len(items))
	entries = append(entries, b.entries...)
	entries = append(entries, items...)
	return BookList{entries: entries}
}

// Entries returns the ordered previews.
func (b BookList) Entries() []catalog.Preview {
	return slices.Clone(b.entries)
}

// Len is the number of entries.
func (b BookList) Len() int {
	return len(b.entries)
}

// At returns the entry at index i.
func (b BookList) At(i int) (catalog.Preview, bool) {
	if i < 0 || i >= len(b.entries) {
		return catalog.Preview{}, false
	}
	return b.entries[i], true
}

// Window returns at most height entries starting at offset, along with the
// offset actually used after clamping.
func (b BookList) Window(offset, height int) ([]catalog.Preview, int) {
	if height <= 0 || len(b.entries) == 0 {
		return nil, 0
	}
	offset = max(0, min(offset, len(b.entries)-1))
	end := min(offset+height, len(b.entries))
	return b.entries[offset:end], offset
}
