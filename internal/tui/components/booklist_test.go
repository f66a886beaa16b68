package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

func previews(ids ...string) []catalog.Preview {
	out := make([]catalog.Preview, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Preview{ID: id, Title: "Title " + id})
	}
	return out
}

func TestNewBookList(t *testing.T) {
	t.Parallel()

	t.Run("creates empty list", func(t *testing.T) {
		t.Parallel()
		bl := NewBookList(nil)
		require.Zero(t, bl.Len())
		require.Empty(t, bl.Entries())
	})

	t.Run("keeps provided order", func(t *testing.T) {
		t.Parallel()
		bl := NewBookList(previews("c", "a", "b"))
		entries := bl.Entries()
		require.Len(t, entries, 3)
		require.Equal(t, "c", entries[0].ID)
		require.Equal(t, "a", entries[1].ID)
		require.Equal(t, "b", entries[2].ID)
	})

	t.Run("does not alias the input", func(t *testing.T) {
		t.Parallel()
		items := previews("a")
		bl := NewBookList(items)
		items[0].ID = "mutated"
		entry, ok := bl.At(0)
		require.True(t, ok)
		require.Equal(t, "a", entry.ID)
	})
}

func TestBookListAppend(t *testing.T) {
	t.Parallel()

	base := NewBookList(previews("a", "b"))
	grown := base.Append(previews("c"))

	require.Equal(t, 2, base.Len())
	require.Equal(t, 3, grown.Len())
	last, ok := grown.At(2)
	require.True(t, ok)
	require.Equal(t, "c", last.ID)
}

func TestBookListAt(t *testing.T) {
	t.Parallel()

	bl := NewBookList(previews("a"))
	_, ok := bl.At(-1)
	require.False(t, ok)
	_, ok = bl.At(1)
	require.False(t, ok)
}

func TestBookListWindow(t *testing.T) {
	t.Parallel()

	bl := NewBookList(previews("a", "b", "c", "d", "e"))

	cases := []struct {
		name       string
		offset     int
		height     int
		wantIDs    []string
		wantOffset int
	}{
		{name: "from the top", offset: 0, height: 2, wantIDs: []string{"a", "b"}, wantOffset: 0},
		{name: "middle", offset: 2, height: 2, wantIDs: []string{"c", "d"}, wantOffset: 2},
		{name: "truncated at the end", offset: 4, height: 3, wantIDs: []string{"e"}, wantOffset: 4},
		{name: "offset past the end is clamped", offset: 9, height: 2, wantIDs: []string{"e"}, wantOffset: 4},
		{name: "negative offset is clamped", offset: -3, height: 1, wantIDs: []string{"a"}, wantOffset: 0},
		{name: "zero height", offset: 0, height: 0, wantIDs: nil, wantOffset: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			window, offset := bl.Window(tc.offset, tc.height)
			var got []string
			for _, p := range window {
				got = append(got, p.ID)
			}
			require.Equal(t, tc.wantIDs, got)
			require.Equal(t, tc.wantOffset, offset)
		})
	}
}
