package browse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	published := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	books := []catalog.Book{
		{ID: "dune", Title: "Dune", Author: "herbert", Genres: []string{"g1"}, Image: "dune.jpg", Published: published},
		{ID: "foundation", Title: "Foundation", Author: "asimov", Genres: []string{"g2"}, Image: "foundation.jpg", Published: published},
		{ID: "dune-messiah", Title: "Dune Messiah", Author: "herbert", Genres: []string{"g1", "g2"}, Image: "messiah.jpg", Published: published},
		{ID: "i-robot", Title: "I, Robot", Author: "asimov", Genres: []string{"g2"}, Image: "robot.jpg", Published: published},
		{ID: "strasse", Title: "Die STRASSE", Author: "asimov", Genres: []string{"g3"}, Image: "strasse.jpg", Published: published},
	}
	authors := map[string]string{"herbert": "Frank Herbert", "asimov": "Isaac Asimov"}
	genres := map[string]string{"g1": "Desert", "g2": "Empire", "g3": "Other"}

	cat, err := catalog.New(books, authors, genres)
	require.NoError(t, err)
	return cat
}

// newPairCatalog is the two-book catalog used by the worked pagination example.
func newPairCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	books := []catalog.Book{
		{ID: "a", Title: "Dune", Author: "herbert", Genres: []string{"G1"}, Image: "a.jpg"},
		{ID: "b", Title: "Foundation", Author: "asimov", Genres: []string{"G2"}, Image: "b.jpg"},
	}
	cat, err := catalog.New(books, map[string]string{"herbert": "Frank Herbert", "asimov": "Isaac Asimov"}, map[string]string{"G1": "One", "G2": "Two"})
	require.NoError(t, err)
	return cat
}

func ids(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func previewIDs(items []catalog.Preview) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

// isSubsequence reports whether sub appears in full in the same order.
func isSubsequence(sub, full []string) bool {
	j := 0
	for _, id := range full {
		if j < len(sub) && sub[j] == id {
			j++
		}
	}
	return j == len(sub)
}
