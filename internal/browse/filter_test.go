package browse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterEmptyCriteriaReturnsWholeCatalog(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	got := Filter(cat, AnyCriteria())
	require.Equal(t, cat.Books(), got)
}

func TestFilterPredicates(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"title substring", Criteria{Title: "dune", Author: Any, Genre: Any}, []string{"dune", "dune-messiah"}},
		{"title is case-insensitive", Criteria{Title: "FOUND", Author: Any, Genre: Any}, []string{"foundation"}},
		{"title uses unicode folding", Criteria{Title: "straße", Author: Any, Genre: Any}, []string{"strasse"}},
		{"whitespace title matches all", Criteria{Title: "   ", Author: Any, Genre: Any}, []string{"dune", "foundation", "dune-messiah", "i-robot", "strasse"}},
		{"title needle is not trimmed", Criteria{Title: " dune", Author: Any, Genre: Any}, []string{}},
		{"author", Criteria{Author: "asimov", Genre: Any}, []string{"foundation", "i-robot", "strasse"}},
		{"genre membership", Criteria{Author: Any, Genre: "g2"}, []string{"foundation", "dune-messiah", "i-robot"}},
		{"all three combine", Criteria{Title: "dune", Author: "herbert", Genre: "g2"}, []string{"dune-messiah"}},
		{"no match", Criteria{Title: "zzz", Author: Any, Genre: Any}, []string{}},
		{"author and genre disjoint", Criteria{Author: "herbert", Genre: "g3"}, []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(cat, tt.criteria)
			require.NotNil(t, got)
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterIsOrderPreservingSubsequence(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	all := ids(cat.Books())

	titles := []string{"", "d", "o", "dune", "robot", "x"}
	authors := []string{Any, "herbert", "asimov"}
	genres := []string{Any, "g1", "g2", "g3"}

	for _, title := range titles {
		for _, author := range authors {
			for _, genre := range genres {
				got := ids(Filter(cat, Criteria{Title: title, Author: author, Genre: genre}))
				require.Truef(t, isSubsequence(got, all), "criteria %q/%s/%s produced %v", title, author, genre, got)
			}
		}
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	before := cat.Books()
	_ = Filter(cat, Criteria{Title: "dune", Author: Any, Genre: Any})
	require.Equal(t, before, cat.Books())
}

func TestCriteriaValidate(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)

	tests := []struct {
		name     string
		criteria Criteria
		valid    bool
	}{
		{"any", AnyCriteria(), true},
		{"known ids", Criteria{Title: "dune", Author: "herbert", Genre: "g1"}, true},
		{"empty author", Criteria{Genre: Any}, false},
		{"empty genre", Criteria{Author: Any}, false},
		{"unknown author", Criteria{Author: "tolkien", Genre: Any}, false},
		{"unknown genre", Criteria{Author: Any, Genre: "poetry"}, false},
		{"title too long", Criteria{Title: string(make([]byte, 201)), Author: Any, Genre: Any}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.criteria.Validate(cat)
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidCriteria)
		})
	}
}

func TestCriteriaIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, AnyCriteria().IsZero())
	require.True(t, Criteria{Title: "  ", Author: Any, Genre: Any}.IsZero())
	require.False(t, Criteria{Title: "x", Author: Any, Genre: Any}.IsZero())
	require.False(t, Criteria{Author: "herbert", Genre: Any}.IsZero())
}
