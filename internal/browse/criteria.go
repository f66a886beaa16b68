package browse

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/validation"
	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// Any is the author/genre sentinel that disables that predicate.
const Any = "any"

// ErrInvalidCriteria marks a filter submission the controller refused.
var ErrInvalidCriteria = errors.New("invalid criteria")

// Criteria is a filter over title, author and genre.
type Criteria struct {
	Title  string `validate:"max=200"`
	Author string `validate:"required"`
	Genre  string `validate:"required"`
}

// AnyCriteria matches every book.
func AnyCriteria() Criteria {
	return Criteria{Author: Any, Genre: Any}
}

// IsZero reports whether the criteria select the whole catalog.
func (c Criteria) IsZero() bool {
	return c.Author == Any && c.Genre == Any && isBlank(c.Title)
}

// Validate checks the shape of c and that its author and genre ids exist in
// cat. Every failure wraps ErrInvalidCriteria.
func (c Criteria) Validate(cat *catalog.Catalog) error {
	if err := validation.Struct("criteria", c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}
	if c.Author != Any && !cat.HasAuthor(c.Author) {
		return apperrors.NewValidationError("criteria.author", fmt.Sprintf("unknown author %q", c.Author), ErrInvalidCriteria)
	}
	if c.Genre != Any && !cat.HasGenre(c.Genre) {
		return apperrors.NewValidationError("criteria.genre", fmt.Sprintf("unknown genre %q", c.Genre), ErrInvalidCriteria)
	}
	return nil
}
