package browse

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/bookshelf/internal/validation"
	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// Theme is the colour scheme name.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// ParseTheme accepts "day" or "night", ignoring case and surrounding space.
func ParseTheme(name string) (Theme, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if !validation.IsTheme(normalized) {
		return "", apperrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q, expected day or night", name), ErrInvalidCriteria)
	}
	return Theme(normalized), nil
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeNight {
		return ThemeDay
	}
	return ThemeNight
}

// Dark reports whether the theme uses a dark background.
func (t Theme) Dark() bool {
	return t == ThemeNight
}
