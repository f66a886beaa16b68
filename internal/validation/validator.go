package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	themeNames        = map[string]struct{}{"day": {}, "night": {}}
)

// instance configures and returns the validator shared by the config, catalog
// and browse packages.
func instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("catalog_id", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := themeNames[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Get returns the shared validator for callers that need direct access.
func Get() *validator.Validate {
	return instance()
}

// Struct validates value and converts the first failure into a
// ValidationError whose field path is rooted at root.
func Struct(root string, value any) error {
	if err := instance().Struct(value); err != nil {
		return convert(root, err)
	}
	return nil
}

// IsIdentifier reports whether id is a well-formed catalog identifier.
func IsIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}

// IsTheme reports whether name is a supported theme name.
func IsTheme(name string) bool {
	_, ok := themeNames[name]
	return ok
}

func convert(root string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(root, ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError(root, err.Error(), err)
}

// fieldName drops the Go type name validator puts first and lowercases the
// rest, so "Criteria.Author" becomes "criteria.author".
func fieldName(root string, fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts)+1)
	if root != "" {
		lowered = append(lowered, root)
	}
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
