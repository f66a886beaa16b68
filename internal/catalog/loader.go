package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bookshelf/internal/validation"
	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

//go:embed data/catalog.yaml
var seedDocument []byte

// SeedSource names the embedded catalog in errors and logs.
const SeedSource = "embedded:catalog.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is the on-disk catalog layout.
type Document struct {
	Authors map[string]string `yaml:"authors" validate:"required,min=1,dive,keys,catalog_id,endkeys,required"`
	Genres  map[string]string `yaml:"genres" validate:"required,min=1,dive,keys,catalog_id,endkeys,required"`
	Books   []Book            `yaml:"books" validate:"required,min=1,dive"`
}

// Seed returns the catalog compiled into the binary.
func Seed() (*Catalog, error) {
	return Parse(SeedSource, seedDocument)
}

// Load reads and validates a catalog document from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a catalog document. source is only used for error messages.
func Parse(source string, data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}

	if err := validation.Struct("catalog", doc); err != nil {
		return nil, err
	}

	return New(doc.Books, doc.Authors, doc.Genres)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
