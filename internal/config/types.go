package config

import (
	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/validation"
	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// Config is the bookshelf settings document.
type Config struct {
	PageSize int    `yaml:"page_size" validate:"min=1,max=500"`
	Theme    string `yaml:"theme" validate:"theme"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	// LogFile receives logs while the interactive browser owns the terminal.
	LogFile string `yaml:"log_file,omitempty"`
	// Catalog is a YAML catalog document; empty means the embedded seed.
	Catalog string `yaml:"catalog,omitempty"`
}

// Default returns the settings used when no document is supplied.
func Default() Config {
	return Config{
		PageSize: browse.DefaultPageSize,
		Theme:    string(browse.ThemeDay),
		LogLevel: "info",
	}
}

// ValidateConfig checks every field of cfg.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}
	return validation.Struct("config", cfg)
}

// ThemeValue returns the configured theme as a browse.Theme. It assumes cfg
// has been validated.
func (c Config) ThemeValue() browse.Theme {
	theme, err := browse.ParseTheme(c.Theme)
	if err != nil {
		return browse.ThemeDay
	}
	return theme
}
