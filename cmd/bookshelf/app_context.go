package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/config"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *logger.Logger
	Session string
}

// newAppContext resolves settings, logging and the catalog for one command.
// Interactive commands log to the configured file only, since the terminal
// belongs to the dashboard.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	name := cmd.Name()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, newCommandError(name, "loading settings", err, "Fix the settings file or pass --config with a valid document.")
	}

	log, err := newLogger(cmd, cfg, flags.verbose, interactive)
	if err != nil {
		return nil, newCommandError(name, "creating logger", err, "Check log_level and log_file in your settings.")
	}

	session := uuid.NewString()
	log = log.WithFields(map[string]any{"session": session, "command": name})

	cat, source, err := loadCatalog(flags, cfg)
	if err != nil {
		log.Error(err, "catalog load failed")
		_ = log.Close()
		return nil, newCommandError(name, "loading catalog", err, "Check the catalog document for syntax errors and unknown author or genre ids.")
	}
	log.WithFields(map[string]any{"source": source, "books": cat.Len()}).Debug("catalog loaded")

	return &AppContext{Config: cfg, Catalog: cat, Logger: log, Session: session}, nil
}

// NewController builds a browse controller over the context's catalog that
// renders into view.
func (a *AppContext) NewController(view browse.ViewPort) *browse.Controller {
	return browse.NewController(a.Catalog, a.Config.PageSize, view,
		browse.WithLogger(a.Logger),
		browse.WithTheme(a.Config.ThemeValue()),
	)
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	return a.Logger.Close()
}

func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if flags.configPath != "" {
		cfg, err = config.ParseConfig(flags.configPath)
	} else {
		path, pathErr := config.DefaultPath()
		if pathErr != nil {
			def := config.Default()
			cfg = &def
		} else {
			cfg, err = config.LoadOptional(path)
		}
	}
	if err != nil {
		return nil, err
	}

	changed := false
	if cmd.Flags().Changed("theme") {
		cfg.Theme = flags.theme
		changed = true
	}
	if cmd.Flags().Changed("page-size") {
		cfg.PageSize = flags.pageSize
		changed = true
	}
	if changed {
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config, verbose, interactive bool) (*logger.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	if interactive {
		if cfg.LogFile == "" {
			return logger.Nop(), nil
		}
		return logger.New(logger.Options{Level: level, HumanReadable: true, FilePath: cfg.LogFile})
	}

	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		FilePath:      cfg.LogFile,
	})
}

func loadCatalog(flags *rootFlags, cfg *config.Config) (*catalog.Catalog, string, error) {
	path := flags.catalogPath
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		cat, err := catalog.Seed()
		return cat, catalog.SeedSource, err
	}
	cat, err := catalog.Load(path)
	return cat, path, err
}
