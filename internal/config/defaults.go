package config

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultApplier applies defaults for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// CompositeDefaultApplier applies defaults across all configuration domains.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates a composite applier with every domain applier.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			&SiteDefaultApplier{},
			&ThemeDefaultApplier{},
			&SearchDefaultApplier{},
			&ServerDefaultApplier{},
			&LoggingDefaultApplier{},
		},
	}
}

func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, a := range c.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("applying defaults for %s: %w", a.Domain(), err)
		}
	}
	return nil
}

// SiteDefaultApplier handles the site metadata.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "site" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Title == "" {
		cfg.Title = "Documentation"
	}
	if cfg.Lang == "" {
		cfg.Lang = "en-US"
	}
	if cfg.Base == "" {
		cfg.Base = "/"
	}
	return nil
}

// ThemeDefaultApplier fills in the English theme labels.
type ThemeDefaultApplier struct{}

func (t *ThemeDefaultApplier) Domain() string { return "theme" }

func (t *ThemeDefaultApplier) ApplyDefaults(cfg *Config) error {
	th := &cfg.Theme
	setDefault(&th.DarkModeSwitchLabel, "Appearance")
	setDefault(&th.LightModeSwitchTitle, "Switch to light theme")
	setDefault(&th.DarkModeSwitchTitle, "Switch to dark theme")
	setDefault(&th.SidebarMenuLabel, "Menu")
	setDefault(&th.ReturnToTopLabel, "Return to top")
	setDefault(&th.LangMenuLabel, "Change language")
	if th.Appearance == "" {
		th.Appearance = site.AppearanceAuto
	}

	setDefault(&cfg.DocFooter.Prev, "Previous page")
	setDefault(&cfg.DocFooter.Next, "Next page")
	setDefault(&cfg.LastUpdated.Text, "Last updated")
	setDefault(&cfg.Outline.Label, "On this page")
	if cfg.Outline.Level == (frontmatter.Levels{}) {
		cfg.Outline.Level = frontmatter.Levels{Min: 2, Max: 2}
	}
	if cfg.EditLink != nil {
		setDefault(&cfg.EditLink.Text, "Edit this page")
	}
	return nil
}

// SearchDefaultApplier defaults to the built-in local search.
type SearchDefaultApplier struct{}

func (s *SearchDefaultApplier) Domain() string { return "search" }

func (s *SearchDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Search.Provider == "" {
		cfg.Search.Provider = site.SearchLocal
	}
	return nil
}

// ServerDefaultApplier handles `docsite serve` settings.
type ServerDefaultApplier struct{}

func (s *ServerDefaultApplier) Domain() string { return "server" }

func (s *ServerDefaultApplier) ApplyDefaults(cfg *Config) error {
	setDefault(&cfg.Server.Addr, ":8080")
	setDefault(&cfg.Server.MetricsPath, "/metrics")
	return nil
}

// LoggingDefaultApplier handles logging settings.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
