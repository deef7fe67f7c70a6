// Package config reads the docsite site file and turns it into a site.Site.
package config

import (
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/head"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Version is the only site file version this build understands.
const Version = "1"

// DefaultFile is the site file looked up when none is given.
const DefaultFile = "docsite.yaml"

// Config is the on-disk form of the site configuration. YAML files use the
// snake_case keys; JSON and JSONC files use camelCase keys. An export document
// is not a site file: it has no version and adds engine-only fields.
type Config struct {
	Version     string `yaml:"version" json:"version"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Lang        string `yaml:"lang,omitempty" json:"lang,omitempty"`
	Base        string `yaml:"base,omitempty" json:"base,omitempty"`

	Head    head.Tags        `yaml:"head,omitempty" json:"head,omitempty"`
	Nav     nav.Bar          `yaml:"nav,omitempty" json:"nav,omitempty"`
	Sidebar []SidebarSection `yaml:"sidebar" json:"sidebar"`

	Search      site.Search       `yaml:"search,omitempty" json:"search,omitempty"`
	Footer      site.Footer       `yaml:"footer,omitempty" json:"footer,omitempty"`
	DocFooter   site.DocFooter    `yaml:"doc_footer,omitempty" json:"docFooter,omitempty"`
	Outline     OutlineConfig     `yaml:"outline,omitempty" json:"outline,omitempty"`
	EditLink    *site.EditLink    `yaml:"edit_link,omitempty" json:"editLink,omitempty"`
	LastUpdated site.LastUpdated  `yaml:"last_updated,omitempty" json:"lastUpdated,omitempty"`
	SocialLinks []site.SocialLink `yaml:"social_links,omitempty" json:"socialLinks,omitempty"`
	Theme       site.Theme        `yaml:"theme,omitempty" json:"theme,omitempty"`

	Server  ServerConfig  `yaml:"server,omitempty" json:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// SidebarSection is one (prefix, tree) pair. Sections are kept in file order.
type SidebarSection struct {
	Prefix string          `yaml:"prefix" json:"prefix"`
	Groups []sidebar.Group `yaml:"groups" json:"groups"`
}

// OutlineConfig is the site-wide outline setting. Level accepts the same
// spellings as page frontmatter: 2, [2, 3], deep or false.
type OutlineConfig struct {
	Level frontmatter.Levels `yaml:"level,omitempty" json:"level,omitempty"`
	Label string             `yaml:"label,omitempty" json:"label,omitempty"`
}

// ServerConfig configures `docsite serve`.
type ServerConfig struct {
	Addr        string `yaml:"addr,omitempty" json:"addr,omitempty"`
	MetricsPath string `yaml:"metrics_path,omitempty" json:"metricsPath,omitempty"`
	// Pretty indents JSON responses.
	Pretty bool `yaml:"pretty,omitempty" json:"pretty,omitempty"`
}

// LoggingConfig sets the default log level and format; DOCSITE_LOG_LEVEL and
// DOCSITE_LOG_FORMAT take precedence.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty" json:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty" json:"format,omitempty"`
}
