package config

import (
	"maps"
	"slices"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Build constructs the immutable site value. Sidebar table errors
// (sidebar.ErrMissingCatchAll, sidebar.ErrDuplicatePrefix, ...) come back as
// fatal configuration errors and still match with errors.Is.
func (c *Config) Build() (*site.Site, error) {
	table, err := c.sidebarTable()
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "invalid sidebar").
			WithContext("sections", len(c.Sidebar)).
			Fatal().
			Build()
	}

	s := &site.Site{
		Title:       c.Title,
		Description: c.Description,
		Lang:        c.Lang,
		Base:        c.Base,
		Head:        slices.Clone(c.Head),
		Nav:         slices.Clone(c.Nav),
		Sidebar:     table,
		Search:      c.Search,
		Footer:      c.Footer,
		DocFooter:   c.DocFooter,
		Outline: site.Outline{
			Level:    c.Outline.Level.Range(),
			Label:    c.Outline.Label,
			Disabled: c.Outline.Level.Disabled,
		},
		LastUpdated: c.LastUpdated,
		SocialLinks: slices.Clone(c.SocialLinks),
		Theme:       c.Theme,
	}
	s.Search.Locales = maps.Clone(c.Search.Locales)
	if c.Search.Algolia != nil {
		a := *c.Search.Algolia
		s.Search.Algolia = &a
	}
	if c.EditLink != nil {
		e := *c.EditLink
		s.EditLink = &e
	}
	return s, nil
}

func (c *Config) sidebarTable() (*sidebar.Table, error) {
	entries := make([]sidebar.Entry, 0, len(c.Sidebar))
	for _, sec := range c.Sidebar {
		entries = append(entries, sidebar.Entry{
			Prefix: sec.Prefix,
			Tree:   &sidebar.Tree{Groups: slices.Clone(sec.Groups)},
		})
	}
	return sidebar.NewTable(entries...)
}

// LoadSite is Load followed by Build.
func LoadSite(path string) (*site.Site, *Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	s, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
