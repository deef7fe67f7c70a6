package config

import (
	"errors"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// NormalizationResult captures adjustments and warnings from the normalization pass.
type NormalizationResult struct{ Warnings []string }

var appearanceNormalizer = normalization.NewNormalizer(map[string]site.Appearance{
	"auto":       site.AppearanceAuto,
	"dark":       site.AppearanceDark,
	"light":      site.AppearanceLight,
	"force-dark": site.AppearanceForceDark,
	"disabled":   site.AppearanceDisabled,
	"false":      site.AppearanceDisabled,
}, site.AppearanceAuto)

var searchProviderNormalizer = normalization.NewNormalizer(map[string]site.SearchProvider{
	"local":   site.SearchLocal,
	"algolia": site.SearchAlgolia,
}, site.SearchLocal)

// NormalizeConfig canonicalizes enumerated and free-text fields before
// defaults are applied. It mutates c in place.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, errors.New("config nil")
	}
	res := &NormalizationResult{}
	warn := func(w string) {
		if w != "" {
			res.Warnings = append(res.Warnings, w)
		}
	}

	c.Title = strings.TrimSpace(c.Title)
	c.Lang = strings.TrimSpace(c.Lang)
	c.Base = strings.TrimSpace(c.Base)

	if c.Theme.Appearance != "" {
		r := appearanceNormalizer.NormalizeField("theme.appearance", string(c.Theme.Appearance))
		warn(r.Warning)
		c.Theme.Appearance = r.Value
	}
	if c.Search.Provider != "" {
		r := searchProviderNormalizer.NormalizeField("search.provider", string(c.Search.Provider))
		warn(r.Warning)
		c.Search.Provider = r.Value
	}
	if c.Logging.Level != "" {
		r := logLevelNormalizer.NormalizeField("logging.level", string(c.Logging.Level))
		warn(r.Warning)
		c.Logging.Level = r.Value
	}
	if c.Logging.Format != "" {
		r := logFormatNormalizer.NormalizeField("logging.format", string(c.Logging.Format))
		warn(r.Warning)
		c.Logging.Format = r.Value
	}

	for i := range c.Sidebar {
		c.Sidebar[i].Prefix = strings.TrimSpace(c.Sidebar[i].Prefix)
	}

	// outline: [4, 2] means [2, 4].
	if l := &c.Outline.Level; !l.Disabled && l.Min > l.Max {
		warn("swapped outline.level bounds")
		l.Min, l.Max = l.Max, l.Min
	}
	return res, nil
}
