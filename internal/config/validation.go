package config

import (
	"errors"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// ValidateConfig checks every configuration domain and reports all problems
// at once. Sidebar table rules (catch-all, duplicate prefixes) are enforced by
// Build, where the table is constructed.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

// configurationValidator coordinates validation across configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	return errors.Join(
		cv.validateBase(),
		cv.validateNav(),
		cv.validateHead(),
		cv.validateSidebar(),
		cv.validateSearch(),
		cv.validateOutline(),
		cv.validateEditLink(),
		cv.validateSocialLinks(),
		cv.validateServer(),
	)
}

func (cv *configurationValidator) validateBase() error {
	b := cv.config.Base
	if !strings.HasPrefix(b, "/") || !strings.HasSuffix(b, "/") {
		return fmt.Errorf("base %q must start and end with /", b)
	}
	return nil
}

func (cv *configurationValidator) validateNav() error {
	if err := cv.config.Nav.Validate(); err != nil {
		return fmt.Errorf("nav: %w", err)
	}
	return nil
}

func (cv *configurationValidator) validateHead() error {
	if err := cv.config.Head.Validate(); err != nil {
		return fmt.Errorf("head: %w", err)
	}
	return nil
}

func (cv *configurationValidator) validateSidebar() error {
	var errs []error
	for i, sec := range cv.config.Sidebar {
		for g, grp := range sec.Groups {
			if grp.Text == "" && len(grp.Items) == 0 {
				errs = append(errs, fmt.Errorf("sidebar[%d].groups[%d]: group has neither text nor items", i, g))
			}
			for j, it := range grp.Items {
				if it.Text == "" {
					errs = append(errs, fmt.Errorf("sidebar[%d].groups[%d].items[%d]: item text is empty", i, g, j))
				}
			}
		}
	}
	return errors.Join(errs...)
}

func (cv *configurationValidator) validateSearch() error {
	s := cv.config.Search
	switch s.Provider {
	case site.SearchLocal:
		if s.Algolia != nil {
			return errors.New("search.algolia is set but search.provider is local")
		}
	case site.SearchAlgolia:
		a := s.Algolia
		if a == nil || a.AppID == "" || a.APIKey == "" || a.IndexName == "" {
			return errors.New("search.provider algolia requires app_id, api_key and index_name")
		}
	default:
		return fmt.Errorf("unknown search.provider %q", s.Provider)
	}
	return nil
}

func (cv *configurationValidator) validateOutline() error {
	l := cv.config.Outline.Level
	if l.Disabled {
		return nil
	}
	if l.Min < 1 || l.Max > 6 || l.Min > l.Max {
		return fmt.Errorf("outline.level [%d, %d] must be within [1, 6]", l.Min, l.Max)
	}
	return nil
}

func (cv *configurationValidator) validateEditLink() error {
	e := cv.config.EditLink
	if e == nil {
		return nil
	}
	if !strings.Contains(e.Pattern, ":path") {
		return fmt.Errorf("edit_link.pattern %q must contain :path", e.Pattern)
	}
	return nil
}

func (cv *configurationValidator) validateSocialLinks() error {
	var errs []error
	for i, l := range cv.config.SocialLinks {
		if l.Icon == "" {
			errs = append(errs, fmt.Errorf("social_links[%d]: icon is empty", i))
		}
		if l.Link == "" {
			errs = append(errs, fmt.Errorf("social_links[%d]: link is empty", i))
		}
	}
	return errors.Join(errs...)
}

func (cv *configurationValidator) validateServer() error {
	if !strings.HasPrefix(cv.config.Server.MetricsPath, "/") {
		return fmt.Errorf("server.metrics_path %q must start with /", cv.config.Server.MetricsPath)
	}
	return nil
}
