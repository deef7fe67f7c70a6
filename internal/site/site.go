// Package site defines the configuration surface handed to the site-generation
// engine. A *Site is built once (see config.Build) and never modified; share it
// freely between goroutines.
package site

import (
	"git.home.luguber.info/inful/docsite/internal/head"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

// Site is the complete, validated configuration.
type Site struct {
	Title       string
	Description string
	Lang        string
	Base        string

	Head    head.Tags
	Nav     nav.Bar
	Sidebar *sidebar.Table

	Search      Search
	Footer      Footer
	DocFooter   DocFooter
	Outline     Outline
	EditLink    *EditLink
	LastUpdated LastUpdated
	SocialLinks []SocialLink
	Theme       Theme
}

// SidebarFor returns the sidebar tree to render beside the page at path.
func (s *Site) SidebarFor(path string) *sidebar.Tree {
	return s.Sidebar.Resolve(path)
}

// SidebarMatch resolves path and reports which sidebar entry won.
func (s *Site) SidebarMatch(path string) sidebar.Match {
	return s.Sidebar.Match(path)
}

// PagerFor returns the previous and next pages around path in its sidebar.
func (s *Site) PagerFor(path string) sidebar.Pager {
	return s.SidebarFor(path).Pager(path)
}

// Footer is the site-wide footer.
type Footer struct {
	Message   string `yaml:"message,omitempty" json:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}

// DocFooter holds the labels of the previous/next page links.
type DocFooter struct {
	Prev string `yaml:"prev,omitempty" json:"prev,omitempty"`
	Next string `yaml:"next,omitempty" json:"next,omitempty"`
}

// Outline configures the on-page table of contents. Level is the inclusive
// heading range; Disabled hides the outline on every page.
type Outline struct {
	Level    [2]int `yaml:"level,flow" json:"level"`
	Label    string `yaml:"label,omitempty" json:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// EditLink points each page at its source.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// LastUpdated controls the "last updated" stamp.
type LastUpdated struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// SocialLink is an icon link in the navigation bar.
type SocialLink struct {
	Icon      string `yaml:"icon" json:"icon"`
	Link      string `yaml:"link" json:"link"`
	AriaLabel string `yaml:"aria_label,omitempty" json:"ariaLabel,omitempty"`
}

// Theme carries display labels and switches forwarded to the theme unchanged.
type Theme struct {
	Logo                 string     `yaml:"logo,omitempty" json:"logo,omitempty"`
	SiteTitle            string     `yaml:"site_title,omitempty" json:"siteTitle,omitempty"`
	Appearance           Appearance `yaml:"appearance,omitempty" json:"appearance,omitempty"`
	DarkModeSwitchLabel  string     `yaml:"dark_mode_switch_label,omitempty" json:"darkModeSwitchLabel,omitempty"`
	LightModeSwitchTitle string     `yaml:"light_mode_switch_title,omitempty" json:"lightModeSwitchTitle,omitempty"`
	DarkModeSwitchTitle  string     `yaml:"dark_mode_switch_title,omitempty" json:"darkModeSwitchTitle,omitempty"`
	SidebarMenuLabel     string     `yaml:"sidebar_menu_label,omitempty" json:"sidebarMenuLabel,omitempty"`
	ReturnToTopLabel     string     `yaml:"return_to_top_label,omitempty" json:"returnToTopLabel,omitempty"`
	LangMenuLabel        string     `yaml:"lang_menu_label,omitempty" json:"langMenuLabel,omitempty"`
	ExternalLinkIcon     bool       `yaml:"external_link_icon,omitempty" json:"externalLinkIcon,omitempty"`
}

// Appearance is the initial color scheme.
type Appearance string

const (
	AppearanceAuto      Appearance = "auto"
	AppearanceDark      Appearance = "dark"
	AppearanceLight     Appearance = "light"
	AppearanceForceDark Appearance = "force-dark"
	AppearanceDisabled  Appearance = "disabled"
)
