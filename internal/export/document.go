// Package export writes the site configuration as a single document for the
// site-generation engine.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/head"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Document is the exported form of a site.Site. The sidebar is an ordered list
// so the engine sees the declaration order that breaks prefix ties.
type Document struct {
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Lang        string            `json:"lang" yaml:"lang"`
	Base        string            `json:"base" yaml:"base"`
	Head        head.Tags         `json:"head" yaml:"head"`
	Nav         nav.Bar           `json:"nav" yaml:"nav"`
	Sidebar     []Section         `json:"sidebar" yaml:"sidebar"`
	Search      site.Search       `json:"search" yaml:"search"`
	Footer      site.Footer       `json:"footer" yaml:"footer"`
	DocFooter   site.DocFooter    `json:"docFooter" yaml:"doc_footer"`
	Outline     Outline           `json:"outline" yaml:"outline"`
	EditLink    *site.EditLink    `json:"editLink,omitempty" yaml:"edit_link,omitempty"`
	LastUpdated site.LastUpdated  `json:"lastUpdated" yaml:"last_updated"`
	SocialLinks []site.SocialLink `json:"socialLinks,omitempty" yaml:"social_links,omitempty"`
	Theme       site.Theme        `json:"theme" yaml:"theme"`

	// LastUpdatedAt maps a page route to its last commit time.
	LastUpdatedAt map[string]time.Time `json:"lastUpdatedAt,omitempty" yaml:"last_updated_at,omitempty"`
}

// Section is one sidebar table entry.
type Section struct {
	Prefix string          `json:"prefix" yaml:"prefix"`
	Groups []sidebar.Group `json:"groups" yaml:"groups"`
}

// Outline uses the frontmatter spellings: false, 2 or [2, 3].
type Outline struct {
	Level frontmatter.Levels `json:"level" yaml:"level"`
	Label string             `json:"label,omitempty" yaml:"label,omitempty"`
}

// New converts s into a Document.
func New(s *site.Site) *Document {
	d := &Document{
		Title:       s.Title,
		Description: s.Description,
		Lang:        s.Lang,
		Base:        s.Base,
		Head:        s.Head,
		Nav:         s.Nav,
		Search:      s.Search,
		Footer:      s.Footer,
		DocFooter:   s.DocFooter,
		Outline: Outline{
			Level: frontmatter.Levels{Min: s.Outline.Level[0], Max: s.Outline.Level[1], Disabled: s.Outline.Disabled},
			Label: s.Outline.Label,
		},
		EditLink:    s.EditLink,
		LastUpdated: s.LastUpdated,
		SocialLinks: s.SocialLinks,
		Theme:       s.Theme,
	}
	if d.Head == nil {
		d.Head = head.Tags{}
	}
	if d.Nav == nil {
		d.Nav = nav.Bar{}
	}
	for _, e := range s.Sidebar.Entries() {
		groups := e.Tree.Groups
		if groups == nil {
			groups = []sidebar.Group{}
		}
		d.Sidebar = append(d.Sidebar, Section{Prefix: e.Prefix, Groups: groups})
	}
	return d
}

// Format is an output syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Write encodes d to w.
func Write(w io.Writer, d *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
