package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/head"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Version:     Version,
		Title:       "My Project",
		Description: "Documentation for My Project",
		Lang:        "en-US",
		Base:        "/",
		Head: head.Tags{
			{Name: "link", Attrs: []head.Attr{{Key: "rel", Val: "icon"}, {Key: "href", Val: "/favicon.ico"}}},
			{Name: "meta", Attrs: []head.Attr{{Key: "name", Val: "theme-color"}, {Key: "content", Val: "#3c8772"}}},
		},
		Nav: nav.Bar{
			nav.Link{Text: "Guide", Link: "/guide/getting-started", ActiveMatch: "/guide/"},
			nav.Link{Text: "Reference", Link: "/reference/config", ActiveMatch: "/reference/"},
			nav.Dropdown{Text: "Links", Items: []nav.Link{
				{Text: "Changelog", Link: "https://example.com/changelog"},
			}},
		},
		Sidebar: []SidebarSection{
			{Prefix: "/guide/", Groups: []sidebar.Group{{
				Text: "Guide",
				Items: []sidebar.Item{
					{Text: "Getting Started", Link: "/guide/getting-started"},
					{Text: "Configuration", Link: "/guide/configuration"},
				},
			}}},
			{Prefix: "/reference/", Groups: []sidebar.Group{{
				Text:  "Reference",
				Items: []sidebar.Item{{Text: "Site Config", Link: "/reference/config"}},
			}}},
			{Prefix: "/", Groups: []sidebar.Group{{
				Text: "Introduction",
				Items: []sidebar.Item{
					{Text: "Home", Link: "/"},
					{Text: "Getting Started", Link: "/guide/getting-started"},
				},
			}}},
		},
		Search: site.Search{Provider: site.SearchLocal},
		Footer: site.Footer{
			Message:   "Released under the MIT License.",
			Copyright: "Copyright © My Project contributors",
		},
		Outline:  OutlineConfig{Level: frontmatter.Levels{Min: 2, Max: 3}},
		EditLink: &site.EditLink{Pattern: "https://github.com/example/project/edit/main/docs/:path"},
		SocialLinks: []site.SocialLink{
			{Icon: "github", Link: "https://github.com/example/project"},
		},
	}
}

// Init writes the example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
