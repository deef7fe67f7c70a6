// Package commands implements the docsite subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Global is bound into every Run method.
type Global struct {
	// Out receives command output. Logs go to stderr.
	Out io.Writer
}

// CLI is the root command and its global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
	Validate ValidateCmd `cmd:"" help:"Load and validate the configuration"`
	Resolve  ResolveCmd  `cmd:"" help:"Show the sidebar selected for one or more paths"`
	Export   ExportCmd   `cmd:"" help:"Write the resolved configuration for a rendering engine"`
	Check    CheckCmd    `cmd:"" help:"Verify nav and sidebar links against a docs directory"`
	Serve    ServeCmd    `cmd:"" help:"Serve the configuration over HTTP"`
}

// AfterApply runs after flag parsing and sets up logging from the flags and
// the environment. The configuration file's logging section is applied once
// the file has been loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(NewLogger(os.Stderr, c.Verbose, config.LoggingConfig{}))
	return nil
}

// loadSite loads the configuration file and reconfigures logging from it.
func (c *CLI) loadSite() (*site.Site, *config.Config, error) {
	s, cfg, err := config.LoadSite(c.Config)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(NewLogger(os.Stderr, c.Verbose, cfg.Logging))
	return s, cfg, nil
}
