package commands

import (
	"bytes"
	"context"
	"os"

	"git.home.luguber.info/inful/docsite/internal/export"
	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Format      string `short:"f" default:"json" enum:"json,yaml" help:"Output format (json or yaml)"`
	Out         string `short:"o" help:"Write to this file instead of stdout"`
	Docs        string `short:"d" default:"docs" help:"Docs directory, used with --last-updated"`
	LastUpdated bool   `help:"Include the last commit time of every page found under --docs"`
}

func (c *ExportCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	s, _, err := root.loadSite()
	if err != nil {
		return err
	}

	doc := export.New(s)
	if c.LastUpdated {
		times, err := export.LastUpdated(ctx, s, c.Docs)
		if err != nil {
			return err
		}
		doc.LastUpdatedAt = times
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, doc, export.Format(c.Format)); err != nil {
		return derrors.InternalError(err, "failed to encode export").Build()
	}
	if c.Out == "" {
		_, err := g.Out.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(c.Out, buf.Bytes(), 0o644); err != nil {
		return derrors.FileSystemError(err, "failed to write export").WithContext("path", c.Out).Build()
	}
	return nil
}
