package commands

import (
	"context"
	"fmt"
	"os"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/linkverify"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Docs   string `short:"d" default:"docs" help:"Docs directory holding the markdown pages"`
	Strict bool   `help:"Treat warnings as errors"`
}

func (c *CheckCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	s, _, err := root.loadSite()
	if err != nil {
		return err
	}
	if info, err := os.Stat(c.Docs); err != nil || !info.IsDir() {
		return derrors.NotFoundError("docs directory not found").WithContext("path", c.Docs).Build()
	}

	report, err := linkverify.NewVerifier(os.DirFS(c.Docs), s.Outline).Verify(ctx, linkverify.CollectLinks(s))
	if err != nil {
		return err
	}

	var errs, warns int
	for _, f := range report.Findings {
		if f.Severity == linkverify.SeverityError {
			errs++
		} else {
			warns++
		}
		_, _ = fmt.Fprintln(g.Out, f.String())
	}
	_, _ = fmt.Fprintf(g.Out, "Checked %d links (%d skipped): %d errors, %d warnings\n",
		report.Checked, report.Skipped, errs, warns)

	if errs > 0 || (c.Strict && warns > 0) {
		return derrors.ValidationError("link check failed").
			WithContext("errors", errs).
			WithContext("warnings", warns).
			Build()
	}
	return nil
}
