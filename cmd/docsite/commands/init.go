package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return derrors.WrapError(err, derrors.CategoryConfig, "initialization failed").
			WithContext("path", root.Config).
			Build()
	}
	_, _ = fmt.Fprintf(g.Out, "Wrote example configuration to %s\n", root.Config)
	return nil
}
