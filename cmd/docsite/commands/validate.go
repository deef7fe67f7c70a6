package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	s, _, err := root.loadSite()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(g.Out, "%s: valid (%d nav items, %d sidebar sections)\n",
		root.Config, len(s.Nav), s.Sidebar.Len())
	for _, e := range s.Sidebar.Entries() {
		_, _ = fmt.Fprintf(g.Out, "  %-20s %d groups, %d links\n", e.Prefix, len(e.Tree.Groups), len(e.Tree.Items()))
	}
	return nil
}
