package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// PersonasCmd lists the persona catalog
type PersonasCmd struct{}

// Run executes the personas command
func (p *PersonasCmd) Run(cli *CLI) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, persona := range cli.Container.Catalog.List() {
		fmt.Fprintf(w, "%s\t%s\n", persona.ID, persona.DisplayName())
	}
	return w.Flush()
}
