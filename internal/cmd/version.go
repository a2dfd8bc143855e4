package cmd

import (
	"fmt"

	"focusboss/internal/version"
)

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Println(version.Info())
	return nil
}
