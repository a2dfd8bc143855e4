package cmd

import (
	"context"
	"fmt"
)

// ConsentCmd records that the user allows window activity to be read
type ConsentCmd struct{}

// Run executes the consent command
func (c *ConsentCmd) Run(cli *CLI) error {
	fmt.Println("focusboss reads the app name and window title of your focused window")
	fmt.Println("from your local ActivityWatch server. Nothing leaves this machine")
	fmt.Println("except the prompts sent to OpenAI when an API key is configured.")
	fmt.Println()

	if err := cli.Container.PreferencesService.GiveConsent(context.Background()); err != nil {
		return err
	}

	fmt.Println("✓ Consent recorded")
	return nil
}
