package cmd

import (
	"context"
	"errors"
	"fmt"

	"focusboss/internal/domain"
	"focusboss/internal/ports"
	"focusboss/internal/services"
)

// apiFlags selects the server a client command talks to
type apiFlags struct {
	Server string `help:"Server address (default from settings or 127.0.0.1:5000)" env:"FOCUSBOSS_SERVER"`
}

func (f apiFlags) client(cli *CLI) ports.FocusAPI {
	return cli.Container.NewAPIClient(f.Server)
}

// DayCmd drives the day on a running server
type DayCmd struct {
	End    DayEndCmd    `cmd:"end" help:"End the day and print the report"`
	Start  DayStartCmd  `cmd:"start" help:"Start tracking the day"`
	Status DayStatusCmd `cmd:"status" help:"Poll the day and print totals"`
}

// DayStartCmd starts a day
type DayStartCmd struct {
	API     apiFlags `embed:""`
	Goals   string   `help:"What you want to get done today" short:"g"`
	Persona string   `help:"Persona ID (default: last used)" short:"p"`
}

// Run executes the start command
func (d *DayStartCmd) Run(cli *CLI) error {
	ctx := context.Background()

	personaID := d.Persona
	if personaID == "" {
		prefs, err := cli.Container.PreferencesService.GetPreferences(ctx)
		if err != nil {
			return err
		}
		personaID = prefs.LastPersona
	}
	if personaID == "" {
		return fmt.Errorf("no persona given and none used before, pick one with --persona (see 'focusboss personas')")
	}

	if err := d.API.client(cli).StartDay(ctx, personaID, d.Goals); err != nil {
		if errors.Is(err, domain.ErrConsentRequired) {
			return fmt.Errorf("%w: run 'focusboss consent' first", err)
		}
		return err
	}

	cli.Container.NotificationService.NotifyDay("start")
	fmt.Printf("✓ Day started with %s\n", personaID)
	return nil
}

// DayStatusCmd polls the day once
type DayStatusCmd struct {
	API apiFlags `embed:""`
}

// Run executes the status command
func (d *DayStatusCmd) Run(cli *CLI) error {
	status, err := d.API.client(cli).Status(context.Background())
	if err != nil {
		return err
	}

	printTotals(status.Totals)
	if status.Message != "" {
		cli.Container.NotificationService.NotifyNudge(status.NudgeKind)
		fmt.Println()
		fmt.Println(status.Message)
	}
	return nil
}

// DayEndCmd ends the day
type DayEndCmd struct {
	API apiFlags `embed:""`
}

// Run executes the end command
func (d *DayEndCmd) Run(cli *CLI) error {
	end, err := d.API.client(cli).EndDay(context.Background())
	if err != nil {
		return err
	}

	cli.Container.NotificationService.NotifyDay("end")
	printTotals(end.Totals)
	fmt.Println()
	fmt.Println(end.Report)
	return nil
}

func printTotals(t domain.Totals) {
	fmt.Printf("Work:        %s\n", services.FormatMinutes(t.Work))
	fmt.Printf("Distraction: %s\n", services.FormatMinutes(t.Distraction))
	fmt.Printf("Idle:        %s\n", services.FormatMinutes(t.Idle))
}
