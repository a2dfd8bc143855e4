package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// PrefsCmd manages stored preferences
type PrefsCmd struct {
	Interval PrefsIntervalCmd `cmd:"interval" help:"Set minutes of distraction between nudges"`
	Show     PrefsShowCmd     `cmd:"show" help:"Show preferences" default:"1"`
}

// PrefsShowCmd prints the stored preferences
type PrefsShowCmd struct{}

// Run executes the show command
func (p *PrefsShowCmd) Run(cli *CLI) error {
	prefs, err := cli.Container.PreferencesService.GetPreferences(context.Background())
	if err != nil {
		return err
	}

	lastPersona := prefs.LastPersona
	if lastPersona == "" {
		lastPersona = "-"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "consent_given\t%t\n", prefs.ConsentGiven)
	fmt.Fprintf(w, "notification_interval\t%d min\n", int(prefs.NotificationInterval().Minutes()))
	fmt.Fprintf(w, "last_persona\t%s\n", lastPersona)
	fmt.Fprintf(w, "auto_launch\t%t\n", prefs.AutoLaunch)
	return w.Flush()
}

// PrefsIntervalCmd sets the notification interval
type PrefsIntervalCmd struct {
	Minutes int `arg:"" help:"Minutes of distraction between nudges (applies to the next day)"`
}

// Run executes the interval command
func (p *PrefsIntervalCmd) Run(cli *CLI) error {
	if err := cli.Container.PreferencesService.SetNotificationInterval(context.Background(), p.Minutes); err != nil {
		return err
	}
	fmt.Printf("✓ Notification interval set to %d min\n", p.Minutes)
	return nil
}
