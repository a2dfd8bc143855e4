package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"

	"focusboss/internal/services"
)

// HistoryCmd lists recorded days, newest first
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of days to show" default:"30"`
}

type historyEntry struct {
	Date            string    `json:"date"`
	DistractionTime int       `json:"distraction_time"`
	EndedAt         time.Time `json:"ended_at"`
	Goals           string    `json:"goals"`
	IdleTime        int       `json:"idle_time"`
	Persona         string    `json:"persona"`
	Report          string    `json:"report"`
	StartedAt       time.Time `json:"started_at"`
	WorkTime        int       `json:"work_time"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	days, err := cli.Container.HistoryService.ListDays(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		entries := make([]historyEntry, 0, len(days))
		for _, d := range days {
			entries = append(entries, historyEntry{
				Date:            d.Date,
				DistractionTime: d.DistractionTime,
				EndedAt:         d.EndedAt,
				Goals:           d.Goals,
				IdleTime:        d.IdleTime,
				Persona:         d.PersonaID,
				Report:          d.Report,
				StartedAt:       d.StartedAt,
				WorkTime:        d.WorkTime,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(days) == 0 {
		fmt.Println("No days recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPERSONA\tWORK\tDISTRACTION\tIDLE\tGOALS")
	for _, d := range days {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Date,
			d.PersonaID,
			services.FormatMinutes(time.Duration(d.WorkTime)*time.Second),
			services.FormatMinutes(time.Duration(d.DistractionTime)*time.Second),
			services.FormatMinutes(time.Duration(d.IdleTime)*time.Second),
			truncate(d.Goals, 40))
	}
	return w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
