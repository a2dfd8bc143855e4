package domain

import "time"

// PeriodTotals is the accounting of a single poll window
type PeriodTotals struct {
	Active         time.Duration
	Distraction    time.Duration
	Idle           time.Duration
	TopDistraction string // label of the longest distracting event, "" if none
}

// Work returns the work contribution of the period, never negative.
// Active can be smaller than Distraction only when the source double-reports.
func (p PeriodTotals) Work() time.Duration {
	if p.Distraction >= p.Active {
		return 0
	}
	return p.Active - p.Distraction
}

// AccountPeriod classifies events and splits a window into active, distraction and idle time.
// Non-positive durations are ignored. Idle is clamped at zero; active and distraction are
// not clamped to the window since overlapping events are an upstream inconsistency.
func AccountPeriod(window time.Duration, events []ActivityEvent) PeriodTotals {
	var totals PeriodTotals
	var topDuration time.Duration

	for _, ev := range events {
		if ev.Duration <= 0 {
			continue
		}
		totals.Active += ev.Duration

		if Classify(ev.AppName, ev.Title) != CategoryDistraction {
			continue
		}
		totals.Distraction += ev.Duration
		if ev.Duration > topDuration {
			topDuration = ev.Duration
			totals.TopDistraction = DistractionLabel(ev.AppName, ev.Title)
		}
	}

	if idle := window - totals.Active; idle > 0 {
		totals.Idle = idle
	}

	return totals
}
