package services

import (
	"time"

	"focusboss/internal/domain"
)

// StartResult describes a newly started day
type StartResult struct {
	PersonaID   string
	PersonaName string
	StartedAt   time.Time
}

// StatusResult is the outcome of a poll: updated totals and at most one nudge message
type StatusResult struct {
	Message   string           // "" when no nudge fired
	NudgeKind domain.NudgeKind // kind of the displayed nudge, "" when none
	Totals    domain.Totals
}

// DayReport is the end-of-day summary
type DayReport struct {
	EndedAt     time.Time
	Goals       string
	PersonaID   string
	PersonaName string
	Report      string
	StartedAt   time.Time
	Totals      domain.Totals
}

// DaySnapshot describes the active day without advancing it
type DaySnapshot struct {
	Goals       string
	LastCheck   time.Time
	PersonaID   string
	PersonaName string
	StartedAt   time.Time
	Totals      domain.Totals
}
