package ports

import (
	"context"
	"time"

	"focusboss/internal/domain"
)

// DayStatus is the result of a status poll as seen by API clients
type DayStatus struct {
	Message   string
	NudgeKind domain.NudgeKind // empty when no nudge fired
	Totals    domain.Totals
}

// DayEnd is the end-of-day result as seen by API clients
type DayEnd struct {
	Report string
	Totals domain.Totals
}

// DayInfo describes the active day as seen by API clients
type DayInfo struct {
	Goals       string
	PersonaID   string
	PersonaName string
	StartedAt   time.Time
	Totals      domain.Totals
}

// FocusAPI is the client side of the focusboss HTTP API
type FocusAPI interface {
	CurrentDay(ctx context.Context) (*DayInfo, error)
	EndDay(ctx context.Context) (*DayEnd, error)
	StartDay(ctx context.Context, personaID, goals string) error
	Status(ctx context.Context) (*DayStatus, error)
}
