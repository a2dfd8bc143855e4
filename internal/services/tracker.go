package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// DefaultUpstreamTimeout bounds activity queries and message generation
const DefaultUpstreamTimeout = 5 * time.Second

// SessionTracker owns the single active day and drives it through start, poll and end.
// All operations hold one lock for their full duration, so polls serialize.
type SessionTracker struct {
	activity ports.ActivitySource
	catalog  ports.PersonaCatalog
	clock    ports.Clock
	dayLogs  ports.DayLogWriter
	messages *MessageResolver
	mu       sync.Mutex
	prefs    ports.PreferencesRepository
	session  *domain.Session
	timeout  time.Duration
}

// NewSessionTracker creates a new SessionTracker
func NewSessionTracker(
	activity ports.ActivitySource,
	catalog ports.PersonaCatalog,
	prefs ports.PreferencesRepository,
	dayLogs ports.DayLogWriter,
	messages *MessageResolver,
	clock ports.Clock,
	timeout time.Duration,
) *SessionTracker {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &SessionTracker{
		activity: activity,
		catalog:  catalog,
		clock:    clock,
		dayLogs:  dayLogs,
		messages: messages,
		prefs:    prefs,
		timeout:  timeout,
	}
}

// StartDay begins tracking a new day for a persona.
// Fails with ErrSessionAlreadyActive, ErrUnknownPersona or ErrConsentRequired.
func (t *SessionTracker) StartDay(ctx context.Context, personaID, goals string) (*StartResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session != nil {
		logging.Logger.Warn("Start requested while a day is active", "persona", personaID)
		return nil, domain.ErrSessionAlreadyActive
	}

	persona, ok := t.catalog.Lookup(personaID)
	if personaID == "" || !ok {
		logging.Logger.Warn("Unknown persona", "persona", personaID)
		return nil, domain.ErrUnknownPersona
	}

	prefs, err := t.prefs.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if !prefs.ConsentGiven {
		return nil, domain.ErrConsentRequired
	}

	now := t.clock.Now()
	t.session = domain.NewSession(*persona, goals, now, prefs.NotificationInterval())

	if err := t.prefs.SetLastPersona(ctx, persona.ID); err != nil {
		logging.Logger.Warn("Failed to remember last persona", "persona", persona.ID, "error", err)
	}

	logging.Logger.Info("Day started",
		"persona", persona.ID,
		"notification_interval", t.session.NotificationInterval.String(),
		"start", now)

	return &StartResult{
		PersonaID:   persona.ID,
		PersonaName: persona.DisplayName(),
		StartedAt:   now,
	}, nil
}

// PollStatus accounts the time since the last check and returns updated totals with
// at most one nudge message. Periods shorter than a second return the totals unchanged.
func (t *SessionTracker) PollStatus(ctx context.Context, now time.Time) (*StatusResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session
	if s == nil {
		return nil, domain.ErrNoActiveSession
	}

	period := now.Sub(s.LastCheck)
	if period < domain.MinPollPeriod {
		logging.Logger.Debug("Poll period too short, returning snapshot", "period", period.String())
		return &StatusResult{Totals: s.Totals()}, nil
	}

	totals := t.accountPeriod(ctx, s, now)

	decision := domain.DecideNudges(s, totals.Active, period)
	result := &StatusResult{Totals: s.Totals()}
	if kind, ok := decision.Kind(); ok {
		result.NudgeKind = kind
		result.Message = t.messages.Nudge(ctx, s.Persona, decision, totals.TopDistraction)
		logging.Logger.Info("Nudge fired",
			"kind", kind,
			"idle", decision.Idle,
			"distraction", decision.Distraction,
			"distraction_total", s.DistractionTime.String(),
			"next_threshold", s.NextDistractionThreshold.String())
	}

	return result, nil
}

// EndDay accounts any remaining time, writes the day log and clears the session
func (t *SessionTracker) EndDay(ctx context.Context, now time.Time) (*DayReport, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session
	if s == nil {
		return nil, domain.ErrNoActiveSession
	}

	// Commit the day even if the caller has gone away
	ctx = context.WithoutCancel(ctx)

	if now.After(s.LastCheck) {
		t.accountPeriod(ctx, s, now)
	}

	totals := s.Totals()
	report := t.messages.Report(ctx, s.Persona, s.Goals, totals)

	work, distraction, idle := totals.Seconds()
	entry := domain.DayLogEntry{
		Date:            now.Local().Format("2006-01-02"),
		DistractionTime: distraction,
		EndedAt:         now,
		Goals:           s.Goals,
		ID:              uuid.New().String(),
		IdleTime:        idle,
		PersonaID:       s.Persona.ID,
		Report:          report,
		StartedAt:       s.StartTime,
		WorkTime:        work,
	}
	if err := t.dayLogs.AppendDayLog(ctx, entry); err != nil {
		logging.Logger.Error("Failed to append day log", "error", err)
	}

	t.session = nil

	logging.Logger.Info("Day ended",
		"persona", entry.PersonaID,
		"work", work,
		"distraction", distraction,
		"idle", idle)

	return &DayReport{
		EndedAt:     now,
		Goals:       s.Goals,
		PersonaID:   s.Persona.ID,
		PersonaName: s.Persona.DisplayName(),
		Report:      report,
		StartedAt:   s.StartTime,
		Totals:      totals,
	}, nil
}

// Snapshot returns the active day without advancing it
func (t *SessionTracker) Snapshot() (*DaySnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session
	if s == nil {
		return nil, domain.ErrNoActiveSession
	}

	return &DaySnapshot{
		Goals:       s.Goals,
		LastCheck:   s.LastCheck,
		PersonaID:   s.Persona.ID,
		PersonaName: s.Persona.DisplayName(),
		StartedAt:   s.StartTime,
		Totals:      s.Totals(),
	}, nil
}

// accountPeriod queries activity for [LastCheck, now) and applies it to the session
func (t *SessionTracker) accountPeriod(ctx context.Context, s *domain.Session, now time.Time) domain.PeriodTotals {
	window := now.Sub(s.LastCheck)
	events := t.queryActivity(ctx, s.LastCheck, now)
	totals := domain.AccountPeriod(window, events)
	s.Apply(totals, now)

	logging.Logger.Debug("Period accounted",
		"window", window.String(),
		"events", len(events),
		"active", totals.Active.String(),
		"distraction", totals.Distraction.String(),
		"idle", totals.Idle.String())

	return totals
}

// queryActivity fetches events, degrading to none when the source fails
func (t *SessionTracker) queryActivity(ctx context.Context, start, end time.Time) []domain.ActivityEvent {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	events, err := t.activity.Query(ctx, start, end)
	if err != nil {
		logging.Logger.Warn("Activity query failed, treating period as empty", "error", err)
		return nil
	}
	return events
}
