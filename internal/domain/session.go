package domain

import "time"

// Category is the bucket elapsed time is accounted into
type Category string

const (
	CategoryDistraction Category = "distraction"
	CategoryIdle        Category = "idle"
	CategoryWork        Category = "work"
)

// MinPollPeriod is the smallest period a poll will account; shorter polls are no-op snapshots
const MinPollPeriod = time.Second

// ActivityEvent is a single window-focus event reported by the activity source
type ActivityEvent struct {
	AppName  string
	Duration time.Duration // may be zero or negative for malformed input
	Title    string
}

// Session is the single tracked work day (domain entity).
// Accumulators only ever grow; LastCheck never moves backwards.
type Session struct {
	DistractionTime          time.Duration
	Goals                    string
	IdleNudgeSent            bool
	IdleStreak               time.Duration
	IdleTime                 time.Duration
	LastCheck                time.Time
	NextDistractionThreshold time.Duration
	NotificationInterval     time.Duration
	Persona                  Persona
	StartTime                time.Time
	WorkTime                 time.Duration
}

// NewSession creates a session with zeroed accumulators starting at now
func NewSession(persona Persona, goals string, now time.Time, interval time.Duration) *Session {
	return &Session{
		Goals:                    goals,
		LastCheck:                now,
		NextDistractionThreshold: interval,
		NotificationInterval:     interval,
		Persona:                  persona,
		StartTime:                now,
	}
}

// Apply adds a period's contributions to the running totals and moves LastCheck to now.
// The work contribution is clamped at zero so overlapping upstream events cannot shrink WorkTime.
func (s *Session) Apply(p PeriodTotals, now time.Time) {
	s.WorkTime += p.Work()
	s.DistractionTime += p.Distraction
	s.IdleTime += p.Idle
	if now.After(s.LastCheck) {
		s.LastCheck = now
	}
}

// Totals returns the current accumulated buckets
func (s *Session) Totals() Totals {
	return Totals{
		Distraction: s.DistractionTime,
		Idle:        s.IdleTime,
		Work:        s.WorkTime,
	}
}

// Totals holds accumulated time per category
type Totals struct {
	Distraction time.Duration
	Idle        time.Duration
	Work        time.Duration
}

// Seconds returns the buckets as whole seconds (work, distraction, idle)
func (t Totals) Seconds() (work, distraction, idle int) {
	return int(t.Work / time.Second), int(t.Distraction / time.Second), int(t.Idle / time.Second)
}

// Focused reports whether work time at least matches distraction time
func (t Totals) Focused() bool {
	return t.Work >= t.Distraction
}

// DayLogEntry is the record appended to the day log when a session ends
type DayLogEntry struct {
	Date            string // YYYY-MM-DD, local time
	DistractionTime int    // seconds
	EndedAt         time.Time
	Goals           string
	ID              string
	IdleTime        int // seconds
	PersonaID       string
	Report          string
	StartedAt       time.Time
	WorkTime        int // seconds
}

// Preferences holds the user-level settings the tracker consults
type Preferences struct {
	AutoLaunch                  bool
	ConsentGiven                bool
	LastPersona                 string
	NotificationIntervalMinutes int
}

// DefaultNotificationIntervalMinutes is used when no interval has been stored
const DefaultNotificationIntervalMinutes = 15

// NotificationInterval returns the interval as a duration, falling back to the default
func (p Preferences) NotificationInterval() time.Duration {
	minutes := p.NotificationIntervalMinutes
	if minutes <= 0 {
		minutes = DefaultNotificationIntervalMinutes
	}
	return time.Duration(minutes) * time.Minute
}
