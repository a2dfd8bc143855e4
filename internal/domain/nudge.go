package domain

import "time"

// IdleThreshold is how long a continuous idle streak lasts before an idle nudge fires
const IdleThreshold = 5 * time.Minute

// NudgeDecision reports which nudges fired for a poll
type NudgeDecision struct {
	Distraction      bool
	DistractionTotal time.Duration // cumulative distraction when the nudge fired
	Goals            string
	Idle             bool
	IdleStreak       time.Duration
}

// Any reports whether at least one nudge fired
func (d NudgeDecision) Any() bool {
	return d.Idle || d.Distraction
}

// Kind returns the nudge whose message is shown. Distraction wins over idle.
func (d NudgeDecision) Kind() (NudgeKind, bool) {
	switch {
	case d.Distraction:
		return NudgeDistraction, true
	case d.Idle:
		return NudgeIdle, true
	default:
		return "", false
	}
}

// DecideNudges advances the idle streak and distraction threshold of s for a period
// that has already been applied to its accumulators, and reports which nudges fire.
//
// The idle nudge fires at most once per streak; any activity resets the streak and
// re-arms it. The distraction nudge fires each time cumulative distraction reaches the
// next threshold, which then moves up by one notification interval. The threshold
// advances one step per call, so a period that jumps several steps fires again on
// the following calls until the threshold catches up.
func DecideNudges(s *Session, periodActive, period time.Duration) NudgeDecision {
	var d NudgeDecision

	if periodActive == 0 {
		s.IdleStreak += period
	} else {
		s.IdleStreak = 0
		s.IdleNudgeSent = false
	}

	if s.IdleStreak >= IdleThreshold && !s.IdleNudgeSent {
		s.IdleNudgeSent = true
		d.Idle = true
		d.IdleStreak = s.IdleStreak
	}

	if s.NextDistractionThreshold > 0 && s.DistractionTime >= s.NextDistractionThreshold {
		d.Distraction = true
		d.DistractionTotal = s.DistractionTime
		s.NextDistractionThreshold += s.NotificationInterval
	}

	if d.Any() {
		d.Goals = s.Goals
	}

	return d
}
