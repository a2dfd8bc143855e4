package services

import (
	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// NotificationService turns nudges and day transitions into audible notifications
type NotificationService struct {
	enabled     bool
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(soundPlayer ports.SoundPlayer, enabled bool) *NotificationService {
	return &NotificationService{
		enabled:     enabled,
		soundPlayer: soundPlayer,
	}
}

// SoundEventForNudge maps a nudge kind to a sound event name
func SoundEventForNudge(kind domain.NudgeKind) string {
	switch kind {
	case domain.NudgeDistraction:
		return "distraction"
	case domain.NudgeIdle:
		return "idle"
	default:
		return ""
	}
}

// ShouldPlaySound determines if a sound should be played for the event type
func (s *NotificationService) ShouldPlaySound(eventType string) bool {
	if !s.enabled {
		return false
	}
	switch eventType {
	case "distraction", "idle", "start", "end":
		return true
	default:
		return false
	}
}

// NotifyNudge plays the sound for a fired nudge. Failures are logged, never returned.
func (s *NotificationService) NotifyNudge(kind domain.NudgeKind) {
	s.notify(SoundEventForNudge(kind))
}

// NotifyDay plays the sound for a day transition ("start" or "end")
func (s *NotificationService) NotifyDay(eventType string) {
	s.notify(eventType)
}

func (s *NotificationService) notify(eventType string) {
	if !s.ShouldPlaySound(eventType) {
		return
	}
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	if err := s.soundPlayer.PlaySoundForEvent(eventType); err != nil {
		logging.Logger.Warn("Failed to play sound", "event", eventType, "error", err)
	}
}
