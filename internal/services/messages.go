package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// Generic messages used when a persona has no canned fallback for a nudge kind
const (
	GenericDistractionMessage = "Let's refocus on work."
	GenericIdleMessage        = "You've been idle for a while, let's get back to work."
)

// Deterministic end-of-day reports used when generation is unavailable
const (
	FocusedReport   = "Great job today! You stayed focused for most of the day. Keep up the good work!"
	UnfocusedReport = "You had some trouble staying focused today. Let's try to do better tomorrow - I believe in you!"
)

// MessageResolver turns fired nudges and finished days into text.
// Generation is tried first; canned persona messages and fixed strings back it up,
// so a resolved message is never empty.
type MessageResolver struct {
	generator ports.MessageGenerator
	rng       ports.RandomSource
	timeout   time.Duration
}

// NewMessageResolver creates a new MessageResolver.
// timeout bounds each generator call; zero means no extra bound.
func NewMessageResolver(generator ports.MessageGenerator, rng ports.RandomSource, timeout time.Duration) *MessageResolver {
	return &MessageResolver{
		generator: generator,
		rng:       rng,
		timeout:   timeout,
	}
}

// Nudge returns the message for the displayed nudge of a decision, or "" when none fired
func (r *MessageResolver) Nudge(ctx context.Context, persona domain.Persona, d domain.NudgeDecision, topDistraction string) string {
	kind, ok := d.Kind()
	if !ok {
		return ""
	}

	var prompt string
	switch kind {
	case domain.NudgeDistraction:
		prompt = distractionPrompt(persona, topDistraction, d.DistractionTotal, d.Goals)
	case domain.NudgeIdle:
		prompt = idlePrompt(persona, d.IdleStreak, d.Goals)
	}

	if text, ok := r.generate(ctx, persona, prompt); ok {
		return text
	}
	return r.Fallback(persona, kind)
}

// Report returns the end-of-day report for a persona and the day's totals
func (r *MessageResolver) Report(ctx context.Context, persona domain.Persona, goals string, totals domain.Totals) string {
	if text, ok := r.generate(ctx, persona, reportPrompt(persona, goals, totals)); ok {
		return text
	}
	if totals.Focused() {
		return FocusedReport
	}
	return UnfocusedReport
}

// Fallback picks a canned persona message for the kind, or the generic message
func (r *MessageResolver) Fallback(persona domain.Persona, kind domain.NudgeKind) string {
	msgs := persona.Fallbacks(kind)
	if len(msgs) > 0 {
		idx := 0
		if r.rng != nil {
			idx = r.rng.IntN(len(msgs))
		}
		if msg := strings.TrimSpace(msgs[idx]); msg != "" {
			return msg
		}
	}

	if kind == domain.NudgeIdle {
		return GenericIdleMessage
	}
	return GenericDistractionMessage
}

// generate asks the generator for text; ok is false when the caller should fall back
func (r *MessageResolver) generate(ctx context.Context, persona domain.Persona, userPrompt string) (string, bool) {
	if r.generator == nil {
		return "", false
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	text, err := r.generator.Generate(ctx, persona.Prompt, userPrompt)
	if err != nil {
		if errors.Is(err, ports.ErrGeneratorUnavailable) {
			logging.Logger.Debug("Message generator unavailable, using fallback", "persona", persona.ID)
		} else {
			logging.Logger.Warn("Message generation failed, using fallback", "persona", persona.ID, "error", err)
		}
		return "", false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logging.Logger.Warn("Message generator returned empty text, using fallback", "persona", persona.ID)
		return "", false
	}
	return text, true
}
