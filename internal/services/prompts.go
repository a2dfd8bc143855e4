package services

import (
	"fmt"
	"time"

	"focusboss/internal/domain"
)

// FormatMinutes renders a duration as "2h 5m" or "45m", dropping seconds
func FormatMinutes(d time.Duration) string {
	mins := int(d / time.Minute)
	hrs := mins / 60
	mins = mins % 60
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

func goalsOr(goals, fallback string) string {
	if goals == "" {
		return fallback
	}
	return goals
}

func distractionPrompt(persona domain.Persona, topDistraction string, total time.Duration, goals string) string {
	if topDistraction == "" {
		topDistraction = "non-work activities"
	}
	return fmt.Sprintf("The user has been distracted by %s for about %d minutes. User's goal: %s. As %s, give a short motivational nudge to refocus.",
		topDistraction, int(total/time.Minute), goalsOr(goals, "not specified"), persona.DisplayName())
}

func idlePrompt(persona domain.Persona, streak time.Duration, goals string) string {
	return fmt.Sprintf("The user has been idle at the computer for about %d minutes. User's goal: %s. As %s, give a short friendly nudge to get back to work.",
		int(streak/time.Minute), goalsOr(goals, "not specified"), persona.DisplayName())
}

func reportPrompt(persona domain.Persona, goals string, totals domain.Totals) string {
	summary := fmt.Sprintf("Today, you worked for %s and were distracted for %s. Idle/break time was %s. Your goal was: %s.",
		FormatMinutes(totals.Work), FormatMinutes(totals.Distraction), FormatMinutes(totals.Idle), goalsOr(goals, "N/A"))
	return fmt.Sprintf("Provide an end-of-day report as %s commenting on the user's performance. %s", persona.DisplayName(), summary)
}
