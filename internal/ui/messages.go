package ui

import (
	"time"

	"focusboss/internal/ports"
)

// tickMsg triggers the next status poll
type tickMsg time.Time

// dayMsg carries the active day description
type dayMsg struct {
	day *ports.DayInfo
	err error
}

// statusMsg carries the result of a status poll
type statusMsg struct {
	err    error
	status *ports.DayStatus
}

// endMsg carries the end-of-day report
type endMsg struct {
	end *ports.DayEnd
	err error
}
