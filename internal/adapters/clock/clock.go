// Package clock provides the wall clock used outside tests.
package clock

import (
	"time"

	"focusboss/internal/ports"
)

// SystemClock implements ports.Clock using the local wall clock
type SystemClock struct{}

var _ ports.Clock = SystemClock{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}
