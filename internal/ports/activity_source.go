package ports

import (
	"context"
	"time"

	"focusboss/internal/domain"
)

// ActivitySource returns the window-focus events observed in a time window
type ActivitySource interface {
	// Query returns events in [start, end). Errors are treated by callers as "no events".
	Query(ctx context.Context, start, end time.Time) ([]domain.ActivityEvent, error)
}
