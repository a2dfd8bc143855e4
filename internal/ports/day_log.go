package ports

import (
	"context"

	"focusboss/internal/domain"
)

// DayLogWriter appends end-of-day records
type DayLogWriter interface {
	AppendDayLog(ctx context.Context, entry domain.DayLogEntry) error
}

// DayLogReader lists end-of-day records, newest first
type DayLogReader interface {
	ListDayLogs(ctx context.Context, limit int) ([]domain.DayLogEntry, error)
}

// DayLogRepository is the composite interface
type DayLogRepository interface {
	DayLogReader
	DayLogWriter
}
