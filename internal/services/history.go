package services

import (
	"context"
	"fmt"

	"focusboss/internal/domain"
	"focusboss/internal/ports"
)

// DefaultHistoryLimit is how many day logs are returned when no limit is given
const DefaultHistoryLimit = 30

// HistoryService reads past day logs
type HistoryService struct {
	dayLogs ports.DayLogReader
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(dayLogs ports.DayLogReader) *HistoryService {
	return &HistoryService{
		dayLogs: dayLogs,
	}
}

// ListDays returns up to limit day logs, newest first
func (s *HistoryService) ListDays(ctx context.Context, limit int) ([]domain.DayLogEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := s.dayLogs.ListDayLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list day logs: %w", err)
	}
	return entries, nil
}
