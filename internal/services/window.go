package services

import (
	"time"

	"regeve-backend/internal/models"
)

// WindowState derives the election status from the voting window alone:
// [start, end) is open, before start is scheduled, end and later is closed.
// Nothing is stored, so there is no transition to miss.
func WindowState(e *models.Election, now time.Time) string {
	switch {
	case now.Before(e.StartTime):
		return models.ElectionStatusScheduled
	case now.Before(e.EndTime):
		return models.ElectionStatusOpen
	default:
		return models.ElectionStatusClosed
	}
}

// RemainingTime reports how long votes will still be accepted, clamped at zero.
func RemainingTime(e *models.Election, now time.Time) time.Duration {
	if !now.Before(e.EndTime) {
		return 0
	}
	return e.EndTime.Sub(now)
}
