package services

import (
	"testing"
	"time"

	"regeve-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWindowState(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	election := &models.Election{StartTime: start, EndTime: end}

	assert.Equal(t, models.ElectionStatusScheduled, WindowState(election, start.Add(-time.Second)))
	assert.Equal(t, models.ElectionStatusOpen, WindowState(election, start))
	assert.Equal(t, models.ElectionStatusOpen, WindowState(election, end.Add(-time.Second)))
	assert.Equal(t, models.ElectionStatusClosed, WindowState(election, end))
	assert.Equal(t, models.ElectionStatusClosed, WindowState(election, end.Add(time.Hour)))
}

func TestRemainingTimeNeverNegative(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	election := &models.Election{StartTime: start, EndTime: end}

	assert.Equal(t, time.Hour, RemainingTime(election, start))
	assert.Equal(t, 30*time.Minute, RemainingTime(election, start.Add(30*time.Minute)))
	assert.Equal(t, time.Duration(0), RemainingTime(election, end))
	assert.Equal(t, time.Duration(0), RemainingTime(election, end.Add(time.Hour)))
}
