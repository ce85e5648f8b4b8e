package summary_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	from := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 2, 3, 0, 0, 0, 0, time.UTC)

	months := MonthsBetween(from, to)

	assert.Equal(t, []string{"2026-11", "2026-12", "2027-01", "2027-02"}, months)
}

func TestMonthsBetweenSingleMonth(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2026-05"}, MonthsBetween(from, to))
}

func TestDefaultWindow(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	from, to := DefaultWindow(now)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)
	assert.Len(t, MonthsBetween(from, to), DefaultWindowMonths)
}
