package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	// 31 Jan 20:00 UTC is already 1 Feb in India
	lateJanuary := time.Date(2026, time.January, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02", MonthKey(&lateJanuary))

	midMonth := time.Date(2026, time.March, 14, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03", MonthKey(&midMonth))

	assert.Equal(t, "", MonthKey(nil))
	assert.Equal(t, "", MonthKey(&time.Time{}))
}

func TestLocalTime(t *testing.T) {
	pickup := time.Date(2026, time.March, 14, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "14 Mar 2026, 09:30 AM", LocalTime(&pickup, "02 Jan 2006, 03:04 PM"))
	assert.Equal(t, "", LocalTime(nil, time.RFC3339))
}
