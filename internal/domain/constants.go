package domain

import "time"

// Slot grid constants. The grid is fixed: one-hour slots in a rolling
// 24-hour window, generated across two UTC calendar days.
const (
	SlotDurationMinutes = 60
	SlotDuration        = time.Duration(SlotDurationMinutes) * time.Minute

	SlotWindowHours = 24
	SlotWindow      = time.Duration(SlotWindowHours) * time.Hour

	// SlotWindowDays number of UTC calendar days the 24h window can span
	SlotWindowDays = 2
)

// DefaultOpenHour fallback hour for missing or malformed pitch operating times
const DefaultOpenHour = 8

// JobBatchSize maximum number of due jobs processed per reconciler run
const JobBatchSize = 100

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
