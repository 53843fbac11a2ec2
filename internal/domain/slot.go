package domain

import (
	"fmt"
	"time"
)

// VirtualSlot represents a derived, non-persisted one-hour booking
// opportunity. Slots are computed fresh on every query and never stored.
type VirtualSlot struct {
	ID            string
	PitchID       string
	PitchName     string
	DatetimeStart time.Time
	DatetimeEnd   time.Time
	IsAvailable   bool

	// Booker annotations, present only when the slot carries an active booking
	BookerID   *string
	BookerName *string
}

// SlotID derives the canonical slot identifier from the pitch and the slot
// start instant. Identifiers are derived, never persisted.
func SlotID(pitchID string, start time.Time) string {
	return fmt.Sprintf("%s-%s", pitchID, start.UTC().Format(time.RFC3339))
}
