package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a pitch booking for a single one-hour slot
type Booking struct {
	ID      string
	UserID  string
	PitchID string

	// SlotDatetime is the slot start instant (UTC, aligned to the hour)
	SlotDatetime time.Time
	// SlotDatetimeEnd is the slot end instant; may be absent for legacy rows
	SlotDatetimeEnd *time.Time

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in the active state
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsTerminal returns true if the booking is cancelled or completed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// EffectiveEnd returns the instant at which the booked slot ends.
// Rows without an explicit end are assumed to span one slot duration.
func (b *Booking) EffectiveEnd() time.Time {
	if b.SlotDatetimeEnd != nil {
		return *b.SlotDatetimeEnd
	}
	return b.SlotDatetime.Add(SlotDuration)
}

// MatchesSlotHour reports whether the booking occupies the slot starting at
// slotStart, compared by UTC year/month/day/hour. Slots are fixed at one hour
// so an exact-hour match is equivalent to interval overlap here.
func (b *Booking) MatchesSlotHour(slotStart time.Time) bool {
	bt := b.SlotDatetime.UTC()
	st := slotStart.UTC()
	return bt.Year() == st.Year() &&
		bt.Month() == st.Month() &&
		bt.Day() == st.Day() &&
		bt.Hour() == st.Hour()
}

// ValidStatuses all statuses a booking may carry
var ValidStatuses = []BookingStatus{
	StatusActive,
	StatusCancelled,
	StatusCompleted,
}
