package domain

import (
	"time"

	"github.com/m04kA/SMC-PitchBookingService/pkg/types"
)

// Pitch represents a bookable sports field with fixed daily operating hours
type Pitch struct {
	ID       string
	Name     string
	Location string
	Capacity int

	// OpenTime/CloseTime in "HH:MM"; CloseTime "24:00" means midnight of the
	// following day. Only the hour component participates in slot generation.
	OpenTime  types.TimeString
	CloseTime types.TimeString

	SortOrder int

	CreatedAt time.Time
}

// ParseHour extracts the hour component of a pitch operating time.
// Missing or malformed values fall back to DefaultOpenHour, matching the
// behaviour of legacy records that never carried hours.
func ParseHour(t types.TimeString) int {
	if t.IsZero() {
		return DefaultOpenHour
	}
	hour := t.Hour()
	if hour < 0 || hour > 24 {
		return DefaultOpenHour
	}
	return hour
}

// OperatingHours returns the [openHour, closeHour) generation range for the
// pitch. A close hour lexically before the open hour means the pitch closes
// on the following day, so it is shifted by 24.
func (p *Pitch) OperatingHours() (openHour, closeHour int) {
	openHour = ParseHour(p.OpenTime)
	closeHour = ParseHour(p.CloseTime)
	if closeHour < openHour {
		closeHour += 24
	}
	return openHour, closeHour
}
