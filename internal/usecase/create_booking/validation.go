package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

// validateRequest проверяет структурную корректность запроса
func validateRequest(req Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if req.PitchID == "" {
		return fmt.Errorf("%w: pitch_id is required", ErrValidation)
	}
	if req.SlotStart.IsZero() {
		return fmt.Errorf("%w: slot_datetime is required", ErrValidation)
	}

	start := req.SlotStart.UTC()
	if start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return fmt.Errorf("%w: slot_datetime must be aligned to the hour", ErrValidation)
	}

	if req.SlotEnd != nil {
		expected := start.Add(domain.SlotDuration)
		if !req.SlotEnd.UTC().Equal(expected) {
			return fmt.Errorf("%w: slot_datetime_end must be exactly one hour after slot_datetime", ErrValidation)
		}
	}

	return nil
}
