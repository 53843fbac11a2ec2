package get_available_slots

import (
	"time"

	getSlots "github.com/m04kA/SMC-PitchBookingService/internal/usecase/get_available_slots"
)

// GetSlotsRequest HTTP request model (тело POST запроса)
type GetSlotsRequest struct {
	PitchID *string `json:"pitchId,omitempty"`
}

// SlotResponse HTTP модель виртуального слота
type SlotResponse struct {
	ID            string  `json:"id"`
	PitchID       string  `json:"pitchId"`
	PitchName     string  `json:"pitchName"`
	DatetimeStart string  `json:"datetimeStart"` // ISO 8601 UTC
	DatetimeEnd   string  `json:"datetimeEnd"`
	IsAvailable   bool    `json:"isAvailable"`
	BookerID      *string `json:"bookerId,omitempty"`
	BookerName    *string `json:"bookerName,omitempty"`
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotListResponse {
	out := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:            slot.ID,
			PitchID:       slot.PitchID,
			PitchName:     slot.PitchName,
			DatetimeStart: slot.DatetimeStart.UTC().Format(time.RFC3339),
			DatetimeEnd:   slot.DatetimeEnd.UTC().Format(time.RFC3339),
			IsAvailable:   slot.IsAvailable,
			BookerID:      slot.BookerID,
			BookerName:    slot.BookerName,
		})
	}

	return out
}
