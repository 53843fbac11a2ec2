package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-PitchBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PitchID         string  `json:"pitchId"`
	SlotDatetime    string  `json:"slotDatetime"`              // ISO 8601, начало часа
	SlotDatetimeEnd *string `json:"slotDatetimeEnd,omitempty"` // опционально, ровно час после начала
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	PitchID         string `json:"pitchId"`
	SlotDatetime    string `json:"slotDatetime"`
	SlotDatetimeEnd string `json:"slotDatetimeEnd"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (createBooking.Request, error) {
	slotStart, err := time.Parse(time.RFC3339, r.SlotDatetime)
	if err != nil {
		return createBooking.Request{}, err
	}

	req := createBooking.Request{
		UserID:    userID,
		PitchID:   r.PitchID,
		SlotStart: slotStart,
	}

	if r.SlotDatetimeEnd != nil {
		slotEnd, err := time.Parse(time.RFC3339, *r.SlotDatetimeEnd)
		if err != nil {
			return createBooking.Request{}, err
		}
		req.SlotEnd = &slotEnd
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := resp.Booking

	return &BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		PitchID:         booking.PitchID,
		SlotDatetime:    booking.SlotDatetime.UTC().Format(time.RFC3339),
		SlotDatetimeEnd: booking.EffectiveEnd().UTC().Format(time.RFC3339),
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       booking.UpdatedAt.Format(time.RFC3339),
	}
}
