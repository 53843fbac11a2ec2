package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

// Request параметры создания бронирования
type Request struct {
	UserID    string
	PitchID   string
	SlotStart time.Time
	SlotEnd   *time.Time // nil - час от начала слота
}

// Response созданное бронирование
type Response struct {
	Booking *domain.Booking
}
