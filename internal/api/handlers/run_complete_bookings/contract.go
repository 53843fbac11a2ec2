package run_complete_bookings

import (
	"context"

	completeBookings "github.com/m04kA/SMC-PitchBookingService/internal/usecase/complete_bookings"
)

type CompleteBookingsUseCase interface {
	Execute(ctx context.Context) (*completeBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
