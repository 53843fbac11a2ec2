package bookings

import (
	"context"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	CancelByOwner(ctx context.Context, id string, userID string) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// ProfileServiceClient интерфейс клиента identity-провайдера
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID string) (*profileservice.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
