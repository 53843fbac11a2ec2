package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByPitch получает все активные бронирования площадки
	GetActiveByPitch(ctx context.Context, pitchID string) ([]*domain.Booking, error)
}

// PitchRepository интерфейс репозитория площадок
type PitchRepository interface {
	List(ctx context.Context) ([]*domain.Pitch, error)
	GetByID(ctx context.Context, id string) (*domain.Pitch, error)
}

// ProfileServiceClient интерфейс клиента identity-провайдера
type ProfileServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, userID string) (*profileservice.Profile, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
