package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создаёт бронирование, генерируя id и временные метки
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetActiveFutureByUser получает активные будущие бронирования пользователя
	GetActiveFutureByUser(ctx context.Context, userID string, now time.Time) ([]*domain.Booking, error)
	// GetActiveBySlotHour получает активные бронирования площадки в часе слота
	GetActiveBySlotHour(ctx context.Context, pitchID string, slotStart time.Time) ([]*domain.Booking, error)
}

// PitchRepository интерфейс репозитория площадок
type PitchRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Pitch, error)
}

// ProfileServiceClient интерфейс клиента identity-провайдера
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID string) (*profileservice.Profile, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// DoSerializable выполняет функцию в транзакции уровня SERIALIZABLE
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
