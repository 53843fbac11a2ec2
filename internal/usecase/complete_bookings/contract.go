package complete_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetAllActive получает все активные бронирования
	GetAllActive(ctx context.Context) ([]*domain.Booking, error)
	// CompleteBatch переводит активные бронирования в completed одним запросом
	CompleteBatch(ctx context.Context, ids []string) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
