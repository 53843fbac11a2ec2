package process_booking_jobs

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

// JobRepository интерфейс репозитория отложенных задач
type JobRepository interface {
	// GetDuePending получает созревшие pending-задачи, старейшие первыми
	GetDuePending(ctx context.Context, now time.Time, limit uint64) ([]*domain.BookingJob, error)
	// MarkProcessed помечает pending-задачу обработанной
	MarkProcessed(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus переводит бронирование в новый статус
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
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
