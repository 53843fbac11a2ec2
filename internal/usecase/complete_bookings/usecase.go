package complete_bookings

import (
	"context"
	"errors"
	"fmt"
)

// ErrInternal внутренняя ошибка
var ErrInternal = errors.New("internal error")

// Response результат прохода завершения
type Response struct {
	Updated int64
}

// UseCase идемпотентный проход, завершающий истёкшие активные бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute завершает активные бронирования, чьё эффективное время окончания
// строго раньше текущего. Отбор консервативный: бронь ровно на границе
// остаётся активной до следующего прохода.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now().UTC()

	active, err := uc.bookingRepo.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to load active bookings: %v", ErrInternal, err)
	}

	expired := make([]string, 0, len(active))
	for _, booking := range active {
		if booking.EffectiveEnd().Before(now) {
			expired = append(expired, booking.ID)
		}
	}

	if len(expired) == 0 {
		return &Response{Updated: 0}, nil
	}

	updated, err := uc.bookingRepo.CompleteBatch(ctx, expired)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to complete bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("CompleteBookings: completed %d of %d expired bookings", updated, len(expired))

	return &Response{Updated: updated}, nil
}
