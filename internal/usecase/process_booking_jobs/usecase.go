package process_booking_jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	bookingstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/booking"
)

// ErrInternal внутренняя ошибка
var ErrInternal = errors.New("internal error")

// Response результат прохода обработчика задач
type Response struct {
	Processed int
}

// UseCase обработчик очереди отложенных задач завершения бронирований.
// Страхующий механизм на случай, если проход завершения пропустил бронь.
type UseCase struct {
	jobRepo      JobRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(jobRepo JobRepository, bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		jobRepo:      jobRepo,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute обрабатывает пачку созревших задач. Ошибка отдельной задачи
// логируется и не прерывает проход, задача остаётся pending до следующего
// запуска. Возвращает число помеченных обработанными задач.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now().UTC()

	jobs, err := uc.jobRepo.GetDuePending(ctx, now, domain.JobBatchSize)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to load due jobs: %v", ErrInternal, err)
	}

	processed := 0
	for _, job := range jobs {
		if err := uc.processJob(ctx, job); err != nil {
			uc.logger.Error("ProcessBookingJobs: job %s failed, will retry next run: %v", job.ID, err)
			continue
		}
		processed++
	}

	if len(jobs) > 0 {
		uc.logger.Info("ProcessBookingJobs: processed %d of %d due jobs", processed, len(jobs))
	}

	return &Response{Processed: processed}, nil
}

// processJob сверяет состояние бронирования и помечает задачу обработанной.
// Повторная обработка безопасна: завершённая или отменённая бронь статуса
// не меняет.
func (uc *UseCase) processJob(ctx context.Context, job *domain.BookingJob) error {
	booking, err := uc.bookingRepo.GetByID(ctx, job.BookingID)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			uc.logger.Warn("ProcessBookingJobs: booking %s for job %s not found, marking processed", job.BookingID, job.ID)
			return uc.jobRepo.MarkProcessed(ctx, job.ID)
		}
		return fmt.Errorf("failed to load booking %s: %w", job.BookingID, err)
	}

	if booking.IsActive() {
		if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCompleted); err != nil {
			return fmt.Errorf("failed to complete booking %s: %w", booking.ID, err)
		}
	}

	return uc.jobRepo.MarkProcessed(ctx, job.ID)
}
