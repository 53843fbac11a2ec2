package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	completeBookings "github.com/m04kA/SMC-PitchBookingService/internal/usecase/complete_bookings"
	processJobs "github.com/m04kA/SMC-PitchBookingService/internal/usecase/process_booking_jobs"
	"github.com/m04kA/SMC-PitchBookingService/pkg/metrics"
)

const (
	jobNameSweep = "complete_bookings"
	jobNameQueue = "process_booking_jobs"
)

// CompleteBookingsUseCase интерфейс прохода завершения
type CompleteBookingsUseCase interface {
	Execute(ctx context.Context) (*completeBookings.Response, error)
}

// ProcessBookingJobsUseCase интерфейс обработчика очереди
type ProcessBookingJobsUseCase interface {
	Execute(ctx context.Context) (*processJobs.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодический запуск фоновых проходов завершения бронирований
type Scheduler struct {
	cron          *cron.Cron
	sweep         CompleteBookingsUseCase
	queue         ProcessBookingJobsUseCase
	sweepInterval time.Duration
	queueInterval time.Duration
	metrics       *metrics.Metrics
	logger        Logger
}

// New создает планировщик. metrics может быть nil, если метрики выключены
func New(
	sweep CompleteBookingsUseCase,
	queue ProcessBookingJobsUseCase,
	sweepInterval time.Duration,
	queueInterval time.Duration,
	m *metrics.Metrics,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		sweep:         sweep,
		queue:         queue,
		sweepInterval: sweepInterval,
		queueInterval: queueInterval,
		metrics:       m,
		logger:        logger,
	}
}

// Start регистрирует задачи и запускает планировщик.
// Оба прохода выполняются сразу при старте, не дожидаясь первого тика
func (s *Scheduler) Start(ctx context.Context) error {
	sweepSpec := fmt.Sprintf("@every %s", s.sweepInterval)
	if _, err := s.cron.AddFunc(sweepSpec, func() { s.runSweep(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", jobNameSweep, err)
	}

	queueSpec := fmt.Sprintf("@every %s", s.queueInterval)
	if _, err := s.cron.AddFunc(queueSpec, func() { s.runQueue(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", jobNameQueue, err)
	}

	go s.runSweep(ctx)
	go s.runQueue(ctx)

	s.cron.Start()
	s.logger.Info("Scheduler started: %s every %s, %s every %s",
		jobNameSweep, s.sweepInterval, jobNameQueue, s.queueInterval)

	return nil
}

// Stop останавливает планировщик и дожидается завершения текущих задач
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runSweep(ctx context.Context) {
	result, err := s.sweep.Execute(ctx)
	if err != nil {
		s.logger.Error("Scheduler: %s failed: %v", jobNameSweep, err)
		s.observeRun(jobNameSweep, "error")
		return
	}

	s.observeRun(jobNameSweep, "success")
	if s.metrics != nil && result.Updated > 0 {
		s.metrics.BookingsCompletedTotal.Add(float64(result.Updated))
	}
}

func (s *Scheduler) runQueue(ctx context.Context) {
	if _, err := s.queue.Execute(ctx); err != nil {
		s.logger.Error("Scheduler: %s failed: %v", jobNameQueue, err)
		s.observeRun(jobNameQueue, "error")
		return
	}

	s.observeRun(jobNameQueue, "success")
}

func (s *Scheduler) observeRun(job, status string) {
	if s.metrics != nil {
		s.metrics.JobRunsTotal.WithLabelValues(job, status).Inc()
	}
}
