package run_process_jobs

import (
	"context"

	processJobs "github.com/m04kA/SMC-PitchBookingService/internal/usecase/process_booking_jobs"
)

type ProcessBookingJobsUseCase interface {
	Execute(ctx context.Context) (*processJobs.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
