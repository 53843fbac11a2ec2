package get_pitches

import (
	"context"

	"github.com/m04kA/SMC-PitchBookingService/internal/service/pitches/models"
)

type PitchService interface {
	List(ctx context.Context) (*models.PitchListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
