package pitches

import (
	"context"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
)

// PitchRepository интерфейс репозитория площадок
type PitchRepository interface {
	List(ctx context.Context) ([]*domain.Pitch, error)
	GetByID(ctx context.Context, id string) (*domain.Pitch, error)
	Create(ctx context.Context, pitch *domain.Pitch) (*domain.Pitch, error)
}

// ProfileServiceClient интерфейс клиента identity-провайдера
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID string) (*profileservice.Profile, error)
}

// PitchCache интерфейс кэша площадок
type PitchCache interface {
	Flush()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
