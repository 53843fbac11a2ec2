package pitches

import (
	"context"
	"errors"
	"fmt"

	pitchRepo "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/pitch"
	profileClient "github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-PitchBookingService/internal/service/pitches/models"
)

// Service сервис для работы с площадками
type Service struct {
	pitchRepo     PitchRepository
	profileClient ProfileServiceClient
	pitchCache    PitchCache
	logger        Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	pitchRepo PitchRepository,
	profileClient ProfileServiceClient,
	pitchCache PitchCache,
	logger Logger,
) *Service {
	return &Service{
		pitchRepo:     pitchRepo,
		profileClient: profileClient,
		pitchCache:    pitchCache,
		logger:        logger,
	}
}

// List получает все площадки, отсортированные по порядку показа
func (s *Service) List(ctx context.Context) (*models.PitchListResponse, error) {
	pitches, err := s.pitchRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPitchList(pitches), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PitchResponse, error) {
	pitch, err := s.pitchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pitchRepo.ErrPitchNotFound) {
			s.logger.Warn("GetByID: pitch id=%s not found", id)
			return nil, ErrPitchNotFound
		}
		s.logger.Error("GetByID: repository error for pitch id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPitch(pitch), nil
}

// Create создаёт площадку
// Доступно только администраторам. Сбрасывает кэш площадок,
// чтобы новая площадка сразу попала в выдачу слотов
func (s *Service) Create(ctx context.Context, req *models.CreatePitchRequest) (*models.PitchResponse, error) {
	s.logger.Info("Create: creating pitch %q by user=%s", req.Name, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if req.Name == "" {
		s.logger.Warn("Create: empty pitch name from user=%s", req.UserID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	pitch, err := req.ToDomainPitch()
	if err != nil {
		s.logger.Warn("Create: invalid operating hours for pitch %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: invalid operating hours: %v", ErrInvalidInput, err)
	}

	created, err := s.pitchRepo.Create(ctx, pitch)
	if err != nil {
		s.logger.Error("Create: repository error for pitch %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.pitchCache.Flush()

	s.logger.Info("Create: pitch id=%s created", created.ID)
	return models.FromDomainPitch(created), nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	profile, err := s.profileClient.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			s.logger.Warn("checkAdminAccess: profile for user=%s not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get profile for user=%s: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get profile: %v", ErrInternal, err)
	}

	if !profile.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user=%s is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
