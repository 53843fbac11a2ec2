package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	bookingstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/booking"
	pitchstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/pitch"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
)

// UseCase создание бронирования с гарантиями отсутствия двойных броней
type UseCase struct {
	bookingRepo   BookingRepository
	pitchRepo     PitchRepository
	profileClient ProfileServiceClient
	txManager     TxManager
	timeProvider  TimeProvider
	logger        Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	pitchRepo PitchRepository,
	profileClient ProfileServiceClient,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		pitchRepo:     pitchRepo,
		profileClient: profileClient,
		txManager:     txManager,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute создаёт бронирование. Проверки занятости слота и активной брони
// пользователя выполняются в SERIALIZABLE-транзакции, частичные уникальные
// индексы в БД служат последним рубежом при гонках.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := uc.checkUserApproved(ctx, req.UserID); err != nil {
		return nil, err
	}

	if _, err := uc.pitchRepo.GetByID(ctx, req.PitchID); err != nil {
		if errors.Is(err, pitchstore.ErrPitchNotFound) {
			return nil, fmt.Errorf("%w: pitch %s", ErrPitchNotFound, req.PitchID)
		}
		return nil, fmt.Errorf("%w: Execute - failed to load pitch: %v", ErrInternal, err)
	}

	slotStart := req.SlotStart.UTC()
	slotEnd := slotStart.Add(domain.SlotDuration)

	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		now := uc.timeProvider.Now().UTC()
		if !slotStart.After(now) {
			return fmt.Errorf("%w: slot starts at %s", ErrSlotInPast, slotStart.Format("2006-01-02T15:04:05Z07:00"))
		}

		existing, err := uc.bookingRepo.GetActiveFutureByUser(ctx, req.UserID, now)
		if err != nil {
			return fmt.Errorf("%w: Execute - failed to check user bookings: %v", ErrInternal, err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: booking %s", ErrDuplicateActiveBooking, existing[0].ID)
		}

		taken, err := uc.bookingRepo.GetActiveBySlotHour(ctx, req.PitchID, slotStart)
		if err != nil {
			return fmt.Errorf("%w: Execute - failed to check slot: %v", ErrInternal, err)
		}
		if len(taken) > 0 {
			return ErrSlotAlreadyBooked
		}

		created, err = uc.bookingRepo.Create(ctx, &domain.Booking{
			UserID:          req.UserID,
			PitchID:         req.PitchID,
			SlotDatetime:    slotStart,
			SlotDatetimeEnd: &slotEnd,
			Status:          domain.StatusActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingstore.ErrSlotTaken):
				return ErrSlotAlreadyBooked
			case errors.Is(err, bookingstore.ErrUserHasActiveBooking):
				return ErrDuplicateActiveBooking
			}
			return fmt.Errorf("%w: Execute - failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: user %s booked pitch %s at %s (booking %s)",
		created.UserID, created.PitchID, created.SlotDatetime.Format("2006-01-02T15:04:05Z07:00"), created.ID)

	return &Response{Booking: created}, nil
}

// checkUserApproved требует подтверждённый профиль в identity-провайдере
func (uc *UseCase) checkUserApproved(ctx context.Context, userID string) error {
	profile, err := uc.profileClient.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			return fmt.Errorf("%w: profile not found for user %s", ErrUserNotApproved, userID)
		}
		return fmt.Errorf("%w: Execute - failed to load profile: %v", ErrInternal, err)
	}
	if !profile.IsApproved() {
		return fmt.Errorf("%w: user %s has status %s", ErrUserNotApproved, userID, profile.Status)
	}
	return nil
}
