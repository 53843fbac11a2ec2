package get_available_slots

import (
	"context"
	"errors"

	gocache "github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	pitchstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/pitch"
)

const (
	cacheKeyAllPitches = "pitches:all"
	cacheKeyPitch      = "pitch:"
)

// UseCase генерация виртуальных слотов в скользящем окне 24 часов
type UseCase struct {
	bookingRepo   BookingRepository
	pitchRepo     PitchRepository
	profileClient ProfileServiceClient
	pitchCache    *gocache.Cache
	timeProvider  TimeProvider
	logger        Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	pitchRepo PitchRepository,
	profileClient ProfileServiceClient,
	pitchCache *gocache.Cache,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		pitchRepo:     pitchRepo,
		profileClient: profileClient,
		pitchCache:    pitchCache,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute возвращает слоты окна [firstShowable, now+24h), отсортированные
// по времени начала. Ошибки чтения бронирований деградируют до полностью
// свободной площадки, ошибки чтения площадок - до пустого списка.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	now := uc.timeProvider.Now().UTC()
	firstShowable := firstShowableAfter(now)
	cutoff := now.Add(domain.SlotWindow)

	pitches := uc.loadPitches(ctx, req.PitchID)

	allSlots := make([]domain.VirtualSlot, 0, len(pitches)*domain.SlotWindowHours)
	for _, pitch := range pitches {
		bookings, err := uc.bookingRepo.GetActiveByPitch(ctx, pitch.ID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to load bookings for pitch %s, degrading to all-available: %v", pitch.ID, err)
			bookings = nil
		}
		allSlots = append(allSlots, generatePitchSlots(pitch, firstShowable, cutoff, bookings)...)
	}

	sortSlotsByStart(allSlots)

	return uc.buildResponse(ctx, allSlots), nil
}

// loadPitches возвращает площадки для генерации: одну по фильтру либо все.
// Любая ошибка чтения приводит к пустому списку, не к отказу запроса.
func (uc *UseCase) loadPitches(ctx context.Context, pitchID *string) []*domain.Pitch {
	if pitchID != nil && *pitchID != "" {
		pitch, err := uc.cachedPitch(ctx, *pitchID)
		if err != nil {
			if !errors.Is(err, pitchstore.ErrPitchNotFound) {
				uc.logger.Error("GetAvailableSlots: failed to load pitch %s: %v", *pitchID, err)
			}
			return nil
		}
		return []*domain.Pitch{pitch}
	}

	if cached, ok := uc.pitchCache.Get(cacheKeyAllPitches); ok {
		return cached.([]*domain.Pitch)
	}

	pitches, err := uc.pitchRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load pitches: %v", err)
		return nil
	}
	uc.pitchCache.SetDefault(cacheKeyAllPitches, pitches)

	return pitches
}

func (uc *UseCase) cachedPitch(ctx context.Context, pitchID string) (*domain.Pitch, error) {
	key := cacheKeyPitch + pitchID
	if cached, ok := uc.pitchCache.Get(key); ok {
		return cached.(*domain.Pitch), nil
	}

	pitch, err := uc.pitchRepo.GetByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}
	uc.pitchCache.SetDefault(key, pitch)

	return pitch, nil
}

// buildResponse аннотирует занятые слоты именами бронирующих.
// Профили запрашиваются один раз на пользователя за запрос.
func (uc *UseCase) buildResponse(ctx context.Context, slots []domain.VirtualSlot) *Response {
	bookerNames := make(map[string]*string)

	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		out := Slot{
			ID:            slot.ID,
			PitchID:       slot.PitchID,
			PitchName:     slot.PitchName,
			DatetimeStart: slot.DatetimeStart,
			DatetimeEnd:   slot.DatetimeEnd,
			IsAvailable:   slot.IsAvailable,
			BookerID:      slot.BookerID,
		}
		if slot.BookerID != nil {
			out.BookerName = uc.bookerName(ctx, bookerNames, *slot.BookerID)
		}
		result = append(result, out)
	}

	return &Response{Slots: result}
}

func (uc *UseCase) bookerName(ctx context.Context, cache map[string]*string, userID string) *string {
	if name, ok := cache[userID]; ok {
		return name
	}

	var name *string
	profile, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, userID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to resolve booker name for user %s: %v", userID, err)
	} else if profile != nil && profile.FullName != "" {
		fullName := profile.FullName
		name = &fullName
	}

	cache[userID] = name
	return name
}
