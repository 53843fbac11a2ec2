package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-PitchBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDatetime    = "некорректный формат времени слота, ожидается ISO 8601"
	msgValidation         = "некорректные параметры бронирования"
	msgSlotInPast         = "слот уже начался или прошёл"
	msgSlotAlreadyBooked  = "выбранный слот уже занят"
	msgDuplicateBooking   = "у вас уже есть активное бронирование"
	msgPitchNotFound      = "площадка не найдена"
	msgUserNotApproved    = "профиль не подтверждён, бронирование недоступно"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgInvalidRequestBody)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse slot datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%s, pitch_id=%s: %v", userID, req.PitchID, err)
			handlers.RespondBadRequest(w, msgValidation)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: user_id=%s, pitch_id=%s, slot=%s", userID, req.PitchID, req.SlotDatetime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: user_id=%s, pitch_id=%s, slot=%s", userID, req.PitchID, req.SlotDatetime)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrDuplicateActiveBooking):
			h.logger.Warn("POST /bookings - User already has active booking: user_id=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrPitchNotFound):
			h.logger.Warn("POST /bookings - Pitch not found: pitch_id=%s", req.PitchID)
			handlers.RespondNotFound(w, msgPitchNotFound)

		case errors.Is(err, createBooking.ErrUserNotApproved):
			h.logger.Warn("POST /bookings - User not approved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgUserNotApproved)

		case errors.Is(err, createBooking.ErrInternal):
			// Мутация идемпотентна по уникальным индексам, повтор безопасен
			h.logger.Error("POST /bookings - Store unavailable: user_id=%s, pitch_id=%s, error=%v", userID, req.PitchID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, pitch_id=%s, error=%v", userID, req.PitchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s, pitch_id=%s",
		result.Booking.ID, userID, req.PitchID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
