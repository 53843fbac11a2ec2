package create_pitch

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PitchBookingService/internal/service/pitches"
	"github.com/m04kA/SMC-PitchBookingService/internal/service/pitches/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPitch       = "некорректные параметры площадки"
	msgAccessDenied       = "создание площадок доступно только администраторам"
)

type Handler struct {
	service PitchService
	logger  Logger
}

func NewHandler(service PitchService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/pitches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req models.CreatePitchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pitches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pitches.ErrInvalidInput):
			h.logger.Warn("POST /pitches - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPitch)

		case errors.Is(err, pitches.ErrAccessDenied):
			h.logger.Warn("POST /pitches - Access denied for user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /pitches - Failed to create pitch: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pitches - Pitch created: pitch_id=%s by user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
