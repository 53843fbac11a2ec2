package get_pitches

import (
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
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

// Handle GET /api/v1/pitches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /pitches - Failed to fetch pitches: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
