package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
	getSlots "github.com/m04kA/SMC-PitchBookingService/internal/usecase/get_available_slots"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET|POST /api/v1/available-slots
// GET принимает фильтр площадки query-параметром pitch_id,
// POST - полем pitchId в теле запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := getSlots.Request{}

	switch r.Method {
	case http.MethodPost:
		if r.ContentLength > 0 {
			var req GetSlotsRequest
			if err := handlers.DecodeJSON(r, &req); err != nil {
				h.logger.Warn("POST /available-slots - Invalid request body: %v", err)
				handlers.RespondBadRequest(w, msgInvalidRequestBody)
				return
			}
			useCaseReq.PitchID = req.PitchID
		}
	default:
		if pitchID := r.URL.Query().Get("pitch_id"); pitchID != "" {
			useCaseReq.PitchID = &pitchID
		}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("%s /available-slots - Failed to generate slots: %v", r.Method, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
