package run_complete_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
)

// CompleteBookingsResponse результат прохода завершения
type CompleteBookingsResponse struct {
	Updated int64 `json:"updated"`
}

type Handler struct {
	useCase CompleteBookingsUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/jobs/complete-bookings
// Ручной запуск прохода завершения, дублирует планировщик
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /jobs/complete-bookings - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CompleteBookingsResponse{Updated: result.Updated})
}
