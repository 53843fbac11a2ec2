package run_process_jobs

import (
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
)

// ProcessJobsResponse результат прохода обработчика очереди
type ProcessJobsResponse struct {
	Processed int `json:"processed"`
}

type Handler struct {
	useCase ProcessBookingJobsUseCase
	logger  Logger
}

func NewHandler(useCase ProcessBookingJobsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/jobs/process-booking-jobs
// Ручной запуск обработчика очереди отложенных задач
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /jobs/process-booking-jobs - Run failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ProcessJobsResponse{Processed: result.Processed})
}
