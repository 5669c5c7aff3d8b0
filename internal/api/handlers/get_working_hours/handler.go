package get_working_hours

import (
	"net/http"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
)

type Handler struct {
	service DealershipService
	logger  Logger
}

func NewHandler(service DealershipService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dealership/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dealership/working-hours - Failed to get working hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
