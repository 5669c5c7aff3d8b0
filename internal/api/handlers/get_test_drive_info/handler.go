package get_test_drive_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	getTestDriveInfo "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_test_drive_info"
)

const (
	msgInvalidCarID = "invalid car ID"
	msgCarNotFound  = "car not found"
)

type Handler struct {
	useCase GetTestDriveInfoUseCase
	logger  Logger
}

func NewHandler(useCase GetTestDriveInfoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/test-drive-info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := handlers.PathInt64(r, "carId")
	if err != nil {
		h.logger.Warn("GET /cars/{id}/test-drive-info - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	info, err := h.useCase.Execute(r.Context(), &getTestDriveInfo.Request{CarID: carID})
	if err != nil {
		switch {
		case errors.Is(err, getTestDriveInfo.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/test-drive-info - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getTestDriveInfo.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("GET /cars/{id}/test-drive-info - Failed to load: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(info))
}
