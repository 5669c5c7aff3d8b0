package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCarID = "invalid car ID"
	msgMissingDate  = "date is required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgPastDate     = "date is in the past"
	msgCarNotFound  = "car not found"
)

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

// Handle GET /api/v1/cars/{carId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := handlers.PathInt64(r, "carId")
	if err != nil {
		h.logger.Warn("GET /cars/{id}/available-slots - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /cars/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{CarID: carID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/available-slots - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("GET /cars/{id}/available-slots - Failed to compute slots: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
