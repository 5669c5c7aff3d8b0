package book_test_drive

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	"github.com/m04kA/SMC-TestDriveService/internal/api/middleware"
	bookTestDrive "github.com/m04kA/SMC-TestDriveService/internal/usecase/book_test_drive"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid bookingDate format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid booking data"
	msgCarNotFound        = "car not found"
	msgCarNotAvailable    = "this car is not available for test drives"
	msgInvalidBookingDate = "booking date is in the past"
	msgDealershipClosed   = "the dealership is closed on the selected date"
	msgInvalidTimeSlot    = "a test drive slot must be one full hour starting on the hour"
	msgTooLateToBook      = "this time slot has already started"
	msgSlotNotAvailable   = "this time slot is no longer available"
)

type Handler struct {
	useCase BookTestDriveUseCase
	logger  Logger
}

func NewHandler(useCase BookTestDriveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/test-drives
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BookTestDriveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /test-drives - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /test-drives - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookTestDrive.ErrSlotNotAvailable):
			h.logger.Warn("POST /test-drives - Slot not available: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookTestDrive.ErrCarNotFound):
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, bookTestDrive.ErrCarNotAvailable):
			handlers.RespondConflict(w, msgCarNotAvailable)

		case errors.Is(err, bookTestDrive.ErrDealershipClosed):
			handlers.RespondBadRequest(w, msgDealershipClosed)

		case errors.Is(err, bookTestDrive.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, bookTestDrive.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, bookTestDrive.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, bookTestDrive.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /test-drives - Failed to book: user_id=%d, car_id=%d, error=%v", userID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /test-drives - Booked: booking_id=%d, user_id=%d, car_id=%d", result.ID, userID, result.CarID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.SuccessResponse{
		Success: true,
		Data:    FromUseCaseResponse(result),
	})
}
