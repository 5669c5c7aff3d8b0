package list_cars

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	listCars "github.com/m04kA/SMC-TestDriveService/internal/usecase/list_cars"
)

const msgInvalidSearch = "search is too long"

type Handler struct {
	useCase ListCarsUseCase
	logger  Logger
}

func NewHandler(useCase ListCarsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/cars?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.useCase.Execute(r.Context(), &listCars.Request{Search: handlers.QueryString(r, "search")})
	if err != nil {
		if errors.Is(err, listCars.ErrInvalidInput) {
			h.logger.Warn("GET /admin/cars - Invalid search: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSearch)
			return
		}
		h.logger.Error("GET /admin/cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
