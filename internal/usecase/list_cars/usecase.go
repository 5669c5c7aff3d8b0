package list_cars

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

type UseCase struct {
	carRepo CarRepository
	logger  Logger
}

func NewUseCase(carRepo CarRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo: carRepo,
		logger:  logger,
	}
}

// Execute lists the inventory, optionally filtered by make/model substring
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var search *string
	if req.Search != nil {
		trimmed := strings.TrimSpace(*req.Search)
		if utf8.RuneCountInString(trimmed) > domain.MaxSearchLength {
			uc.logger.Warn("ListCars: search is longer than %d characters", domain.MaxSearchLength)
			return nil, fmt.Errorf("%w: search must not exceed %d characters", ErrInvalidInput, domain.MaxSearchLength)
		}
		if trimmed != "" {
			search = &trimmed
		}
	}

	cars, err := uc.carRepo.List(ctx, search)
	if err != nil {
		uc.logger.Error("ListCars: failed to list cars: %v", err)
		return nil, fmt.Errorf("%w: failed to list cars: %v", ErrInternal, err)
	}

	if cars == nil {
		cars = []*domain.Car{}
	}

	return &Response{Cars: cars}, nil
}
