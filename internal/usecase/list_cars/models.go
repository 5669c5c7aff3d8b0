package list_cars

import "github.com/m04kA/SMC-TestDriveService/internal/domain"

// Request admin inventory listing, Search matches make or model
type Request struct {
	Search *string
}

// Response cars ordered by make, model and id
type Response struct {
	Cars []*domain.Car
}
