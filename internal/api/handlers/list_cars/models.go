package list_cars

import listCars "github.com/m04kA/SMC-TestDriveService/internal/usecase/list_cars"

type CarResponse struct {
	ID     int64   `json:"id"`
	Make   string  `json:"make"`
	Model  string  `json:"model"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

func FromUseCaseResponse(resp *listCars.Response) *CarListResponse {
	out := &CarListResponse{Cars: make([]CarResponse, 0, len(resp.Cars))}
	for _, c := range resp.Cars {
		out.Cars = append(out.Cars, CarResponse{
			ID:     c.ID,
			Make:   c.Make,
			Model:  c.Model,
			Year:   c.Year,
			Price:  c.Price,
			Status: string(c.Status),
		})
	}
	return out
}
