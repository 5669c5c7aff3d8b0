package domain

import "time"

// CarStatus availability of a car in the inventory
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusUnavailable CarStatus = "UNAVAILABLE"
	CarStatusSold        CarStatus = "SOLD"
)

// Car represents a vehicle in the dealership inventory
type Car struct {
	ID        int64
	Make      string
	Model     string
	Year      int
	Price     float64
	Status    CarStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeTestDriven returns true if test drives can be booked for the car
func (c *Car) CanBeTestDriven() bool {
	return c.Status == CarStatusAvailable
}

// Title returns "Make Model" for display and denormalization
func (c *Car) Title() string {
	return c.Make + " " + c.Model
}
