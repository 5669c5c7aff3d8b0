package get_all_bookings

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/api/handlers"
	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings/models"
)

// parseQuery reads carId, startDate, endDate, status, search and includeInactive
func parseQuery(r *http.Request) (*models.GetAllBookingsRequest, error) {
	req := &models.GetAllBookingsRequest{
		Status: handlers.QueryString(r, "status"),
		Search: handlers.QueryString(r, "search"),
	}

	if v := handlers.QueryString(r, "carId"); v != nil {
		carID, err := strconv.ParseInt(*v, 10, 64)
		if err != nil || carID <= 0 {
			return nil, fmt.Errorf("invalid carId %q", *v)
		}
		req.CarID = &carID
	}

	var err error
	if req.StartDate, err = parseDate(r, "startDate"); err != nil {
		return nil, err
	}
	if req.EndDate, err = parseDate(r, "endDate"); err != nil {
		return nil, err
	}

	if v := handlers.QueryString(r, "includeInactive"); v != nil {
		if req.IncludeInactive, err = strconv.ParseBool(*v); err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q", *v)
		}
	}

	return req, nil
}

func parseDate(r *http.Request, name string) (*time.Time, error) {
	v := handlers.QueryString(r, name)
	if v == nil {
		return nil, nil
	}
	d, err := time.Parse(domain.DateFormat, *v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, *v)
	}
	return &d, nil
}
