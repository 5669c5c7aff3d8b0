package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/api/middleware"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
)

type stubService struct {
	booking *models.BookingResponse
	err     error

	gotBookingID int64
	gotUserID    int64
}

func (s *stubService) GetByID(_ context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.gotBookingID = bookingID
	s.gotUserID = userID
	return s.booking, s.err
}

func serve(svc BookingService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/test-drives/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_GetBooking(t *testing.T) {
	svc := &stubService{booking: &models.BookingResponse{ID: 3, UserID: 7, CarID: 2}}

	rec := serve(svc, "/api/v1/test-drives/3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.gotBookingID)
	assert.Equal(t, int64(7), svc.gotUserID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["id"])
	assert.EqualValues(t, 2, body["carId"])
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/test-drives/abc").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: bookings.ErrBookingNotFound}, "/api/v1/test-drives/3").Code)
	assert.Equal(t, http.StatusForbidden, serve(&stubService{err: bookings.ErrAccessDenied}, "/api/v1/test-drives/3").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: errors.New("db down")}, "/api/v1/test-drives/3").Code)
}
