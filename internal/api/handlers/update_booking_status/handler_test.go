package update_booking_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/api/middleware"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
)

type recordingService struct {
	bookingID int64
	req       *models.UpdateStatusRequest
	err       error
}

func (s *recordingService) UpdateStatus(_ context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.bookingID = bookingID
	s.req = req
	return s.err
}

func serve(svc BookingService, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/admin/test-drives/{bookingId}/status", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_UpdateStatus(t *testing.T) {
	svc := &recordingService{}

	rec := serve(svc, "/api/v1/admin/test-drives/5/status", `{"status":"CONFIRMED"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), svc.bookingID)
	require.NotNil(t, svc.req)
	assert.Equal(t, int64(1), svc.req.UserID)
	assert.EqualValues(t, "CONFIRMED", svc.req.Status)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&recordingService{}, "/api/v1/admin/test-drives/0/status", `{"status":"CONFIRMED"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&recordingService{}, "/api/v1/admin/test-drives/5/status", `not json`).Code)

	tests := []struct {
		err    error
		status int
	}{
		{err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{err: bookings.ErrInvalidInput, status: http.StatusBadRequest},
		{err: bookings.ErrInvalidTransition, status: http.StatusConflict},
		{err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := serve(&recordingService{err: tt.err}, "/api/v1/admin/test-drives/5/status", `{"status":"COMPLETED"}`)
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
