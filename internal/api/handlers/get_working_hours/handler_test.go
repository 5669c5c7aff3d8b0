package get_working_hours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/service/dealership/models"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
)

type stubService struct {
	resp *models.WorkingHoursResponse
	err  error
}

func (s *stubService) GetWorkingHours(context.Context) (*models.WorkingHoursResponse, error) {
	return s.resp, s.err
}

func serve(svc DealershipService) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dealership/working-hours", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandler_GetWorkingHours(t *testing.T) {
	svc := &stubService{resp: &models.WorkingHoursResponse{
		DealershipName: "Main Street Motors",
		WorkingHours: []models.WorkingHours{
			{DayOfWeek: "MONDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
			{DayOfWeek: "SUNDAY", IsOpen: false},
		},
	}}

	rec := serve(svc)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.WorkingHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Main Street Motors", body.DealershipName)
	require.Len(t, body.WorkingHours, 2)
	assert.Equal(t, "09:00", body.WorkingHours[0].OpenTime)
	assert.False(t, body.WorkingHours[1].IsOpen)
	assert.NotContains(t, rec.Body.String(), `"closeTime":""`)
}

func TestHandler_Error(t *testing.T) {
	rec := serve(&stubService{err: errors.New("db down")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
