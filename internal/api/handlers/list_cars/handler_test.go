package list_cars

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	listCars "github.com/m04kA/SMC-TestDriveService/internal/usecase/list_cars"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
)

type stubUseCase struct {
	resp *listCars.Response
	err  error

	got *listCars.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *listCars.Request) (*listCars.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc ListCarsUseCase, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandler_ListCars(t *testing.T) {
	uc := &stubUseCase{resp: &listCars.Response{Cars: []*domain.Car{
		{ID: 1, Make: "Toyota", Model: "Camry", Year: 2024, Price: 31000, Status: domain.CarStatusAvailable},
	}}}

	rec := serve(uc, "/api/v1/admin/cars?search=toy")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Search)
	assert.Equal(t, "toy", *uc.got.Search)

	var body CarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cars, 1)
	assert.Equal(t, "Camry", body.Cars[0].Model)
	assert.Equal(t, "AVAILABLE", body.Cars[0].Status)
}

func TestHandler_NoSearch(t *testing.T) {
	uc := &stubUseCase{resp: &listCars.Response{}}

	rec := serve(uc, "/api/v1/admin/cars")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Search)
	assert.JSONEq(t, `{"cars":[]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: listCars.ErrInvalidInput, status: http.StatusBadRequest},
		{err: listCars.ErrInternal, status: http.StatusInternalServerError},
		{err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := serve(&stubUseCase{err: tt.err}, "/api/v1/admin/cars?search=x")
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
