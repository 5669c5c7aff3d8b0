package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/cars/{carId}/available-slots", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{CarID: 42, Date: date}).Return(&getAvailableSlots.Response{
		CarID: 42,
		Date:  date,
		Slots: []domain.Slot{{
			ID:        "09:00-10:00",
			Label:     "09:00 - 10:00",
			StartTime: types.MustTimeString("09:00"),
			EndTime:   types.MustTimeString("10:00"),
		}},
	}, nil)

	rec := serve(uc, "/api/v1/cars/42/available-slots?date=2026-10-26")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"carId":42,"date":"2026-10-26","slots":[
		{"id":"09:00-10:00","label":"09:00 - 10:00","startTime":"09:00","endTime":"10:00"}]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	uc := &mockUseCase{}
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/cars/abc/available-slots?date=2026-10-26").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/cars/42/available-slots").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/cars/42/available-slots?date=tomorrow").Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	tests := []struct {
		err    error
		status int
	}{
		{err: getAvailableSlots.ErrCarNotFound, status: http.StatusNotFound},
		{err: getAvailableSlots.ErrInvalidDate, status: http.StatusBadRequest},
		{err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
		assert.Equal(t, tt.status, serve(uc, "/api/v1/cars/42/available-slots?date=2026-10-26").Code)
	}
}
