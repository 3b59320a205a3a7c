package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uc "github.com/m04kA/PSM-BookingService/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockUseCase struct {
	response *uc.Response
	err      error

	gotRequest *uc.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *uc.Request) (*uc.Response, error) {
	m.gotRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func newRouter(useCase *mockUseCase) *mux.Router {
	r := mux.NewRouter()
	handler := NewHandler(useCase, nopLogger{})
	r.HandleFunc("/api/v1/suppliers/{supplierId}/availability", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsGrid(t *testing.T) {
	useCase := &mockUseCase{response: &uc.Response{
		SupplierID: 7,
		From:       "2026-09-07",
		To:         "2026-09-08",
		Days: []uc.Day{
			{Date: "2026-09-07", Status: "available"},
			{Date: "2026-09-08", Status: "unavailable"},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/7/availability?from=2026-09-07&to=2026-09-08", nil)
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.gotRequest)
	assert.Equal(t, int64(7), useCase.gotRequest.SupplierID)
	assert.Equal(t, "2026-09-07", useCase.gotRequest.From.Format("2006-01-02"))

	var body uc.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Days, 2)
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"non-numeric supplier id", "/api/v1/suppliers/abc/availability?from=2026-09-07&to=2026-09-08"},
		{"missing from", "/api/v1/suppliers/7/availability?to=2026-09-08"},
		{"malformed to", "/api/v1/suppliers/7/availability?from=2026-09-07&to=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			newRouter(&mockUseCase{}).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_SupplierNotFound(t *testing.T) {
	useCase := &mockUseCase{err: uc.ErrSupplierNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/7/availability?from=2026-09-07&to=2026-09-08", nil)
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidRange(t *testing.T) {
	useCase := &mockUseCase{err: uc.ErrInvalidRange}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/7/availability?from=2026-09-08&to=2026-09-07", nil)
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
