package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-web/internal/domain/gateway/cache"
	"go-web/internal/domain/model"
	"go-web/internal/domain/usecase/health"
)

type stubDBGateway struct {
	calls int
	probe func() error
}

func (s *stubDBGateway) Probe(context.Context) error {
	s.calls++
	return s.probe()
}

func (s *stubDBGateway) Client() string { return "stub" }

func newServer(gateway *stubDBGateway) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	useCase := health.NewHealthUseCase(gateway, cache.DisabledHealthCacheGateway{})
	NewDBHealthController(api, useCase).InitDBHealthRoutes()
	NewHealthController(api, useCase).InitHealthRoutes()
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCheckDatabase(t *testing.T) {
	tests := []struct {
		name   string
		probe  func() error
		status int
		body   string
	}{
		{
			name:   "reachable",
			probe:  func() error { return nil },
			status: http.StatusOK,
			body:   `{"ok":true}`,
		},
		{
			name:   "connection refused",
			probe:  func() error { return errors.New("connection refused") },
			status: http.StatusInternalServerError,
			body:   `{"ok":false,"error":"connection refused"}`,
		},
		{
			name:   "error with empty message",
			probe:  func() error { return errors.New("") },
			status: http.StatusInternalServerError,
			body:   `{"ok":false,"error":""}`,
		},
		{
			name:   "non error failure",
			probe:  func() error { panic("connection refused") },
			status: http.StatusInternalServerError,
			body:   `{"ok":false,"error":"Unknown error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &stubDBGateway{probe: tt.probe}

			rec := get(newServer(gateway), "/api/db/health")

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
			assert.Equal(t, 1, gateway.calls)
		})
	}
}

func TestCheckDatabaseIsIdempotent(t *testing.T) {
	gateway := &stubDBGateway{probe: func() error { return nil }}
	e := newServer(gateway)

	for i := 0; i < 3; i++ {
		rec := get(e, "/api/db/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	}
	assert.Equal(t, 3, gateway.calls)
}

func TestCheckHealth(t *testing.T) {
	gateway := &stubDBGateway{probe: func() error { return errors.New("refused") }}

	rec := get(newServer(gateway), "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"DOWN"`)
	assert.Contains(t, rec.Body.String(), `"message":"refused"`)
	assert.Contains(t, rec.Body.String(), `"cache":{"status":"`+string(model.StatusUnknown)+`"`)
}
