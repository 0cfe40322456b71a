package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

func TestIdentity(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.AccountContextFrom(r.Context())
		if ok {
			w.Header().Set("X-Test-Identity", identity)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := middleware.Identity()(next)

	t.Run("requisição com identidade passa", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/ACC1", nil)
		req.Header.Set("X-Account-Context", "ACC1")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ACC1", rec.Header().Get("X-Test-Identity"))
	})

	t.Run("requisição sem identidade é rejeitada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/ACC1", nil)
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_001")
	})

	t.Run("healthcheck dispensa identidade", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
