package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/v1/stock",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(ok),
		Middlewares: []func(http.Handler) http.Handler{tag("auth"), tag("role")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stock", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"auth", "role"}, calls)
}

func TestRouter_ErrorsUseStandardFormat(t *testing.T) {
	rt := New(WithRoutes(Route{Path: "/v1/stock", Method: http.MethodGet, Handler: http.HandlerFunc(ok)}))

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		var apiErr apiErrors.APIError
		require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrRouteNotFound, apiErr.Code)
	})

	t.Run("Método não suportado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/stock", nil))

		var apiErr apiErrors.APIError
		require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, apiErrors.ErrMethodNotAllowed, apiErr.Code)
	})
}

func TestRouter_Routes(t *testing.T) {
	rt := New(
		WithRoutes(Route{Path: "/v1/stock", Method: http.MethodGet, Handler: http.HandlerFunc(ok)}),
		WithRoutes(Route{Path: "/healthcheck", Method: http.MethodGet, Handler: http.HandlerFunc(ok)}),
	)

	assert.Equal(t, []string{"GET /healthcheck", "GET /v1/stock"}, rt.Routes())
}
