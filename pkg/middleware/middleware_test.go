package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/authenticating"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/authenticating/mocks"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/healthcheck",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem cabeçalho",
			path:       "/v1/stock",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Sem prefixo Bearer",
			path:       "/v1/stock",
			header:     "abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token inválido",
			path:   "/v1/stock",
			header: "Bearer abc",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			path:   "/v1/stock",
			header: "Bearer abc",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserID: 1, UserRoleID: RoleAdmin}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken("admin").Return(&domain.Claims{UserID: 1, UserRoleID: RoleAdmin}, nil).AnyTimes()
	auth.EXPECT().ValidateToken("viewer").Return(&domain.Claims{UserID: 2, UserRoleID: RoleViewer}, nil).AnyTimes()

	handler := alice.New(AuthMiddleware(auth), AdminOnly()).Then(okHandler)

	for token, want := range map[string]int{"admin": http.StatusNoContent, "viewer": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/ml/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code, token)
	}

	rec := httptest.NewRecorder()
	AdminOnly()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stock", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha")
	})

	rec := httptest.NewRecorder()
	alice.New(LogPanicMiddleware(), LoggingMiddleware()).Then(panicking).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stock", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogPanicMiddleware_WritesStandardError(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stock", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotContains(t, rec.Body.String(), "falha")
}

func TestLoggingMiddleware_SetsCorrelationHeader(t *testing.T) {
	var fromContext string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync/ml", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, fromContext)
	assert.Equal(t, fromContext, rec.Header().Get(CorrelationHeader))
}

func TestCors(t *testing.T) {
	handler := Cors("https://dashboard.exemplo.com.br/")(okHandler)

	t.Run("Origem configurada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/stock", nil)
		req.Header.Set("Origin", "https://dashboard.exemplo.com.br")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://dashboard.exemplo.com.br", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/stock", nil)
		req.Header.Set("Origin", "https://outro.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight não chega ao handler", func(t *testing.T) {
		called := false
		preflight := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodOptions, "/v1/sync/ml", nil)
		req.Header.Set("Origin", "http://localhost:3005")
		rec := httptest.NewRecorder()

		preflight.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3005", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
