package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/api/handler/router"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/scheduler"
	schedulermocks "github.com/Alexsander532/projeto-dashboard-versao1/internal/scheduler/mocks"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/reporting"
	reportmocks "github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/reporting/mocks"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/stocking"
	stockmocks "github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/stocking/mocks"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/syncing"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/middleware"
)

type runnerFunc func(ctx context.Context) (*domain.BatchReport, error)

func (f runnerFunc) SyncNow(ctx context.Context) (*domain.BatchReport, error) {
	return f(ctx)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func serve(t *testing.T, rt router.Router, method, target string, role int) *httptest.ResponseRecorder {
	t.Helper()
	return serveBody(t, rt, method, target, "", role)
}

func serveBody(t *testing.T, rt router.Router, method, target, body string, role int) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != 0 {
		claims := &domain.Claims{UserID: 7, UserRoleID: role}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func fixClock(t *testing.T, at time.Time) {
	t.Helper()

	previous := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = previous })
}

func TestGetMonthlyReport(t *testing.T) {
	fixClock(t, time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC))

	t.Run("Usa o mês corrente quando não informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			MonthlyReport(gomock.Any(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "SKU-1").
			Return(&domain.MonthlyReport{
				Period: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				Items: []*domain.AggregateMetric{
					{SKU: "SKU-1", TotalValue: decimal.NewFromInt(650), ProgressRatio: 65, Status: "reachable"},
				},
			}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/reports/monthly?sku=SKU-1", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sku":"SKU-1"`)
		assert.Contains(t, rec.Body.String(), `"status":"reachable"`)
	})

	t.Run("Mês e ano explícitos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			MonthlyReport(gomock.Any(), time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "").
			Return(&domain.MonthlyReport{}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/reports/monthly?month=12&year=2024", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Reports(reportmocks.NewMockReporter(ctrl))...))

		rec := serve(t, rt, http.MethodGet, "/v1/reports/monthly?month=13", middleware.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		assert.Equal(t, map[string]any{"Month": "max"}, apiErr.Details)
	})

	t.Run("Ano não numérico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Reports(reportmocks.NewMockReporter(ctrl))...))

		rec := serve(t, rt, http.MethodGet, "/v1/reports/monthly?year=abc", middleware.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Erro no serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().MonthlyReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("banco fora"))

		rec := serve(t, rt, http.MethodGet, "/v1/reports/monthly", middleware.RoleAdmin)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})

	t.Run("Sem autenticação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Reports(reportmocks.NewMockReporter(ctrl))...))

		rec := serve(t, rt, http.MethodGet, "/v1/reports/monthly", 0)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetDailyReport(t *testing.T) {
	fixClock(t, time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC))

	t.Run("Padrão é ontem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			DailyReport(gomock.Any(), time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)).
			Return(&domain.DailyReport{}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/reports/daily", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Data informada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			DailyReport(gomock.Any(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			Return(&domain.DailyReport{}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/reports/daily?date=2025-02-01", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Aceita data no formato brasileiro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			DailyReport(gomock.Any(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			Return(&domain.DailyReport{}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/reports/daily?date=01/02/2025", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Data inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Reports(reportmocks.NewMockReporter(ctrl))...))

		rec := serve(t, rt, http.MethodGet, "/v1/reports/daily?date=2025.02.01", middleware.RoleViewer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestStockHandlers(t *testing.T) {
	t.Run("Lista o estoque", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stocker := stockmocks.NewMockStocker(ctrl)
		rt := router.New(router.WithRoutes(Stock(stocker)...))

		stocker.EXPECT().List(gomock.Any()).Return([]*domain.Stock{
			{SKU: "SKU-1", Quantity: 0, Minimum: 10, Status: "out-of-stock", StatusLabel: "Sem Estoque"},
		}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/stock", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":1`)
		assert.Contains(t, rec.Body.String(), `"status_label":"Sem Estoque"`)
	})

	t.Run("Recalcular exige analista ou admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Stock(stockmocks.NewMockStocker(ctrl))...))

		rec := serve(t, rt, http.MethodPost, "/v1/stock/refresh", middleware.RoleViewer)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Erro ao recalcular", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stocker := stockmocks.NewMockStocker(ctrl)
		rt := router.New(router.WithRoutes(Stock(stocker)...))

		stocker.EXPECT().Refresh(gomock.Any()).Return(errors.New("sku X: timeout"))

		rec := serve(t, rt, http.MethodPost, "/v1/stock/refresh", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "sku X: timeout", decodeAPIError(t, rec).Details)
	})
}

func TestUpdateStock(t *testing.T) {
	t.Run("Atualiza mínimo e custo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stocker := stockmocks.NewMockStocker(ctrl)
		rt := router.New(router.WithRoutes(Stock(stocker)...))

		stocker.EXPECT().
			Update(gomock.Any(), "SKU-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, sku string, changes stocking.Changes) (*domain.Stock, error) {
				assert.Nil(t, changes.Description)
				require.NotNil(t, changes.Minimum)
				assert.Equal(t, 50, *changes.Minimum)
				require.NotNil(t, changes.Cost)
				assert.True(t, decimal.RequireFromString("14.9").Equal(*changes.Cost))

				return &domain.Stock{SKU: sku, Quantity: 40, Minimum: 50, Status: "replenish", StatusLabel: "Em reposição"}, nil
			})

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{"minimum":50,"cost":14.9}`, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"replenish"`)
		assert.Contains(t, rec.Body.String(), `"minimum":50`)
	})

	t.Run("Visualizador não edita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Stock(stockmocks.NewMockStocker(ctrl))...))

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{"minimum":50}`, middleware.RoleViewer)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Stock(stockmocks.NewMockStocker(ctrl))...))

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{"minimum":`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Valores negativos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Stock(stockmocks.NewMockStocker(ctrl))...))

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{"minimum":-1}`, middleware.RoleAdmin)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"Minimum": "gte"}, decodeAPIError(t, rec).Details)

		rec = serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{"cost":"-3.5"}`, middleware.RoleAdmin)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"Cost": "gte"}, decodeAPIError(t, rec).Details)
	})

	t.Run("Nenhum campo informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Stock(stockmocks.NewMockStocker(ctrl))...))

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("SKU inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stocker := stockmocks.NewMockStocker(ctrl)
		rt := router.New(router.WithRoutes(Stock(stocker)...))

		stocker.EXPECT().Update(gomock.Any(), "SKU-X", gomock.Any()).Return(nil, stocking.ErrStockNotFound)

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-X", `{"description":"Novo"}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Erro no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stocker := stockmocks.NewMockStocker(ctrl)
		rt := router.New(router.WithRoutes(Stock(stocker)...))

		stocker.EXPECT().Update(gomock.Any(), "SKU-1", gomock.Any()).Return(nil, errors.New("conexão perdida"))

		rec := serveBody(t, rt, http.MethodPut, "/v1/stock/SKU-1", `{"description":"Novo"}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestGetSalesMetrics(t *testing.T) {
	fixClock(t, time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC))

	t.Run("Mês corrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			SalesMetrics(gomock.Any(), domain.SourceMagalu, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
			Return(&domain.SalesMetrics{
				Source:       domain.SourceMagalu,
				Orders:       3,
				SaleValue:    decimal.NewFromInt(900),
				GoalValue:    decimal.NewFromInt(1000),
				HasGoal:      true,
				GoalProgress: 90,
				Status:       "reachable",
			}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/sales/magalu/metrics", middleware.RoleViewer)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"orders":3`)
		assert.Contains(t, rec.Body.String(), `"goal_progress":90`)
	})

	t.Run("Mês informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			SalesMetrics(gomock.Any(), domain.SourceML, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)).
			Return(&domain.SalesMetrics{Source: domain.SourceML}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/sales/ml/metrics?month=11&year=2024", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Marketplace desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		rt := router.New(router.WithRoutes(Reports(reporter)...))

		reporter.EXPECT().
			SalesMetrics(gomock.Any(), domain.Source("shopee"), gomock.Any()).
			Return(nil, reporting.ErrUnknownMarketplace)

		rec := serve(t, rt, http.MethodGet, "/v1/sales/shopee/metrics", middleware.RoleViewer)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrUnknownSource, decodeAPIError(t, rec).Code)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := router.New(router.WithRoutes(Reports(reportmocks.NewMockReporter(ctrl))...))

		rec := serve(t, rt, http.MethodGet, "/v1/sales/ml/metrics?month=13", middleware.RoleViewer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"Month": "max"}, decodeAPIError(t, rec).Details)
	})
}

func TestSyncSource(t *testing.T) {
	report := domain.NewBatchReport("lote-1", domain.SourceML)
	report.Inserted = 2

	runners := map[string]SourceRunner{
		"ml": runnerFunc(func(context.Context) (*domain.BatchReport, error) {
			return report, nil
		}),
		"magalu": runnerFunc(func(context.Context) (*domain.BatchReport, error) {
			return nil, &syncing.ConnectionError{Source: domain.SourceMagalu, Stage: "rows", Err: errors.New("timeout")}
		}),
		"stock": runnerFunc(func(context.Context) (*domain.BatchReport, error) {
			return nil, scheduler.ErrSyncRunning
		}),
	}
	rt := router.New(router.WithRoutes(Sync(runners)...))

	tests := []struct {
		name     string
		source   string
		wantCode int
		wantBody string
	}{
		{name: "Sucesso devolve o relatório do lote", source: "ml", wantCode: http.StatusOK, wantBody: `"inserted":2`},
		{name: "Fonte indisponível", source: "magalu", wantCode: http.StatusBadGateway, wantBody: apiErrors.ErrSourceUnavailable},
		{name: "Já em andamento", source: "stock", wantCode: http.StatusConflict, wantBody: apiErrors.ErrSyncInProgress},
		{name: "Fonte desconhecida", source: "shopee", wantCode: http.StatusNotFound, wantBody: apiErrors.ErrUnknownSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, rt, http.MethodPost, "/v1/sync/"+tt.source, middleware.RoleAdmin)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	ml := schedulermocks.NewMockJob(ctrl)
	rt := router.New(router.WithRoutes(CronJobs(scheduler.Jobs{"ml": ml})...))

	t.Run("Dispara job", func(t *testing.T) {
		ml.EXPECT().TriggerManualSync()

		rec := serve(t, rt, http.MethodPost, "/v1/cron/ml/run", middleware.RoleAdmin)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), `"triggered":["ml"]`)
	})

	t.Run("Tipo inválido", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/v1/cron/meta/run", middleware.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"accepted":["ml","all"]`)
	})

	t.Run("Somente administradores disparam jobs", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/v1/cron/ml/run", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Status", func(t *testing.T) {
		ml.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": true})

		rec := serve(t, rt, http.MethodGet, "/v1/cron/status", middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ml":{"sync_enabled":true}}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	t.Run("Banco disponível", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Healthcheck(pingerFunc(func(context.Context) error { return nil }))...))

		rec := serve(t, rt, http.MethodGet, "/healthcheck", 0)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("Banco indisponível", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Healthcheck(pingerFunc(func(context.Context) error {
			return errors.New("connection refused")
		}))...))

		rec := serve(t, rt, http.MethodGet, "/healthcheck", 0)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "degraded"))
	})
}
