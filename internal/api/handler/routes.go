package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/api/handler/router"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/scheduler"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/reporting"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/stocking"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:source/metrics",
			Method:      http.MethodGet,
			Handler:     GetSalesMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Stock(service stocking.Stocker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stock",
			Method:      http.MethodGet,
			Handler:     ListStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stock/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/stock/:sku",
			Method:      http.MethodPut,
			Handler:     UpdateStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func Sync(runners map[string]SourceRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/:source",
			Method:      http.MethodPost,
			Handler:     SyncSource(runners),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func CronJobs(jobs scheduler.Jobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}
