package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/reporting"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/utils"
)

var now = time.Now

type periodQuery struct {
	Month int `mapstructure:"month" validate:"omitempty,min=1,max=12"`
	Year  int `mapstructure:"year" validate:"omitempty,min=2000,max=2100"`
}

type monthlyReportQuery struct {
	Month int    `mapstructure:"month" validate:"omitempty,min=1,max=12"`
	Year  int    `mapstructure:"year" validate:"omitempty,min=2000,max=2100"`
	SKU   string `mapstructure:"sku" validate:"omitempty,max=64"`
}

// monthPeriod devolve o primeiro dia do mês consultado; mês e ano ausentes usam o mês corrente
func monthPeriod(month, year int) time.Time {
	current := now()
	if year == 0 {
		year = current.Year()
	}
	if month == 0 {
		month = int(current.Month())
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, current.Location())
}

// GetMonthlyReport devolve as métricas do mês por SKU com o status da meta
func GetMonthlyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMonthlyReport")
		logger := log.ForContext(r.Context())

		var query monthlyReportQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros do relatório inválidos", validationDetails(err))
			return
		}

		period := monthPeriod(query.Month, query.Year)

		report, err := service.MonthlyReport(r.Context(), period, query.SKU)
		if err != nil {
			logger.WithFields(log.Fields{
				"period": period.Format("01-2006"),
				"sku":    query.SKU,
				"error":  err.Error(),
			}).Error("relatório: falha ao gerar relatório mensal")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório mensal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("relatório: falha ao serializar resposta")
		}
	}
}

// GetDailyReport devolve o comparativo do dia informado (padrão: ontem) com o dia anterior
func GetDailyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDailyReport")
		logger := log.ForContext(r.Context())

		day, err := utils.ParseDay(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use AAAA-MM-DD ou DD/MM/AAAA", nil)
			return
		}

		if day.IsZero() {
			day = now().AddDate(0, 0, -1)
		}

		report, err := service.DailyReport(r.Context(), day)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  day.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("relatório: falha ao gerar relatório diário")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório diário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("relatório: falha ao serializar resposta")
		}
	}
}

// GetSalesMetrics devolve os totais de vendas do marketplace no mês comparados à soma das metas
func GetSalesMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSalesMetrics")
		logger := log.ForContext(r.Context())

		source := domain.Source(httprouter.ParamsFromContext(r.Context()).ByName("source"))

		var query periodQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros das métricas inválidos", validationDetails(err))
			return
		}
		period := monthPeriod(query.Month, query.Year)

		metrics, err := service.SalesMetrics(r.Context(), source, period)
		if errors.Is(err, reporting.ErrUnknownMarketplace) {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSource, "Marketplace desconhecido", map[string]string{"source": source.String()})
			return
		}
		if err != nil {
			logger.WithFields(log.Fields{
				"source": source,
				"period": period.Format("01-2006"),
				"error":  err.Error(),
			}).Error("relatório: falha ao calcular métricas de vendas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithField("error", err.Error()).Error("relatório: falha ao serializar resposta")
		}
	}
}
