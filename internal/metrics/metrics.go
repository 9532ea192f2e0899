package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

const namespace = "dashboard"

// Recorder registra o resultado dos lotes de sincronização
type Recorder struct {
	registry    *prometheus.Registry
	records     *prometheus.CounterVec
	rows        *prometheus.CounterVec
	parseErrors *prometheus.CounterVec
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New cria o Recorder em um registry próprio para não colidir entre testes
func New() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingested_records_total",
			Help:      "Registros processados por fonte e resultado.",
		}, []string{"source", "outcome"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_rows_total",
			Help:      "Linhas lidas das planilhas por fonte.",
		}, []string{"source"}),
		parseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Células que não puderam ser convertidas e receberam o valor padrão.",
		}, []string{"source"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Execuções de sincronização por fonte e situação.",
		}, []string{"source", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duração das sincronizações por fonte.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}, []string{"source"}),
	}

	registry.MustRegister(
		r.records,
		r.rows,
		r.parseErrors,
		r.runs,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveBatch contabiliza um lote concluído
func (r *Recorder) ObserveBatch(report *domain.BatchReport) {
	source := report.Source.String()

	r.records.WithLabelValues(source, string(domain.OutcomeInserted)).Add(float64(report.Inserted))
	r.records.WithLabelValues(source, string(domain.OutcomeUpdated)).Add(float64(report.Updated))
	r.records.WithLabelValues(source, string(domain.OutcomeSkipped)).Add(float64(report.Skipped))
	r.records.WithLabelValues(source, string(domain.OutcomeFailed)).Add(float64(report.Failed))
	r.rows.WithLabelValues(source).Add(float64(report.Rows))
	r.parseErrors.WithLabelValues(source).Add(float64(report.ParseErrors))
	r.duration.WithLabelValues(source).Observe(report.Duration().Seconds())

	status := "ok"
	if report.Interrupted {
		status = "interrupted"
	}
	r.runs.WithLabelValues(source, status).Inc()
}

// ObserveAbort contabiliza uma sincronização que não chegou a processar linhas
func (r *Recorder) ObserveAbort(source domain.Source) {
	r.runs.WithLabelValues(source.String(), "aborted").Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler expõe as métricas no formato do Prometheus
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
