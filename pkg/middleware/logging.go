package middleware

import (
	"net/http"
	"runtime"
	"time"

	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
)

const (
	CorrelationHeader = "X-Correlation-ID"

	slowRequest = 2 * time.Second
)

// rotas consultadas por monitoramento; só aparecem em nível debug
var quietPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

// LoggingMiddleware registra cada requisição com o ID de correlação, que também volta no cabeçalho
// X-Correlation-ID. Sincronizações e relatórios pesados costumam passar de slowRequest.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationHeader, correlationID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"status_code":    rec.status,
				"bytes":          rec.bytes,
				"duration_ms":    elapsed.Milliseconds(),
			})

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case rec.status >= http.StatusBadRequest:
				logger.Warn("Requisição recusada")
			case elapsed > slowRequest:
				logger.Warn("Requisição lenta")
			case quietPaths[r.URL.Path]:
				logger.Debug("Requisição finalizada")
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// LogPanicMiddleware transforma um panic do handler em SRV_001 sem expor a mensagem ao cliente
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"panic_error": p,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("Erro não tratado na aplicação")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
