// Package log concentra a configuração do logrus e o ID de correlação que acompanha
// requisições HTTP e execuções agendadas.
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

// Logger é a entrada do logrus já com os campos acumulados
type Logger = *logrus.Entry

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// campos mantidos na saída compacta de desenvolvimento
var relevantFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"source":           true,
	"batch_id":         true,
	"sku":              true,
	"job":              true,
}

// L é a entrada global usada por quem não tem contexto
var L Logger = logrus.NewEntry(logrus.StandardLogger())

func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup aplica nível e formato: texto compacto em desenvolvimento, JSON nos demais ambientes.
// Nível inválido cai para info e é devolvido como false.
func Setup(level string) bool {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	if IsDevelopment() {
		logrus.SetFormatter(&compactFormatter{TextFormatter: logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		}})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	L = logrus.NewEntry(logrus.StandardLogger())
	return err == nil
}

// compactFormatter descarta os campos que não ajudam na depuração local
type compactFormatter struct {
	logrus.TextFormatter
}

func (f *compactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	kept := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		if relevantFields[k] || strings.HasPrefix(k, "user_") {
			kept[k] = v
		}
	}

	compact := *entry
	compact.Data = kept
	return f.TextFormatter.Format(&compact)
}

func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext devolve L com o ID de correlação do contexto, quando houver
func ForContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return L.WithField(correlationIDField, id)
	}
	return L
}

// ForJob cria um contexto com novo ID de correlação e o logger da execução de um job
func ForJob(ctx context.Context, job string) (context.Context, Logger) {
	ctx, correlationID := WithCorrelationID(ctx)
	return ctx, L.WithFields(Fields{
		correlationIDField: correlationID,
		"job":              job,
	})
}
