package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/scheduler"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/syncing"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
)

// SourceRunner executa a sincronização de uma fonte e aguarda o relatório do lote
type SourceRunner interface {
	SyncNow(ctx context.Context) (*domain.BatchReport, error)
}

// SyncSource executa a sincronização da fonte de forma síncrona e devolve o relatório do lote
func SyncSource(runners map[string]SourceRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncSource")

		name := httprouter.ParamsFromContext(r.Context()).ByName("source")
		runner, ok := runners[name]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSource, "Fonte desconhecida: "+name, nil)
			return
		}

		report, err := runner.SyncNow(r.Context())
		switch {
		case err == nil:
		case errors.Is(err, scheduler.ErrSyncRunning):
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
			return
		case errors.Is(err, syncing.ErrConnection):
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		default:
			logrus.WithFields(logrus.Fields{
				"source": name,
				"error":  err.Error(),
			}).Error("Erro ao sincronizar fonte")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar fonte", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}
