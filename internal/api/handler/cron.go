package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/scheduler"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
)

// RunCronJob dispara manualmente um job (ml, magalu, stock, daily-report ou all)
func RunCronJob(jobs scheduler.Jobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		triggered, err := jobs.Trigger(cronType)
		if errors.Is(err, scheduler.ErrUnknownJob) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": append(jobs.Names(), "all"),
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message":   "Cron job iniciada com sucesso",
			"type":      cronType,
			"triggered": triggered,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(jobs scheduler.Jobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(jobs.Status())
	}
}
