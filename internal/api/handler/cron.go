package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sdr-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePersistenceRetry = "persistence-retry"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PersistenceRetryService *scheduler.PersistenceRetryService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePersistenceRetry, CronJobTypeAll:
			if services.PersistenceRetryService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regravação não disponível", nil)
				return
			}
			services.PersistenceRetryService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido. Valores aceitos: persistence-retry, all", nil)
			return
		}

		writeJSON(w, r, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.PersistenceRetryService != nil {
			status[CronJobTypePersistenceRetry] = services.PersistenceRetryService.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
