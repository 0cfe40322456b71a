package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// Tipos de job aceitos pelo disparo manual
const (
	SchedulerJobSync    = "sync"
	SchedulerJobCleanup = "cleanup"
)

// SchedulerServices agrupa os agendadores expostos pela API.
type SchedulerServices struct {
	DailySync        *scheduler.DailySyncService
	RetentionCleanup *scheduler.RetentionCleanupService
}

// GetSchedulerStatus devolve o estado corrente dos agendadores.
func GetSchedulerStatus(services SchedulerServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"daily_sync":        services.DailySync.GetStatus(),
			"retention_cleanup": services.RetentionCleanup.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("scheduler: falha ao serializar a resposta")
		}
	})
}

// TriggerScheduler dispara manualmente um job agendado. O parâmetro `type`
// aceita sync (padrão) ou cleanup. O job roda em background; a resposta só
// confirma o disparo.
func TriggerScheduler(services SchedulerServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		jobType := r.URL.Query().Get("type")
		if jobType == "" {
			jobType = SchedulerJobSync
		}

		logger.WithField("job_type", jobType).Info("scheduler: disparo manual solicitado")

		// O contexto da requisição morre junto com a resposta; o job
		// continua em background com um contexto desacoplado.
		jobCtx := context.WithoutCancel(r.Context())

		switch jobType {
		case SchedulerJobSync:
			services.DailySync.TriggerManualSync(jobCtx)
		case SchedulerJobCleanup:
			go services.RetentionCleanup.RunCleanup(jobCtx)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: sync, cleanup", nil)
			return
		}

		response := map[string]any{
			"message": "Job disparado com sucesso",
			"type":    jobType,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("scheduler: falha ao serializar a resposta")
		}
	})
}
