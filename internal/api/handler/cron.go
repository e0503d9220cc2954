package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/apiErrors"
	"github.com/gwr-marine/ops-analytics/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeInventoryAlerts = "inventory-alerts"
)

// CronJob é uma tarefa agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// InventoryAlertsJob é a verificação diária de estoque, que além de rodar como cron
// guarda o último snapshot
type InventoryAlertsJob interface {
	CronJob
	LatestSnapshot(ctx context.Context) (*domain.InventorySnapshot, error)
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	InventoryAlertsService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.InventoryAlertsService != nil {
		jobs[CronJobTypeInventoryAlerts] = s.InventoryAlertsService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType()[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Tipo de cron job inválido. Valores aceitos: inventory-alerts", nil)
			return
		}

		if !job.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrResourceBusy, "Cron job já está em execução", nil)
			return
		}

		logger.WithField("job", cronType).Info("Cron job iniciada manualmente")

		writeJSONStatus(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, status)
	}
}

// GetLatestInventorySnapshot retorna o último snapshot salvo pela verificação de estoque
func GetLatestInventorySnapshot(job InventoryAlertsJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := job.LatestSnapshot(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "inventory alerts: erro ao buscar snapshot")
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhuma verificação de estoque registrada", nil)
			return
		}

		writeJSON(w, r, snapshot)
	}
}
