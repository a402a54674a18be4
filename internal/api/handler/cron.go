package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/internal/scheduler"
	"github.com/vfg2006/working-capital-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WarehouseSyncService *scheduler.WarehouseSyncService
}

// RunWarehouseSync dispara manualmente a sincronização com o warehouse
func RunWarehouseSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunWarehouseSync")

		if services.WarehouseSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização com o warehouse não disponível", nil)
			return
		}

		services.WarehouseSyncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "sincronização iniciada",
		})
	}
}

// GetSyncStatus devolve o estado atual da sincronização com o warehouse
func GetSyncStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.WarehouseSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização com o warehouse não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.WarehouseSyncService.GetStatus())
	}
}
