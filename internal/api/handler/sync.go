package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// TriggerSync executa a sincronização completa de uma conta e devolve o
// resultado por etapa. A chamada é síncrona; sincronizações em lote ficam a
// cargo do scheduler.
func TriggerSync(service syncing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")
		logger.WithField("account_id", accountID).Info("sync: sincronização manual solicitada")

		result, err := service.FullSync(r.Context(), accountID)
		if err != nil {
			switch {
			case errors.Is(err, syncing.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
			case errors.Is(err, syncing.ErrAccountNotActive):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Conta não está ativa", nil)
			case errors.Is(err, syncing.ErrAPIBudgetExhausted):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Orçamento diário de chamadas à API esgotado", nil)
			default:
				logger.WithFields(log.Fields{
					"account_id": accountID,
					"error":      err.Error(),
				}).Error("sync: falha na sincronização manual")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar a conta", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("sync: falha ao serializar a resposta")
		}
	})
}

// GetSyncStatus devolve o registro de status de sincronização da conta.
func GetSyncStatus(service syncing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		status, err := service.GetStatus(r.Context(), accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("sync: falha ao buscar o status de sincronização")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o status de sincronização", nil)
			return
		}
		if status == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta ainda não sincronizada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("sync: falha ao serializar a resposta")
		}
	})
}
