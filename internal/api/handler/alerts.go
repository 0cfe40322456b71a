package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// ListAlerts lista os alertas de uma conta. Filtros opcionais por query
// string: status, priority, level e type.
func ListAlerts(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		filters, err := alertFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		alerts, err := service.ListAlerts(r.Context(), accountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("alerts: falha ao listar alertas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}

func alertFiltersFromQuery(r *http.Request) (repository.AlertFilters, error) {
	var filters repository.AlertFilters
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status := domain.AlertStatus(raw)
		if !domain.ValidAlertStatus(status) {
			return filters, errors.New("status de alerta inválido")
		}
		filters.Status = &status
	}
	if raw := query.Get("priority"); raw != "" {
		priority := domain.AlertPriority(raw)
		filters.Priority = &priority
	}
	if raw := query.Get("level"); raw != "" {
		level := domain.EntityLevel(raw)
		filters.Level = &level
	}
	if raw := query.Get("type"); raw != "" {
		alertType := domain.AlertType(raw)
		filters.Type = &alertType
	}

	return filters, nil
}

// GetAlertSummary devolve as contagens por prioridade e por tipo para o card
// de resumo do dashboard.
func GetAlertSummary(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		summary, err := service.Summary(r.Context(), accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("alerts: falha ao montar o resumo de alertas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o resumo de alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}

type updateAlertStatusRequest struct {
	Status domain.AlertStatus `json:"status"`
}

// UpdateAlertStatus aplica uma transição de status a um alerta. Transições
// fora do fluxo investigating → in_progress → resolved/dismissed são
// rejeitadas.
func UpdateAlertStatus(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alertID := httprouter.ParamsFromContext(r.Context()).ByName("alertID")

		var req updateAlertStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		if req.Status == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo status é obrigatório", nil)
			return
		}

		alert, err := service.UpdateStatus(r.Context(), alertID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, alerting.ErrAlertNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Alerta não encontrado", nil)
			case errors.Is(err, alerting.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de alerta inválido", nil)
			case errors.Is(err, alerting.ErrInvalidTransition):
				apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Transição de status não permitida", nil)
			default:
				logger.WithFields(log.Fields{
					"alert_id": alertID,
					"error":    err.Error(),
				}).Error("alerts: falha ao atualizar o status do alerta")

				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar o status do alerta", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alert); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}

// RegenerateAlerts regenera os alertas de uma conta a partir das métricas da
// janela corrente.
func RegenerateAlerts(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")
		logger.WithField("account_id", accountID).Info("alerts: regeneração manual solicitada")

		result, err := service.Regenerate(r.Context(), accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("alerts: falha na regeneração de alertas")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao regenerar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}

// RegenerateAllAlerts regenera os alertas de todas as contas ativas.
func RegenerateAllAlerts(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("alerts: regeneração manual de todas as contas solicitada")

		results, err := service.RegenerateAll(r.Context())
		if err != nil {
			logger.WithError(err).Error("alerts: falha na regeneração em lote")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao regenerar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}

// GetThresholds devolve a configuração de limites da conta, criando a linha
// com os valores padrão quando ela ainda não existe.
func GetThresholds(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		thresholds, err := service.GetThresholds(r.Context(), accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("alerts: falha ao buscar os limites da conta")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar os limites da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(thresholds); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}

// UpdateThresholds atualiza a configuração de limites da conta.
func UpdateThresholds(service alerting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		var thresholds domain.AlertThreshold
		if err := json.NewDecoder(r.Body).Decode(&thresholds); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		thresholds.AccountID = accountID

		if err := service.UpdateThresholds(r.Context(), &thresholds); err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("alerts: falha ao atualizar os limites da conta")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar os limites da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(&thresholds); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar a resposta")
		}
	})
}
