package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// GetDashboard devolve os agregados de 30 dias da conta com receita
// reconciliada. Valores monetários e ROAS saem com duas casas decimais,
// frequência com uma.
func GetDashboard(service dashboarding.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		overview, err := service.Overview(r.Context(), accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: falha ao montar o dashboard da conta")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o dashboard da conta", nil)
			return
		}

		roundOverview(overview)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar a resposta")
		}
	})
}

func roundOverview(overview *domain.DashboardOverview) {
	overview.Totals.Spend = utils.RoundWithTwoDecimalPlace(overview.Totals.Spend)
	overview.Totals.Revenue = utils.RoundWithTwoDecimalPlace(overview.Totals.Revenue)
	overview.Totals.PlatformRevenue = utils.RoundWithTwoDecimalPlace(overview.Totals.PlatformRevenue)
	overview.Totals.Roas = utils.RoundWithTwoDecimalPlace(overview.Totals.Roas)
	overview.Totals.Frequency = utils.RoundWithOneDecimalPlace(overview.Totals.Frequency)

	for _, c := range overview.Campaigns {
		c.Spend = utils.RoundWithTwoDecimalPlace(c.Spend)
		c.Revenue = utils.RoundWithTwoDecimalPlace(c.Revenue)
		c.Roas = utils.RoundWithTwoDecimalPlace(c.Roas)
		c.Frequency = utils.RoundWithOneDecimalPlace(c.Frequency)
	}

	for _, c := range overview.Countries {
		c.Spend = utils.RoundWithTwoDecimalPlace(c.Spend)
		c.Revenue = utils.RoundWithTwoDecimalPlace(c.Revenue)
		c.Roas = utils.RoundWithTwoDecimalPlace(c.Roas)
	}
}

// GetSales lista as vendas unitárias atribuídas por país dos anúncios da
// conta na janela de 30 dias.
func GetSales(service dashboarding.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountID")

		sales, err := service.Sales(r.Context(), accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: falha ao listar as vendas atribuídas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar as vendas atribuídas", nil)
			return
		}

		for _, sale := range sales {
			sale.Amount = utils.RoundWithTwoDecimalPlace(sale.Amount)
			sale.PeriodSpend = utils.RoundWithTwoDecimalPlace(sale.PeriodSpend)
			sale.PeriodRevenue = utils.RoundWithTwoDecimalPlace(sale.PeriodRevenue)
			sale.PeriodRoas = utils.RoundWithTwoDecimalPlace(sale.PeriodRoas)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar a resposta")
		}
	})
}
