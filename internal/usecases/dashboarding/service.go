package dashboarding

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reconciling"
)

// windowDays é a janela de agregação do dashboard, ancorada na data mais
// recente com métricas da conta.
const windowDays = 30

// Service monta as visões de leitura da conta: o dashboard principal e a
// listagem de vendas atribuídas por país.
type Service interface {
	Overview(ctx context.Context, accountID string) (*domain.DashboardOverview, error)
	Sales(ctx context.Context, accountID string) ([]*domain.AttributedSale, error)
}

type service struct {
	reconciler      reconciling.Reconciler
	adRepo          repository.AdRepository
	campaignMetrics repository.DailyMetricRepository
	adMetrics       repository.DailyMetricRepository
	countryMetrics  repository.CountryDailyMetricRepository
}

func NewService(
	reconciler reconciling.Reconciler,
	adRepo repository.AdRepository,
	campaignMetrics repository.DailyMetricRepository,
	adMetrics repository.DailyMetricRepository,
	countryMetrics repository.CountryDailyMetricRepository,
) Service {
	return &service{
		reconciler:      reconciler,
		adRepo:          adRepo,
		campaignMetrics: campaignMetrics,
		adMetrics:       adMetrics,
		countryMetrics:  countryMetrics,
	}
}

// Overview agrega a janela de 30 dias da conta no nível de campanha. A
// receita e as vendas de cada campanha passam pela reconciliação com o
// ledger; quando a consulta ao ledger falha, a campanha entra nos totais
// apenas com os valores da plataforma.
func (s *service) Overview(ctx context.Context, accountID string) (*domain.DashboardOverview, error) {
	overview := &domain.DashboardOverview{
		AccountID: accountID,
		Campaigns: []*domain.DashboardCampaign{},
		Countries: []*domain.DashboardCountry{},
	}

	anchor, err := s.campaignMetrics.LatestDate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a data mais recente da conta: %w", err)
	}
	if anchor == nil {
		// Conta ainda sem métricas sincronizadas.
		return overview, nil
	}

	window := domain.TrailingWindow(*anchor, windowDays)
	overview.Window = &window

	totals, err := s.campaignMetrics.TotalsByAccount(ctx, accountID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar métricas da conta: %w", err)
	}

	for _, t := range totals {
		revenue, sales, err := s.reconciler.EffectiveTotals(ctx, domain.LevelCampaign, t.EntityID, t.Revenue, t.Sales, window)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  accountID,
				"campaign_id": t.EntityID,
				"error":       err.Error(),
			}).Warn("Erro ao reconciliar campanha com o ledger, usando dados da plataforma")

			revenue, sales = t.Revenue, t.Sales
		}

		overview.Totals.Spend += t.Spend
		overview.Totals.Revenue += revenue
		overview.Totals.PlatformRevenue += t.Revenue
		overview.Totals.Sales += sales
		overview.Totals.PlatformSales += t.Sales
		overview.Totals.Leads += t.Leads
		overview.Totals.Impressions += t.Impressions
		overview.Totals.Reach += t.Reach
		overview.Totals.Clicks += t.Clicks

		overview.Campaigns = append(overview.Campaigns, &domain.DashboardCampaign{
			CampaignID: t.EntityID,
			Name:       t.EntityName,
			Spend:      t.Spend,
			Revenue:    revenue,
			Sales:      sales,
			Roas:       reconciling.Roas(revenue, t.Spend),
			Frequency:  t.Frequency,
		})
	}

	overview.Totals.Roas = reconciling.Roas(overview.Totals.Revenue, overview.Totals.Spend)
	if overview.Totals.Reach > 0 {
		overview.Totals.Frequency = float64(overview.Totals.Impressions) / float64(overview.Totals.Reach)
	}

	countries, err := s.countryMetrics.ListByAccountAndRange(ctx, accountID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o rollup por país: %w", err)
	}
	overview.Countries = rollupCountries(countries)

	return overview, nil
}

// rollupCountries soma as linhas diárias por país e ordena por receita
// decrescente, desempatando por código de país.
func rollupCountries(metrics []*domain.CountryDailyMetric) []*domain.DashboardCountry {
	byCountry := make(map[string]*domain.DashboardCountry)
	for _, m := range metrics {
		c, ok := byCountry[m.CountryCode]
		if !ok {
			c = &domain.DashboardCountry{CountryCode: m.CountryCode}
			byCountry[m.CountryCode] = c
		}
		c.Spend += m.Spend
		c.Revenue += m.Revenue
		c.Sales += m.Sales
	}

	countries := make([]*domain.DashboardCountry, 0, len(byCountry))
	for _, c := range byCountry {
		c.Roas = reconciling.Roas(c.Revenue, c.Spend)
		countries = append(countries, c)
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Revenue != countries[j].Revenue {
			return countries[i].Revenue > countries[j].Revenue
		}
		return countries[i].CountryCode < countries[j].CountryCode
	})

	return countries
}

// Sales lista as vendas unitárias atribuídas por país de todos os anúncios
// da conta, na janela de 30 dias ancorada na data mais recente com métricas
// de anúncio.
func (s *service) Sales(ctx context.Context, accountID string) ([]*domain.AttributedSale, error) {
	anchor, err := s.adMetrics.LatestDate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a data mais recente da conta: %w", err)
	}
	if anchor == nil {
		return []*domain.AttributedSale{}, nil
	}

	window := domain.TrailingWindow(*anchor, windowDays)

	ads, err := s.adRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar os anúncios da conta: %w", err)
	}

	sales := []*domain.AttributedSale{}
	for _, ad := range ads {
		adSales, err := s.reconciler.AttributeSales(ctx, ad.ID, ad.Name, window)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"ad_id":      ad.ID,
				"error":      err.Error(),
			}).Warn("Erro ao atribuir vendas do anúncio, seguindo para o próximo")
			continue
		}
		sales = append(sales, adSales...)
	}

	return sales, nil
}
