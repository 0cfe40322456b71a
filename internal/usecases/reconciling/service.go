package reconciling

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Reconciler combina os números reportados pela plataforma de anúncios com o
// ledger de transações. Nenhuma das duas fontes é completa: o pixel perde
// sinal por restrições de privacidade e o ledger chega com atraso. Tomar o
// máximo por métrica evita alertas falsos de desempenho ruim.
type Reconciler interface {
	// EffectiveTotals retorna receita e vendas efetivas de uma entidade no
	// intervalo: o máximo entre a soma da plataforma e a soma do ledger,
	// calculado por métrica, não por fonte.
	EffectiveTotals(ctx context.Context, level domain.EntityLevel, entityID string, platformRevenue float64, platformSales int, period domain.DateRange) (float64, int, error)

	// AttributeSales expande os agregados diários de um anúncio em linhas
	// unitárias de venda com país imputado pelo breakdown.
	AttributeSales(ctx context.Context, adID, adName string, period domain.DateRange) ([]*domain.AttributedSale, error)
}

type service struct {
	transactionRepo repository.RevenueTransactionRepository
	adMetricRepo    repository.DailyMetricRepository
	adCountryRepo   repository.AdCountryDailyMetricRepository
}

func NewService(
	transactionRepo repository.RevenueTransactionRepository,
	adMetricRepo repository.DailyMetricRepository,
	adCountryRepo repository.AdCountryDailyMetricRepository,
) Reconciler {
	return &service{
		transactionRepo: transactionRepo,
		adMetricRepo:    adMetricRepo,
		adCountryRepo:   adCountryRepo,
	}
}

func (s *service) EffectiveTotals(ctx context.Context, level domain.EntityLevel, entityID string, platformRevenue float64, platformSales int, period domain.DateRange) (float64, int, error) {
	ledger, err := s.transactionRepo.TotalsForEntity(ctx, level, entityID, period.Start, period.End)
	if err != nil {
		return 0, 0, err
	}

	return EffectiveRevenue(platformRevenue, ledger.Revenue), EffectiveSales(platformSales, ledger.Sales), nil
}

// EffectiveRevenue aplica a política de máximo entre as duas fontes.
func EffectiveRevenue(platform, ledger float64) float64 {
	return math.Max(platform, ledger)
}

// EffectiveSales é o equivalente para contagem de vendas.
func EffectiveSales(platform, ledger int) int {
	if ledger > platform {
		return ledger
	}
	return platform
}

// Roas calcula receita/investimento, com zero quando não houve investimento.
func Roas(revenue, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return revenue / spend
}

func (s *service) AttributeSales(ctx context.Context, adID, adName string, period domain.DateRange) ([]*domain.AttributedSale, error) {
	days, err := s.adMetricRepo.ListDailySales(ctx, adID, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.AttributedSale, 0)
	periodSpend := 0.0
	periodRevenue := 0.0

	for _, day := range days {
		periodSpend += day.Spend
		periodRevenue += day.Revenue

		if day.Sales <= 0 {
			continue
		}

		countries, err := s.adCountryRepo.ListByEntityAndDate(ctx, adID, day.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": adID,
				"date":  day.Date.Format("2006-01-02"),
				"error": err.Error(),
			}).Warn("Erro ao buscar breakdown por país, vendas ficarão sem país")
			countries = nil
		}

		units := ExpandDay(adID, adName, day, countries, periodSpend, periodRevenue)
		sales = append(sales, units...)
	}

	return sales, nil
}

// ExpandDay sintetiza as N linhas unitárias de um dia. O valor de cada
// unidade é a divisão igual da receita do dia. Os países são consumidos na
// ordem em que o repositório os entrega (vendas e receita decrescentes);
// unidades além da soma declarada pelos países ficam sem país.
func ExpandDay(adID, adName string, day *domain.DailySales, countries []*domain.AdCountryDailyMetric, periodSpend, periodRevenue float64) []*domain.AttributedSale {
	if day.Sales <= 0 {
		return nil
	}

	unitAmount := day.Revenue / float64(day.Sales)
	roas := Roas(periodRevenue, periodSpend)

	units := make([]*domain.AttributedSale, 0, day.Sales)

	countryIdx := 0
	remainingInCountry := 0
	var currentCountry *string

	advance := func() {
		for countryIdx < len(countries) {
			c := countries[countryIdx]
			countryIdx++
			if c.Sales > 0 {
				code := c.CountryCode
				currentCountry = &code
				remainingInCountry = c.Sales
				return
			}
		}
		currentCountry = nil
		remainingInCountry = 0
	}

	advance()

	for i := 0; i < day.Sales; i++ {
		if remainingInCountry == 0 && currentCountry != nil {
			advance()
		}

		var country *string
		if remainingInCountry > 0 && currentCountry != nil {
			country = currentCountry
			remainingInCountry--
		}

		units = append(units, &domain.AttributedSale{
			EntityID:      adID,
			EntityName:    adName,
			Level:         domain.LevelAd,
			Date:          day.Date,
			Amount:        unitAmount,
			CountryCode:   country,
			PeriodSpend:   periodSpend,
			PeriodRevenue: periodRevenue,
			PeriodRoas:    roas,
		})
	}

	return units
}
