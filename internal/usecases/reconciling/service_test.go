package reconciling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestEffectiveRevenue(t *testing.T) {
	tests := []struct {
		name     string
		platform float64
		ledger   float64
		expected float64
	}{
		{name: "Plataforma maior que ledger", platform: 120, ledger: 80, expected: 120},
		{name: "Ledger maior que plataforma", platform: 80, ledger: 120, expected: 120},
		{name: "Fontes iguais", platform: 100, ledger: 100, expected: 100},
		{name: "Ambas zeradas", platform: 0, ledger: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveRevenue(tt.platform, tt.ledger))
		})
	}
}

func TestEffectiveSales(t *testing.T) {
	assert.Equal(t, 7, EffectiveSales(7, 3))
	assert.Equal(t, 7, EffectiveSales(3, 7))
	assert.Equal(t, 0, EffectiveSales(0, 0))
}

func TestRoas(t *testing.T) {
	tests := []struct {
		name     string
		revenue  float64
		spend    float64
		expected float64
	}{
		{name: "ROAS positivo", revenue: 300, spend: 100, expected: 3},
		{name: "Investimento zero retorna zero", revenue: 500, spend: 0, expected: 0},
		{name: "Receita zero", revenue: 0, spend: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Roas(tt.revenue, tt.spend))
		})
	}
}

func TestExpandDay(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Conservação: N vendas viram N linhas somando a receita do dia", func(t *testing.T) {
		day := &domain.DailySales{EntityID: "AD1", Date: date, Revenue: 150, Sales: 5, Spend: 60}
		countries := []*domain.AdCountryDailyMetric{
			{AdID: "AD1", CountryCode: "BR", Date: date, Sales: 3, Revenue: 95},
			{AdID: "AD1", CountryCode: "US", Date: date, Sales: 1, Revenue: 40},
		}

		units := ExpandDay("AD1", "Ad Teste", day, countries, 60, 150)

		assert.Len(t, units, 5)

		total := 0.0
		for _, u := range units {
			total += u.Amount
			assert.Equal(t, 30.0, u.Amount)
		}
		assert.InDelta(t, 150.0, total, 0.0001)

		// Países consumidos na ordem do breakdown, excedente sem país.
		assert.Equal(t, "BR", *units[0].CountryCode)
		assert.Equal(t, "BR", *units[1].CountryCode)
		assert.Equal(t, "BR", *units[2].CountryCode)
		assert.Equal(t, "US", *units[3].CountryCode)
		assert.Nil(t, units[4].CountryCode)
	})

	t.Run("Sem breakdown todas as vendas ficam sem país", func(t *testing.T) {
		day := &domain.DailySales{EntityID: "AD1", Date: date, Revenue: 90, Sales: 3, Spend: 30}

		units := ExpandDay("AD1", "Ad Teste", day, nil, 30, 90)

		assert.Len(t, units, 3)
		for _, u := range units {
			assert.Nil(t, u.CountryCode)
			assert.Equal(t, 30.0, u.Amount)
		}
	})

	t.Run("Breakdown declara mais vendas que o agregado", func(t *testing.T) {
		day := &domain.DailySales{EntityID: "AD1", Date: date, Revenue: 100, Sales: 2, Spend: 50}
		countries := []*domain.AdCountryDailyMetric{
			{AdID: "AD1", CountryCode: "BR", Date: date, Sales: 5, Revenue: 100},
		}

		units := ExpandDay("AD1", "Ad Teste", day, countries, 50, 100)

		assert.Len(t, units, 2)
		assert.Equal(t, "BR", *units[0].CountryCode)
		assert.Equal(t, "BR", *units[1].CountryCode)
	})

	t.Run("Dia sem vendas não gera linhas", func(t *testing.T) {
		day := &domain.DailySales{EntityID: "AD1", Date: date, Revenue: 0, Sales: 0, Spend: 20}
		assert.Empty(t, ExpandDay("AD1", "Ad Teste", day, nil, 20, 0))
	})
}

func TestService_EffectiveTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionRepo := mocks.NewMockRevenueTransactionRepository(ctrl)
	mockAdMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAdCountryRepo := mocks.NewMockAdCountryDailyMetricRepository(ctrl)

	service := NewService(mockTransactionRepo, mockAdMetricRepo, mockAdCountryRepo)

	period := domain.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	mockTransactionRepo.EXPECT().
		TotalsForEntity(gomock.Any(), domain.LevelCampaign, "CMP1", period.Start, period.End).
		Return(&domain.LedgerTotals{Revenue: 320, Sales: 4}, nil)

	revenue, sales, err := service.EffectiveTotals(context.Background(), domain.LevelCampaign, "CMP1", 250, 6, period)

	assert.NoError(t, err)
	assert.Equal(t, 320.0, revenue)
	assert.Equal(t, 6, sales)
}

func TestService_AttributeSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionRepo := mocks.NewMockRevenueTransactionRepository(ctrl)
	mockAdMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAdCountryRepo := mocks.NewMockAdCountryDailyMetricRepository(ctrl)

	service := NewService(mockTransactionRepo, mockAdMetricRepo, mockAdCountryRepo)

	period := domain.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	mockAdMetricRepo.EXPECT().
		ListDailySales(gomock.Any(), "AD1", period.Start, period.End).
		Return([]*domain.DailySales{
			{EntityID: "AD1", Date: day1, Revenue: 100, Sales: 2, Spend: 40},
			{EntityID: "AD1", Date: day2, Revenue: 0, Sales: 0, Spend: 25},
			{EntityID: "AD1", Date: day3, Revenue: 60, Sales: 1, Spend: 35},
		}, nil)

	mockAdCountryRepo.EXPECT().
		ListByEntityAndDate(gomock.Any(), "AD1", day1).
		Return([]*domain.AdCountryDailyMetric{
			{AdID: "AD1", CountryCode: "BR", Date: day1, Sales: 2, Revenue: 100},
		}, nil)

	mockAdCountryRepo.EXPECT().
		ListByEntityAndDate(gomock.Any(), "AD1", day3).
		Return(nil, nil)

	sales, err := service.AttributeSales(context.Background(), "AD1", "Ad Teste", period)

	assert.NoError(t, err)
	assert.Len(t, sales, 3)

	// Dia 1: duas unidades de 50 com país BR e acumulado até o dia.
	assert.Equal(t, 50.0, sales[0].Amount)
	assert.Equal(t, "BR", *sales[0].CountryCode)
	assert.Equal(t, 40.0, sales[0].PeriodSpend)
	assert.Equal(t, 100.0, sales[0].PeriodRevenue)
	assert.InDelta(t, 2.5, sales[0].PeriodRoas, 0.0001)

	// Dia 3: acumulado inclui o dia 2 sem vendas.
	assert.Equal(t, 60.0, sales[2].Amount)
	assert.Nil(t, sales[2].CountryCode)
	assert.Equal(t, 100.0, sales[2].PeriodSpend)
	assert.Equal(t, 160.0, sales[2].PeriodRevenue)
	assert.InDelta(t, 1.6, sales[2].PeriodRoas, 0.0001)
}
