package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	reconmocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	reconciler      *reconmocks.MockReconciler
	adRepo          *mocks.MockAdRepository
	campaignMetrics *mocks.MockDailyMetricRepository
	adMetrics       *mocks.MockDailyMetricRepository
	countryMetrics  *mocks.MockCountryDailyMetricRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (Service, *dashboardMocks) {
	m := &dashboardMocks{
		reconciler:      reconmocks.NewMockReconciler(ctrl),
		adRepo:          mocks.NewMockAdRepository(ctrl),
		campaignMetrics: mocks.NewMockDailyMetricRepository(ctrl),
		adMetrics:       mocks.NewMockDailyMetricRepository(ctrl),
		countryMetrics:  mocks.NewMockCountryDailyMetricRepository(ctrl),
	}

	service := NewService(m.reconciler, m.adRepo, m.campaignMetrics, m.adMetrics, m.countryMetrics)
	return service, m
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	anchor := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	window := domain.TrailingWindow(anchor, 30)

	m.campaignMetrics.EXPECT().LatestDate(gomock.Any(), "ACC1").Return(&anchor, nil)
	m.campaignMetrics.EXPECT().
		TotalsByAccount(gomock.Any(), "ACC1", window.Start, window.End).
		Return([]*domain.MetricTotals{
			{EntityID: "CMP1", EntityName: "Campanha A", Spend: 100, Revenue: 200, Sales: 4, Leads: 2, Impressions: 10000, Reach: 4000, Clicks: 300, Frequency: 2.5},
			{EntityID: "CMP2", EntityName: "Campanha B", Spend: 50, Revenue: 40, Sales: 1, Impressions: 5000, Reach: 2500, Clicks: 100, Frequency: 2.0},
		}, nil)

	// CMP1 tem mais receita no ledger; CMP2 mantém os valores da plataforma.
	m.reconciler.EXPECT().
		EffectiveTotals(gomock.Any(), domain.LevelCampaign, "CMP1", 200.0, 4, window).
		Return(260.0, 5, nil)
	m.reconciler.EXPECT().
		EffectiveTotals(gomock.Any(), domain.LevelCampaign, "CMP2", 40.0, 1, window).
		Return(40.0, 1, nil)

	m.countryMetrics.EXPECT().
		ListByAccountAndRange(gomock.Any(), "ACC1", window.Start, window.End).
		Return([]*domain.CountryDailyMetric{
			{CountryCode: "BR", Spend: 60, Revenue: 120, Sales: 3},
			{CountryCode: "US", Spend: 40, Revenue: 90, Sales: 1},
			{CountryCode: "BR", Spend: 30, Revenue: 50, Sales: 1},
		}, nil)

	overview, err := service.Overview(context.Background(), "ACC1")
	require.NoError(t, err)
	require.NotNil(t, overview.Window)

	assert.Equal(t, window, *overview.Window)
	assert.Equal(t, 150.0, overview.Totals.Spend)
	assert.Equal(t, 300.0, overview.Totals.Revenue)
	assert.Equal(t, 240.0, overview.Totals.PlatformRevenue)
	assert.Equal(t, 6, overview.Totals.Sales)
	assert.Equal(t, 5, overview.Totals.PlatformSales)
	assert.Equal(t, 2, overview.Totals.Leads)
	assert.Equal(t, 2.0, overview.Totals.Roas)
	assert.InDelta(t, 2.3076, overview.Totals.Frequency, 0.001)

	require.Len(t, overview.Campaigns, 2)
	assert.Equal(t, "CMP1", overview.Campaigns[0].CampaignID)
	assert.Equal(t, 260.0, overview.Campaigns[0].Revenue)
	assert.Equal(t, 2.6, overview.Campaigns[0].Roas)

	// BR somado e à frente de US por receita.
	require.Len(t, overview.Countries, 2)
	assert.Equal(t, "BR", overview.Countries[0].CountryCode)
	assert.Equal(t, 170.0, overview.Countries[0].Revenue)
	assert.Equal(t, 4, overview.Countries[0].Sales)
	assert.Equal(t, "US", overview.Countries[1].CountryCode)
}

func TestService_Overview_ContaSemMetricas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.campaignMetrics.EXPECT().LatestDate(gomock.Any(), "ACC1").Return(nil, nil)

	overview, err := service.Overview(context.Background(), "ACC1")
	require.NoError(t, err)

	assert.Nil(t, overview.Window)
	assert.Empty(t, overview.Campaigns)
	assert.Zero(t, overview.Totals.Spend)
}

func TestService_Overview_LedgerIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	anchor := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	window := domain.TrailingWindow(anchor, 30)

	m.campaignMetrics.EXPECT().LatestDate(gomock.Any(), "ACC1").Return(&anchor, nil)
	m.campaignMetrics.EXPECT().
		TotalsByAccount(gomock.Any(), "ACC1", window.Start, window.End).
		Return([]*domain.MetricTotals{
			{EntityID: "CMP1", EntityName: "Campanha A", Spend: 100, Revenue: 200, Sales: 4},
		}, nil)

	m.reconciler.EXPECT().
		EffectiveTotals(gomock.Any(), domain.LevelCampaign, "CMP1", 200.0, 4, window).
		Return(0.0, 0, errors.New("ledger fora do ar"))

	m.countryMetrics.EXPECT().
		ListByAccountAndRange(gomock.Any(), "ACC1", window.Start, window.End).
		Return(nil, nil)

	overview, err := service.Overview(context.Background(), "ACC1")
	require.NoError(t, err)

	// Falha no ledger não derruba o dashboard, só perde a reconciliação.
	assert.Equal(t, 200.0, overview.Totals.Revenue)
	assert.Equal(t, 4, overview.Totals.Sales)
}

func TestService_Sales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	anchor := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	window := domain.TrailingWindow(anchor, 30)

	m.adMetrics.EXPECT().LatestDate(gomock.Any(), "ACC1").Return(&anchor, nil)
	m.adRepo.EXPECT().ListByAccount(gomock.Any(), "ACC1").Return([]*domain.Ad{
		{ID: "AD1", Name: "Anúncio A"},
		{ID: "AD2", Name: "Anúncio B"},
	}, nil)

	br := "BR"
	m.reconciler.EXPECT().
		AttributeSales(gomock.Any(), "AD1", "Anúncio A", window).
		Return([]*domain.AttributedSale{
			{EntityID: "AD1", Amount: 50, CountryCode: &br},
		}, nil)
	m.reconciler.EXPECT().
		AttributeSales(gomock.Any(), "AD2", "Anúncio B", window).
		Return(nil, errors.New("sem breakdown"))

	sales, err := service.Sales(context.Background(), "ACC1")
	require.NoError(t, err)

	// O anúncio com erro é pulado, o restante é devolvido.
	require.Len(t, sales, 1)
	assert.Equal(t, "AD1", sales[0].EntityID)
}

func TestService_Sales_ContaSemMetricas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.adMetrics.EXPECT().LatestDate(gomock.Any(), "ACC1").Return(nil, nil)

	sales, err := service.Sales(context.Background(), "ACC1")
	require.NoError(t, err)
	assert.Empty(t, sales)
}
