package syncing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/events"
	syncmocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	source           *syncmocks.MockAdsSource
	accountRepo      *mocks.MockAccountRepository
	campaignRepo     *mocks.MockCampaignRepository
	adSetRepo        *mocks.MockAdSetRepository
	adRepo           *mocks.MockAdRepository
	campaignMetrics  *mocks.MockDailyMetricRepository
	adSetMetrics     *mocks.MockDailyMetricRepository
	adMetrics        *mocks.MockDailyMetricRepository
	countryMetrics   *mocks.MockCountryDailyMetricRepository
	adCountryMetrics *mocks.MockAdCountryDailyMetricRepository
	syncStatusRepo   *mocks.MockSyncStatusRepository
}

func newSyncService(ctrl *gomock.Controller, cfg config.Sync, bus *events.Bus) (*service, *syncMocks) {
	m := &syncMocks{
		source:           syncmocks.NewMockAdsSource(ctrl),
		accountRepo:      mocks.NewMockAccountRepository(ctrl),
		campaignRepo:     mocks.NewMockCampaignRepository(ctrl),
		adSetRepo:        mocks.NewMockAdSetRepository(ctrl),
		adRepo:           mocks.NewMockAdRepository(ctrl),
		campaignMetrics:  mocks.NewMockDailyMetricRepository(ctrl),
		adSetMetrics:     mocks.NewMockDailyMetricRepository(ctrl),
		adMetrics:        mocks.NewMockDailyMetricRepository(ctrl),
		countryMetrics:   mocks.NewMockCountryDailyMetricRepository(ctrl),
		adCountryMetrics: mocks.NewMockAdCountryDailyMetricRepository(ctrl),
		syncStatusRepo:   mocks.NewMockSyncStatusRepository(ctrl),
	}

	svc := NewService(
		cfg,
		m.source,
		m.accountRepo,
		m.campaignRepo,
		m.adSetRepo,
		m.adRepo,
		m.campaignMetrics,
		m.adSetMetrics,
		m.adMetrics,
		m.countryMetrics,
		m.adCountryMetrics,
		m.syncStatusRepo,
		bus,
	).(*service)

	// Sem pausa entre etapas nos testes.
	svc.stepDelay = 0

	return svc, m
}

func activeAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC1",
		ExternalID: "111",
		Name:       "Conta Teste",
		Status:     domain.AdAccountStatusActive,
	}
}

func syncConfig() config.Sync {
	return config.Sync{
		LookbackDays:        7,
		InitialLookbackDays: 30,
		DailyAPICallBudget:  50,
		CreativeRefreshDays: 7,
	}
}

func TestService_FullSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bus := events.NewBus()
	eventCh := bus.Subscribe()

	svc, m := newSyncService(ctrl, syncConfig(), bus)

	m.accountRepo.EXPECT().GetByID(gomock.Any(), "ACC1").Return(activeAccount(), nil)
	m.syncStatusRepo.EXPECT().GetByAccount(gomock.Any(), "ACC1").Return(nil, nil)
	m.syncStatusRepo.EXPECT().IncrementAPICalls(gomock.Any(), "ACC1", 1).Return(nil).Times(5)

	insight := metadomain.DailyInsight{
		Date:        "2025-06-10",
		Spend:       "42.50",
		Impressions: "1000",
		Reach:       "800",
		Clicks:      "37",
		Frequency:   "1.25",
		Actions: []metadomain.Action{
			{ActionType: "purchase", Value: "2"},
			{ActionType: "lead", Value: "1"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: "180.00"},
		},
	}

	m.source.EXPECT().
		FetchCampaigns("111", gomock.Any()).
		Return([]metadomain.PlatformCampaign{
			{ExternalID: "c1", Name: "Campanha A", Status: "ACTIVE", DailyBudget: "5000", Insights: metadomain.InsightList{Data: []metadomain.DailyInsight{insight}}},
		}, nil)

	m.campaignRepo.EXPECT().
		UpsertByExternalID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, campaign *domain.Campaign) (string, error) {
			assert.Equal(t, "ACC1", campaign.AccountID)
			assert.Equal(t, "c1", *campaign.ExternalID)
			assert.Equal(t, domain.EntityStatusActive, campaign.Status)
			assert.Equal(t, 50.0, *campaign.Budget)
			return "CMP1", nil
		})

	m.campaignMetrics.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, metric *domain.DailyMetric) error {
			assert.Equal(t, "CMP1", metric.EntityID)
			assert.Equal(t, 42.5, metric.Spend)
			assert.Equal(t, 180.0, metric.Revenue)
			assert.Equal(t, 2, metric.Sales)
			assert.Equal(t, 1, metric.Leads)
			assert.Equal(t, 1000, metric.Impressions)
			assert.Equal(t, 1.25, metric.Frequency)
			return nil
		})

	m.source.EXPECT().
		FetchAdSets("111", gomock.Any()).
		Return([]metadomain.PlatformAdSet{
			{ExternalID: "s1", CampaignExternalID: "c1", Name: "Conjunto A", Status: "PAUSED"},
		}, nil)

	m.campaignRepo.EXPECT().
		GetByExternalID(gomock.Any(), "ACC1", "c1").
		Return(&domain.Campaign{ID: "CMP1"}, nil).
		Times(2)

	m.adSetRepo.EXPECT().
		UpsertByExternalID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adSet *domain.AdSet) (string, error) {
			assert.Equal(t, "CMP1", adSet.CampaignID)
			assert.Equal(t, domain.EntityStatusPaused, adSet.Status)
			return "AS1", nil
		})

	m.source.EXPECT().
		FetchAds("111", gomock.Any()).
		Return([]metadomain.PlatformAd{
			{ExternalID: "a1", AdSetExternalID: "s1", CampaignExternalID: "c1", Name: "Ad A", Status: "ACTIVE"},
		}, nil)

	m.adSetRepo.EXPECT().
		GetByExternalID(gomock.Any(), "ACC1", "s1").
		Return(&domain.AdSet{ID: "AS1"}, nil)

	m.adRepo.EXPECT().
		UpsertByExternalID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ad *domain.Ad) (string, error) {
			assert.Equal(t, "AS1", ad.AdSetID)
			assert.Equal(t, "CMP1", ad.CampaignID)
			return "AD1", nil
		})

	// Um GetByExternalID na revalidação do criativo e outro no breakdown.
	m.adRepo.EXPECT().
		GetByExternalID(gomock.Any(), "ACC1", "a1").
		Return(&domain.Ad{ID: "AD1"}, nil).
		Times(2)

	m.source.EXPECT().
		FetchCountryBreakdown("111", gomock.Any()).
		Return([]metadomain.CountryInsight{
			{Country: "BR", Date: "2025-06-10", Spend: "30", Actions: []metadomain.Action{{ActionType: "purchase", Value: "1"}}},
		}, nil)

	m.countryMetrics.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, metric *domain.CountryDailyMetric) error {
			assert.Equal(t, "ACC1", metric.AccountID)
			assert.Equal(t, "BR", metric.CountryCode)
			assert.Equal(t, 1, metric.Sales)
			return nil
		})

	m.source.EXPECT().
		FetchAdCountryBreakdown("111", gomock.Any()).
		Return([]metadomain.CountryInsight{
			{AdExternalID: "a1", Country: "BR", Date: "2025-06-10", Spend: "30"},
		}, nil)

	m.adCountryMetrics.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, metric *domain.AdCountryDailyMetric) error {
			assert.Equal(t, "AD1", metric.AdID)
			return nil
		})

	m.syncStatusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status *domain.SyncStatus) error {
			assert.True(t, status.LastSyncSuccess)
			assert.True(t, status.InitialSyncComplete)
			assert.Nil(t, status.LastSyncError)
			return nil
		})

	m.accountRepo.EXPECT().UpdateLastSync(gomock.Any(), "ACC1", gomock.Any()).Return(nil)

	result, err := svc.FullSync(context.Background(), "ACC1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Steps, 5)

	expectedOrder := []string{"campaigns", "adsets", "ads", "country_rollups", "ad_country_rollups"}
	for i, step := range result.Steps {
		assert.Equal(t, expectedOrder[i], step.Step)
		assert.True(t, step.Success)
		assert.Equal(t, 1, step.Count)
	}

	select {
	case event := <-eventCh:
		assert.Equal(t, "ACC1", event.AccountID)
		assert.True(t, event.Success)
	default:
		t.Fatal("evento de sincronização não publicado")
	}
}

func TestService_FullSync_EtapaFalhaNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSyncService(ctrl, syncConfig(), events.NewBus())

	m.accountRepo.EXPECT().GetByID(gomock.Any(), "ACC1").Return(activeAccount(), nil)
	m.syncStatusRepo.EXPECT().GetByAccount(gomock.Any(), "ACC1").Return(nil, nil)
	m.syncStatusRepo.EXPECT().IncrementAPICalls(gomock.Any(), "ACC1", 1).Return(nil).Times(5)

	m.source.EXPECT().FetchCampaigns("111", gomock.Any()).Return(nil, fmt.Errorf("limite de requisições atingido"))
	m.source.EXPECT().FetchAdSets("111", gomock.Any()).Return(nil, nil)
	m.source.EXPECT().FetchAds("111", gomock.Any()).Return(nil, nil)
	m.source.EXPECT().FetchCountryBreakdown("111", gomock.Any()).Return(nil, nil)
	m.source.EXPECT().FetchAdCountryBreakdown("111", gomock.Any()).Return(nil, nil)

	m.syncStatusRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status *domain.SyncStatus) error {
			assert.False(t, status.LastSyncSuccess)
			assert.Contains(t, *status.LastSyncError, "campaigns:")
			return nil
		})
	m.accountRepo.EXPECT().UpdateLastSync(gomock.Any(), "ACC1", gomock.Any()).Return(nil)

	result, err := svc.FullSync(context.Background(), "ACC1")

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Len(t, result.Steps, 5)
	assert.False(t, result.Steps[0].Success)
	assert.Equal(t, "limite de requisições atingido", result.Steps[0].Error)
	for _, step := range result.Steps[1:] {
		assert.True(t, step.Success)
	}
}

func TestService_FullSync_ConjuntoSemCampanhaEhPulado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSyncService(ctrl, syncConfig(), events.NewBus())

	m.accountRepo.EXPECT().GetByID(gomock.Any(), "ACC1").Return(activeAccount(), nil)
	m.syncStatusRepo.EXPECT().GetByAccount(gomock.Any(), "ACC1").Return(nil, nil)
	m.syncStatusRepo.EXPECT().IncrementAPICalls(gomock.Any(), "ACC1", 1).Return(nil).Times(5)

	m.source.EXPECT().FetchCampaigns("111", gomock.Any()).Return(nil, nil)
	m.source.EXPECT().
		FetchAdSets("111", gomock.Any()).
		Return([]metadomain.PlatformAdSet{
			{ExternalID: "s1", CampaignExternalID: "desconhecida", Name: "Conjunto Órfão"},
		}, nil)
	m.campaignRepo.EXPECT().GetByExternalID(gomock.Any(), "ACC1", "desconhecida").Return(nil, nil)
	m.source.EXPECT().FetchAds("111", gomock.Any()).Return(nil, nil)
	m.source.EXPECT().FetchCountryBreakdown("111", gomock.Any()).Return(nil, nil)
	m.source.EXPECT().FetchAdCountryBreakdown("111", gomock.Any()).Return(nil, nil)

	m.syncStatusRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().UpdateLastSync(gomock.Any(), "ACC1", gomock.Any()).Return(nil)

	result, err := svc.FullSync(context.Background(), "ACC1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Steps[1].Count)
}

func TestService_FullSync_OrcamentoEsgotado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSyncService(ctrl, syncConfig(), events.NewBus())

	today := time.Now()
	m.accountRepo.EXPECT().GetByID(gomock.Any(), "ACC1").Return(activeAccount(), nil)
	m.syncStatusRepo.EXPECT().
		GetByAccount(gomock.Any(), "ACC1").
		Return(&domain.SyncStatus{
			AccountID:     "ACC1",
			APICallsToday: 50,
			APICallsDate:  &today,
		}, nil)

	_, err := svc.FullSync(context.Background(), "ACC1")
	assert.ErrorIs(t, err, ErrAPIBudgetExhausted)
}

func TestService_FullSync_ContaInvalida(t *testing.T) {
	tests := []struct {
		name      string
		account   *domain.AdAccount
		expectErr error
	}{
		{name: "Conta inexistente", account: nil, expectErr: ErrAccountNotFound},
		{
			name:      "Conta desconectada",
			account:   &domain.AdAccount{ID: "ACC1", Status: domain.AdAccountStatusDisconnected},
			expectErr: ErrAccountNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newSyncService(ctrl, syncConfig(), events.NewBus())
			m.accountRepo.EXPECT().GetByID(gomock.Any(), "ACC1").Return(tt.account, nil)

			_, err := svc.FullSync(context.Background(), "ACC1")
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestService_SyncPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newSyncService(ctrl, syncConfig(), events.NewBus())

	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	t.Run("Primeira sincronização usa a janela inicial", func(t *testing.T) {
		period := svc.syncPeriod(nil, now)
		assert.Equal(t, 30, int(period.End.Sub(period.Start).Hours()/24)+1)
	})

	t.Run("Sincronizações seguintes usam a janela incremental", func(t *testing.T) {
		period := svc.syncPeriod(&domain.SyncStatus{InitialSyncComplete: true}, now)
		assert.Equal(t, 7, int(period.End.Sub(period.Start).Hours()/24)+1)
	})
}
