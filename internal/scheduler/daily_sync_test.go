package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	syncmocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newDailySyncService(accountRepo *mocks.MockAccountRepository, syncService *syncmocks.MockService) *DailySyncService {
	appConfig := &config.Config{
		Sync: config.Sync{
			CronSchedule:             "0 2 * * *",
			LookbackDays:             7,
			InterAccountDelaySeconds: 0, // sem pausa nos testes
			Enabled:                  true,
		},
	}
	return NewDailySyncService(accountRepo, syncService, appConfig)
}

func TestDailySyncService_syncAllAccounts(t *testing.T) {
	tests := []struct {
		name     string
		accounts []*domain.AdAccount
		setup    func(syncService *syncmocks.MockService)
	}{
		{
			name: "Todas as contas sincronizam em sequência",
			accounts: []*domain.AdAccount{
				{ID: "ACC1", Name: "Loja A", Status: domain.AdAccountStatusActive},
				{ID: "ACC2", Name: "Loja B", Status: domain.AdAccountStatusActive},
			},
			setup: func(syncService *syncmocks.MockService) {
				first := syncService.EXPECT().
					FullSync(gomock.Any(), "ACC1").
					Return(&domain.SyncResult{AccountID: "ACC1", Success: true}, nil)
				syncService.EXPECT().
					FullSync(gomock.Any(), "ACC2").
					Return(&domain.SyncResult{AccountID: "ACC2", Success: true}, nil).
					After(first)
			},
		},
		{
			name: "Falha em uma conta não interrompe as demais",
			accounts: []*domain.AdAccount{
				{ID: "ACC1", Name: "Loja A", Status: domain.AdAccountStatusActive},
				{ID: "ACC2", Name: "Loja B", Status: domain.AdAccountStatusActive},
			},
			setup: func(syncService *syncmocks.MockService) {
				syncService.EXPECT().
					FullSync(gomock.Any(), "ACC1").
					Return(nil, fmt.Errorf("limite diário de chamadas à API da conta esgotado"))
				syncService.EXPECT().
					FullSync(gomock.Any(), "ACC2").
					Return(&domain.SyncResult{AccountID: "ACC2", Success: true}, nil)
			},
		},
		{
			name:     "Nenhuma conta ativa",
			accounts: []*domain.AdAccount{},
			setup:    func(syncService *syncmocks.MockService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
			mockSyncService := syncmocks.NewMockService(ctrl)

			mockAccountRepo.EXPECT().ListActive(gomock.Any()).Return(tt.accounts, nil)
			tt.setup(mockSyncService)

			service := newDailySyncService(mockAccountRepo, mockSyncService)
			service.syncAllAccounts(context.Background())

			assert.False(t, service.syncRunning)
		})
	}
}

func TestDailySyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newDailySyncService(mocks.NewMockAccountRepository(ctrl), syncmocks.NewMockService(ctrl))

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}

func TestRetentionCleanupService_RunCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaign := mocks.NewMockDailyMetricRepository(ctrl)
	mockAdSet := mocks.NewMockDailyMetricRepository(ctrl)
	mockAd := mocks.NewMockDailyMetricRepository(ctrl)
	mockCountry := mocks.NewMockCountryDailyMetricRepository(ctrl)
	mockAdCountry := mocks.NewMockAdCountryDailyMetricRepository(ctrl)

	appConfig := &config.Config{
		Cleanup: config.Cleanup{RetentionDays: 395, Enabled: true},
	}

	service := NewRetentionCleanupService(mockCampaign, mockAdSet, mockAd, mockCountry, mockAdCountry, appConfig)

	mockCampaign.EXPECT().DeleteOlderThan(gomock.Any(), 395).Return(int64(10), nil)
	// Falha em uma tabela não interrompe as demais.
	mockAdSet.EXPECT().DeleteOlderThan(gomock.Any(), 395).Return(int64(0), fmt.Errorf("tabela bloqueada"))
	mockAd.EXPECT().DeleteOlderThan(gomock.Any(), 395).Return(int64(25), nil)
	mockCountry.EXPECT().DeleteOlderThan(gomock.Any(), 395).Return(int64(3), nil)
	mockAdCountry.EXPECT().DeleteOlderThan(gomock.Any(), 395).Return(int64(7), nil)

	service.RunCleanup(context.Background())
}

func TestDailySyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockSyncService := syncmocks.NewMockService(ctrl)

	done := make(chan struct{})
	mockAccountRepo.EXPECT().
		ListActive(gomock.Any()).
		DoAndReturn(func(_ context.Context) ([]*domain.AdAccount, error) {
			close(done)
			return nil, nil
		})

	service := newDailySyncService(mockAccountRepo, mockSyncService)
	service.TriggerManualSync(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não foi disparada")
	}
}
