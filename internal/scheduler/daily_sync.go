package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing"
)

// DailySyncService agenda a sincronização diária de todas as contas ativas.
// As contas são processadas em sequência, com uma pausa entre elas para não
// esgotar o limite de requisições da API.
type DailySyncService struct {
	scheduler   *gocron.Scheduler
	config      config.Sync
	accountRepo repository.AccountRepository
	syncService syncing.Service

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySyncService(
	accountRepo repository.AccountRepository,
	syncService syncing.Service,
	appConfig *config.Config,
) *DailySyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         appConfig.Sync.CronSchedule,
		"lookback_days":         appConfig.Sync.LookbackDays,
		"inter_account_delay_s": appConfig.Sync.InterAccountDelaySeconds,
		"daily_api_call_budget": appConfig.Sync.DailyAPICallBudget,
		"sync_enabled":          appConfig.Sync.Enabled,
	}).Info("Configuração do agendador de sincronização diária carregada")

	return &DailySyncService{
		scheduler:   scheduler,
		config:      appConfig.Sync,
		accountRepo: accountRepo,
		syncService: syncService,
	}
}

// Start inicia o agendador
func (s *DailySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização diária: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização diária")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza todas as contas ativas em sequência
func (s *DailySyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização diária de todas as contas ativas")

	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização diária")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização diária")
		return
	}

	succeeded := 0
	for i, account := range accounts {
		if i > 0 {
			select {
			case <-ctx.Done():
				logrus.Info("Sincronização diária interrompida pelo cancelamento do contexto")
				return
			case <-time.After(time.Duration(s.config.InterAccountDelaySeconds) * time.Second):
			}
		}

		result, err := s.syncService.FullSync(ctx, account.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":   account.ID,
				"account_name": account.Name,
				"error":        err.Error(),
			}).Error("Erro ao sincronizar conta, seguindo para a próxima")
			continue
		}

		if result.Success {
			succeeded++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"accounts":  len(accounts),
		"succeeded": succeeded,
	}).Info("Sincronização diária concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de todas as contas
func (s *DailySyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de todas as contas")
	go s.syncAllAccounts(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *DailySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           running,
		"inter_account_delay_s":  s.config.InterAccountDelaySeconds,
		"daily_api_call_budget":  s.config.DailyAPICallBudget,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
