package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/events"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
)

var (
	ErrAccountNotFound    = fmt.Errorf("conta não encontrada")
	ErrAccountNotActive   = fmt.Errorf("conta não está ativa")
	ErrAPIBudgetExhausted = fmt.Errorf("limite diário de chamadas à API da conta esgotado")
)

type Service interface {
	// FullSync executa as cinco etapas de sincronização de uma conta na
	// ordem da hierarquia: campanhas, conjuntos, anúncios, rollup por país e
	// breakdown por país dos anúncios. Uma etapa que falha não interrompe as
	// seguintes; o resultado carrega o desfecho de cada uma.
	FullSync(ctx context.Context, accountID string) (*domain.SyncResult, error)

	GetStatus(ctx context.Context, accountID string) (*domain.SyncStatus, error)
}

type service struct {
	cfg              config.Sync
	source           AdsSource
	accountRepo      repository.AccountRepository
	campaignRepo     repository.CampaignRepository
	adSetRepo        repository.AdSetRepository
	adRepo           repository.AdRepository
	campaignMetrics  repository.DailyMetricRepository
	adSetMetrics     repository.DailyMetricRepository
	adMetrics        repository.DailyMetricRepository
	countryMetrics   repository.CountryDailyMetricRepository
	adCountryMetrics repository.AdCountryDailyMetricRepository
	syncStatusRepo   repository.SyncStatusRepository
	bus              *events.Bus

	stepDelay time.Duration
	now       func() time.Time
}

func NewService(
	cfg config.Sync,
	source AdsSource,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	campaignMetrics repository.DailyMetricRepository,
	adSetMetrics repository.DailyMetricRepository,
	adMetrics repository.DailyMetricRepository,
	countryMetrics repository.CountryDailyMetricRepository,
	adCountryMetrics repository.AdCountryDailyMetricRepository,
	syncStatusRepo repository.SyncStatusRepository,
	bus *events.Bus,
) Service {
	return &service{
		cfg:              cfg,
		source:           source,
		accountRepo:      accountRepo,
		campaignRepo:     campaignRepo,
		adSetRepo:        adSetRepo,
		adRepo:           adRepo,
		campaignMetrics:  campaignMetrics,
		adSetMetrics:     adSetMetrics,
		adMetrics:        adMetrics,
		countryMetrics:   countryMetrics,
		adCountryMetrics: adCountryMetrics,
		syncStatusRepo:   syncStatusRepo,
		bus:              bus,
		stepDelay:        time.Duration(cfg.RequestDelaySeconds) * time.Second,
		now:              time.Now,
	}
}

func (s *service) GetStatus(ctx context.Context, accountID string) (*domain.SyncStatus, error) {
	return s.syncStatusRepo.GetByAccount(ctx, accountID)
}

func (s *service) FullSync(ctx context.Context, accountID string) (*domain.SyncResult, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a conta: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.Status != domain.AdAccountStatusActive {
		return nil, ErrAccountNotActive
	}

	status, err := s.syncStatusRepo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o status de sincronização: %w", err)
	}

	startedAt := s.now()

	if s.budgetExhausted(status, startedAt) {
		return nil, ErrAPIBudgetExhausted
	}

	period := s.syncPeriod(status, startedAt)

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"start":      period.Start.Format(time.DateOnly),
		"end":        period.End.Format(time.DateOnly),
	}).Info("sync: iniciando sincronização da conta")

	result := &domain.SyncResult{
		AccountID: accountID,
		StartedAt: startedAt,
	}

	steps := []struct {
		name string
		fn   func(ctx context.Context, account *domain.AdAccount, period domain.DateRange) (int, error)
	}{
		{"campaigns", s.syncCampaigns},
		{"adsets", s.syncAdSets},
		{"ads", s.syncAds},
		{"country_rollups", s.syncCountryRollups},
		{"ad_country_rollups", s.syncAdCountryRollups},
	}

	for i, step := range steps {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				result.Steps = append(result.Steps, domain.SyncStepResult{
					Step:  step.name,
					Error: err.Error(),
				})
				metrics.SyncStepsTotal.WithLabelValues(step.name, "error").Inc()
				continue
			}
		}

		metrics.PlatformAPICalls.Inc()
		if err := s.syncStatusRepo.IncrementAPICalls(ctx, accountID, 1); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Warn("sync: erro ao contabilizar chamada de API")
		}

		count, err := step.fn(ctx, account, period)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"step":       step.name,
				"error":      err.Error(),
			}).Error("sync: etapa falhou, seguindo para a próxima")

			result.Steps = append(result.Steps, domain.SyncStepResult{
				Step:  step.name,
				Error: err.Error(),
			})
			metrics.SyncStepsTotal.WithLabelValues(step.name, "error").Inc()
			continue
		}

		result.Steps = append(result.Steps, domain.SyncStepResult{
			Step:    step.name,
			Success: true,
			Count:   count,
		})
		metrics.SyncStepsTotal.WithLabelValues(step.name, "success").Inc()
	}

	result.FinishedAt = s.now()
	result.Success = allStepsSucceeded(result.Steps)
	metrics.SyncDuration.Observe(result.FinishedAt.Sub(startedAt).Seconds())

	s.persistOutcome(ctx, accountID, result)

	if s.bus != nil {
		s.bus.Publish(events.SyncCompleted{AccountID: accountID, Success: result.Success})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"success":    result.Success,
		"duration":   result.FinishedAt.Sub(startedAt).String(),
	}).Info("sync: sincronização da conta concluída")

	return result, nil
}

// budgetExhausted confere o orçamento diário de chamadas. O contador zera
// quando a data registrada fica para trás.
func (s *service) budgetExhausted(status *domain.SyncStatus, now time.Time) bool {
	if s.cfg.DailyAPICallBudget <= 0 || status == nil || status.APICallsDate == nil {
		return false
	}

	sameDay := status.APICallsDate.Format(time.DateOnly) == now.Format(time.DateOnly)
	return sameDay && status.APICallsToday >= s.cfg.DailyAPICallBudget
}

// syncPeriod escolhe a janela: a primeira sincronização da conta olha mais
// para trás para popular o histórico.
func (s *service) syncPeriod(status *domain.SyncStatus, now time.Time) domain.DateRange {
	lookback := s.cfg.LookbackDays
	if status == nil || !status.InitialSyncComplete {
		lookback = s.cfg.InitialLookbackDays
	}
	if lookback <= 0 {
		lookback = 1
	}
	return domain.TrailingWindow(now.Truncate(24*time.Hour), lookback)
}

func (s *service) pause(ctx context.Context) error {
	if s.stepDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("sincronização cancelada: %w", ctx.Err())
	case <-time.After(s.stepDelay):
		return nil
	}
}

func allStepsSucceeded(steps []domain.SyncStepResult) bool {
	for _, step := range steps {
		if !step.Success {
			return false
		}
	}
	return len(steps) > 0
}

func (s *service) persistOutcome(ctx context.Context, accountID string, result *domain.SyncResult) {
	var syncErr *string
	for _, step := range result.Steps {
		if step.Error != "" {
			msg := fmt.Sprintf("%s: %s", step.Step, step.Error)
			syncErr = &msg
			break
		}
	}

	status := &domain.SyncStatus{
		AccountID:           accountID,
		LastSyncAt:          &result.FinishedAt,
		LastSyncSuccess:     result.Success,
		LastSyncError:       syncErr,
		InitialSyncComplete: result.Success,
	}

	if err := s.syncStatusRepo.Upsert(ctx, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("sync: erro ao gravar o status de sincronização")
	}

	if err := s.accountRepo.UpdateLastSync(ctx, accountID, result.FinishedAt); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("sync: erro ao atualizar a conta com a data da sincronização")
	}
}

func (s *service) syncCampaigns(ctx context.Context, account *domain.AdAccount, period domain.DateRange) (int, error) {
	campaigns, err := s.source.FetchCampaigns(account.ExternalID, period)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, pc := range campaigns {
		externalID := pc.ExternalID
		campaign := &domain.Campaign{
			AccountID:  account.ID,
			ExternalID: &externalID,
			Name:       pc.Name,
			Status:     meta.ParseEntityStatus(pc.Status),
			Budget:     meta.ParseBudget(pc.DailyBudget),
		}

		id, err := s.campaignRepo.UpsertByExternalID(ctx, campaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": pc.ExternalID,
				"error":       err.Error(),
			}).Warn("sync: erro ao gravar campanha, pulando")
			continue
		}

		s.upsertDailyMetrics(ctx, s.campaignMetrics, id, pc.Insights.Data)
		count++
	}

	return count, nil
}

func (s *service) syncAdSets(ctx context.Context, account *domain.AdAccount, period domain.DateRange) (int, error) {
	adSets, err := s.source.FetchAdSets(account.ExternalID, period)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, pa := range adSets {
		campaign, err := s.campaignRepo.GetByExternalID(ctx, account.ID, pa.CampaignExternalID)
		if err != nil {
			return count, fmt.Errorf("erro ao resolver a campanha do conjunto: %w", err)
		}
		if campaign == nil {
			logrus.WithFields(logrus.Fields{
				"account_id":           account.ID,
				"adset_external_id":    pa.ExternalID,
				"campaign_external_id": pa.CampaignExternalID,
			}).Warn("sync: campanha do conjunto não encontrada, pulando")
			continue
		}

		externalID := pa.ExternalID
		adSet := &domain.AdSet{
			AccountID:  account.ID,
			CampaignID: campaign.ID,
			ExternalID: &externalID,
			Name:       pa.Name,
			Status:     meta.ParseEntityStatus(pa.Status),
			Budget:     meta.ParseBudget(pa.DailyBudget),
		}

		id, err := s.adSetRepo.UpsertByExternalID(ctx, adSet)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": pa.ExternalID,
				"error":       err.Error(),
			}).Warn("sync: erro ao gravar conjunto de anúncios, pulando")
			continue
		}

		s.upsertDailyMetrics(ctx, s.adSetMetrics, id, pa.Insights.Data)
		count++
	}

	return count, nil
}

func (s *service) syncAds(ctx context.Context, account *domain.AdAccount, period domain.DateRange) (int, error) {
	ads, err := s.source.FetchAds(account.ExternalID, period)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, pa := range ads {
		adSet, err := s.adSetRepo.GetByExternalID(ctx, account.ID, pa.AdSetExternalID)
		if err != nil {
			return count, fmt.Errorf("erro ao resolver o conjunto do anúncio: %w", err)
		}
		campaign, err := s.campaignRepo.GetByExternalID(ctx, account.ID, pa.CampaignExternalID)
		if err != nil {
			return count, fmt.Errorf("erro ao resolver a campanha do anúncio: %w", err)
		}
		if adSet == nil || campaign == nil {
			logrus.WithFields(logrus.Fields{
				"account_id":        account.ID,
				"ad_external_id":    pa.ExternalID,
				"adset_external_id": pa.AdSetExternalID,
			}).Warn("sync: hierarquia do anúncio não encontrada, pulando")
			continue
		}

		externalID := pa.ExternalID
		ad := &domain.Ad{
			AccountID:  account.ID,
			CampaignID: campaign.ID,
			AdSetID:    adSet.ID,
			ExternalID: &externalID,
			Name:       pa.Name,
			Status:     meta.ParseEntityStatus(pa.Status),
		}
		if pa.Creative != nil && pa.Creative.ID != "" {
			ad.CreativeRef = &pa.Creative.ID
		}

		id, err := s.adRepo.UpsertByExternalID(ctx, ad)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": pa.ExternalID,
				"error":       err.Error(),
			}).Warn("sync: erro ao gravar anúncio, pulando")
			continue
		}

		s.upsertDailyMetrics(ctx, s.adMetrics, id, pa.Insights.Data)
		s.refreshCreative(ctx, account.ID, pa.ExternalID)
		count++
	}

	return count, nil
}

// refreshCreative busca a URL da imagem do criativo quando nunca foi obtida
// ou quando a guardada passou do prazo de revalidação. URLs do CDN expiram.
func (s *service) refreshCreative(ctx context.Context, accountID, adExternalID string) {
	ad, err := s.adRepo.GetByExternalID(ctx, accountID, adExternalID)
	if err != nil || ad == nil || ad.CreativeRef == nil {
		return
	}

	refreshAfter := time.Duration(s.cfg.CreativeRefreshDays) * 24 * time.Hour
	fresh := ad.CreativeImageURL != nil &&
		ad.CreativeFetchedAt != nil &&
		s.now().Sub(*ad.CreativeFetchedAt) < refreshAfter
	if fresh {
		return
	}

	imageURL, err := s.source.FetchAdCreativeImageURL(*ad.CreativeRef)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":        ad.ID,
			"creative_ref": *ad.CreativeRef,
			"error":        err.Error(),
		}).Warn("sync: erro ao buscar imagem do criativo")
		return
	}
	if imageURL == "" {
		return
	}

	if err := s.adRepo.UpdateCreative(ctx, ad.ID, &imageURL, s.now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": ad.ID,
			"error": err.Error(),
		}).Warn("sync: erro ao gravar imagem do criativo")
	}
}

func (s *service) syncCountryRollups(ctx context.Context, account *domain.AdAccount, period domain.DateRange) (int, error) {
	insights, err := s.source.FetchCountryBreakdown(account.ExternalID, period)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, in := range insights {
		date, err := meta.ParseInsightDate(in.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"date":       in.Date,
			}).Warn("sync: data inválida no rollup por país, pulando")
			continue
		}

		metric := &domain.CountryDailyMetric{
			AccountID:   account.ID,
			CountryCode: in.Country,
			Date:        date,
			Spend:       metadomain.ParseFloatSafe(in.Spend),
			Revenue:     in.PurchaseValue(),
			Sales:       in.Purchases(),
			Impressions: metadomain.ParseIntSafe(in.Impressions),
			Clicks:      metadomain.ParseIntSafe(in.Clicks),
		}

		if err := s.countryMetrics.Upsert(ctx, metric); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"country":    in.Country,
				"error":      err.Error(),
			}).Warn("sync: erro ao gravar rollup por país, pulando")
			continue
		}
		count++
	}

	return count, nil
}

func (s *service) syncAdCountryRollups(ctx context.Context, account *domain.AdAccount, period domain.DateRange) (int, error) {
	insights, err := s.source.FetchAdCountryBreakdown(account.ExternalID, period)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, in := range insights {
		ad, err := s.adRepo.GetByExternalID(ctx, account.ID, in.AdExternalID)
		if err != nil {
			return count, fmt.Errorf("erro ao resolver o anúncio do breakdown: %w", err)
		}
		if ad == nil {
			logrus.WithFields(logrus.Fields{
				"account_id":     account.ID,
				"ad_external_id": in.AdExternalID,
			}).Warn("sync: anúncio do breakdown não encontrado, pulando")
			continue
		}

		date, err := meta.ParseInsightDate(in.Date)
		if err != nil {
			continue
		}

		metric := &domain.AdCountryDailyMetric{
			AdID:        ad.ID,
			CountryCode: in.Country,
			Date:        date,
			Spend:       metadomain.ParseFloatSafe(in.Spend),
			Revenue:     in.PurchaseValue(),
			Sales:       in.Purchases(),
		}

		if err := s.adCountryMetrics.Upsert(ctx, metric); err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id":   ad.ID,
				"country": in.Country,
				"error":   err.Error(),
			}).Warn("sync: erro ao gravar breakdown por país do anúncio, pulando")
			continue
		}
		count++
	}

	return count, nil
}

func (s *service) upsertDailyMetrics(ctx context.Context, repo repository.DailyMetricRepository, entityID string, insights []metadomain.DailyInsight) {
	for _, insight := range insights {
		date, err := meta.ParseInsightDate(insight.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"entity_id": entityID,
				"date":      insight.Date,
			}).Warn("sync: data inválida no insight diário, pulando")
			continue
		}

		metric := &domain.DailyMetric{
			EntityID:    entityID,
			Date:        date,
			Spend:       metadomain.ParseFloatSafe(insight.Spend),
			Revenue:     insight.PurchaseValue(),
			Sales:       insight.Purchases(),
			Leads:       insight.Leads(),
			Impressions: metadomain.ParseIntSafe(insight.Impressions),
			Reach:       metadomain.ParseIntSafe(insight.Reach),
			Clicks:      metadomain.ParseIntSafe(insight.Clicks),
			Frequency:   metadomain.ParseFloatSafe(insight.Frequency),
		}

		if err := repo.Upsert(ctx, metric); err != nil {
			logrus.WithFields(logrus.Fields{
				"entity_id": entityID,
				"date":      insight.Date,
				"error":     err.Error(),
			}).Warn("sync: erro ao gravar métrica diária, pulando")
		}
	}
}
