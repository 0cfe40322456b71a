package alerting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reconciling"
)

// Janela de avaliação ancorada na data de métrica mais recente de cada nível.
const windowDays = 30

type Service interface {
	// Regenerate recalcula os alertas de uma conta: apaga os alertas ainda
	// abertos, avalia as entidades dos três níveis e insere a lista nova com
	// status investigating. Alertas resolvidos ou descartados são mantidos
	// como histórico.
	Regenerate(ctx context.Context, accountID string) (*domain.RegenerationResult, error)

	// RegenerateAll roda a regeneração para todas as contas ativas.
	RegenerateAll(ctx context.Context) (map[string]*domain.RegenerationResult, error)

	ListAlerts(ctx context.Context, accountID string, filters repository.AlertFilters) ([]*domain.Alert, error)
	Summary(ctx context.Context, accountID string) (*domain.AlertSummary, error)
	UpdateStatus(ctx context.Context, alertID string, status domain.AlertStatus) (*domain.Alert, error)

	GetThresholds(ctx context.Context, accountID string) (*domain.AlertThreshold, error)
	UpdateThresholds(ctx context.Context, thresholds *domain.AlertThreshold) error
}

type service struct {
	accountRepo     repository.AccountRepository
	thresholdRepo   repository.AlertThresholdRepository
	alertRepo       repository.AlertRepository
	campaignMetrics repository.DailyMetricRepository
	adSetMetrics    repository.DailyMetricRepository
	adMetrics       repository.DailyMetricRepository
	transactionRepo repository.RevenueTransactionRepository
}

func NewService(
	accountRepo repository.AccountRepository,
	thresholdRepo repository.AlertThresholdRepository,
	alertRepo repository.AlertRepository,
	campaignMetrics repository.DailyMetricRepository,
	adSetMetrics repository.DailyMetricRepository,
	adMetrics repository.DailyMetricRepository,
	transactionRepo repository.RevenueTransactionRepository,
) Service {
	return &service{
		accountRepo:     accountRepo,
		thresholdRepo:   thresholdRepo,
		alertRepo:       alertRepo,
		campaignMetrics: campaignMetrics,
		adSetMetrics:    adSetMetrics,
		adMetrics:       adMetrics,
		transactionRepo: transactionRepo,
	}
}

func (s *service) Regenerate(ctx context.Context, accountID string) (*domain.RegenerationResult, error) {
	thresholds, err := s.thresholdRepo.GetOrCreateByAccount(ctx, accountID)
	if err != nil {
		metrics.RegenerationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("erro ao carregar os limites da conta: %w", err)
	}

	candidates, err := s.generate(ctx, accountID, thresholds)
	if err != nil {
		metrics.RegenerationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	alerts := dedupe(candidates)

	deleted, err := s.alertRepo.DeleteOpenByAccount(ctx, accountID)
	if err != nil {
		metrics.RegenerationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("erro ao apagar alertas abertos: %w", err)
	}

	if len(alerts) > 0 {
		if err := s.alertRepo.InsertBatch(ctx, alerts); err != nil {
			metrics.RegenerationsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("erro ao inserir alertas: %w", err)
		}
	}

	result := &domain.RegenerationResult{Count: len(alerts)}
	for _, alert := range alerts {
		metrics.AlertsGenerated.WithLabelValues(string(alert.Priority)).Inc()
		if alert.Priority == domain.AlertPriorityOpportunity {
			result.OpportunityCount++
		}
	}
	metrics.RegenerationsTotal.WithLabelValues("success").Inc()

	logrus.WithFields(logrus.Fields{
		"account_id":    accountID,
		"deleted":       deleted,
		"alerts":        result.Count,
		"opportunities": result.OpportunityCount,
	}).Info("Alertas regenerados")

	return result, nil
}

func (s *service) RegenerateAll(ctx context.Context) (map[string]*domain.RegenerationResult, error) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas ativas: %w", err)
	}

	results := make(map[string]*domain.RegenerationResult, len(accounts))
	for _, account := range accounts {
		result, err := s.Regenerate(ctx, account.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Error("Erro ao regenerar alertas da conta, seguindo para a próxima")
			continue
		}
		results[account.ID] = result
	}

	return results, nil
}

// generate produz a lista bruta de candidatos dos três níveis. Cada nível usa
// a própria âncora de data; um nível sem métricas é pulado sem erro.
func (s *service) generate(ctx context.Context, accountID string, thresholds *domain.AlertThreshold) ([]*domain.Alert, error) {
	candidates := make([]*domain.Alert, 0)

	levels := []struct {
		level domain.EntityLevel
		repo  repository.DailyMetricRepository
	}{
		{domain.LevelCampaign, s.campaignMetrics},
		{domain.LevelAdSet, s.adSetMetrics},
		{domain.LevelAd, s.adMetrics},
	}

	for _, l := range levels {
		alerts, err := s.evaluateLevel(ctx, accountID, l.level, l.repo, thresholds)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, alerts...)
	}

	return candidates, nil
}

func (s *service) evaluateLevel(ctx context.Context, accountID string, level domain.EntityLevel, metricRepo repository.DailyMetricRepository, thresholds *domain.AlertThreshold) ([]*domain.Alert, error) {
	anchor, err := metricRepo.LatestDate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a data mais recente do nível %s: %w", level, err)
	}
	if anchor == nil {
		return nil, nil
	}

	window := domain.TrailingWindow(*anchor, windowDays)

	totals, err := metricRepo.TotalsByAccount(ctx, accountID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar métricas do nível %s: %w", level, err)
	}

	alerts := make([]*domain.Alert, 0)
	for _, t := range totals {
		if t.Spend <= 0 {
			continue
		}

		ledger, err := s.transactionRepo.TotalsForEntity(ctx, level, t.EntityID, window.Start, window.End)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"level":      string(level),
				"entity_id":  t.EntityID,
				"error":      err.Error(),
			}).Warn("Erro ao consultar o ledger, avaliando apenas com dados da plataforma")
			ledger = &domain.LedgerTotals{}
		}

		revenue := reconciling.EffectiveRevenue(t.Revenue, ledger.Revenue)
		sales := reconciling.EffectiveSales(t.Sales, ledger.Sales)

		alerts = append(alerts, evaluateEntity(accountID, level, t, revenue, sales, thresholds)...)
	}

	return alerts, nil
}

func (s *service) ListAlerts(ctx context.Context, accountID string, filters repository.AlertFilters) ([]*domain.Alert, error) {
	return s.alertRepo.ListByAccount(ctx, accountID, filters)
}

func (s *service) Summary(ctx context.Context, accountID string) (*domain.AlertSummary, error) {
	return s.alertRepo.SummaryByAccount(ctx, accountID)
}

// Transições permitidas do ciclo de vida. Status terminais não saem do lugar.
var allowedTransitions = map[domain.AlertStatus][]domain.AlertStatus{
	domain.AlertStatusInvestigating: {domain.AlertStatusInProgress, domain.AlertStatusResolved, domain.AlertStatusDismissed},
	domain.AlertStatusInProgress:    {domain.AlertStatusResolved, domain.AlertStatusDismissed},
	domain.AlertStatusResolved:      {},
	domain.AlertStatusDismissed:     {},
}

var (
	ErrAlertNotFound     = fmt.Errorf("alerta não encontrado")
	ErrInvalidStatus     = fmt.Errorf("status de alerta inválido")
	ErrInvalidTransition = fmt.Errorf("transição de status não permitida")
)

func (s *service) UpdateStatus(ctx context.Context, alertID string, status domain.AlertStatus) (*domain.Alert, error) {
	if !domain.ValidAlertStatus(status) {
		return nil, ErrInvalidStatus
	}

	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o alerta: %w", err)
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	if !transitionAllowed(alert.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.alertRepo.UpdateStatus(ctx, alertID, status); err != nil {
		return nil, fmt.Errorf("erro ao atualizar o status do alerta: %w", err)
	}

	alert.Status = status
	return alert, nil
}

func transitionAllowed(from, to domain.AlertStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *service) GetThresholds(ctx context.Context, accountID string) (*domain.AlertThreshold, error) {
	return s.thresholdRepo.GetOrCreateByAccount(ctx, accountID)
}

func (s *service) UpdateThresholds(ctx context.Context, thresholds *domain.AlertThreshold) error {
	return s.thresholdRepo.Update(ctx, thresholds)
}
