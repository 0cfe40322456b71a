package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const alertThresholdsTable = "alert_thresholds"

type AlertThresholdRepository interface {
	// GetOrCreateByAccount busca a configuração da conta; quando ausente,
	// cria uma linha com os valores padrão e a retorna.
	GetOrCreateByAccount(ctx context.Context, accountID string) (*domain.AlertThreshold, error)
	Update(ctx context.Context, threshold *domain.AlertThreshold) error
}

type alertThresholdRepository struct {
	conn *postgres.Connection
}

func NewAlertThresholdRepository(conn *postgres.Connection) AlertThresholdRepository {
	return &alertThresholdRepository{conn: conn}
}

func (r *alertThresholdRepository) GetOrCreateByAccount(ctx context.Context, accountID string) (*domain.AlertThreshold, error) {
	threshold, err := r.getByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if threshold != nil {
		return threshold, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	defaults := domain.DefaultAlertThreshold(accountID)

	// ON CONFLICT DO NOTHING cobre a corrida entre duas criações
	// simultâneas; quem perder relê a linha vencedora.
	query, args, err := squirrel.StatementBuilder.
		Insert(alertThresholdsTable).
		Columns("id", "account_id", "campaign_overspend", "adset_overspend", "daily_limit", "min_campaign_roas", "min_adset_roas", "critical_roas", "high_frequency", "critical_frequency").
		Values(
			id,
			accountID,
			defaults.CampaignOverspend,
			defaults.AdSetOverspend,
			defaults.DailyLimit,
			defaults.MinCampaignRoas,
			defaults.MinAdSetRoas,
			defaults.CriticalRoas,
			defaults.HighFrequency,
			defaults.CriticalFrequency,
		).
		Suffix("ON CONFLICT (account_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return r.getByAccount(ctx, accountID)
}

func (r *alertThresholdRepository) Update(ctx context.Context, threshold *domain.AlertThreshold) error {
	query, args, err := squirrel.
		Update(alertThresholdsTable).
		Set("campaign_overspend", threshold.CampaignOverspend).
		Set("adset_overspend", threshold.AdSetOverspend).
		Set("daily_limit", threshold.DailyLimit).
		Set("min_campaign_roas", threshold.MinCampaignRoas).
		Set("min_adset_roas", threshold.MinAdSetRoas).
		Set("critical_roas", threshold.CriticalRoas).
		Set("high_frequency", threshold.HighFrequency).
		Set("critical_frequency", threshold.CriticalFrequency).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"account_id": threshold.AccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *alertThresholdRepository) getByAccount(ctx context.Context, accountID string) (*domain.AlertThreshold, error) {
	query, args, err := squirrel.
		Select("id, account_id, campaign_overspend, adset_overspend, daily_limit, min_campaign_roas, min_adset_roas, critical_roas, high_frequency, critical_frequency, created_at, updated_at").
		From(alertThresholdsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	threshold := &domain.AlertThreshold{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&threshold.ID,
		&threshold.AccountID,
		&threshold.CampaignOverspend,
		&threshold.AdSetOverspend,
		&threshold.DailyLimit,
		&threshold.MinCampaignRoas,
		&threshold.MinAdSetRoas,
		&threshold.CriticalRoas,
		&threshold.HighFrequency,
		&threshold.CriticalFrequency,
		&threshold.CreatedAt,
		&threshold.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear limites de alerta: %w", err)
	}

	return threshold, nil
}
