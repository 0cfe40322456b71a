package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const countryDailyMetricsTable = "country_daily_metrics"

// CountryDailyMetricRepository guarda o rollup por país no nível da conta.
type CountryDailyMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.CountryDailyMetric) error
	ListByAccountAndRange(ctx context.Context, accountID string, start, end time.Time) ([]*domain.CountryDailyMetric, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type countryDailyMetricRepository struct {
	conn *postgres.Connection
}

func NewCountryDailyMetricRepository(conn *postgres.Connection) CountryDailyMetricRepository {
	return &countryDailyMetricRepository{conn: conn}
}

func (r *countryDailyMetricRepository) Upsert(ctx context.Context, metric *domain.CountryDailyMetric) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(countryDailyMetricsTable).
		Columns("id", "account_id", "country_code", "date", "spend", "revenue", "sales", "impressions", "clicks").
		Values(
			id,
			metric.AccountID,
			metric.CountryCode,
			metric.Date.Format("2006-01-02"),
			metric.Spend,
			metric.Revenue,
			metric.Sales,
			metric.Impressions,
			metric.Clicks,
		).
		Suffix(`
			ON CONFLICT (account_id, country_code, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				sales = EXCLUDED.sales,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *countryDailyMetricRepository) ListByAccountAndRange(ctx context.Context, accountID string, start, end time.Time) ([]*domain.CountryDailyMetric, error) {
	query, args, err := squirrel.
		Select("id, account_id, country_code, date, spend, revenue, sales, impressions, clicks, created_at, updated_at").
		From(countryDailyMetricsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": end.Format("2006-01-02")}).
		OrderBy("date ASC", "sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.CountryDailyMetric, 0)
	for rows.Next() {
		m := &domain.CountryDailyMetric{}
		err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.CountryCode,
			&m.Date,
			&m.Spend,
			&m.Revenue,
			&m.Sales,
			&m.Impressions,
			&m.Clicks,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas por país: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *countryDailyMetricRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(countryDailyMetricsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}
