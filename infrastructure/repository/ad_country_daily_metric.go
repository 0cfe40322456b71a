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

const adCountryDailyMetricsTable = "ad_country_daily_metrics"

type AdCountryDailyMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.AdCountryDailyMetric) error
	// ListByEntityAndDate retorna o breakdown por país de um anúncio em um
	// dia, ordenado por vendas e receita decrescentes (ordem de consumo da
	// atribuição de vendas).
	ListByEntityAndDate(ctx context.Context, adID string, date time.Time) ([]*domain.AdCountryDailyMetric, error)
	ListByAdAndRange(ctx context.Context, adID string, start, end time.Time) ([]*domain.AdCountryDailyMetric, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type adCountryDailyMetricRepository struct {
	conn *postgres.Connection
}

func NewAdCountryDailyMetricRepository(conn *postgres.Connection) AdCountryDailyMetricRepository {
	return &adCountryDailyMetricRepository{conn: conn}
}

func (r *adCountryDailyMetricRepository) Upsert(ctx context.Context, metric *domain.AdCountryDailyMetric) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(adCountryDailyMetricsTable).
		Columns("id", "ad_id", "country_code", "date", "spend", "revenue", "sales").
		Values(
			id,
			metric.AdID,
			metric.CountryCode,
			metric.Date.Format("2006-01-02"),
			metric.Spend,
			metric.Revenue,
			metric.Sales,
		).
		Suffix(`
			ON CONFLICT (ad_id, country_code, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				sales = EXCLUDED.sales,
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

func (r *adCountryDailyMetricRepository) ListByEntityAndDate(ctx context.Context, adID string, date time.Time) ([]*domain.AdCountryDailyMetric, error) {
	query, args, err := squirrel.
		Select("id, ad_id, country_code, date, spend, revenue, sales, created_at, updated_at").
		From(adCountryDailyMetricsTable).
		Where(squirrel.Eq{"ad_id": adID, "date": date.Format("2006-01-02")}).
		OrderBy("sales DESC", "revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMetrics(ctx, query, args)
}

func (r *adCountryDailyMetricRepository) ListByAdAndRange(ctx context.Context, adID string, start, end time.Time) ([]*domain.AdCountryDailyMetric, error) {
	query, args, err := squirrel.
		Select("id, ad_id, country_code, date, spend, revenue, sales, created_at, updated_at").
		From(adCountryDailyMetricsTable).
		Where(squirrel.Eq{"ad_id": adID}).
		Where(squirrel.GtOrEq{"date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": end.Format("2006-01-02")}).
		OrderBy("date ASC", "sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMetrics(ctx, query, args)
}

func (r *adCountryDailyMetricRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(adCountryDailyMetricsTable).
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

func (r *adCountryDailyMetricRepository) queryMetrics(ctx context.Context, query string, args []interface{}) ([]*domain.AdCountryDailyMetric, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.AdCountryDailyMetric, 0)
	for rows.Next() {
		m := &domain.AdCountryDailyMetric{}
		err := rows.Scan(
			&m.ID,
			&m.AdID,
			&m.CountryCode,
			&m.Date,
			&m.Spend,
			&m.Revenue,
			&m.Sales,
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
