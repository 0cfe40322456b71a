package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// DailyMetricRepository cobre as três tabelas paralelas de métricas diárias
// (campanha, conjunto e anúncio). A forma das linhas é idêntica; muda apenas
// a tabela e a coluna de vínculo com a entidade.
type DailyMetricRepository interface {
	// Upsert grava as medições de um dia. Linhas existentes para o mesmo
	// (entidade, data) são sobrescritas por completo.
	Upsert(ctx context.Context, metric *domain.DailyMetric) error
	// LatestDate retorna a data mais recente presente para a conta, âncora
	// da janela de 30 dias do motor de alertas.
	LatestDate(ctx context.Context, accountID string) (*time.Time, error)
	// TotalsByAccount agrega a janela [start, end] por entidade.
	TotalsByAccount(ctx context.Context, accountID string, start, end time.Time) ([]*domain.MetricTotals, error)
	// ListDailySales retorna o recorte diário de vendas de uma entidade,
	// usado na atribuição por país.
	ListDailySales(ctx context.Context, entityID string, start, end time.Time) ([]*domain.DailySales, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type dailyMetricRepository struct {
	conn        *postgres.Connection
	table       string
	entityCol   string
	entityTable string
}

func NewCampaignDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{conn: conn, table: "campaign_daily_metrics", entityCol: "campaign_id", entityTable: "campaigns"}
}

func NewAdSetDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{conn: conn, table: "adset_daily_metrics", entityCol: "adset_id", entityTable: "ad_sets"}
}

func NewAdDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{conn: conn, table: "ad_daily_metrics", entityCol: "ad_id", entityTable: "ads"}
}

func (r *dailyMetricRepository) Upsert(ctx context.Context, metric *domain.DailyMetric) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(r.table).
		Columns("id", r.entityCol, "date", "spend", "revenue", "sales", "leads", "impressions", "reach", "clicks", "frequency").
		Values(
			id,
			metric.EntityID,
			metric.Date.Format("2006-01-02"),
			metric.Spend,
			metric.Revenue,
			metric.Sales,
			metric.Leads,
			metric.Impressions,
			metric.Reach,
			metric.Clicks,
			metric.Frequency,
		).
		Suffix(fmt.Sprintf(`
			ON CONFLICT (%s, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				sales = EXCLUDED.sales,
				leads = EXCLUDED.leads,
				impressions = EXCLUDED.impressions,
				reach = EXCLUDED.reach,
				clicks = EXCLUDED.clicks,
				frequency = EXCLUDED.frequency,
				updated_at = NOW()
		`, r.entityCol)).
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

func (r *dailyMetricRepository) LatestDate(ctx context.Context, accountID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(m.date)").
		From(r.table + " m").
		Join(fmt.Sprintf("%s e ON e.id = m.%s", r.entityTable, r.entityCol)).
		Where(squirrel.Eq{"e.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

func (r *dailyMetricRepository) TotalsByAccount(ctx context.Context, accountID string, start, end time.Time) ([]*domain.MetricTotals, error) {
	query, args, err := squirrel.
		Select(
			"m."+r.entityCol,
			"e.name",
			"COALESCE(SUM(m.spend), 0)",
			"COALESCE(SUM(m.revenue), 0)",
			"COALESCE(SUM(m.sales), 0)",
			"COALESCE(SUM(m.leads), 0)",
			"COALESCE(SUM(m.impressions), 0)",
			"COALESCE(SUM(m.reach), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(AVG(m.frequency), 0)",
		).
		From(r.table+" m").
		Join(fmt.Sprintf("%s e ON e.id = m.%s", r.entityTable, r.entityCol)).
		Where(squirrel.Eq{"e.account_id": accountID}).
		Where(squirrel.GtOrEq{"m.date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"m.date": end.Format("2006-01-02")}).
		GroupBy("m."+r.entityCol, "e.name").
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

	totals := make([]*domain.MetricTotals, 0)
	for rows.Next() {
		t := &domain.MetricTotals{}
		err := rows.Scan(
			&t.EntityID,
			&t.EntityName,
			&t.Spend,
			&t.Revenue,
			&t.Sales,
			&t.Leads,
			&t.Impressions,
			&t.Reach,
			&t.Clicks,
			&t.Frequency,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear totais: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *dailyMetricRepository) ListDailySales(ctx context.Context, entityID string, start, end time.Time) ([]*domain.DailySales, error) {
	query, args, err := squirrel.
		Select(r.entityCol, "date", "revenue", "sales", "spend").
		From(r.table).
		Where(squirrel.Eq{r.entityCol: entityID}).
		Where(squirrel.GtOrEq{"date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": end.Format("2006-01-02")}).
		OrderBy("date ASC").
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

	sales := make([]*domain.DailySales, 0)
	for rows.Next() {
		s := &domain.DailySales{}
		if err := rows.Scan(&s.EntityID, &s.Date, &s.Revenue, &s.Sales, &s.Spend); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas diárias: %w", err)
		}
		sales = append(sales, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *dailyMetricRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(r.table).
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

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
