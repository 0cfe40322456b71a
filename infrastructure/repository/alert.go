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

const alertsTable = "alerts"

// AlertFilters restringe a listagem de alertas de uma conta.
type AlertFilters struct {
	Status   *domain.AlertStatus
	Priority *domain.AlertPriority
	Level    *domain.EntityLevel
	Type     *domain.AlertType
}

type AlertRepository interface {
	// DeleteOpenByAccount remove os alertas ainda abertos (investigating ou
	// in_progress) da conta. Resolved e dismissed permanecem como histórico.
	DeleteOpenByAccount(ctx context.Context, accountID string) (int64, error)
	InsertBatch(ctx context.Context, alerts []*domain.Alert) error
	GetByID(ctx context.Context, id string) (*domain.Alert, error)
	ListByAccount(ctx context.Context, accountID string, filters AlertFilters) ([]*domain.Alert, error)
	UpdateStatus(ctx context.Context, id string, status domain.AlertStatus) error
	SummaryByAccount(ctx context.Context, accountID string) (*domain.AlertSummary, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{conn: conn}
}

func (r *alertRepository) DeleteOpenByAccount(ctx context.Context, accountID string) (int64, error) {
	query, args, err := squirrel.
		Delete(alertsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.Eq{"status": []domain.AlertStatus{
			domain.AlertStatusInvestigating,
			domain.AlertStatusInProgress,
		}}).
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

func (r *alertRepository) InsertBatch(ctx context.Context, alerts []*domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(alertsTable).
		Columns("id", "account_id", "type", "priority", "level", "item_id", "item_name", "spend", "roas", "threshold_info", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, alert := range alerts {
		id := alert.ID
		if id == "" {
			generated, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id interno: %w", err)
			}
			id = generated
		}

		builder = builder.Values(
			id,
			alert.AccountID,
			alert.Type,
			alert.Priority,
			alert.Level,
			alert.ItemID,
			alert.ItemName,
			alert.Spend,
			alert.Roas,
			alert.ThresholdInfo,
			alert.Status,
		)
	}

	query, args, err := builder.ToSql()
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

func (r *alertRepository) GetByID(ctx context.Context, id string) (*domain.Alert, error) {
	query, args, err := squirrel.
		Select("id, account_id, type, priority, level, item_id, item_name, spend, roas, threshold_info, status, created_at, updated_at").
		From(alertsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	alert := &domain.Alert{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&alert.ID,
		&alert.AccountID,
		&alert.Type,
		&alert.Priority,
		&alert.Level,
		&alert.ItemID,
		&alert.ItemName,
		&alert.Spend,
		&alert.Roas,
		&alert.ThresholdInfo,
		&alert.Status,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
	}

	return alert, nil
}

func (r *alertRepository) ListByAccount(ctx context.Context, accountID string, filters AlertFilters) ([]*domain.Alert, error) {
	builder := squirrel.
		Select("id, account_id, type, priority, level, item_id, item_name, spend, roas, threshold_info, status, created_at, updated_at").
		From(alertsTable).
		Where(squirrel.Eq{"account_id": accountID})

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filters.Status})
	}
	if filters.Priority != nil {
		builder = builder.Where(squirrel.Eq{"priority": *filters.Priority})
	}
	if filters.Level != nil {
		builder = builder.Where(squirrel.Eq{"level": *filters.Level})
	}
	if filters.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": *filters.Type})
	}

	query, args, err := builder.
		OrderBy("CASE priority WHEN 'critical' THEN 0 WHEN 'warning' THEN 1 ELSE 2 END", "created_at DESC").
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert := &domain.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.AccountID,
			&alert.Type,
			&alert.Priority,
			&alert.Level,
			&alert.ItemID,
			&alert.ItemName,
			&alert.Spend,
			&alert.Roas,
			&alert.ThresholdInfo,
			&alert.Status,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) UpdateStatus(ctx context.Context, id string, status domain.AlertStatus) error {
	query, args, err := squirrel.
		Update(alertsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *alertRepository) SummaryByAccount(ctx context.Context, accountID string) (*domain.AlertSummary, error) {
	query, args, err := squirrel.
		Select("priority", "type", "COUNT(*)").
		From(alertsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.Eq{"status": []domain.AlertStatus{
			domain.AlertStatusInvestigating,
			domain.AlertStatusInProgress,
		}}).
		GroupBy("priority", "type").
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

	summary := &domain.AlertSummary{
		ByPriority: make(map[string]int),
		ByType:     make(map[string]int),
	}

	for rows.Next() {
		var priority, alertType string
		var count int
		if err := rows.Scan(&priority, &alertType, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de alertas: %w", err)
		}
		summary.ByPriority[priority] += count
		summary.ByType[alertType] += count
		summary.Total += count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summary, nil
}
