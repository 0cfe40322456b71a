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

const syncStatusTable = "sync_status"

type SyncStatusRepository interface {
	GetByAccount(ctx context.Context, accountID string) (*domain.SyncStatus, error)
	// Upsert grava o resultado de uma sincronização. A flag
	// initial_sync_complete só transita de false para true.
	Upsert(ctx context.Context, status *domain.SyncStatus) error
	// IncrementAPICalls soma n ao contador diário de chamadas, zerando-o
	// quando a data registrada não é a de hoje.
	IncrementAPICalls(ctx context.Context, accountID string, n int) error
}

type syncStatusRepository struct {
	conn *postgres.Connection
}

func NewSyncStatusRepository(conn *postgres.Connection) SyncStatusRepository {
	return &syncStatusRepository{conn: conn}
}

func (r *syncStatusRepository) GetByAccount(ctx context.Context, accountID string) (*domain.SyncStatus, error) {
	query, args, err := squirrel.
		Select("id, account_id, last_sync_at, last_sync_success, last_sync_error, initial_sync_complete, api_calls_today, api_calls_date, updated_at").
		From(syncStatusTable).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	status := &domain.SyncStatus{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&status.ID,
		&status.AccountID,
		&status.LastSyncAt,
		&status.LastSyncSuccess,
		&status.LastSyncError,
		&status.InitialSyncComplete,
		&status.APICallsToday,
		&status.APICallsDate,
		&status.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear status de sincronização: %w", err)
	}

	return status, nil
}

func (r *syncStatusRepository) Upsert(ctx context.Context, status *domain.SyncStatus) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(syncStatusTable).
		Columns("id", "account_id", "last_sync_at", "last_sync_success", "last_sync_error", "initial_sync_complete").
		Values(
			id,
			status.AccountID,
			status.LastSyncAt,
			status.LastSyncSuccess,
			status.LastSyncError,
			status.InitialSyncComplete,
		).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				last_sync_at = EXCLUDED.last_sync_at,
				last_sync_success = EXCLUDED.last_sync_success,
				last_sync_error = EXCLUDED.last_sync_error,
				initial_sync_complete = sync_status.initial_sync_complete OR EXCLUDED.initial_sync_complete,
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

func (r *syncStatusRepository) IncrementAPICalls(ctx context.Context, accountID string, n int) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	today := time.Now().Format("2006-01-02")

	query, args, err := squirrel.StatementBuilder.
		Insert(syncStatusTable).
		Columns("id", "account_id", "api_calls_today", "api_calls_date").
		Values(id, accountID, n, today).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				api_calls_today = CASE
					WHEN sync_status.api_calls_date = EXCLUDED.api_calls_date
					THEN sync_status.api_calls_today + EXCLUDED.api_calls_today
					ELSE EXCLUDED.api_calls_today
				END,
				api_calls_date = EXCLUDED.api_calls_date,
				updated_at = NOW()
		`).
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
