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
)

const accountsTable = "accounts"

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AdAccount, error)
	ListActive(ctx context.Context) ([]*domain.AdAccount, error)
	UpdateStatus(ctx context.Context, id string, status domain.AdAccountStatus) error
	UpdateLastSync(ctx context.Context, id string, at time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{conn: conn}
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id, external_id, name, nickname, status, last_sync_at, created_at, updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.AdAccount{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Nickname,
		&account.Status,
		&account.LastSyncAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *accountRepository) ListActive(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id, external_id, name, nickname, status, last_sync_at, created_at, updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"status": domain.AdAccountStatusActive}).
		OrderBy("name ASC").
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		err := rows.Scan(
			&account.ID,
			&account.ExternalID,
			&account.Name,
			&account.Nickname,
			&account.Status,
			&account.LastSyncAt,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) UpdateStatus(ctx context.Context, id string, status domain.AdAccountStatus) error {
	query, args, err := squirrel.
		Update(accountsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

func (r *accountRepository) UpdateLastSync(ctx context.Context, id string, at time.Time) error {
	query, args, err := squirrel.
		Update(accountsTable).
		Set("last_sync_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
