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

const adSetsTable = "ad_sets"

type AdSetRepository interface {
	UpsertByExternalID(ctx context.Context, adSet *domain.AdSet) (string, error)
	GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.AdSet, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.AdSet, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{conn: conn}
}

func (r *adSetRepository) UpsertByExternalID(ctx context.Context, adSet *domain.AdSet) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(adSetsTable).
		Columns("id", "account_id", "campaign_id", "external_id", "name", "status", "budget").
		Values(
			id,
			adSet.AccountID,
			adSet.CampaignID,
			adSet.ExternalID,
			adSet.Name,
			adSet.Status,
			adSet.Budget,
		).
		Suffix(`
			ON CONFLICT (account_id, external_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				budget = EXCLUDED.budget,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var persistedID string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&persistedID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("erro ao executar a query: %w", err)
	}

	return persistedID, nil
}

func (r *adSetRepository) GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Select("id, account_id, campaign_id, external_id, name, status, budget, created_at, updated_at").
		From(adSetsTable).
		Where(squirrel.Eq{"account_id": accountID, "external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adSet := &domain.AdSet{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&adSet.ID,
		&adSet.AccountID,
		&adSet.CampaignID,
		&adSet.ExternalID,
		&adSet.Name,
		&adSet.Status,
		&adSet.Budget,
		&adSet.CreatedAt,
		&adSet.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conjunto de anúncios: %w", err)
	}

	return adSet, nil
}

func (r *adSetRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.AdSet, error) {
	query, args, err := squirrel.
		Select("id, account_id, campaign_id, external_id, name, status, budget, created_at, updated_at").
		From(adSetsTable).
		Where(squirrel.Eq{"account_id": accountID}).
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

	adSets := make([]*domain.AdSet, 0)
	for rows.Next() {
		adSet := &domain.AdSet{}
		err := rows.Scan(
			&adSet.ID,
			&adSet.AccountID,
			&adSet.CampaignID,
			&adSet.ExternalID,
			&adSet.Name,
			&adSet.Status,
			&adSet.Budget,
			&adSet.CreatedAt,
			&adSet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conjunto de anúncios: %w", err)
		}
		adSets = append(adSets, adSet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adSets, nil
}
