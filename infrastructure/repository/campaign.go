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

const campaignsTable = "campaigns"

type CampaignRepository interface {
	// UpsertByExternalID insere a campanha na primeira observação e atualiza
	// os campos mutáveis nas seguintes. O ID interno retornado é estável
	// entre chamadas com o mesmo external_id.
	UpsertByExternalID(ctx context.Context, campaign *domain.Campaign) (string, error)
	GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.Campaign, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{conn: conn}
}

func (r *campaignRepository) UpsertByExternalID(ctx context.Context, campaign *domain.Campaign) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns("id", "account_id", "external_id", "name", "status", "budget").
		Values(
			id,
			campaign.AccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Budget,
		).
		Suffix(`
			ON CONFLICT (account_id, external_id) DO UPDATE SET
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

func (r *campaignRepository) GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("id, account_id, external_id, name, status, budget, created_at, updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"account_id": accountID, "external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.Campaign{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&campaign.ID,
		&campaign.AccountID,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.Status,
		&campaign.Budget,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("id, account_id, external_id, name, status, budget, created_at, updated_at").
		From(campaignsTable).
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.AccountID,
			&campaign.ExternalID,
			&campaign.Name,
			&campaign.Status,
			&campaign.Budget,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
