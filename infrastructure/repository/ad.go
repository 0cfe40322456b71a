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

const adsTable = "ads"

type AdRepository interface {
	UpsertByExternalID(ctx context.Context, ad *domain.Ad) (string, error)
	GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.Ad, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Ad, error)
	UpdateCreative(ctx context.Context, id string, imageURL *string, fetchedAt time.Time) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{conn: conn}
}

func (r *adRepository) UpsertByExternalID(ctx context.Context, ad *domain.Ad) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id interno: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(adsTable).
		Columns("id", "account_id", "campaign_id", "adset_id", "external_id", "name", "status", "creative_ref").
		Values(
			id,
			ad.AccountID,
			ad.CampaignID,
			ad.AdSetID,
			ad.ExternalID,
			ad.Name,
			ad.Status,
			ad.CreativeRef,
		).
		Suffix(`
			ON CONFLICT (account_id, external_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				adset_id = EXCLUDED.adset_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				creative_ref = EXCLUDED.creative_ref,
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

func (r *adRepository) GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select("id, account_id, campaign_id, adset_id, external_id, name, status, creative_ref, creative_image_url, creative_fetched_at, created_at, updated_at").
		From(adsTable).
		Where(squirrel.Eq{"account_id": accountID, "external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ad, err := r.scanAdRow(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

func (r *adRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select("id, account_id, campaign_id, adset_id, external_id, name, status, creative_ref, creative_image_url, creative_fetched_at, created_at, updated_at").
		From(adsTable).
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

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		err := rows.Scan(
			&ad.ID,
			&ad.AccountID,
			&ad.CampaignID,
			&ad.AdSetID,
			&ad.ExternalID,
			&ad.Name,
			&ad.Status,
			&ad.CreativeRef,
			&ad.CreativeImageURL,
			&ad.CreativeFetchedAt,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *adRepository) UpdateCreative(ctx context.Context, id string, imageURL *string, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Update(adsTable).
		Set("creative_image_url", imageURL).
		Set("creative_fetched_at", fetchedAt).
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

func (r *adRepository) scanAdRow(row *sql.Row) (*domain.Ad, error) {
	ad := &domain.Ad{}
	err := row.Scan(
		&ad.ID,
		&ad.AccountID,
		&ad.CampaignID,
		&ad.AdSetID,
		&ad.ExternalID,
		&ad.Name,
		&ad.Status,
		&ad.CreativeRef,
		&ad.CreativeImageURL,
		&ad.CreativeFetchedAt,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return ad, nil
}
