package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const revenueTransactionsTable = "revenue_transactions"

// RevenueTransactionRepository consome o ledger de vendas apenas para
// leitura; a escrita é responsabilidade da ingestão de webhooks, fora deste
// serviço.
type RevenueTransactionRepository interface {
	// TotalsForEntity soma receita e quantidade de vendas do ledger para uma
	// entidade da hierarquia em um intervalo de datas.
	TotalsForEntity(ctx context.Context, level domain.EntityLevel, entityID string, start, end time.Time) (*domain.LedgerTotals, error)
	ListByAccountAndRange(ctx context.Context, accountID string, start, end time.Time) ([]*domain.RevenueTransaction, error)
}

type revenueTransactionRepository struct {
	conn *postgres.Connection
}

func NewRevenueTransactionRepository(conn *postgres.Connection) RevenueTransactionRepository {
	return &revenueTransactionRepository{conn: conn}
}

func entityColumnForLevel(level domain.EntityLevel) (string, error) {
	switch level {
	case domain.LevelCampaign:
		return "campaign_id", nil
	case domain.LevelAdSet:
		return "adset_id", nil
	case domain.LevelAd:
		return "ad_id", nil
	default:
		return "", fmt.Errorf("nível de entidade sem coluna no ledger: %s", level)
	}
}

func (r *revenueTransactionRepository) TotalsForEntity(ctx context.Context, level domain.EntityLevel, entityID string, start, end time.Time) (*domain.LedgerTotals, error) {
	column, err := entityColumnForLevel(level)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)", "COUNT(*)").
		From(revenueTransactionsTable).
		Where(squirrel.Eq{column: entityID}).
		Where(squirrel.GtOrEq{"occurred_at": start}).
		Where(squirrel.LtOrEq{"occurred_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.LedgerTotals{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Revenue, &totals.Sales); err != nil {
		return nil, fmt.Errorf("erro ao somar transações: %w", err)
	}

	return totals, nil
}

func (r *revenueTransactionRepository) ListByAccountAndRange(ctx context.Context, accountID string, start, end time.Time) ([]*domain.RevenueTransaction, error) {
	query, args, err := squirrel.
		Select("id, account_id, amount, country_code, campaign_id, adset_id, ad_id, source, occurred_at, created_at").
		From(revenueTransactionsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"occurred_at": start}).
		Where(squirrel.LtOrEq{"occurred_at": end}).
		OrderBy("occurred_at DESC").
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

	transactions := make([]*domain.RevenueTransaction, 0)
	for rows.Next() {
		t := &domain.RevenueTransaction{}
		err := rows.Scan(
			&t.ID,
			&t.AccountID,
			&t.Amount,
			&t.CountryCode,
			&t.CampaignID,
			&t.AdSetID,
			&t.AdID,
			&t.Source,
			&t.OccurredAt,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}
