package domain

import "time"

type TransactionSource string

const (
	TransactionSourceWebhook TransactionSource = "webhook"
	TransactionSourceManual  TransactionSource = "manual"
	TransactionSourceAPI     TransactionSource = "api"
)

// RevenueTransaction é uma venda individual registrada fora da plataforma de
// anúncios (webhook, entrada manual ou API). O core consome a tabela apenas
// para leitura.
type RevenueTransaction struct {
	ID          string            `json:"id"`
	AccountID   string            `json:"account_id"`
	Amount      float64           `json:"amount"`
	CountryCode *string           `json:"country_code"`
	CampaignID  *string           `json:"campaign_id"`
	AdSetID     *string           `json:"adset_id"`
	AdID        *string           `json:"ad_id"`
	Source      TransactionSource `json:"source"`
	OccurredAt  time.Time         `json:"occurred_at"`
	CreatedAt   time.Time         `json:"created_at"`
}

// LedgerTotals é a soma do ledger para uma entidade em um intervalo.
type LedgerTotals struct {
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}
