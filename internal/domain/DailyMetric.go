package domain

import "time"

// EntityLevel identifica em qual nível da hierarquia uma métrica ou alerta
// foi calculado.
type EntityLevel string

const (
	LevelCampaign EntityLevel = "campaign"
	LevelAdSet    EntityLevel = "adset"
	LevelAd       EntityLevel = "ad"
	LevelCountry  EntityLevel = "country"
)

// DailyMetric é uma linha por (entidade, data). As três tabelas por nível
// compartilham este formato. Os valores armazenados são sempre os reportados
// pela plataforma; a reconciliação com o ledger acontece na leitura.
type DailyMetric struct {
	ID          string    `json:"id"`
	EntityID    string    `json:"entity_id"`
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Sales       int       `json:"sales"`
	Leads       int       `json:"leads"`
	Impressions int       `json:"impressions"`
	Reach       int       `json:"reach"`
	Clicks      int       `json:"clicks"`
	Frequency   float64   `json:"frequency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MetricTotals agrega uma janela de DailyMetric para uma entidade.
type MetricTotals struct {
	EntityID    string  `json:"entity_id"`
	EntityName  string  `json:"entity_name"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Sales       int     `json:"sales"`
	Leads       int     `json:"leads"`
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	Frequency   float64 `json:"frequency"`
}

// DailySales é o recorte por dia usado na atribuição de vendas por país.
type DailySales struct {
	EntityID string    `json:"entity_id"`
	Date     time.Time `json:"date"`
	Revenue  float64   `json:"revenue"`
	Sales    int       `json:"sales"`
	Spend    float64   `json:"spend"`
}
