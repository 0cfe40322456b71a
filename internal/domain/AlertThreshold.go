package domain

import "time"

// AlertThreshold guarda os limites de avaliação por conta. Existe exatamente
// uma linha por conta; quando ausente, o motor de alertas cria uma com os
// valores padrão abaixo.
type AlertThreshold struct {
	ID                string    `json:"id"`
	AccountID         string    `json:"account_id"`
	CampaignOverspend float64   `json:"campaign_overspend"`
	AdSetOverspend    float64   `json:"adset_overspend"`
	DailyLimit        float64   `json:"daily_limit"`
	MinCampaignRoas   float64   `json:"min_campaign_roas"`
	MinAdSetRoas      float64   `json:"min_adset_roas"`
	CriticalRoas      float64   `json:"critical_roas"`
	HighFrequency     float64   `json:"high_frequency"`
	CriticalFrequency float64   `json:"critical_frequency"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultAlertThreshold retorna os limites padrão aplicados na criação
// automática da configuração de uma conta.
func DefaultAlertThreshold(accountID string) *AlertThreshold {
	return &AlertThreshold{
		AccountID:         accountID,
		CampaignOverspend: 500,
		AdSetOverspend:    200,
		DailyLimit:        1000,
		MinCampaignRoas:   1.0,
		MinAdSetRoas:      0.8,
		CriticalRoas:      0.5,
		HighFrequency:     3.0,
		CriticalFrequency: 4.0,
	}
}
