package domain

import "time"

type EntityStatus string

const (
	EntityStatusActive EntityStatus = "ACTIVE"
	EntityStatusPaused EntityStatus = "PAUSED"
)

// Campaign é o nível mais alto da hierarquia de anúncios.
// O ExternalID pode ser nulo até a primeira sincronização observar a entidade.
type Campaign struct {
	ID         string       `json:"id"`
	AccountID  string       `json:"account_id"`
	ExternalID *string      `json:"external_id"`
	Name       string       `json:"name"`
	Status     EntityStatus `json:"status"`
	Budget     *float64     `json:"budget"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type AdSet struct {
	ID         string       `json:"id"`
	AccountID  string       `json:"account_id"`
	CampaignID string       `json:"campaign_id"`
	ExternalID *string      `json:"external_id"`
	Name       string       `json:"name"`
	Status     EntityStatus `json:"status"`
	Budget     *float64     `json:"budget"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type Ad struct {
	ID                 string       `json:"id"`
	AccountID          string       `json:"account_id"`
	CampaignID         string       `json:"campaign_id"`
	AdSetID            string       `json:"adset_id"`
	ExternalID         *string      `json:"external_id"`
	Name               string       `json:"name"`
	Status             EntityStatus `json:"status"`
	CreativeRef        *string      `json:"creative_ref"`
	CreativeImageURL   *string      `json:"creative_image_url"`
	CreativeFetchedAt  *time.Time   `json:"creative_fetched_at"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
