package domain

import "time"

type AdAccountStatus string

const (
	AdAccountStatusActive       AdAccountStatus = "ACTIVE"
	AdAccountStatusDisconnected AdAccountStatus = "DISCONNECTED"
	AdAccountStatusError        AdAccountStatus = "ERROR"
)

type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Status     AdAccountStatus `json:"status"`
	LastSyncAt *time.Time      `json:"last_sync_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type AdAccountResponse struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Status     AdAccountStatus `json:"status"`
	LastSyncAt *time.Time      `json:"last_sync_at"`
}
