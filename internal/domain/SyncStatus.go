package domain

import "time"

// SyncStatus é o registro por conta do resultado da última sincronização e do
// consumo diário de chamadas à API externa.
type SyncStatus struct {
	ID                  string     `json:"id"`
	AccountID           string     `json:"account_id"`
	LastSyncAt          *time.Time `json:"last_sync_at"`
	LastSyncSuccess     bool       `json:"last_sync_success"`
	LastSyncError       *string    `json:"last_sync_error"`
	InitialSyncComplete bool       `json:"initial_sync_complete"`
	APICallsToday       int        `json:"api_calls_today"`
	APICallsDate        *time.Time `json:"api_calls_date"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// SyncStepResult é o resultado de uma etapa individual do fullSync.
type SyncStepResult struct {
	Step    string `json:"step"`
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

// SyncResult agrega os resultados de todas as etapas de uma sincronização.
type SyncResult struct {
	AccountID  string           `json:"account_id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Steps      []SyncStepResult `json:"steps"`
	Success    bool             `json:"success"`
}
