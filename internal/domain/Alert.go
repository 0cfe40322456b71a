package domain

import "time"

type AlertType string

const (
	AlertTypeLowRoas       AlertType = "low_roas"
	AlertTypeOverspend     AlertType = "overspend"
	AlertTypeHighFrequency AlertType = "high_frequency"
	AlertTypeZeroSales     AlertType = "zero_sales"
	AlertTypeHighRoas      AlertType = "high_roas"
)

type AlertPriority string

const (
	AlertPriorityCritical    AlertPriority = "critical"
	AlertPriorityWarning     AlertPriority = "warning"
	AlertPriorityOpportunity AlertPriority = "opportunity"
)

type AlertStatus string

const (
	AlertStatusInvestigating AlertStatus = "investigating"
	AlertStatusInProgress    AlertStatus = "in_progress"
	AlertStatusResolved      AlertStatus = "resolved"
	AlertStatusDismissed     AlertStatus = "dismissed"
)

// ValidAlertStatus reporta se s pertence ao conjunto fechado de status.
func ValidAlertStatus(s AlertStatus) bool {
	switch s {
	case AlertStatusInvestigating, AlertStatusInProgress, AlertStatusResolved, AlertStatusDismissed:
		return true
	}
	return false
}

// Alert é o registro gerado pela regeneração. ItemID referencia a entidade
// avaliada no nível indicado por Level.
type Alert struct {
	ID            string        `json:"id"`
	AccountID     string        `json:"account_id"`
	Type          AlertType     `json:"type"`
	Priority      AlertPriority `json:"priority"`
	Level         EntityLevel   `json:"level"`
	ItemID        string        `json:"item_id"`
	ItemName      string        `json:"item_name"`
	Spend         float64       `json:"spend"`
	Roas          float64       `json:"roas"`
	ThresholdInfo string        `json:"threshold_info"`
	Status        AlertStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// AlertSummary alimenta o card de resumo do dashboard.
type AlertSummary struct {
	Total      int            `json:"total"`
	ByPriority map[string]int `json:"by_priority"`
	ByType     map[string]int `json:"by_type"`
}

// RegenerationResult é o retorno de uma regeneração de alertas.
type RegenerationResult struct {
	Count            int `json:"count"`
	OpportunityCount int `json:"opportunity_count"`
}
