package alerting

import (
	"fmt"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// ROAS a partir do qual uma entidade vira oportunidade de escala.
const opportunityRoas = 2.0

// Pisos de investimento por regra. Abaixo deles o volume é estatisticamente
// insignificante e a regra não dispara.
const (
	campaignCriticalSpendFloor = 100.0
	campaignWarningSpendFloor  = 50.0
	adSetSpendFloor            = 50.0
	adCriticalSpendFloor       = 100.0
	opportunitySpendFloor      = 50.0
	zeroSalesWarningSpend      = 500.0
	zeroSalesCriticalSpend     = 1000.0
	overspendCriticalFactor    = 5.0
)

// evaluateEntity avalia uma entidade de um nível contra os limites da conta e
// retorna os alertas candidatos. revenue e sales já são os valores efetivos
// (máximo entre plataforma e ledger). Entidades sem investimento na janela
// não chegam até aqui.
func evaluateEntity(accountID string, level domain.EntityLevel, totals *domain.MetricTotals, revenue float64, sales int, thresholds *domain.AlertThreshold) []*domain.Alert {
	switch level {
	case domain.LevelCampaign:
		return evaluateCampaign(accountID, totals, revenue, thresholds)
	case domain.LevelAdSet:
		return evaluateAdSet(accountID, totals, revenue, thresholds)
	case domain.LevelAd:
		return evaluateAd(accountID, totals, revenue, sales, thresholds)
	case domain.LevelCountry:
		return nil
	default:
		return nil
	}
}

func evaluateCampaign(accountID string, t *domain.MetricTotals, revenue float64, th *domain.AlertThreshold) []*domain.Alert {
	roas := roasOf(revenue, t.Spend)
	alerts := make([]*domain.Alert, 0)

	if roas < th.CriticalRoas && t.Spend >= campaignCriticalSpendFloor {
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeLowRoas, domain.AlertPriorityCritical, domain.LevelCampaign, t, roas,
			fmt.Sprintf("30-day ROAS %.2f is below critical threshold of %.2f", roas, th.CriticalRoas)))
	} else if roas < th.MinCampaignRoas && roas >= th.CriticalRoas && t.Spend >= campaignWarningSpendFloor {
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeLowRoas, domain.AlertPriorityWarning, domain.LevelCampaign, t, roas,
			fmt.Sprintf("30-day ROAS %.2f is below minimum threshold of %.2f", roas, th.MinCampaignRoas)))
	}

	if t.Spend > th.CampaignOverspend && roas < th.MinCampaignRoas {
		priority := domain.AlertPriorityWarning
		if t.Spend > th.CampaignOverspend*overspendCriticalFactor {
			priority = domain.AlertPriorityCritical
		}
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeOverspend, priority, domain.LevelCampaign, t, roas,
			fmt.Sprintf("30-day spend $%.0f exceeds $%.0f with poor ROAS of %.2f", t.Spend, th.CampaignOverspend, roas)))
	}

	alerts = append(alerts, frequencyAlerts(accountID, domain.LevelCampaign, t, roas, th)...)
	alerts = append(alerts, opportunityAlert(accountID, domain.LevelCampaign, t, revenue, roas)...)

	return alerts
}

func evaluateAdSet(accountID string, t *domain.MetricTotals, revenue float64, th *domain.AlertThreshold) []*domain.Alert {
	roas := roasOf(revenue, t.Spend)
	alerts := make([]*domain.Alert, 0)

	if roas < th.CriticalRoas && t.Spend >= adSetSpendFloor {
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeLowRoas, domain.AlertPriorityCritical, domain.LevelAdSet, t, roas,
			fmt.Sprintf("30-day ROAS %.2f is below critical threshold of %.2f", roas, th.CriticalRoas)))
	} else if roas < th.MinAdSetRoas && roas >= th.CriticalRoas && t.Spend >= adSetSpendFloor {
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeLowRoas, domain.AlertPriorityWarning, domain.LevelAdSet, t, roas,
			fmt.Sprintf("30-day ROAS %.2f is below minimum threshold of %.2f", roas, th.MinAdSetRoas)))
	}

	alerts = append(alerts, frequencyAlerts(accountID, domain.LevelAdSet, t, roas, th)...)

	if t.Spend > th.AdSetOverspend && roas < th.MinAdSetRoas {
		priority := domain.AlertPriorityWarning
		if t.Spend > th.AdSetOverspend*overspendCriticalFactor {
			priority = domain.AlertPriorityCritical
		}
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeOverspend, priority, domain.LevelAdSet, t, roas,
			fmt.Sprintf("30-day spend $%.0f exceeds $%.0f with poor ROAS of %.2f", t.Spend, th.AdSetOverspend, roas)))
	}

	alerts = append(alerts, opportunityAlert(accountID, domain.LevelAdSet, t, revenue, roas)...)

	return alerts
}

// evaluateAd só avalia desperdício puro, ROAS crítico e oportunidade.
// Overspend e frequência são regras de campanha e conjunto; zero_sales tem
// precedência sobre low_roas para o mesmo anúncio.
func evaluateAd(accountID string, t *domain.MetricTotals, revenue float64, sales int, th *domain.AlertThreshold) []*domain.Alert {
	roas := roasOf(revenue, t.Spend)
	alerts := make([]*domain.Alert, 0)

	if sales == 0 && revenue == 0 && t.Spend >= zeroSalesWarningSpend {
		priority := domain.AlertPriorityWarning
		if t.Spend >= zeroSalesCriticalSpend {
			priority = domain.AlertPriorityCritical
		}
		alert := newAlert(accountID, domain.AlertTypeZeroSales, priority, domain.LevelAd, t, 0,
			fmt.Sprintf("$%.0f spent in 30 days with zero sales - consider pausing", t.Spend))
		alerts = append(alerts, alert)
	} else if roas < th.CriticalRoas && t.Spend >= adCriticalSpendFloor && roas > 0 {
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeLowRoas, domain.AlertPriorityCritical, domain.LevelAd, t, roas,
			fmt.Sprintf("30-day ROAS %.2f is below critical threshold of %.2f", roas, th.CriticalRoas)))
	}

	if roas >= opportunityRoas && t.Spend >= opportunitySpendFloor {
		alerts = append(alerts, newAlert(accountID, domain.AlertTypeHighRoas, domain.AlertPriorityOpportunity, domain.LevelAd, t, roas,
			fmt.Sprintf("30-day avg ROAS is %.2f (Spend: $%.0f, Revenue: $%.0f). Top performing ad - increase budget to scale.", roas, t.Spend, revenue)))
	}

	return alerts
}

func frequencyAlerts(accountID string, level domain.EntityLevel, t *domain.MetricTotals, roas float64, th *domain.AlertThreshold) []*domain.Alert {
	if t.Frequency >= th.CriticalFrequency {
		return []*domain.Alert{newAlert(accountID, domain.AlertTypeHighFrequency, domain.AlertPriorityCritical, level, t, roas,
			fmt.Sprintf("Avg frequency %.2f exceeds critical threshold of %.2f", t.Frequency, th.CriticalFrequency))}
	}
	if t.Frequency >= th.HighFrequency {
		return []*domain.Alert{newAlert(accountID, domain.AlertTypeHighFrequency, domain.AlertPriorityWarning, level, t, roas,
			fmt.Sprintf("Avg frequency %.2f exceeds threshold of %.2f", t.Frequency, th.HighFrequency))}
	}
	return nil
}

func opportunityAlert(accountID string, level domain.EntityLevel, t *domain.MetricTotals, revenue, roas float64) []*domain.Alert {
	if roas >= opportunityRoas && t.Spend >= opportunitySpendFloor {
		return []*domain.Alert{newAlert(accountID, domain.AlertTypeHighRoas, domain.AlertPriorityOpportunity, level, t, roas,
			fmt.Sprintf("30-day avg ROAS is %.2f (Spend: $%.0f, Revenue: $%.0f). Increase budget to scale revenue.", roas, t.Spend, revenue))}
	}
	return nil
}

func newAlert(accountID string, alertType domain.AlertType, priority domain.AlertPriority, level domain.EntityLevel, t *domain.MetricTotals, roas float64, info string) *domain.Alert {
	return &domain.Alert{
		AccountID:     accountID,
		Type:          alertType,
		Priority:      priority,
		Level:         level,
		ItemID:        t.EntityID,
		ItemName:      t.EntityName,
		Spend:         utils.RoundWithTwoDecimalPlace(t.Spend),
		Roas:          utils.RoundWithTwoDecimalPlace(roas),
		ThresholdInfo: info,
		Status:        domain.AlertStatusInvestigating,
	}
}

func roasOf(revenue, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return revenue / spend
}

// dedupe remove candidatos repetidos pela chave (nível, item, tipo),
// preservando a primeira ocorrência.
func dedupe(alerts []*domain.Alert) []*domain.Alert {
	seen := make(map[string]bool, len(alerts))
	result := make([]*domain.Alert, 0, len(alerts))

	for _, alert := range alerts {
		key := fmt.Sprintf("%s-%s-%s", alert.Level, alert.ItemID, alert.Type)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, alert)
	}

	return result
}
