package alerting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func defaultThresholds() *domain.AlertThreshold {
	return domain.DefaultAlertThreshold("ACC1")
}

func alertsOfType(alerts []*domain.Alert, alertType domain.AlertType) []*domain.Alert {
	filtered := make([]*domain.Alert, 0)
	for _, a := range alerts {
		if a.Type == alertType {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func TestEvaluateCampaign(t *testing.T) {
	th := defaultThresholds()

	tests := []struct {
		name     string
		totals   *domain.MetricTotals
		revenue  float64
		validate func(t *testing.T, alerts []*domain.Alert)
	}{
		{
			name:    "ROAS crítico com investimento acima do piso",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 850},
			revenue: 200,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				lowRoas := alertsOfType(alerts, domain.AlertTypeLowRoas)
				assert.Len(t, lowRoas, 1)
				assert.Equal(t, domain.AlertPriorityCritical, lowRoas[0].Priority)
				assert.Equal(t, 850.0, lowRoas[0].Spend)
				assert.Equal(t, 0.24, lowRoas[0].Roas)
				assert.Equal(t, "30-day ROAS 0.24 is below critical threshold of 0.50", lowRoas[0].ThresholdInfo)

				// O investimento também excede o limite da campanha com ROAS ruim.
				overspend := alertsOfType(alerts, domain.AlertTypeOverspend)
				assert.Len(t, overspend, 1)
				assert.Equal(t, domain.AlertPriorityWarning, overspend[0].Priority)
			},
		},
		{
			name:    "Exclusividade de camada: logo abaixo do crítico gera só o crítico",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 200},
			revenue: 200 * 0.49,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				lowRoas := alertsOfType(alerts, domain.AlertTypeLowRoas)
				assert.Len(t, lowRoas, 1)
				assert.Equal(t, domain.AlertPriorityCritical, lowRoas[0].Priority)
			},
		},
		{
			name:    "Faixa de aviso entre crítico e mínimo",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 100},
			revenue: 70,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				lowRoas := alertsOfType(alerts, domain.AlertTypeLowRoas)
				assert.Len(t, lowRoas, 1)
				assert.Equal(t, domain.AlertPriorityWarning, lowRoas[0].Priority)
				assert.Equal(t, "30-day ROAS 0.70 is below minimum threshold of 1.00", lowRoas[0].ThresholdInfo)
			},
		},
		{
			name:    "Piso de investimento segura o ruído de contas pequenas",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 40},
			revenue: 4,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alertsOfType(alerts, domain.AlertTypeLowRoas))
			},
		},
		{
			name:    "Overspend vira crítico acima de cinco vezes o limite",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 2600},
			revenue: 1000,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				overspend := alertsOfType(alerts, domain.AlertTypeOverspend)
				assert.Len(t, overspend, 1)
				assert.Equal(t, domain.AlertPriorityCritical, overspend[0].Priority)
			},
		},
		{
			name:    "Frequência crítica",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 300, Frequency: 4.2},
			revenue: 600,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				freq := alertsOfType(alerts, domain.AlertTypeHighFrequency)
				assert.Len(t, freq, 1)
				assert.Equal(t, domain.AlertPriorityCritical, freq[0].Priority)
				assert.Equal(t, "Avg frequency 4.20 exceeds critical threshold of 4.00", freq[0].ThresholdInfo)
			},
		},
		{
			name:    "Frequência de aviso",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 300, Frequency: 3.5},
			revenue: 600,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				freq := alertsOfType(alerts, domain.AlertTypeHighFrequency)
				assert.Len(t, freq, 1)
				assert.Equal(t, domain.AlertPriorityWarning, freq[0].Priority)
			},
		},
		{
			name:    "ROAS alto gera oportunidade",
			totals:  &domain.MetricTotals{EntityID: "CMP1", EntityName: "Campanha A", Spend: 300},
			revenue: 900,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				opp := alertsOfType(alerts, domain.AlertTypeHighRoas)
				assert.Len(t, opp, 1)
				assert.Equal(t, domain.AlertPriorityOpportunity, opp[0].Priority)
				assert.Empty(t, alertsOfType(alerts, domain.AlertTypeLowRoas))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := evaluateEntity("ACC1", domain.LevelCampaign, tt.totals, tt.revenue, 0, th)
			tt.validate(t, alerts)
		})
	}
}

func TestEvaluateAdSet(t *testing.T) {
	th := defaultThresholds()

	t.Run("Piso menor que o de campanha", func(t *testing.T) {
		totals := &domain.MetricTotals{EntityID: "AS1", EntityName: "Conjunto A", Spend: 60}
		alerts := evaluateEntity("ACC1", domain.LevelAdSet, totals, 10, 0, th)

		lowRoas := alertsOfType(alerts, domain.AlertTypeLowRoas)
		assert.Len(t, lowRoas, 1)
		assert.Equal(t, domain.AlertPriorityCritical, lowRoas[0].Priority)
	})

	t.Run("Aviso usa o mínimo do conjunto", func(t *testing.T) {
		totals := &domain.MetricTotals{EntityID: "AS1", EntityName: "Conjunto A", Spend: 100}
		alerts := evaluateEntity("ACC1", domain.LevelAdSet, totals, 70, 0, th)

		lowRoas := alertsOfType(alerts, domain.AlertTypeLowRoas)
		assert.Len(t, lowRoas, 1)
		assert.Equal(t, domain.AlertPriorityWarning, lowRoas[0].Priority)
		assert.Equal(t, "30-day ROAS 0.70 is below minimum threshold of 0.80", lowRoas[0].ThresholdInfo)
	})

	t.Run("Overspend do conjunto usa o limite próprio", func(t *testing.T) {
		totals := &domain.MetricTotals{EntityID: "AS1", EntityName: "Conjunto A", Spend: 250}
		alerts := evaluateEntity("ACC1", domain.LevelAdSet, totals, 100, 0, th)

		overspend := alertsOfType(alerts, domain.AlertTypeOverspend)
		assert.Len(t, overspend, 1)
		assert.Equal(t, domain.AlertPriorityWarning, overspend[0].Priority)
	})
}

func TestEvaluateAd(t *testing.T) {
	th := defaultThresholds()

	tests := []struct {
		name     string
		totals   *domain.MetricTotals
		revenue  float64
		sales    int
		validate func(t *testing.T, alerts []*domain.Alert)
	}{
		{
			name:   "Desperdício puro com investimento de 600 gera aviso",
			totals: &domain.MetricTotals{EntityID: "AD1", EntityName: "Ad A", Spend: 600},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				zero := alertsOfType(alerts, domain.AlertTypeZeroSales)
				assert.Len(t, zero, 1)
				assert.Equal(t, domain.AlertPriorityWarning, zero[0].Priority)
				assert.Equal(t, 0.0, zero[0].Roas)
				assert.Equal(t, "$600 spent in 30 days with zero sales - consider pausing", zero[0].ThresholdInfo)
			},
		},
		{
			name:   "Desperdício puro acima de 1000 é crítico",
			totals: &domain.MetricTotals{EntityID: "AD1", EntityName: "Ad A", Spend: 1200},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				zero := alertsOfType(alerts, domain.AlertTypeZeroSales)
				assert.Len(t, zero, 1)
				assert.Equal(t, domain.AlertPriorityCritical, zero[0].Priority)
			},
		},
		{
			name:    "Venda no ledger afasta o zero_sales",
			totals:  &domain.MetricTotals{EntityID: "AD1", EntityName: "Ad A", Spend: 600},
			revenue: 50,
			sales:   1,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alertsOfType(alerts, domain.AlertTypeZeroSales))
				lowRoas := alertsOfType(alerts, domain.AlertTypeLowRoas)
				assert.Len(t, lowRoas, 1)
				assert.Equal(t, domain.AlertPriorityCritical, lowRoas[0].Priority)
			},
		},
		{
			name:    "Anúncio performático vira oportunidade",
			totals:  &domain.MetricTotals{EntityID: "AD1", EntityName: "Ad A", Spend: 200},
			revenue: 500,
			sales:   10,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				opp := alertsOfType(alerts, domain.AlertTypeHighRoas)
				assert.Len(t, opp, 1)
				assert.Equal(t, domain.AlertPriorityOpportunity, opp[0].Priority)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := evaluateEntity("ACC1", domain.LevelAd, tt.totals, tt.revenue, tt.sales, th)
			tt.validate(t, alerts)
		})
	}
}

func TestDedupe(t *testing.T) {
	first := &domain.Alert{Level: domain.LevelCampaign, ItemID: "CMP1", Type: domain.AlertTypeLowRoas, Priority: domain.AlertPriorityCritical}
	duplicate := &domain.Alert{Level: domain.LevelCampaign, ItemID: "CMP1", Type: domain.AlertTypeLowRoas, Priority: domain.AlertPriorityWarning}
	other := &domain.Alert{Level: domain.LevelAdSet, ItemID: "CMP1", Type: domain.AlertTypeLowRoas}

	result := dedupe([]*domain.Alert{first, duplicate, other})

	assert.Len(t, result, 2)
	assert.Same(t, first, result[0])
	assert.Same(t, other, result[1])
}

func TestDedupe_ChavesDistintasPorTipo(t *testing.T) {
	alerts := make([]*domain.Alert, 0)
	for i := 0; i < 3; i++ {
		alerts = append(alerts, &domain.Alert{
			Level:  domain.LevelAd,
			ItemID: fmt.Sprintf("AD%d", i),
			Type:   domain.AlertTypeZeroSales,
		})
	}

	assert.Len(t, dedupe(alerts), 3)
}
