package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyInsight_Purchases(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected int
	}{
		{
			name: "Tipos sobrepostos contam uma única vez",
			actions: []Action{
				{ActionType: "purchase", Value: "3"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "3"},
			},
			expected: 3,
		},
		{
			name:     "Compra reportada apenas como omni_purchase",
			actions:  []Action{{ActionType: "omni_purchase", Value: "4"}},
			expected: 4,
		},
		{
			name: "Ações não relacionadas são ignoradas",
			actions: []Action{
				{ActionType: "link_click", Value: "20"},
				{ActionType: "purchase", Value: "2"},
			},
			expected: 2,
		},
		{
			name:     "Sem ação de compra",
			actions:  []Action{{ActionType: "link_click", Value: "20"}},
			expected: 0,
		},
		{
			name:     "Valor inválido",
			actions:  []Action{{ActionType: "purchase", Value: "abc"}},
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			insight := DailyInsight{Actions: tc.actions}
			assert.Equal(t, tc.expected, insight.Purchases())
		})
	}
}

func TestDailyInsight_PurchaseValue(t *testing.T) {
	insight := DailyInsight{
		ActionValues: []Action{
			{ActionType: "purchase", Value: "120.00"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "120.00"},
		},
	}
	assert.Equal(t, 120.0, insight.PurchaseValue())

	omni := DailyInsight{
		ActionValues: []Action{{ActionType: "omni_purchase", Value: "75.50"}},
	}
	assert.Equal(t, 75.5, omni.PurchaseValue())
}

func TestDailyInsight_Leads(t *testing.T) {
	insight := DailyInsight{
		Actions: []Action{
			{ActionType: "lead", Value: "5"},
			{ActionType: "offsite_conversion.fb_pixel_lead", Value: "5"},
		},
	}
	assert.Equal(t, 5, insight.Leads())

	omni := DailyInsight{
		Actions: []Action{{ActionType: "omni_lead", Value: "2"}},
	}
	assert.Equal(t, 2, omni.Leads())
}

func TestCountryInsight_Purchases(t *testing.T) {
	insight := CountryInsight{
		Actions: []Action{
			{ActionType: "omni_purchase", Value: "1"},
			{ActionType: "purchase", Value: "1"},
		},
		ActionValues: []Action{
			{ActionType: "omni_purchase", Value: "40.00"},
			{ActionType: "purchase", Value: "40.00"},
		},
	}
	assert.Equal(t, 1, insight.Purchases())
	assert.Equal(t, 40.0, insight.PurchaseValue())
}
