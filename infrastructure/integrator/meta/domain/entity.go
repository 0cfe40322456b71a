package metadomain

import "strconv"

// Action é um par tipo/valor do array de conversões da API do Meta. Tanto
// contagens quanto valores monetários chegam como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// DailyInsight é o registro de métricas de um dia, obtido com
// time_increment=1 na sub-consulta de insights.
type DailyInsight struct {
	Date         string   `json:"date_start"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Clicks       string   `json:"clicks"`
	Frequency    string   `json:"frequency"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

// InsightList é o envelope da sub-consulta de insights.
type InsightList struct {
	Data []DailyInsight `json:"data"`
}

type PlatformCampaign struct {
	ExternalID  string      `json:"id"`
	Name        string      `json:"name"`
	Status      string      `json:"status"`
	DailyBudget string      `json:"daily_budget"`
	Insights    InsightList `json:"insights"`
}

type PlatformAdSet struct {
	ExternalID         string      `json:"id"`
	Name               string      `json:"name"`
	Status             string      `json:"status"`
	DailyBudget        string      `json:"daily_budget"`
	CampaignExternalID string      `json:"campaign_id"`
	Insights           InsightList `json:"insights"`
}

type PlatformAd struct {
	ExternalID         string      `json:"id"`
	Name               string      `json:"name"`
	Status             string      `json:"status"`
	AdSetExternalID    string      `json:"adset_id"`
	CampaignExternalID string      `json:"campaign_id"`
	Creative           *Creative   `json:"creative"`
	Insights           InsightList `json:"insights"`
}

type Creative struct {
	ID string `json:"id"`
}

// CountryInsight é uma linha do breakdown por país (nível conta ou anúncio).
type CountryInsight struct {
	AdExternalID string   `json:"ad_id"`
	Country      string   `json:"country"`
	Date         string   `json:"date_start"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

// A Meta reporta a mesma conversão sob tipos de ação sobrepostos. Vale a
// primeira ocorrência na lista; somar os tipos contaria a mesma venda duas
// vezes.
var purchaseActionTypes = map[string]bool{
	"purchase":                             true,
	"omni_purchase":                        true,
	"offsite_conversion.fb_pixel_purchase": true,
}

var leadActionTypes = map[string]bool{
	"lead":                             true,
	"omni_lead":                        true,
	"offsite_conversion.fb_pixel_lead": true,
}

// Purchases devolve as conversões de compra do dia.
func (i DailyInsight) Purchases() int {
	return firstActionCount(i.Actions, purchaseActionTypes)
}

// PurchaseValue devolve o valor monetário das conversões de compra do dia.
func (i DailyInsight) PurchaseValue() float64 {
	return firstActionValue(i.ActionValues, purchaseActionTypes)
}

// Leads devolve as conversões de lead do dia.
func (i DailyInsight) Leads() int {
	return firstActionCount(i.Actions, leadActionTypes)
}

func (i CountryInsight) Purchases() int {
	return firstActionCount(i.Actions, purchaseActionTypes)
}

func (i CountryInsight) PurchaseValue() float64 {
	return firstActionValue(i.ActionValues, purchaseActionTypes)
}

func firstActionCount(actions []Action, types map[string]bool) int {
	for _, a := range actions {
		if types[a.ActionType] {
			return atoiSafe(a.Value)
		}
	}
	return 0
}

func firstActionValue(actions []Action, types map[string]bool) float64 {
	for _, a := range actions {
		if types[a.ActionType] {
			return ParseFloatSafe(a.Value)
		}
	}
	return 0
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ParseFloatSafe converte os campos numéricos da API, que chegam como
// string, tratando vazio e lixo como zero.
func ParseFloatSafe(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseIntSafe é o equivalente inteiro de ParseFloatSafe.
func ParseIntSafe(s string) int {
	return atoiSafe(s)
}
