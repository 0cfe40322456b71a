package domain

// DashboardTotals agrega a janela de 30 dias da conta. Revenue e Sales
// carregam os valores efetivos (max entre plataforma e ledger, por campanha);
// PlatformRevenue e PlatformSales preservam o valor reportado pela plataforma
// para comparação lado a lado.
type DashboardTotals struct {
	Spend           float64 `json:"spend"`
	Revenue         float64 `json:"revenue"`
	PlatformRevenue float64 `json:"platform_revenue"`
	Sales           int     `json:"sales"`
	PlatformSales   int     `json:"platform_sales"`
	Leads           int     `json:"leads"`
	Impressions     int     `json:"impressions"`
	Reach           int     `json:"reach"`
	Clicks          int     `json:"clicks"`
	Roas            float64 `json:"roas"`
	Frequency       float64 `json:"frequency"`
}

// DashboardCampaign é a linha por campanha exibida abaixo dos totais.
type DashboardCampaign struct {
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Spend      float64 `json:"spend"`
	Revenue    float64 `json:"revenue"`
	Sales      int     `json:"sales"`
	Roas       float64 `json:"roas"`
	Frequency  float64 `json:"frequency"`
}

// DashboardCountry é o rollup por país da conta na janela.
type DashboardCountry struct {
	CountryCode string  `json:"country_code"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Sales       int     `json:"sales"`
	Roas        float64 `json:"roas"`
}

// DashboardOverview é a resposta do dashboard principal de uma conta.
// Window é a janela de 30 dias ancorada na data mais recente com métricas;
// quando a conta ainda não tem métricas, Window é nil e os totais ficam
// zerados.
type DashboardOverview struct {
	AccountID string               `json:"account_id"`
	Window    *DateRange           `json:"window"`
	Totals    DashboardTotals      `json:"totals"`
	Campaigns []*DashboardCampaign `json:"campaigns"`
	Countries []*DashboardCountry  `json:"countries"`
}
