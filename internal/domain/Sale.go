package domain

import "time"

// AttributedSale é uma linha sintetizada de venda unitária, produzida pela
// expansão de um agregado diário (N vendas, receita R) em N linhas de valor
// R/N, cada uma com um país atribuído quando o breakdown por país permite.
// PeriodSpend/PeriodRevenue são o acumulado da entidade até a data da venda,
// usados para exibir o ROAS do período ao lado de cada linha.
type AttributedSale struct {
	EntityID      string      `json:"entity_id"`
	EntityName    string      `json:"entity_name"`
	Level         EntityLevel `json:"level"`
	Date          time.Time   `json:"date"`
	Amount        float64     `json:"amount"`
	CountryCode   *string     `json:"country_code"`
	PeriodSpend   float64     `json:"period_spend"`
	PeriodRevenue float64     `json:"period_revenue"`
	PeriodRoas    float64     `json:"period_roas"`
}
