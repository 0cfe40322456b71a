package domain

import "time"

// CountryDailyMetric é o rollup por (conta, país, data).
type CountryDailyMetric struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	CountryCode string    `json:"country_code"`
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Sales       int       `json:"sales"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdCountryDailyMetric é o breakdown por (anúncio, país, data).
type AdCountryDailyMetric struct {
	ID          string    `json:"id"`
	AdID        string    `json:"ad_id"`
	CountryCode string    `json:"country_code"`
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Sales       int       `json:"sales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
