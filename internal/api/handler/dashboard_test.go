package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(service dashboarding.Service) http.Handler {
	return router.New(router.WithRoutes(handler.Dashboard(service)...))
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	window := domain.TrailingWindow(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 30)
	service.EXPECT().
		Overview(gomock.Any(), "ACC1").
		Return(&domain.DashboardOverview{
			AccountID: "ACC1",
			Window:    &window,
			Totals: domain.DashboardTotals{
				Spend:     850.456,
				Revenue:   200.123,
				Roas:      0.235294,
				Frequency: 2.34567,
			},
			Campaigns: []*domain.DashboardCampaign{
				{CampaignID: "CMP1", Name: "Campanha A", Roas: 1.23456},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/ACC1", nil)
	rec := httptest.NewRecorder()

	newDashboardRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Duas casas para dinheiro e ROAS, uma para frequência.
	body := rec.Body.String()
	assert.Contains(t, body, `"spend":850.46`)
	assert.Contains(t, body, `"revenue":200.12`)
	assert.Contains(t, body, `"roas":0.24`)
	assert.Contains(t, body, `"frequency":2.3`)
	assert.Contains(t, body, `"roas":1.23`)
}

func TestGetSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	br := "BR"
	service.EXPECT().
		Sales(gomock.Any(), "ACC1").
		Return([]*domain.AttributedSale{
			{
				EntityID:      "AD1",
				EntityName:    "Anúncio A",
				Level:         domain.LevelAd,
				Amount:        33.333333,
				CountryCode:   &br,
				PeriodSpend:   120.005,
				PeriodRevenue: 100,
				PeriodRoas:    0.833333,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/ACC1", nil)
	rec := httptest.NewRecorder()

	newDashboardRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"amount":33.33`)
	assert.Contains(t, body, `"period_roas":0.83`)
	assert.Contains(t, body, `"country_code":"BR"`)
}
