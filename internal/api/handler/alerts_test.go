package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/alerting/mocks"
	"go.uber.org/mock/gomock"
)

func newAlertsRouter(service alerting.Service) http.Handler {
	return router.New(router.WithRoutes(handler.Alerts(service)...))
}

func TestListAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	service.EXPECT().
		ListAlerts(gomock.Any(), "ACC1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, filters repository.AlertFilters) ([]*domain.Alert, error) {
			require.NotNil(t, filters.Status)
			require.NotNil(t, filters.Priority)
			assert.Equal(t, domain.AlertStatusInvestigating, *filters.Status)
			assert.Equal(t, domain.AlertPriorityCritical, *filters.Priority)
			assert.Nil(t, filters.Level)
			assert.Nil(t, filters.Type)

			return []*domain.Alert{
				{ID: "ALR1", AccountID: "ACC1", Type: domain.AlertTypeLowRoas},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/alerts/ACC1?status=investigating&priority=critical", nil)
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ALR1"`)
}

func TestListAlerts_StatusInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/alerts/ACC1?status=banana", nil)
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_003")
}

func TestGetAlertSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	service.EXPECT().
		Summary(gomock.Any(), "ACC1").
		Return(&domain.AlertSummary{
			Total:      3,
			ByPriority: map[string]int{"critical": 2, "warning": 1},
			ByType:     map[string]int{"low_roas": 3},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/alerts/ACC1/summary", nil)
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)
}

func TestUpdateAlertStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "transição válida",
			body:       `{"status":"in_progress"}`,
			wantStatus: http.StatusOK,
			wantBody:   `"in_progress"`,
		},
		{
			name:       "alerta não encontrado",
			body:       `{"status":"in_progress"}`,
			serviceErr: alerting.ErrAlertNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "RES_001",
		},
		{
			name:       "status desconhecido",
			body:       `{"status":"arquivado"}`,
			serviceErr: alerting.ErrInvalidStatus,
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_003",
		},
		{
			name:       "transição não permitida",
			body:       `{"status":"investigating"}`,
			serviceErr: alerting.ErrInvalidTransition,
			wantStatus: http.StatusConflict,
			wantBody:   "VAL_004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)

			if tt.serviceErr != nil {
				service.EXPECT().
					UpdateStatus(gomock.Any(), "ALR1", gomock.Any()).
					Return(nil, tt.serviceErr)
			} else {
				service.EXPECT().
					UpdateStatus(gomock.Any(), "ALR1", domain.AlertStatusInProgress).
					Return(&domain.Alert{ID: "ALR1", Status: domain.AlertStatusInProgress}, nil)
			}

			req := httptest.NewRequest(http.MethodPatch, "/v1/alerts/ALR1/status", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newAlertsRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestUpdateAlertStatus_CorpoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	req := httptest.NewRequest(http.MethodPatch, "/v1/alerts/ALR1/status", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}

func TestRegenerateAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	service.EXPECT().
		Regenerate(gomock.Any(), "ACC1").
		Return(&domain.RegenerationResult{Count: 4, OpportunityCount: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/alerts/regenerate/ACC1", nil)
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":4`)
	assert.Contains(t, rec.Body.String(), `"opportunity_count":1`)
}

func TestGetThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	service.EXPECT().
		GetThresholds(gomock.Any(), "ACC1").
		Return(domain.DefaultAlertThreshold("ACC1"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/thresholds/ACC1", nil)
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_id":"ACC1"`)
}

func TestUpdateThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	service.EXPECT().
		UpdateThresholds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, thresholds *domain.AlertThreshold) error {
			// O accountID da URL prevalece sobre o corpo.
			assert.Equal(t, "ACC1", thresholds.AccountID)
			assert.Equal(t, 0.75, thresholds.MinCampaignRoas)
			return nil
		})

	body := `{"account_id":"OUTRA","min_campaign_roas":0.75}`
	req := httptest.NewRequest(http.MethodPut, "/v1/thresholds/ACC1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newAlertsRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
