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
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncRouter(service syncing.Service) http.Handler {
	return router.New(router.WithRoutes(handler.Sync(service)...))
}

func TestTriggerSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	service.EXPECT().
		FullSync(gomock.Any(), "ACC1").
		Return(&domain.SyncResult{
			AccountID: "ACC1",
			Success:   true,
			Steps: []domain.SyncStepResult{
				{Step: "campaigns", Success: true, Count: 2},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/ACC1", nil)
	rec := httptest.NewRecorder()

	newSyncRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaigns"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTriggerSync_Erros(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "conta não encontrada",
			serviceErr: syncing.ErrAccountNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "RES_001",
		},
		{
			name:       "conta inativa",
			serviceErr: syncing.ErrAccountNotActive,
			wantStatus: http.StatusConflict,
			wantBody:   "RES_002",
		},
		{
			name:       "orçamento esgotado",
			serviceErr: syncing.ErrAPIBudgetExhausted,
			wantStatus: http.StatusConflict,
			wantBody:   "RES_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)
			service.EXPECT().FullSync(gomock.Any(), "ACC1").Return(nil, tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/v1/sync/ACC1", nil)
			rec := httptest.NewRecorder()

			newSyncRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestGetSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	lastSync := time.Date(2025, 6, 30, 2, 0, 0, 0, time.UTC)
	service.EXPECT().
		GetStatus(gomock.Any(), "ACC1").
		Return(&domain.SyncStatus{
			AccountID:           "ACC1",
			LastSyncAt:          &lastSync,
			LastSyncSuccess:     true,
			InitialSyncComplete: true,
			APICallsToday:       5,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/ACC1/status", nil)
	rec := httptest.NewRecorder()

	newSyncRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"api_calls_today":5`)
}

func TestGetSyncStatus_ContaNuncaSincronizada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	service.EXPECT().GetStatus(gomock.Any(), "ACC1").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/ACC1/status", nil)
	rec := httptest.NewRecorder()

	newSyncRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}
