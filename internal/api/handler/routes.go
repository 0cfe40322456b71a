package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Sync(service syncing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/:accountID",
			Method:  http.MethodPost,
			Handler: TriggerSync(service),
		},
		{
			Path:    "/v1/sync/:accountID/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}

func Alerts(service alerting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alerts/regenerate",
			Method:  http.MethodPost,
			Handler: RegenerateAllAlerts(service),
		},
		{
			Path:    "/v1/alerts/regenerate/:accountID",
			Method:  http.MethodPost,
			Handler: RegenerateAlerts(service),
		},
		{
			Path:    "/v1/alerts/:accountID",
			Method:  http.MethodGet,
			Handler: ListAlerts(service),
		},
		{
			Path:    "/v1/alerts/:accountID/summary",
			Method:  http.MethodGet,
			Handler: GetAlertSummary(service),
		},
		{
			Path:    "/v1/alerts/:alertID/status",
			Method:  http.MethodPatch,
			Handler: UpdateAlertStatus(service),
		},
		{
			Path:    "/v1/thresholds/:accountID",
			Method:  http.MethodGet,
			Handler: GetThresholds(service),
		},
		{
			Path:    "/v1/thresholds/:accountID",
			Method:  http.MethodPut,
			Handler: UpdateThresholds(service),
		},
	}
}

func Dashboard(service dashboarding.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/:accountID",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales/:accountID",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
	}
}

func Scheduler(services SchedulerServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scheduler/status",
			Method:  http.MethodGet,
			Handler: GetSchedulerStatus(services),
		},
		{
			Path:    "/v1/scheduler/trigger",
			Method:  http.MethodPost,
			Handler: TriggerScheduler(services),
		},
	}
}
