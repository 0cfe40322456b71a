package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SyncStepsTotal conta etapas de sincronização por nome e resultado.
	SyncStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_dashboard_sync_steps_total",
		Help: "Etapas de sincronização executadas, por etapa e resultado.",
	}, []string{"step", "result"})

	// SyncDuration mede a duração do fullSync de uma conta.
	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ads_dashboard_sync_duration_seconds",
		Help:    "Duração do fullSync por conta.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	// AlertsGenerated conta alertas inseridos por regeneração, por prioridade.
	AlertsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_dashboard_alerts_generated_total",
		Help: "Alertas gerados pelas regenerações, por prioridade.",
	}, []string{"priority"})

	// RegenerationsTotal conta regenerações por resultado.
	RegenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_dashboard_alert_regenerations_total",
		Help: "Regenerações de alertas executadas, por resultado.",
	}, []string{"result"})

	// PlatformAPICalls conta chamadas feitas à API da plataforma de anúncios.
	PlatformAPICalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ads_dashboard_platform_api_calls_total",
		Help: "Chamadas feitas à API externa de anúncios.",
	})
)

// Handler expõe o registry padrão em /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
