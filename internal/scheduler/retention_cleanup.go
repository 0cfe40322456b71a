package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

// RetentionCleanupService apaga métricas diárias mais antigas que a janela de
// retenção. O dashboard olha no máximo 13 meses para trás; o resto é só
// crescimento de tabela.
type RetentionCleanupService struct {
	scheduler        *gocron.Scheduler
	config           config.Cleanup
	campaignMetrics  repository.DailyMetricRepository
	adSetMetrics     repository.DailyMetricRepository
	adMetrics        repository.DailyMetricRepository
	countryMetrics   repository.CountryDailyMetricRepository
	adCountryMetrics repository.AdCountryDailyMetricRepository
}

func NewRetentionCleanupService(
	campaignMetrics repository.DailyMetricRepository,
	adSetMetrics repository.DailyMetricRepository,
	adMetrics repository.DailyMetricRepository,
	countryMetrics repository.CountryDailyMetricRepository,
	adCountryMetrics repository.AdCountryDailyMetricRepository,
	appConfig *config.Config,
) *RetentionCleanupService {
	return &RetentionCleanupService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           appConfig.Cleanup,
		campaignMetrics:  campaignMetrics,
		adSetMetrics:     adSetMetrics,
		adMetrics:        adMetrics,
		countryMetrics:   countryMetrics,
		adCountryMetrics: adCountryMetrics,
	}
}

// Start inicia o agendador
func (s *RetentionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"cron":           s.config.CronSchedule,
		"retention_days": s.config.RetentionDays,
	}).Info("Iniciando agendador de limpeza de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCleanup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup executa a limpeza nas cinco tabelas de métricas
func (s *RetentionCleanupService) RunCleanup(ctx context.Context) {
	startTime := time.Now()
	days := s.config.RetentionDays

	tables := []struct {
		name string
		fn   func(ctx context.Context, days int) (int64, error)
	}{
		{"campaign_daily_metrics", s.campaignMetrics.DeleteOlderThan},
		{"adset_daily_metrics", s.adSetMetrics.DeleteOlderThan},
		{"ad_daily_metrics", s.adMetrics.DeleteOlderThan},
		{"country_daily_metrics", s.countryMetrics.DeleteOlderThan},
		{"ad_country_daily_metrics", s.adCountryMetrics.DeleteOlderThan},
	}

	var total int64
	for _, table := range tables {
		deleted, err := table.fn(ctx, days)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"table": table.name,
				"error": err.Error(),
			}).Error("Erro ao limpar métricas antigas, seguindo para a próxima tabela")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"table":   table.name,
			"deleted": deleted,
		}).Info("Métricas antigas removidas")
		total += deleted
	}

	logrus.WithFields(logrus.Fields{
		"total_deleted":  total,
		"retention_days": days,
		"duration":       time.Since(startTime).String(),
	}).Info("Limpeza de retenção concluída")
}

// GetStatus retorna a configuração corrente do agendador de limpeza
func (s *RetentionCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled": s.config.Enabled,
		"cleanup_cron":    s.config.CronSchedule,
		"retention_days":  s.config.RetentionDays,
	}
}
