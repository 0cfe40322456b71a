package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/events"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	campaignMetricRepo := repository.NewCampaignDailyMetricRepository(pgConn)
	adSetMetricRepo := repository.NewAdSetDailyMetricRepository(pgConn)
	adMetricRepo := repository.NewAdDailyMetricRepository(pgConn)
	countryMetricRepo := repository.NewCountryDailyMetricRepository(pgConn)
	adCountryMetricRepo := repository.NewAdCountryDailyMetricRepository(pgConn)
	transactionRepo := repository.NewRevenueTransactionRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	thresholdRepo := repository.NewAlertThresholdRepository(pgConn)
	syncStatusRepo := repository.NewSyncStatusRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	bus := events.NewBus()

	reconciler := reconciling.NewService(transactionRepo, adMetricRepo, adCountryMetricRepo)

	alertService := alerting.NewService(
		accountRepo,
		thresholdRepo,
		alertRepo,
		campaignMetricRepo,
		adSetMetricRepo,
		adMetricRepo,
		transactionRepo,
	)

	syncService := syncing.NewService(
		cfg.Sync,
		metaIntegrator,
		accountRepo,
		campaignRepo,
		adSetRepo,
		adRepo,
		campaignMetricRepo,
		adSetMetricRepo,
		adMetricRepo,
		countryMetricRepo,
		adCountryMetricRepo,
		syncStatusRepo,
		bus,
	)

	dashboardService := dashboarding.NewService(
		reconciler,
		adRepo,
		campaignMetricRepo,
		adMetricRepo,
		countryMetricRepo,
	)

	// Regeneração de alertas disparada pelos eventos de sincronização
	regenerationListener := alerting.NewRegenerationListener(bus, alertService)
	regenerationListener.Start(ctx)

	dailySyncService := scheduler.NewDailySyncService(accountRepo, syncService, cfg)
	retentionCleanupService := scheduler.NewRetentionCleanupService(
		campaignMetricRepo,
		adSetMetricRepo,
		adMetricRepo,
		countryMetricRepo,
		adCountryMetricRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := dailySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização diária")
	} else {
		logrus.Info("Agendador de sincronização diária iniciado com sucesso")
	}

	if err := retentionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de retenção")
	} else {
		logrus.Info("Agendador de limpeza de retenção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		syncService,
		alertService,
		dashboardService,
		dailySyncService,
		retentionCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
