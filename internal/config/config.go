package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
	Cleanup  Cleanup  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Meta struct {
	BaseURL        string `mapstructure:"meta_base_url"`
	URL            string `mapstructure:"meta_url"`
	Version        string `mapstructure:"meta_version"`
	AccessToken    string `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// Sync controla a sincronização diária com a plataforma de anúncios.
type Sync struct {
	CronSchedule             string `mapstructure:"sync_cron"`
	LookbackDays             int    `mapstructure:"sync_lookback_days"`
	InitialLookbackDays      int    `mapstructure:"sync_initial_lookback_days"`
	RequestDelaySeconds      int    `mapstructure:"sync_request_delay_seconds"`
	InterAccountDelaySeconds int    `mapstructure:"sync_inter_account_delay_seconds"`
	DailyAPICallBudget       int    `mapstructure:"sync_daily_api_call_budget"`
	CreativeRefreshDays      int    `mapstructure:"sync_creative_refresh_days"`
	Enabled                  bool   `mapstructure:"sync_enabled"`
}

// Cleanup controla a retenção das métricas diárias.
type Cleanup struct {
	CronSchedule  string `mapstructure:"cleanup_cron"`
	RetentionDays int    `mapstructure:"cleanup_retention_days"`
	Enabled       bool   `mapstructure:"cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	// Defaults da sincronização diária
	viper.SetDefault("SYNC_CRON", "0 2 * * *")               // Todos os dias às 2h da manhã
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 7)                // 7 dias para buscar dados
	viper.SetDefault("SYNC_INITIAL_LOOKBACK_DAYS", 30)       // 30 dias na primeira sincronização da conta
	viper.SetDefault("SYNC_REQUEST_DELAY_SECONDS", 2)        // 2 segundos entre etapas
	viper.SetDefault("SYNC_INTER_ACCOUNT_DELAY_SECONDS", 5)  // 5 segundos entre contas
	viper.SetDefault("SYNC_DAILY_API_CALL_BUDGET", 50)       // Limite diário de chamadas por conta
	viper.SetDefault("SYNC_CREATIVE_REFRESH_DAYS", 7)        // Revalidar URL do criativo a cada 7 dias
	viper.SetDefault("SYNC_ENABLED", false)                  // Habilitar sincronização diária

	// Defaults da limpeza de retenção
	viper.SetDefault("CLEANUP_CRON", "0 4 * * 0")    // Todos os domingos às 4h da manhã
	viper.SetDefault("CLEANUP_RETENTION_DAYS", 395)  // 13 meses de métricas diárias
	viper.SetDefault("CLEANUP_ENABLED", false)       // Habilitar limpeza de retenção

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
