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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	SurveyRetry  SurveyRetry  `mapstructure:",squash"`
	CacheSweeper CacheSweeper `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey    string        `mapstructure:"auth_secret_key"`
	CookieName   string        `mapstructure:"auth_cookie_name"`
	SessionTTL   time.Duration `mapstructure:"auth_session_ttl"`
	SecureCookie bool          `mapstructure:"auth_secure_cookie"`
	CookieDomain string        `mapstructure:"auth_cookie_domain"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

// SurveyRetry controla o retry com backoff usado apenas nas buscas de
// respostas de pesquisas; os demais relatórios não fazem retry automático.
type SurveyRetry struct {
	MaxAttempts int           `mapstructure:"survey_retry_max_attempts"`
	BaseDelay   time.Duration `mapstructure:"survey_retry_base_delay"`
}

type CacheSweeper struct {
	CronSchedule string `mapstructure:"cache_sweeper_cron"`
	Enabled      bool   `mapstructure:"cache_sweeper_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pshot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_COOKIE_NAME", "ps_session")
	viper.SetDefault("AUTH_SESSION_TTL", "24h")
	viper.SetDefault("AUTH_SECURE_COOKIE", false)
	viper.SetDefault("AUTH_COOKIE_DOMAIN", "")

	// Cache de dados de gráficos: 5 minutos, igual ao dashboard
	viper.SetDefault("CACHE_TTL", "5m")

	viper.SetDefault("SURVEY_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("SURVEY_RETRY_BASE_DELAY", "500ms")

	viper.SetDefault("CACHE_SWEEPER_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CACHE_SWEEPER_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
