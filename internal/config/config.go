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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	OpenAI        OpenAI        `mapstructure:",squash"`
	Warehouse     Warehouse     `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	WarehouseSync WarehouseSync `mapstructure:",squash"`
	DatasetCache  DatasetCache  `mapstructure:",squash"`
	Turnover      Turnover      `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
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

type OpenAI struct {
	URL         string        `mapstructure:"openai_url"`
	APIKey      string        `mapstructure:"openai_api_key"`
	Model       string        `mapstructure:"openai_model"`
	MaxTokens   int           `mapstructure:"openai_max_tokens"`
	Temperature float64       `mapstructure:"openai_temperature"`
	Timeout     time.Duration `mapstructure:"openai_timeout"`
}

type Warehouse struct {
	URL         string `mapstructure:"warehouse_url"`
	AccessToken string `mapstructure:"warehouse_access_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret            string `mapstructure:"auth_secret"`
	AdminEmail        string `mapstructure:"auth_admin_email"`
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
}

type WarehouseSync struct {
	CronSchedule      string `mapstructure:"warehouse_sync_cron"`
	QuarterLookback   int    `mapstructure:"warehouse_sync_quarter_lookback"`
	MaxConcurrentJobs int    `mapstructure:"warehouse_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"warehouse_sync_enabled"`
}

type DatasetCache struct {
	TTL time.Duration `mapstructure:"dataset_cache_ttl"`
}

type Turnover struct {
	CostRatio float64 `mapstructure:"turnover_cost_ratio"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/working_capital")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_MAX_TOKENS", 900)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.4)
	viper.SetDefault("OPENAI_TIMEOUT", "45s")

	viper.SetDefault("WAREHOUSE_URL", "https://warehouse.internal/api/v1")
	viper.SetDefault("WAREHOUSE_ACCESS_TOKEN", "your_access_token")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

	// Defaults para sincronização com o warehouse
	viper.SetDefault("WAREHOUSE_SYNC_CRON", "0 5 * * *")      // Todos os dias às 5h da manhã
	viper.SetDefault("WAREHOUSE_SYNC_QUARTER_LOOKBACK", 8)    // 8 trimestres para buscar dados
	viper.SetDefault("WAREHOUSE_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 jobs concorrentes
	viper.SetDefault("WAREHOUSE_SYNC_ENABLED", false)         // Habilitar sincronização com warehouse

	viper.SetDefault("DATASET_CACHE_TTL", "5m")

	viper.SetDefault("TURNOVER_COST_RATIO", 0.60)

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
	// Obter diretório atual
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
