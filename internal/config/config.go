package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Analytics       Analytics       `mapstructure:",squash"`
	InventoryAlerts InventoryAlerts `mapstructure:",squash"`
	Aliases         Aliases         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Analytics agrupa os parâmetros de negócio do painel; os limites de estoque são em dias
type Analytics struct {
	TopClientsLimit       int     `mapstructure:"analytics_top_clients_limit"`
	TopSuppliersLimit     int     `mapstructure:"analytics_top_suppliers_limit"`
	CriticalDays          float64 `mapstructure:"analytics_stock_critical_days"`
	LowDays               float64 `mapstructure:"analytics_stock_low_days"`
	OrderBufferDays       int     `mapstructure:"analytics_order_buffer_days"`
	InventoryLookbackDays int     `mapstructure:"analytics_inventory_lookback_days"`
}

type InventoryAlerts struct {
	CronSchedule string `mapstructure:"inventory_alerts_cron"`
	Enabled      bool   `mapstructure:"inventory_alerts_enabled"`
}

type Aliases struct {
	File string `mapstructure:"aliases_file"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gwr?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ANALYTICS_TOP_CLIENTS_LIMIT", 5)
	viper.SetDefault("ANALYTICS_TOP_SUPPLIERS_LIMIT", 5)
	viper.SetDefault("ANALYTICS_STOCK_CRITICAL_DAYS", 3) // abaixo disso o produto é crítico
	viper.SetDefault("ANALYTICS_STOCK_LOW_DAYS", 7)      // abaixo disso o estoque está baixo
	viper.SetDefault("ANALYTICS_ORDER_BUFFER_DAYS", 14)  // cobertura desejada na sugestão de compra
	viper.SetDefault("ANALYTICS_INVENTORY_LOOKBACK_DAYS", 90)

	viper.SetDefault("INVENTORY_ALERTS_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("INVENTORY_ALERTS_ENABLED", false)

	viper.SetDefault("ALIASES_FILE", "")

	viper.SetDefault("APP_ENV", "")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita parâmetros de negócio que gerariam classificações sem sentido
func (c *Config) Validate() error {
	a := c.Analytics
	if a.CriticalDays < 0 || a.LowDays < 0 {
		return fmt.Errorf("%w: stock thresholds must not be negative", ErrInvalidConfig)
	}
	if a.CriticalDays > a.LowDays {
		return fmt.Errorf("%w: critical days (%.2f) greater than low days (%.2f)", ErrInvalidConfig, a.CriticalDays, a.LowDays)
	}
	if a.TopClientsLimit < 0 || a.TopSuppliersLimit < 0 {
		return fmt.Errorf("%w: ranking limits must not be negative", ErrInvalidConfig)
	}
	if a.InventoryLookbackDays < 1 {
		return fmt.Errorf("%w: inventory lookback must be at least one day", ErrInvalidConfig)
	}
	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
