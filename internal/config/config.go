package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Billing       Billing       `mapstructure:",squash"`
	FacilitaPonto FacilitaPonto `mapstructure:",squash"`
	Advisor       Advisor       `mapstructure:",squash"`
	OverdueSweep  OverdueSweep  `mapstructure:",squash"`
	HeadcountSync HeadcountSync `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
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

type Billing struct {
	// UnitPrice é o preço por funcionário (vida) em reais, como string decimal
	UnitPrice string `mapstructure:"billing_unit_price"`
}

type FacilitaPonto struct {
	BaseURL    string `mapstructure:"facilitaponto_base_url"`
	PartnerKey string `mapstructure:"facilitaponto_partner_key"`
}

type Advisor struct {
	APIKey string `mapstructure:"advisor_api_key"`
	Model  string `mapstructure:"advisor_model"`
}

type OverdueSweep struct {
	CronSchedule string `mapstructure:"overdue_sweep_cron"`
	Enabled      bool   `mapstructure:"overdue_sweep_enabled"`
}

type HeadcountSync struct {
	CronSchedule string `mapstructure:"headcount_sync_cron"`
	Enabled      bool   `mapstructure:"headcount_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pontogestor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BILLING_UNIT_PRICE", "5.00")

	viper.SetDefault("FACILITAPONTO_BASE_URL", "https://api.facilitaponto.com.br")
	viper.SetDefault("FACILITAPONTO_PARTNER_KEY", "")

	viper.SetDefault("ADVISOR_API_KEY", "")
	viper.SetDefault("ADVISOR_MODEL", "gpt-4o")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Varredura de faturas vencidas: todos os dias à 1h da manhã
	viper.SetDefault("OVERDUE_SWEEP_CRON", "0 1 * * *")
	viper.SetDefault("OVERDUE_SWEEP_ENABLED", true)

	// Sincronização de quadro de funcionários: todos os dias às 5h da manhã
	viper.SetDefault("HEADCOUNT_SYNC_CRON", "0 5 * * *")
	viper.SetDefault("HEADCOUNT_SYNC_ENABLED", false)

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

// loadEnvFile tenta carregar o .env das localizações usuais de desenvolvimento
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
