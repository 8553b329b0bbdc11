package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// PlaceholderAuthSecret é o valor de exemplo do .env e nunca assina tokens
const PlaceholderAuthSecret = "your_secret_key"

const generatedSecretLength = 48

// Drivers de armazenamento suportados
const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Storage          Storage          `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	PersistenceRetry PersistenceRetry `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Storage struct {
	Driver     string `mapstructure:"storage_driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RosterKey  string `mapstructure:"roster_store_key"`
	LedgerKey  string `mapstructure:"ledger_store_key"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret              string        `mapstructure:"auth_secret"`
	TokenTTL            time.Duration `mapstructure:"auth_token_ttl"`
	ManagerPasswordHash string        `mapstructure:"manager_password_hash"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type PersistenceRetry struct {
	CronSchedule string `mapstructure:"persistence_retry_cron"`
	Enabled      bool   `mapstructure:"persistence_retry_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("STORAGE_DRIVER", StorageDriverSQLite)
	viper.SetDefault("SQLITE_PATH", "sdr-dashboard.db")
	viper.SetDefault("ROSTER_STORE_KEY", "sdr-dashboard-salespersons")
	viper.SetDefault("LEDGER_STORE_KEY", "sdr-dashboard-allData")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sdr_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("MANAGER_PASSWORD_HASH", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Reenvio das coleções que falharam ao gravar
	viper.SetDefault("PERSISTENCE_RETRY_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("PERSISTENCE_RETRY_ENABLED", true)

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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa campos derivados, valida o driver e garante um
// AUTH_SECRET que não seja público
func (c *Config) normalize() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageDriverSQLite, StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.Storage.Driver)
	}

	c.Auth.Secret = strings.TrimSpace(c.Auth.Secret)
	switch c.Auth.Secret {
	case PlaceholderAuthSecret:
		return fmt.Errorf("AUTH_SECRET não pode ser o valor de exemplo %q", PlaceholderAuthSecret)
	case "":
		secret, err := gonanoid.New(generatedSecretLength)
		if err != nil {
			return fmt.Errorf("erro ao gerar AUTH_SECRET: %w", err)
		}
		c.Auth.Secret = secret
		logrus.Warn("AUTH_SECRET ausente, usando segredo aleatório: tokens emitidos perdem validade ao reiniciar")
	}

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
