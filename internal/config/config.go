package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
	Ad       Ad       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	// URL é a connection string completa (postgres://...). Obrigatória:
	// a ausência derruba o processo na inicialização.
	URL                string `mapstructure:"database_url"`
	ConnectMaxAttempts int    `mapstructure:"db_connect_max_attempts"`
	ConnectRetryDelay  int    `mapstructure:"db_connect_retry_delay_seconds"`
}

type Cors struct {
	// AllowedOrigins é a lista de origens liberadas, separadas por vírgula na
	// variável de ambiente. Por padrão a lista é fechada (apenas o host do publisher).
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Ad define o criativo fixo retornado pelo serviço de entrega
type Ad struct {
	Image       string `mapstructure:"default_ad_image"`
	Destination string `mapstructure:"default_ad_destination"`
	ID          string `mapstructure:"default_ad_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 3000)

	// Sem valor padrão: registrar a chave permite ao viper enxergar a
	// variável de ambiente no Unmarshal; a validação cobra a presença
	viper.SetDefault("DATABASE_URL", "")

	viper.SetDefault("DB_CONNECT_MAX_ATTEMPTS", 5)
	viper.SetDefault("DB_CONNECT_RETRY_DELAY_SECONDS", 2)

	viper.SetDefault("ALLOWED_ORIGINS", "https://publisher.example.com")

	viper.SetDefault("DEFAULT_AD_IMAGE", "https://via.placeholder.com/300x250?text=Ad+Creative")
	viper.SetDefault("DEFAULT_AD_DESTINATION", "https://www.google.com")
	viper.SetDefault("DEFAULT_AD_ID", "ad-001")

	viper.SetDefault("LOG_LEVEL", "info")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante que as variáveis obrigatórias estão presentes antes do
// servidor subir, em vez de deixar a falha aparecer depois como nil pointer
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("variável de ambiente obrigatória ausente: DATABASE_URL")
	}
	return nil
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

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
