package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spicybites/pos/pkg/log"
)

const (
	EnvProd = "prod"
	EnvTest = "test"
)

type Config struct {
	Env string `yaml:"env" env:"ENV" env-upd:""`

	Postgres Postgres `yaml:"postgres"`

	Server Server `yaml:"server"`

	Telegram Telegram `yaml:"telegram"`
}

type Postgres struct {
	Database string `yaml:"database" env:"POSTGRES_DATABASE" env-upd:""`
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-upd:""`
	Schema   string `yaml:"schema" env:"POSTGRES_SCHEMA" env-upd:""`
	Username string `yaml:"username" env:"POSTGRES_USER" env-upd:""`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-upd:""`
	Port     int64  `yaml:"port" env:"POSTGRES_PORT" env-upd:""`
}

type Server struct {
	Host           string   `yaml:"host" env:"SERVER_HOST" env-upd:""`
	Port           int64    `yaml:"port" env:"SERVER_PORT" env-upd:""`
	AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" env-upd:""`
}

// Telegram configures the optional receipt notification channel. The channel
// is disabled when api_key is empty.
type Telegram struct {
	APIKey string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-upd:""`
	ChatID int64  `yaml:"chat_id" env:"TELEGRAM_CHAT_ID" env-upd:""`
}

func (c *Config) GetPostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Postgres.Username, c.Postgres.Password, c.Postgres.Host, c.Postgres.Port, c.Postgres.Database)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func GetConfig(configPath string) *Config {
	if configPath == "" {
		log.Fatal("config path is required")
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatal(err.Error())
	}

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		log.Fatal(err.Error())
	}

	return &cfg
}
