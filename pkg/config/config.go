package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix shared by every environment variable the service reads.
const EnvPrefix = "TSB"

// Names of the environment variables referenced from error messages and tests.
const (
	EnvAppEnv      = "TSB_APP_ENV"
	EnvPort        = "TSB_APP_PORT"
	EnvSupabaseURL = "TSB_SUPABASE_URL"
	EnvSupabaseKey = "TSB_SUPABASE_KEY"
	EnvJWTSecret   = "TSB_JWT_SECRET"
	EnvDBDSN       = "TSB_DB_DSN"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Supabase SupabaseConfig
	JWT      JWTConfig
	DB       DBConfig
	Scrape   ScrapeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"TSB_APP_ENV" required:"true"`
	Port     string `envconfig:"TSB_APP_PORT" default:"8000"`
	LogLevel string `envconfig:"TSB_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SupabaseConfig locates the REST proxy the served API persists through.
type SupabaseConfig struct {
	URL    string `envconfig:"TSB_SUPABASE_URL" required:"true"`
	APIKey string `envconfig:"TSB_SUPABASE_KEY" required:"true"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TSB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TSB_JWT_ISSUER" default:"tibiaset"`
	ExpirationMinutes int    `envconfig:"TSB_JWT_EXPIRATION_MINUTES" default:"30"`
}

// AccessTokenTTL returns the configured token lifetime, falling back to
// 15 minutes when the configured value is not positive.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// DBConfig is used only by the ingest and migrate binaries; the served API
// never opens a direct database connection.
type DBConfig struct {
	DSN             string        `envconfig:"TSB_DB_DSN"`
	MaxOpenConns    int           `envconfig:"TSB_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"TSB_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"TSB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TSB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ScrapeConfig points the ingest job at the external game-data sites.
type ScrapeConfig struct {
	TibiaDataURL string        `envconfig:"TSB_TIBIADATA_URL" default:"https://api.tibiadata.com/v4"`
	WikiURL      string        `envconfig:"TSB_WIKI_URL" default:"https://tibia.fandom.com/wiki"`
	HTTPTimeout  time.Duration `envconfig:"TSB_SCRAPE_TIMEOUT" default:"30s"`
	ItemCategory string        `envconfig:"TSB_ITEM_CATEGORY" default:"Items"`
}
