package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, tuning knobs)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	Accounts   AccountCacheConfig
	Suggestion SuggestionConfig
	Provider   ProviderConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// AccountCacheConfig tunes the account-directory cache. Only the roster is
// cached; per-range load is always recomputed live.
type AccountCacheConfig struct {
	TTL time.Duration `envconfig:"ACCOUNT_CACHE_TTL" default:"5m"`
}

// SuggestionConfig bounds the nearest-free-slot probing used when generating
// TIME_CHANGE suggestions.
type SuggestionConfig struct {
	SlotStep   time.Duration `envconfig:"SUGGESTION_SLOT_STEP" default:"30m"`
	SlotWindow time.Duration `envconfig:"SUGGESTION_SLOT_WINDOW" default:"4h"`
}

type ProviderConfig struct {
	BaseURL string        `envconfig:"VIDEO_PROVIDER_BASE_URL" default:"https://api.zoom.us/v2"`
	Token   string        `envconfig:"VIDEO_PROVIDER_TOKEN" default:""`
	Timeout time.Duration `envconfig:"VIDEO_PROVIDER_TIMEOUT" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Accounts: AccountCacheConfig{TTL: 5 * time.Minute},
		Suggestion: SuggestionConfig{
			SlotStep:   30 * time.Minute,
			SlotWindow: 4 * time.Hour,
		},
	}
}
