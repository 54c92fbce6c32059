package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/database"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port            int           `envconfig:"PORT" default:"3000"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"console"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	UseHTTPS        bool          `envconfig:"USE_HTTPS" default:"false"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite3"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"footyhub.db"`

	BcryptCost     int `envconfig:"BCRYPT_COST" default:"10"`
	AuditQueueSize int `envconfig:"AUDIT_QUEUE_SIZE" default:"256"`
	MaxPageSize    int `envconfig:"MAX_PAGE_SIZE" default:"100"`

	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	RapidAPIKey     string        `envconfig:"RAPIDAPI_KEY"`
	NewsAPIURL      string        `envconfig:"NEWS_API_URL"`
	TeamInfoAPIURL  string        `envconfig:"TEAM_INFO_API_URL"`
	WeatherAPIKey   string        `envconfig:"WEATHER_API_KEY"`
	WeatherAPIURL   string        `envconfig:"WEATHER_API_URL"`

	OIDCDomain       string `envconfig:"OIDC_DOMAIN"`
	OIDCClientID     string `envconfig:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `envconfig:"OIDC_CLIENT_SECRET"`
	OIDCCallbackURL  string `envconfig:"OIDC_CALLBACK_URL"`
}

// Load reads an optional .env file and then the environment into a Config struct.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot
func (c *Config) Validate() error {
	switch database.Driver(c.DBDriver) {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", database.DriverSQLite, database.DriverPostgres, c.DBDriver)
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}

	return nil
}

// Driver returns the configured database driver
func (c *Config) Driver() database.Driver {
	return database.Driver(c.DBDriver)
}

// OIDCEnabled reports whether single sign-on is configured
func (c *Config) OIDCEnabled() bool {
	return c.OIDCDomain != "" && c.OIDCClientID != ""
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
