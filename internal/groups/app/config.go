package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	DatabaseFile  string        `env:"GROUPS_DATABASE_FILE"      envDefault:"groups.db"`
	InviteTTL     time.Duration `env:"GROUPS_INVITE_TTL"         envDefault:"168h"`
	CodeLength    int           `env:"GROUPS_CODE_LENGTH"        envDefault:"8"`
	InviteBaseURL string        `env:"GROUPS_INVITE_BASE_URL"`
	WebhookURL    string        `env:"GROUPS_NOTIFY_WEBHOOK_URL"` // empty logs invites instead

	// Access tokens are verified against the auth service's JWKS, fetched
	// from JWKSURL or given inline as JWKSJSON.
	Issuer              string        `env:"AUTH_ISSUER"                envDefault:"bartab-auth"`
	Audience            []string      `env:"AUTH_AUDIENCE"`
	JWKSURL             string        `env:"AUTH_JWKS_URL"`
	JWKSJSON            string        `env:"AUTH_JWKS_JSON"`
	JWKSRefreshInterval time.Duration `env:"AUTH_JWKS_REFRESH_INTERVAL" envDefault:"15m"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.JWKSURL == "" && c.JWKSJSON == "" {
		errs = append(errs, errors.New("one of AUTH_JWKS_URL or AUTH_JWKS_JSON is required"))
	}
	if c.InviteTTL <= 0 {
		errs = append(errs, errors.New("GROUPS_INVITE_TTL must be positive"))
	}
	if c.CodeLength < 6 || c.CodeLength > 32 {
		errs = append(errs, errors.New("GROUPS_CODE_LENGTH must be between 6 and 32"))
	}
	if c.JWKSURL != "" && c.JWKSRefreshInterval <= 0 {
		errs = append(errs, errors.New("AUTH_JWKS_REFRESH_INTERVAL must be positive"))
	}
	return errors.Join(errs...)
}
