package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven service configuration.
type Config struct {
	// Issuer is the "iss" claim stamped into every access token.
	Issuer string `env:"AUTH_ISSUER" envDefault:"player-auth"`

	// JWTSecret signs and verifies access tokens (HS512). Required: every
	// backend service verifying tokens must share it.
	JWTSecret string `env:"AUTH_JWT_SECRET"`

	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" envDefault:"24h"`

	// DatabaseFile is the path to the SQLite database file.
	DatabaseFile string `env:"AUTH_DATABASE_FILE" envDefault:"auth.db"`

	// ExtraRoles are seeded at startup in addition to user/admin/server.
	ExtraRoles []string `env:"AUTH_EXTRA_ROLES" envSeparator:","`

	// GitHub OAuth2 app credentials. The github provider is only registered
	// when all three are set; a partial set is a startup error.
	GithubClientID     string `env:"AUTH_GITHUB_CLIENT_ID"`
	GithubClientSecret string `env:"AUTH_GITHUB_CLIENT_SECRET"`
	GithubRedirectURI  string `env:"AUTH_GITHUB_REDIRECT_URI"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// GithubEnabled reports whether a complete GitHub app configuration is present.
func (c Config) GithubEnabled() bool {
	return c.GithubClientID != "" && c.GithubClientSecret != "" && c.GithubRedirectURI != ""
}

func (c Config) githubPartial() bool {
	set := c.GithubClientID != "" || c.GithubClientSecret != "" || c.GithubRedirectURI != ""
	return set && !c.GithubEnabled()
}

// LoadConfig parses the configuration from environment variables and
// validates it. Configuration errors are fatal; the process must not come up
// half-wired.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("AUTH_JWT_SECRET must be set")
	}
	if cfg.githubPartial() {
		return Config{}, errors.New(
			"AUTH_GITHUB_CLIENT_ID, AUTH_GITHUB_CLIENT_SECRET and AUTH_GITHUB_REDIRECT_URI must be set together")
	}

	return cfg, nil
}
