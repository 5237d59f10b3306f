package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	UpstreamBaseURL string   `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamTimeout int      `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
}

// devUpstreamBaseURL is the development fallback for the external
// hospital API. Production deployments must set UPSTREAM_BASE_URL.
const devUpstreamBaseURL = "http://localhost:8080/api"

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("UPSTREAM_BASE_URL")
	v.BindEnv("UPSTREAM_TIMEOUT_SECONDS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.UpstreamBaseURL == "" {
		if !cfg.IsDev() {
			return nil, fmt.Errorf("UPSTREAM_BASE_URL is required when ENV=%s", cfg.Env)
		}
		cfg.UpstreamBaseURL = devUpstreamBaseURL
		log.Printf("WARNING: UPSTREAM_BASE_URL not set, using development default %s", devUpstreamBaseURL)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Only local development is exempt.
func (c *Config) SecureCookies() bool {
	return !c.IsDev()
}

// Validate checks that the configuration is safe to run. The upstream
// base URL must parse and carry an http(s) scheme, and the outbound
// timeout must be positive.
func (c *Config) Validate() error {
	u, err := url.Parse(c.UpstreamBaseURL)
	if err != nil {
		return fmt.Errorf("UPSTREAM_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("UPSTREAM_BASE_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL has no host")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive, got %d", c.UpstreamTimeout)
	}
	return nil
}
