package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL points at a local development backend. Production
	// builds set GROJET_API_BASE_URL or api.base_url in config.yaml.
	DefaultBaseURL = "http://localhost:5000"

	// DefaultRequestTimeout bounds every API call. The platform default of
	// no timeout at all is not acceptable for a CLI.
	DefaultRequestTimeout = 30 * time.Second
)

// Config represents the application configuration structure
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CredentialsConfig struct {
	// Path overrides the credential store location. Empty means the
	// default under the user config directory.
	Path string `mapstructure:"path"`
}

func (c *Config) GetBaseURL() string {
	return strings.TrimSuffix(c.API.BaseURL, "/")
}

func (c *Config) GetTimeout() time.Duration {
	if c.API.Timeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.API.Timeout
}

func (c *Config) GetCredentialsPath() string {
	return c.Credentials.Path
}

// SetBaseURL validates and overrides the backend address, used by the
// --server flag.
func (c *Config) SetBaseURL(baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if len(parsed.Scheme) == 0 || len(parsed.Host) == 0 {
		return fmt.Errorf("invalid server URL: %s", baseURL)
	}
	c.API.BaseURL = parsed.String()
	return nil
}

// GetServerHostname returns only the hostname of the configured backend.
func (c *Config) GetServerHostname() string {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return "localhost"
	}
	return parsed.Hostname()
}
