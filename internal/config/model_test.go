package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetBaseURL(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "https://api.grojet.app/"}}
	assert.Equal(t, "https://api.grojet.app", cfg.GetBaseURL())

	cfg.API.BaseURL = "https://api.grojet.app"
	assert.Equal(t, "https://api.grojet.app", cfg.GetBaseURL())
}

func TestConfig_GetTimeout(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultRequestTimeout, cfg.GetTimeout())

	cfg.API.Timeout = 5 * time.Second
	assert.Equal(t, 5*time.Second, cfg.GetTimeout())

	cfg.API.Timeout = -1
	assert.Equal(t, DefaultRequestTimeout, cfg.GetTimeout())
}

func TestConfig_SetBaseURL(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.SetBaseURL("https://staging.grojet.app:8443"))
	assert.Equal(t, "https://staging.grojet.app:8443", cfg.GetBaseURL())
	assert.Equal(t, "staging.grojet.app", cfg.GetServerHostname())

	assert.Error(t, cfg.SetBaseURL("not a url"))
	assert.Error(t, cfg.SetBaseURL("/just/a/path"))
}
