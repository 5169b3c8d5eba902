package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	// Keep a stray .env in the working directory from leaking into the tests.
	t.Chdir(t.TempDir())
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4-turbo", cfg.OpenAIModel)
	assert.Equal(t, 4000, cfg.TokenBudget)
	assert.Equal(t, DefaultTone, cfg.DefaultTone)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTimeout)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TOKEN_BUDGET", "1500")
	t.Setenv("SESSION_IDLE_TIMEOUT", "30m")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1/")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 1500, cfg.TokenBudget)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "http://localhost:9999/v1/", cfg.OpenAIBaseURL)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_PORT", "9000")

	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--port=9100", "--model=gpt-4o"}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.AppPort)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenAIAPIKey")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		AppPort:            8000,
		OpenAIAPIKey:       "sk-test",
		OpenAIModel:        "gpt-4-turbo",
		TokenBudget:        4000,
		MaxUploadBytes:     1024,
		SessionIdleTimeout: time.Hour,
	}
	require.NoError(t, valid.Validate())

	zeroBudget := valid
	zeroBudget.TokenBudget = 0
	err := zeroBudget.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TokenBudget")

	badURL := valid
	badURL.OpenAIBaseURL = "not a url"
	assert.Error(t, badURL.Validate())
}
