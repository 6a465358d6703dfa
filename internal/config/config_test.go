package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"TRIPMIND_HTTP_ADDR",
	"TRIPMIND_HTTP_GENERATE_TIMEOUT",
	"TRIPMIND_CORS_ALLOWED_ORIGINS",
	"TRIPMIND_LOG_LEVEL",
	"TRIPMIND_LOG_FORMAT",
	"TRIPMIND_ITINERARY_MODE",
	"TRIPMIND_AI_PROVIDER",
	"TRIPMIND_AI_BASE_URL",
	"TRIPMIND_AI_API_KEY",
	"TRIPMIND_AI_MODEL",
	"TRIPMIND_AI_MAX_TOKENS",
	"TRIPMIND_AI_TEMPERATURE",
	"TRIPMIND_AI_GEMINI_KEY",
	"TRIPMIND_AI_GEMINI_MODEL",
	"TRIPMIND_DB_DSN",
}

// clearEnv blanks every config variable for the test; viper treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPMIND_AI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 60*time.Second, cfg.HTTP.GenerateTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ModeAI, cfg.Itinerary.Mode)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "deepseek/deepseek-r1", cfg.AI.Model)
	assert.Equal(t, "deepseek/deepseek-r1", cfg.AI.ModelName())
	assert.Equal(t, 4000, cfg.AI.MaxTokens)
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Empty(t, cfg.DB.DSN)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPMIND_HTTP_ADDR", ":9090")
	t.Setenv("TRIPMIND_HTTP_GENERATE_TIMEOUT", "15s")
	t.Setenv("TRIPMIND_CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com,")
	t.Setenv("TRIPMIND_ITINERARY_MODE", "MOCK")
	t.Setenv("TRIPMIND_AI_MAX_TOKENS", "1200")
	t.Setenv("TRIPMIND_DB_DSN", "postgres://localhost/tripmind")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Second, cfg.HTTP.GenerateTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, ModeMock, cfg.Itinerary.Mode)
	assert.Equal(t, 1200, cfg.AI.MaxTokens)
	assert.Equal(t, "postgres://localhost/tripmind", cfg.DB.DSN)
}

func TestLoad_MockModeNeedsNoKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPMIND_ITINERARY_MODE", "mock")

	_, err := Load()
	assert.NoError(t, err)
}

func TestLoad_ItineraryModeOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPMIND_ITINERARY_MODE", "ai")

	cfg, err := Load(WithItineraryMode(ModeMock))
	require.NoError(t, err)
	assert.Equal(t, ModeMock, cfg.Itinerary.Mode)
	assert.Equal(t, "ai", os.Getenv("TRIPMIND_ITINERARY_MODE"))
}

func TestLoad_Gemini(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPMIND_AI_PROVIDER", "gemini")
	t.Setenv("TRIPMIND_AI_GEMINI_KEY", "g-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.ModelName())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing openai key", nil, "TRIPMIND_AI_API_KEY"},
		{"missing gemini key", map[string]string{"TRIPMIND_AI_PROVIDER": "gemini"}, "TRIPMIND_AI_GEMINI_KEY"},
		{"unknown provider", map[string]string{"TRIPMIND_AI_PROVIDER": "bard", "TRIPMIND_AI_API_KEY": "k"}, "TRIPMIND_AI_PROVIDER"},
		{"unknown mode", map[string]string{"TRIPMIND_ITINERARY_MODE": "offline"}, "TRIPMIND_ITINERARY_MODE"},
		{"bad max tokens", map[string]string{"TRIPMIND_AI_API_KEY": "k", "TRIPMIND_AI_MAX_TOKENS": "-1"}, "TRIPMIND_AI_MAX_TOKENS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
