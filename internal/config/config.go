// README: Config loader; .env via godotenv, then TRIPMIND_* env vars and defaults via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModeAI   = "ai"
	ModeMock = "mock"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type AIConfig struct {
	Provider    string
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	GeminiKey   string
	GeminiModel string
}

// ModelName is the model identifier of the selected provider.
func (c AIConfig) ModelName() string {
	if c.Provider == ProviderGemini {
		return c.GeminiModel
	}
	return c.Model
}

type Config struct {
	HTTP struct {
		Addr            string
		GenerateTimeout time.Duration
	}
	CORS struct {
		AllowedOrigins []string
	}
	Log struct {
		Level  string
		Format string
	}
	Itinerary struct {
		Mode string
	}
	AI AIConfig
	DB struct {
		DSN string
	}
}

// Option overrides a setting after defaults and environment are applied.
type Option func(v *viper.Viper)

// WithItineraryMode forces itinerary.mode regardless of TRIPMIND_ITINERARY_MODE.
func WithItineraryMode(mode string) Option {
	return func(v *viper.Viper) {
		v.Set("itinerary.mode", mode)
	}
}

// Load reads configuration from the environment (and a .env file if present).
func Load(opts ...Option) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TRIPMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	for _, opt := range opts {
		opt(v)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.generate_timeout", 60*time.Second)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("itinerary.mode", ModeAI)
	v.SetDefault("ai.provider", ProviderOpenAI)
	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "deepseek/deepseek-r1")
	v.SetDefault("ai.max_tokens", 4000)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.gemini_key", "")
	v.SetDefault("ai.gemini_model", "gemini-2.0-flash")
	v.SetDefault("db.dsn", "")
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.GenerateTimeout = v.GetDuration("http.generate_timeout")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Itinerary.Mode = strings.ToLower(v.GetString("itinerary.mode"))
	cfg.AI = AIConfig{
		Provider:    strings.ToLower(v.GetString("ai.provider")),
		BaseURL:     v.GetString("ai.base_url"),
		APIKey:      v.GetString("ai.api_key"),
		Model:       v.GetString("ai.model"),
		MaxTokens:   v.GetInt("ai.max_tokens"),
		Temperature: v.GetFloat64("ai.temperature"),
		GeminiKey:   v.GetString("ai.gemini_key"),
		GeminiModel: v.GetString("ai.gemini_model"),
	}
	cfg.DB.DSN = v.GetString("db.dsn")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Itinerary.Mode {
	case ModeMock:
		return nil
	case ModeAI:
	default:
		return fmt.Errorf("config: TRIPMIND_ITINERARY_MODE must be %q or %q, got %q", ModeAI, ModeMock, c.Itinerary.Mode)
	}

	switch c.AI.Provider {
	case ProviderOpenAI:
		if c.AI.APIKey == "" {
			return errors.New("config: TRIPMIND_AI_API_KEY is required in ai mode")
		}
		if c.AI.BaseURL == "" {
			return errors.New("config: TRIPMIND_AI_BASE_URL is required in ai mode")
		}
	case ProviderGemini:
		if c.AI.GeminiKey == "" {
			return errors.New("config: TRIPMIND_AI_GEMINI_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("config: unknown TRIPMIND_AI_PROVIDER %q", c.AI.Provider)
	}
	if c.AI.MaxTokens <= 0 {
		return errors.New("config: TRIPMIND_AI_MAX_TOKENS must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
