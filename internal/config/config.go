package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/spf13/viper"
)

// Supported model providers.
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderStatic      = "static"
)

// Config is the fully resolved application configuration.
type Config struct {
	Logging LoggingConfig
	Server  ServerConfig
	UI      UIConfig
	Model   ModelConfig
}

// ModelConfig selects and tunes the zero-shot backend.
type ModelConfig struct {
	StaticScores  map[string]float64
	Provider      string
	ID            string
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryDelay    time.Duration
	CacheTTL      time.Duration
	Temperature   float64
	MaxRetries    int
	RateLimit     int
	MaxTokens     int
	MaxInputChars int
}

// ServerConfig configures the web dashboard.
type ServerConfig struct {
	Addr           string
	GinMode        string
	CertDir        string
	CORSOrigins    []string
	RequestTimeout time.Duration
	TLS            bool
}

// UIConfig configures the terminal dashboard.
type UIConfig struct {
	Theme string
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model.provider", ProviderHuggingFace)
	v.SetDefault("model.timeout", 60*time.Second)
	v.SetDefault("model.max_retries", 3)
	v.SetDefault("model.retry_delay", time.Second)
	v.SetDefault("model.cache_ttl", 30*time.Minute)
	v.SetDefault("model.rate_limit", 60)
	v.SetDefault("model.max_input_chars", 4000)

	v.SetDefault("server.addr", ":8501")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.request_timeout", 3*time.Minute)
	v.SetDefault("server.tls", false)
	v.SetDefault("server.cert_dir", "~/.config/newslens/certs")

	v.SetDefault("ui.theme", "default")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load resolves configuration from v, falling back to provider-specific
// environment variables for API keys.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Model: ModelConfig{
			Provider:      strings.ToLower(strings.TrimSpace(v.GetString("model.provider"))),
			ID:            v.GetString("model.id"),
			BaseURL:       v.GetString("model.base_url"),
			APIKey:        v.GetString("model.api_key"),
			Timeout:       v.GetDuration("model.timeout"),
			MaxRetries:    v.GetInt("model.max_retries"),
			RetryDelay:    v.GetDuration("model.retry_delay"),
			CacheTTL:      v.GetDuration("model.cache_ttl"),
			RateLimit:     v.GetInt("model.rate_limit"),
			Temperature:   v.GetFloat64("model.temperature"),
			MaxTokens:     v.GetInt("model.max_tokens"),
			MaxInputChars: v.GetInt("model.max_input_chars"),
		},
		Server: ServerConfig{
			Addr:           v.GetString("server.addr"),
			GinMode:        v.GetString("server.gin_mode"),
			CORSOrigins:    v.GetStringSlice("server.cors_origins"),
			RequestTimeout: v.GetDuration("server.request_timeout"),
			TLS:            v.GetBool("server.tls"),
			CertDir:        ExpandPath(v.GetString("server.cert_dir")),
		},
		UI: UIConfig{
			Theme: v.GetString("ui.theme"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}

	if v.IsSet("model.static_scores") {
		scores := map[string]float64{}
		if err := v.UnmarshalKey("model.static_scores", &scores); err != nil {
			return nil, fmt.Errorf("%w: model.static_scores: %v", common.ErrInvalidConfig, err)
		}
		cfg.Model.StaticScores = scores
	}

	if cfg.Model.APIKey == "" {
		cfg.Model.APIKey = apiKeyFromEnv(cfg.Model.Provider)
	}
	if cfg.Model.ID == "" {
		cfg.Model.ID = DefaultModelID(cfg.Model.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for missing or impossible values.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case ProviderHuggingFace, ProviderStatic:
	case ProviderOpenAI, ProviderAnthropic:
		if c.Model.APIKey == "" {
			return fmt.Errorf("%w: %s API key not found in config or environment", common.ErrMissingConfig, c.Model.Provider)
		}
	default:
		return fmt.Errorf("%w: unsupported model provider %q", common.ErrInvalidConfig, c.Model.Provider)
	}

	if c.Model.Timeout < 0 {
		return fmt.Errorf("%w: model.timeout must not be negative", common.ErrInvalidConfig)
	}
	if c.Model.MaxRetries < 0 {
		return fmt.Errorf("%w: model.max_retries must not be negative", common.ErrInvalidConfig)
	}
	if c.Model.MaxInputChars < 0 {
		return fmt.Errorf("%w: model.max_input_chars must not be negative", common.ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", common.ErrMissingConfig)
	}

	return nil
}

// DefaultModelID returns the model used when none is configured.
func DefaultModelID(provider string) string {
	switch provider {
	case ProviderHuggingFace:
		return "facebook/bart-large-mnli"
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case ProviderStatic:
		return "static"
	default:
		return ""
	}
}

func apiKeyFromEnv(provider string) string {
	var names []string
	switch provider {
	case ProviderHuggingFace:
		names = []string{"HF_TOKEN", "HUGGINGFACEHUB_API_TOKEN"}
	case ProviderOpenAI:
		names = []string{"OPENAI_API_KEY"}
	case ProviderAnthropic:
		names = []string{"ANTHROPIC_API_KEY"}
	}

	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
