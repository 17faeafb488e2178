package tips

import (
	"fmt"
	"os"
	"time"
)

// Config holds tip-provider configuration.
type Config struct {
	// Provider selects the backend: "gemini", "anthropic", "openai",
	// "mock".
	Provider string

	Gemini    GeminiConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Retry     RetryConfig

	// Timeout bounds a single tip request, retries included.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default backend.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values. Generic API key variables
// (GEMINI_API_KEY and friends) fill in keys the SKATETRACK_ ones leave
// empty.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SKATETRACK_TIPS_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	cfg.Gemini.APIKey = firstEnv("SKATETRACK_GEMINI_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("SKATETRACK_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	cfg.Anthropic.APIKey = firstEnv("SKATETRACK_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("SKATETRACK_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenAI.APIKey = firstEnv("SKATETRACK_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("SKATETRACK_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SKATETRACK_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	return cfg
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SKATETRACK_GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SKATETRACK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SKATETRACK_OPENAI_API_KEY is required for the openai provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown tip provider: %q", c.Provider)
	}
	return nil
}
