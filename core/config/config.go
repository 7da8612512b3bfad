// Package config loads the process configuration: which provider backs the
// extraction and vision capabilities, model names, timeouts, and retry
// bounds. The Config is built once at startup and passed by reference into
// every request's pipeline; it is never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adalundhe/hostelbuddy/core/providers"
)

// Config is the full process configuration.
type Config struct {
	// Provider selects the active adapter: "openai" (Groq-compatible)
	// or "anthropic".
	Provider string `yaml:"provider"`

	OpenAI    providers.OpenAIConfig    `yaml:"openai"`
	Anthropic providers.AnthropicConfig `yaml:"anthropic"`

	Extraction ExtractionConfig `yaml:"extraction"`
}

// ExtractionConfig bounds the structured-extraction adapter.
type ExtractionConfig struct {
	// Timeout bounds each individual model call.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries is the number of additional attempts after a failure.
	MaxRetries int `yaml:"max_retries"`
}

// Default returns the configuration used when no file is provided: the
// Groq deployment with API keys drawn from the environment.
func Default() *Config {
	return &Config{
		Provider:  string(providers.ProviderTypeOpenAI),
		OpenAI:    providers.DefaultOpenAIConfig(),
		Anthropic: providers.DefaultAnthropicConfig(),
		Extraction: ExtractionConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 2,
		},
	}
}

// Load reads a YAML config file over the defaults and applies environment
// overrides. A missing path yields the default config with env applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv fills API keys from the environment when the file left them
// empty. GROQ_API_KEY is honored for the OpenAI-compatible adapter since
// the default deployment targets Groq.
func (c *Config) applyEnv() {
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = firstEnv("HOSTELBUDDY_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY")
	}
	if c.Anthropic.APIKey == "" {
		c.Anthropic.APIKey = firstEnv("ANTHROPIC_API_KEY")
	}
	if v := os.Getenv("HOSTELBUDDY_PROVIDER"); v != "" {
		c.Provider = v
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the selected provider is usable.
func (c *Config) Validate() error {
	switch providers.ProviderType(c.Provider) {
	case providers.ProviderTypeOpenAI:
		return c.OpenAI.Validate()
	case providers.ProviderTypeAnthropic:
		return c.Anthropic.Validate()
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
}
