package providers

import (
	"fmt"
	"time"
)

// BaseConfig contains configuration common to all providers.
type BaseConfig struct {
	// APIKey is the authentication key for the provider.
	APIKey string `json:"api_key" yaml:"api_key"`

	// Model is the default model to use.
	Model string `json:"model" yaml:"model"`

	// MaxTokens is the default maximum tokens to generate.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the default sampling temperature.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Timeout bounds every API request. The pipeline has no other guard
	// against unbounded suspension, so this must stay positive.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultBaseConfig returns sensible defaults.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		MaxTokens:   2048,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}

// Validate checks the base configuration.
func (c *BaseConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// OpenAIConfig contains configuration for the OpenAI-compatible adapter.
type OpenAIConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint. Pointing it at
	// https://api.groq.com/openai/v1 drives Groq's models.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// VisionModel is used for image-description requests when it differs
	// from the text model.
	VisionModel string `json:"vision_model,omitempty" yaml:"vision_model,omitempty"`
}

// DefaultOpenAIConfig returns defaults for the Groq deployment.
func DefaultOpenAIConfig() OpenAIConfig {
	base := DefaultBaseConfig()
	base.Model = "llama-3.1-70b-versatile"

	return OpenAIConfig{
		BaseConfig:  base,
		BaseURL:     "https://api.groq.com/openai/v1",
		VisionModel: "llama-3.2-11b-vision-preview",
	}
}

// AnthropicConfig contains Anthropic-specific configuration.
type AnthropicConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// DefaultAnthropicConfig returns Anthropic defaults.
func DefaultAnthropicConfig() AnthropicConfig {
	base := DefaultBaseConfig()
	base.Model = "claude-haiku-4-5-20251001"

	return AnthropicConfig{BaseConfig: base}
}
