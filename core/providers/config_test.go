package providers

import (
	"testing"
	"time"
)

func TestBaseConfigValidate(t *testing.T) {
	valid := func() BaseConfig {
		cfg := DefaultBaseConfig()
		cfg.APIKey = "test-key"
		cfg.Model = "llama-3.1-70b-versatile"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*BaseConfig)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *BaseConfig) {}, wantErr: false},
		{name: "missing api key", mutate: func(c *BaseConfig) { c.APIKey = "" }, wantErr: true},
		{name: "zero max tokens", mutate: func(c *BaseConfig) { c.MaxTokens = 0 }, wantErr: true},
		{name: "negative temperature", mutate: func(c *BaseConfig) { c.Temperature = -0.1 }, wantErr: true},
		{name: "temperature above 2", mutate: func(c *BaseConfig) { c.Temperature = 2.5 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *BaseConfig) { c.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultOpenAIConfig(t *testing.T) {
	cfg := DefaultOpenAIConfig()

	if cfg.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("BaseURL = %q, want Groq endpoint", cfg.BaseURL)
	}
	if cfg.Model == "" {
		t.Error("default model is empty")
	}
	if cfg.VisionModel == "" {
		t.Error("default vision model is empty")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestNewOpenAIProviderRejectsMissingKey(t *testing.T) {
	cfg := DefaultOpenAIConfig()

	if _, err := NewOpenAIProvider(cfg); err == nil {
		t.Error("NewOpenAIProvider accepted a config without an API key")
	}
}

func TestNewAnthropicProviderRejectsMissingKey(t *testing.T) {
	cfg := DefaultAnthropicConfig()

	if _, err := NewAnthropicProvider(cfg); err == nil {
		t.Error("NewAnthropicProvider accepted a config without an API key")
	}
}
