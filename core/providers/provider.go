// Package providers implements the LLM provider adapters used by the
// extraction and vision capabilities. Providers are interchangeable behind
// the Provider interface; a Registry selects the active one by config.
package providers

import (
	"context"
)

// ProviderType identifies a provider implementation.
type ProviderType string

const (
	// ProviderTypeOpenAI is the OpenAI-compatible chat-completions
	// adapter. With a Groq base URL it drives Groq's Llama models.
	ProviderTypeOpenAI ProviderType = "openai"

	// ProviderTypeAnthropic is the Anthropic Messages adapter.
	ProviderTypeAnthropic ProviderType = "anthropic"
)

// Provider is the minimal completion surface the pipeline needs: a single
// blocking request/response call. Streaming and tool use are deliberately
// absent; every pipeline interaction is one prompt in, one result out.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *Request) (*Response, error)
	DefaultModel() string
	ValidateConfig() error
	Close() error
}

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversational turn. A message may carry base64 image
// data alongside its text, in which case the adapter sends a multimodal
// content block.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// ImageData is an optional base64-encoded JPEG payload.
	ImageData string `json:"image_data,omitempty"`
}

// Request is a provider-agnostic completion request.
type Request struct {
	SystemPrompt string    `json:"system_prompt,omitempty"`
	Messages     []Message `json:"messages"`
	Model        string    `json:"model,omitempty"`
	MaxTokens    int       `json:"max_tokens,omitempty"`
	Temperature  *float64  `json:"temperature,omitempty"`

	// ForceJSON asks the provider to constrain output to a JSON object
	// where the backing API supports it.
	ForceJSON bool `json:"force_json,omitempty"`
}

// Response is a provider-agnostic completion result.
type Response struct {
	Content    string     `json:"content"`
	Model      string     `json:"model"`
	StopReason StopReason `json:"stop_reason"`
	Usage      Usage      `json:"usage"`
}

// StopReason explains why generation ended.
type StopReason string

const (
	StopReasonEndTurn   StopReason = "end_turn"
	StopReasonMaxTokens StopReason = "max_tokens"
	StopReasonError     StopReason = "error"
)

// Usage reports token consumption for a completion.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
