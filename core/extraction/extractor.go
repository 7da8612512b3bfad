package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adalundhe/hostelbuddy/core/providers"
)

// Extractor is the structured-extraction capability contract: one prompt,
// one schema, one populated result or an error.
type Extractor interface {
	Extract(ctx context.Context, systemPrompt, userPrompt string, schema Schema) (Result, error)
}

// BackoffConfig holds configuration for exponential retry backoff.
type BackoffConfig struct {
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultBackoffConfig returns the default backoff configuration.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		BaseBackoff: 500 * time.Millisecond,
		MaxBackoff:  8 * time.Second,
	}
}

// CalculateBackoff computes exponential backoff: min(base * 2^attempt, max).
func CalculateBackoff(cfg BackoffConfig, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	backoff := cfg.BaseBackoff << attempt
	if backoff > cfg.MaxBackoff || backoff <= 0 {
		return cfg.MaxBackoff
	}
	return backoff
}

// Client implements Extractor over a provider. It bounds every call with a
// timeout and retries transient and malformed results a limited number of
// times; pipeline semantics above this layer see exactly one attempt.
type Client struct {
	provider   providers.Provider
	logger     *slog.Logger
	timeout    time.Duration
	maxRetries int
	backoff    BackoffConfig
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for retry and failure reporting.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithTimeout bounds each individual model call.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.timeout = timeout }
}

// WithMaxRetries sets how many additional attempts follow a failed call.
func WithMaxRetries(retries int) ClientOption {
	return func(c *Client) { c.maxRetries = retries }
}

// WithBackoff overrides the retry backoff configuration.
func WithBackoff(cfg BackoffConfig) ClientOption {
	return func(c *Client) { c.backoff = cfg }
}

// NewClient creates an extraction client over the given provider.
func NewClient(provider providers.Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider:   provider,
		logger:     slog.Default(),
		timeout:    30 * time.Second,
		maxRetries: 2,
		backoff:    DefaultBackoffConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract runs one schema-constrained extraction. The schema's field
// instructions are appended to the caller's system prompt and the model is
// asked for a bare JSON object.
func (c *Client) Extract(ctx context.Context, systemPrompt, userPrompt string, schema Schema) (Result, error) {
	req := &providers.Request{
		SystemPrompt: systemPrompt + "\n\n" + schema.Instructions(),
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: userPrompt},
		},
		ForceJSON: true,
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := CalculateBackoff(c.backoff, attempt-1)
			c.logger.Warn("extraction retry",
				"schema", schema.Name,
				"attempt", attempt,
				"backoff", delay,
				"error", lastErr,
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &Error{Schema: schema.Name, Err: fmt.Errorf("%w: %v", ErrUnreachable, ctx.Err())}
			}
		}

		result, err := c.attempt(ctx, req, schema)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, &Error{Schema: schema.Name, Err: lastErr}
}

func (c *Client) attempt(ctx context.Context, req *providers.Request, schema Schema) (Result, error) {
	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.provider.Complete(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	jsonStr := ExtractJSONBlock(resp.Content)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrMalformed)
	}

	result, err := decodeResult([]byte(jsonStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := schema.Validate(result); err != nil {
		return nil, err
	}

	return result, nil
}
