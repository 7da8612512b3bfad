// Package vision implements the image-description capability. It never hard
// fails: any problem collapses into an inline note so extraction can proceed
// without the image evidence.
package vision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adalundhe/hostelbuddy/core/providers"
)

// Analyzer produces free-text descriptions of image evidence attached to a
// query.
type Analyzer struct {
	provider providers.Provider
	model    string
	logger   *slog.Logger
	timeout  time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides the model used for description requests. Deployments
// on Groq point this at the Llama vision model.
func WithModel(model string) Option {
	return func(a *Analyzer) { a.model = model }
}

// WithLogger sets the logger used when description fails.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// WithTimeout bounds each description call.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Analyzer) { a.timeout = timeout }
}

// NewAnalyzer creates an Analyzer over the given provider.
func NewAnalyzer(provider providers.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		logger:   slog.Default(),
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Describe returns a free-text description of the base64-encoded image.
// Failures degrade to an inline error note; the caller appends whatever
// comes back and moves on.
func (a *Analyzer) Describe(ctx context.Context, imageBase64, prompt string) string {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	lowTemp := 0.2
	resp, err := a.provider.Complete(ctx, &providers.Request{
		Model:       a.model,
		Temperature: &lowTemp,
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: prompt, ImageData: imageBase64},
		},
	})
	if err != nil {
		a.logger.Warn("image description failed", "error", err)
		return fmt.Sprintf("Error analyzing image: %v", err)
	}
	if resp.Content == "" {
		a.logger.Warn("image description empty")
		return "Error analyzing image: no description available"
	}

	return resp.Content
}
