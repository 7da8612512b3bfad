// Package pipeline glues validation, classification, dispatch, and
// rendering into the single entry point the command layer calls.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/format"
	"github.com/adalundhe/hostelbuddy/core/validate"
)

// Metadata summarizes how a request was handled, for logging and callers
// that want more than the rendered text.
type Metadata struct {
	RequestID     string
	Urgency       agents.Urgency
	Confidence    float64
	HadFormLink   bool
	NextStepCount int
}

// Pipeline runs a student query end to end and renders the reply.
type Pipeline struct {
	router agents.Agent
	logger *slog.Logger
}

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New creates a Pipeline around a router agent, normally the coordinator.
func New(router agents.Agent, opts ...Option) *Pipeline {
	p := &Pipeline{
		router: router,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle validates the raw query, routes it through the agents, and
// returns the rendered reply. Extraction failures degrade to the failure
// card rather than an error: the student always gets a readable reply.
// The returned error is reserved for input validation problems.
func (p *Pipeline) Handle(ctx context.Context, text, imageBase64 string) (string, Metadata, error) {
	requestID := uuid.NewString()
	meta := Metadata{RequestID: requestID}

	sanitized, err := validate.Query(text)
	if err != nil {
		return "", meta, err
	}
	if imageBase64 != "" {
		if err := validate.Image(imageBase64); err != nil {
			return "", meta, err
		}
	}

	logger := p.logger.With("request_id", requestID)
	logger.Info("handling query",
		"length", len(sanitized),
		"has_image", imageBase64 != "",
		"urgency_hint", string(validate.UrgencyHint(sanitized)),
	)

	resp, err := p.router.Process(ctx, agents.Query{Text: sanitized, ImageData: imageBase64}, agents.Context{})
	if err != nil {
		if extraction.IsExtractionError(err) {
			logger.Error("extraction failed", "error", err)
			meta.Urgency = agents.UrgencyLow
			return format.Failure("I couldn't process your query right now."), meta, nil
		}
		return "", meta, err
	}

	meta.Urgency = resp.Urgency
	meta.Confidence = resp.Confidence
	meta.HadFormLink = resp.FormLink != ""
	meta.NextStepCount = len(resp.NextSteps)

	logger.Info("query handled",
		"urgency", string(resp.Urgency),
		"form_link", meta.HadFormLink,
		"next_steps", meta.NextStepCount,
	)

	return format.Render(resp), meta, nil
}
