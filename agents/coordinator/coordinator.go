package coordinator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// Coordinator classifies a student query and dispatches it to the matching
// specialist. It holds one registered specialist per routable domain;
// GENERAL queries are answered directly with a greeting.
type Coordinator struct {
	extractor   extraction.Extractor
	specialists map[Domain]agents.Agent
	logger      *slog.Logger
}

// Option configures the Coordinator.
type Option func(*Coordinator)

// WithLogger sets the coordinator's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) { c.logger = logger }
}

// New creates a Coordinator with no specialists registered.
func New(extractor extraction.Extractor, opts ...Option) *Coordinator {
	c := &Coordinator{
		extractor:   extractor,
		specialists: make(map[Domain]agents.Agent),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register binds a specialist to a domain, replacing any previous binding.
func (c *Coordinator) Register(domain Domain, agent agents.Agent) {
	c.specialists[domain] = agent
}

// Name returns the coordinator's display name.
func (c *Coordinator) Name() string {
	return "Coordinator"
}

// Process classifies the query, enriches the context with the routing
// decision, and hands off to the specialist for the classified domain. A
// safety concern raises both the context urgency and the final response
// urgency to at least high. GENERAL queries and domains with no registered
// specialist get the greeting.
func (c *Coordinator) Process(ctx context.Context, query agents.Query, qctx agents.Context) (*agents.Response, error) {
	classification, err := c.Classify(ctx, query.Text)
	if err != nil {
		return nil, err
	}

	c.logger.Info("query classified",
		"domain", string(classification.Domain),
		"urgency", string(classification.Urgency),
		"safety_concern", classification.SafetyConcern,
	)

	if classification.Domain == DomainGeneral {
		return agents.NewResponse(GreetingContent, agents.UrgencyLow), nil
	}

	specialist, ok := c.specialists[classification.Domain]
	if !ok {
		c.logger.Warn("no specialist registered", "domain", string(classification.Domain))
		return agents.NewResponse(GreetingContent, agents.UrgencyLow), nil
	}

	urgency := classification.Urgency
	if classification.SafetyConcern {
		urgency = agents.MaxUrgency(urgency, agents.UrgencyHigh)
	}

	resp, err := specialist.Process(ctx, query, agents.Context{
		Urgency:       urgency,
		SafetyConcern: classification.SafetyConcern,
		Summary:       classification.Summary,
	})
	if err != nil {
		return nil, err
	}

	if classification.SafetyConcern {
		resp.Urgency = agents.MaxUrgency(resp.Urgency, agents.UrgencyHigh)
	}

	return resp, nil
}

// Classify runs the routing extraction on the raw query text.
func (c *Coordinator) Classify(ctx context.Context, text string) (Classification, error) {
	result, err := c.extractor.Extract(ctx, SystemPrompt, fmt.Sprintf("Student query: %s", text), Schema)
	if err != nil {
		return Classification{}, err
	}
	return ClassificationFromResult(result), nil
}
