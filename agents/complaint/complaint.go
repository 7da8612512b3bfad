package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/hostel"
	"github.com/adalundhe/hostelbuddy/core/vision"
)

// Agent is the maintenance-complaint specialist.
type Agent struct {
	extractor extraction.Extractor
	vision    *vision.Analyzer
	logger    *slog.Logger
}

// Option configures the Agent.
type Option func(*Agent)

// WithVision attaches an image analyzer for photo evidence.
func WithVision(analyzer *vision.Analyzer) Option {
	return func(a *Agent) { a.vision = analyzer }
}

// WithLogger sets the agent's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) { a.logger = logger }
}

// New creates the complaint specialist.
func New(extractor extraction.Extractor, opts ...Option) *Agent {
	a := &Agent{
		extractor: extractor,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return "Complaint Handler"
}

// Process analyzes a complaint and assembles the report response.
func (a *Agent) Process(ctx context.Context, query agents.Query, qctx agents.Context) (*agents.Response, error) {
	userPrompt := fmt.Sprintf("Complaint: %s", query.Text)
	if query.HasImage() && a.vision != nil {
		description := a.vision.Describe(ctx, query.ImageData, VisionPrompt)
		userPrompt += fmt.Sprintf("\nImage analysis: %s", description)
	}

	result, err := a.extractor.Extract(ctx, SystemPrompt, userPrompt, Schema)
	if err != nil {
		return nil, err
	}
	analysis := AnalysisFromResult(result)

	formLink := hostel.ComplaintForm(string(analysis.IssueType))

	resp := agents.NewResponse(a.composeContent(analysis), urgencyFor(analysis.Severity))
	resp.FormLink = formLink
	resp.NextSteps = []string{
		fmt.Sprintf("Fill out the complaint form: %s", formLink),
		"You'll receive a complaint ID for tracking",
		fmt.Sprintf("Expected resolution: %s", analysis.EstimatedResolution),
		"Contact hostel office if urgent",
	}

	return resp, nil
}

// urgencyFor maps complaint severity onto response urgency: critical issues
// are urgent, major issues high, everything else medium.
func urgencyFor(severity Severity) agents.Urgency {
	switch severity {
	case SeverityCritical:
		return agents.UrgencyUrgent
	case SeverityMajor:
		return agents.UrgencyHigh
	default:
		return agents.UrgencyMedium
	}
}

func (a *Agent) composeContent(analysis Analysis) string {
	issue := string(analysis.IssueType)
	if issue == "" {
		issue = string(IssueGeneral)
	}
	severity := string(analysis.Severity)
	if severity == "" {
		severity = string(SeverityModerate)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("I understand you're having a %s issue.", issue))
	if analysis.TemporarySolution != "" {
		b.WriteString(" ")
		b.WriteString(analysis.TemporarySolution)
	}
	b.WriteString(fmt.Sprintf("\n\nThis appears to be a %s issue that typically takes %s to resolve.",
		severity, analysis.EstimatedResolution))

	if analysis.ImmediateActionNeeded {
		b.WriteString("\n\n⚠️ Please take immediate safety precautions and contact the hostel office directly!")
	}

	b.WriteString("\n\nTo formally report this issue, please fill out the appropriate complaint form below.")

	return b.String()
}
