package lostfound

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

// Agent is the lost-and-found specialist.
type Agent struct {
	extractor extraction.Extractor
	vision    *vision.Analyzer
	logger    *slog.Logger
}

// Option configures the Agent.
type Option func(*Agent)

// WithVision attaches an image analyzer for item photos.
func WithVision(analyzer *vision.Analyzer) Option {
	return func(a *Agent) { a.vision = analyzer }
}

// WithLogger sets the agent's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) { a.logger = logger }
}

// New creates the lost-and-found specialist.
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
	return "Lost & Found Specialist"
}

// Process analyzes the query and routes to the lost, found, or general
// inquiry handler.
func (a *Agent) Process(ctx context.Context, query agents.Query, qctx agents.Context) (*agents.Response, error) {
	userPrompt := fmt.Sprintf("Query: %s", query.Text)
	if query.HasImage() && a.vision != nil {
		description := a.vision.Describe(ctx, query.ImageData, VisionPrompt)
		userPrompt += fmt.Sprintf("\nImage shows: %s", description)
	}

	result, err := a.extractor.Extract(ctx, SystemPrompt, userPrompt, Schema)
	if err != nil {
		return nil, err
	}
	analysis := AnalysisFromResult(result)

	switch {
	case analysis.IsLostItem:
		return a.handleLost(analysis), nil
	case analysis.IsFoundItem:
		return a.handleFound(analysis), nil
	default:
		return a.handleGeneral(), nil
	}
}

func (a *Agent) handleLost(analysis Analysis) *agents.Response {
	formLink, formExplanation := hostel.LostFoundForm(true, string(analysis.ItemCategory))

	areas := analysis.SuggestedSearchAreas
	if len(areas) > 4 {
		areas = areas[:4]
	}
	var bullets strings.Builder
	for _, area := range areas {
		bullets.WriteString(fmt.Sprintf("• %s\n", area))
	}

	category := categoryOrItem(analysis.ItemCategory)
	content := fmt.Sprintf(`I understand you've lost your %s. Don't worry, let's help you find it!

**First, try checking these areas:**
%s
**Tips for finding your item:**
- Ask friends if they've seen it
- Check with mess staff if lost during meals
- Look in the last place you remember using it
- Check lost & found box at reception

%s`, category, bullets.String(), formExplanation)

	resp := agents.NewResponse(content, agents.ParseUrgency(analysis.UrgencyLevel))
	resp.FormLink = formLink
	resp.NextSteps = []string{
		"Search the suggested areas thoroughly",
		"Ask friends and roommates",
		"Fill out the lost item report form",
		"Check back in 2-3 days for updates",
	}
	return resp
}

func (a *Agent) handleFound(analysis Analysis) *agents.Response {
	formLink, formExplanation := hostel.LostFoundForm(false, string(analysis.ItemCategory))

	category := categoryOrItem(analysis.ItemCategory)
	content := fmt.Sprintf(`Thank you for being helpful to fellow students! You found a %s.

**What to do next:**
- Keep the item in a safe place
- Don't try to unlock or access personal items
- Report it using the form below
- We'll match it with lost item reports

**Current safe storage options:**
- Your room (for small items)
- Hand over to reception desk
- Keep with you until owner is found

%s`, category, formExplanation)

	resp := agents.NewResponse(content, agents.UrgencyMedium)
	resp.FormLink = formLink
	resp.NextSteps = []string{
		"Secure the item safely",
		"Fill out the found item report form",
		"We'll contact you when we find the owner",
		"Thank you for your honesty!",
	}
	return resp
}

func (a *Agent) handleGeneral() *agents.Response {
	content := `I can help you with lost and found items!

**If you LOST something:**
- Tell me what you lost and where you last saw it
- I'll suggest places to search
- Help you report it officially

**If you FOUND something:**
- Describe what you found
- I'll guide you on how to return it
- Help you report it to match with owners

What specific item do you need help with?`

	return agents.NewResponse(content, agents.UrgencyLow)
}

func categoryOrItem(category ItemCategory) string {
	if category == "" {
		return "item"
	}
	return string(category)
}
