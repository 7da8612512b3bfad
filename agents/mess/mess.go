package mess

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/hostel"
	"github.com/adalundhe/hostelbuddy/core/vision"
)

// Agent is the mess and dining specialist.
type Agent struct {
	extractor extraction.Extractor
	vision    *vision.Analyzer
	logger    *slog.Logger
}

// Option configures the Agent.
type Option func(*Agent)

// WithVision attaches an image analyzer for food quality photos.
func WithVision(analyzer *vision.Analyzer) Option {
	return func(a *Agent) { a.vision = analyzer }
}

// WithLogger sets the agent's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) { a.logger = logger }
}

// New creates the mess specialist.
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
	return "Mess Manager"
}

// Process analyzes the mess query and routes it to the matching sub-handler.
func (a *Agent) Process(ctx context.Context, query agents.Query, qctx agents.Context) (*agents.Response, error) {
	userPrompt := fmt.Sprintf("Mess query: %s", query.Text)
	if query.HasImage() && a.vision != nil {
		description := a.vision.Describe(ctx, query.ImageData, VisionPrompt)
		userPrompt += fmt.Sprintf("\nImage shows: %s", description)
	}

	result, err := a.extractor.Extract(ctx, SystemPrompt, userPrompt, Schema)
	if err != nil {
		return nil, err
	}
	analysis := AnalysisFromResult(result)

	switch analysis.QueryType {
	case QueryMenu:
		return a.handleMenuInquiry(analysis), nil
	case QueryTiming:
		return a.handleTimingQuestion(), nil
	case QueryComplaint:
		return a.handleComplaint(analysis), nil
	case QueryFeedback:
		return a.handleFeedback(), nil
	case QueryDietary:
		return a.handleDietaryRequest(), nil
	default:
		return a.handleGeneralInquiry(), nil
	}
}

func (a *Agent) handleMenuInquiry(analysis Analysis) *agents.Response {
	content := fmt.Sprintf(`**Today's Menu Information:**

%s

**Mess Timings:**
- Breakfast: 7:00 AM - 9:00 AM
- Lunch: 12:00 PM - 2:00 PM
- Dinner: 7:00 PM - 9:00 PM

**Weekly Menu:**
A full weekly menu is posted on the mess notice board. Special meals are served on festivals and weekends!`, hostel.MenuInfo(analysis.MealType))

	return agents.NewResponse(content, agents.UrgencyLow)
}

func (a *Agent) handleTimingQuestion() *agents.Response {
	content := `**Mess Timings & Schedule:**

**Regular Timings:**
- Breakfast: 7:00 AM - 9:00 AM
- Lunch: 12:00 PM - 2:00 PM
- Dinner: 7:00 PM - 9:00 PM

**Special Timings:**
- Sundays: Extended breakfast until 10:00 AM
- Holidays: Check notice board for updates
- Late dining: Available until 9:30 PM (limited menu)

**Emergency Meals:**
Contact mess manager for special circumstances or medical needs.`

	return agents.NewResponse(content, agents.UrgencyLow)
}

// handleComplaint grades urgency from the extracted concern: immediate
// attention trumps everything, health concerns come next, the rest are
// standard complaints.
func (a *Agent) handleComplaint(analysis Analysis) *agents.Response {
	urgency := agents.UrgencyMedium
	switch {
	case analysis.RequiresImmediateAttention:
		urgency = agents.UrgencyUrgent
	case analysis.ConcernLevel == ConcernHealth:
		urgency = agents.UrgencyHigh
	}

	formLink, formExplanation := hostel.MessForm("complaint")

	acknowledgement := "Your feedback is important for improving our services."
	if analysis.RequiresImmediateAttention {
		acknowledgement = "This sounds like it needs immediate attention."
	}
	firstStep := "• Your complaint will be reviewed within 24 hours"
	if analysis.ConcernLevel == ConcernHealth {
		firstStep = "• Contact mess manager immediately for health/safety issues"
	}

	content := fmt.Sprintf(`I understand your concern about the mess service. %s

**Immediate steps:**
%s
- Fill out the complaint form for official documentation
- You'll receive a response within 2-3 working days

**For urgent food safety issues, also contact:**
- Mess Manager: [Phone number]
- Hostel Office: [Phone number]

%s`, acknowledgement, firstStep, formExplanation)

	resp := agents.NewResponse(content, urgency)
	resp.FormLink = formLink
	resp.NextSteps = []string{
		"Fill out the mess complaint form",
		"Save any evidence (photos, receipts)",
		"Follow up in 3 days if no response",
		"Contact hostel office for urgent issues",
	}
	return resp
}

func (a *Agent) handleFeedback() *agents.Response {
	formLink, formExplanation := hostel.MessForm("feedback")

	content := fmt.Sprintf(`Thank you for wanting to share feedback about our mess services!

**Your feedback helps us:**
- Improve food quality and variety
- Better understand student preferences
- Plan special meals and events
- Address service improvements

**Types of feedback welcome:**
- Meal suggestions and requests
- Service quality comments
- Cleanliness observations
- Positive experiences to encourage staff

%s`, formExplanation)

	resp := agents.NewResponse(content, agents.UrgencyLow)
	resp.FormLink = formLink
	return resp
}

func (a *Agent) handleDietaryRequest() *agents.Response {
	// Dietary requests ride on the feedback form.
	formLink, formExplanation := hostel.MessForm("dietary")

	content := fmt.Sprintf(`We want to accommodate your dietary needs!

**Special diets we can help with:**
- Vegetarian/Vegan options
- Religious dietary restrictions (Halal, Jain, etc.)
- Medical dietary needs (diabetic, low-sodium, etc.)
- Food allergies and intolerances

**How it works:**
- Submit your dietary request form
- Include medical certificates if required
- Mess team will review and respond within 5 days
- Special arrangements will be documented

**Current options available:**
- Vegetarian meals at every service
- Jain food available on request
- Basic diabetic-friendly options

%s`, formExplanation)

	resp := agents.NewResponse(content, agents.UrgencyMedium)
	resp.FormLink = formLink
	resp.NextSteps = []string{
		"Fill out dietary request form with details",
		"Attach medical documentation if needed",
		"Meet with mess manager for discussion",
		"Follow up in 5-7 days for approval",
	}
	return resp
}

func (a *Agent) handleGeneralInquiry() *agents.Response {
	content := `I'm here to help with all mess-related queries!

**I can help you with:**
- Today's menu and meal timings
- Weekly menu information
- Food quality feedback and complaints
- Special dietary requirements
- Mess policies and procedures
- Contact information for mess staff

**Popular questions:**
- "What's for lunch today?"
- "Can I get food after mess hours?"
- "How do I request special diet meals?"
- "Who do I contact for food complaints?"

What specific information do you need about the mess?`

	return agents.NewResponse(content, agents.UrgencyLow)
}
