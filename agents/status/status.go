package status

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/hostel"
)

// Agent is the facility status specialist. Status queries are text-only,
// so it carries no image analyzer.
type Agent struct {
	extractor extraction.Extractor
	logger    *slog.Logger
}

// Option configures the Agent.
type Option func(*Agent)

// WithLogger sets the agent's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) { a.logger = logger }
}

// New creates the status specialist.
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
	return "Status Monitor"
}

// Process analyzes the status query and answers per the detected scope.
func (a *Agent) Process(ctx context.Context, query agents.Query, qctx agents.Context) (*agents.Response, error) {
	result, err := a.extractor.Extract(ctx, SystemPrompt, fmt.Sprintf("Status query: %s", query.Text), Schema)
	if err != nil {
		return nil, err
	}
	analysis := AnalysisFromResult(result)

	current := hostel.CurrentStatus(analysis.FacilityType)

	var resp *agents.Response
	switch analysis.QueryScope {
	case ScopeCurrentStatus:
		resp = a.currentStatus(analysis, current)
	case ScopeMaintenance:
		resp = a.maintenanceSchedule(analysis)
	case ScopeOutageReport:
		resp = a.outageReport(analysis, current)
	default:
		resp = a.generalInfo(analysis)
	}

	// An emergency indicator never yields a routine-priority reply,
	// whatever the sub-handler decided.
	if analysis.UrgencyIndicator == IndicatorEmergency {
		resp.Urgency = agents.MaxUrgency(resp.Urgency, agents.UrgencyHigh)
	}

	return resp, nil
}

func (a *Agent) currentStatus(analysis Analysis, current hostel.Status) *agents.Response {
	facility := titleWord(analysis.FacilityType)
	location := analysis.LocationSpecific
	if strings.EqualFold(location, "general") {
		location = "all areas"
	}

	switch current.State {
	case hostel.StateOperational:
		content := fmt.Sprintf(`✅ **%s Status - %s:**

**Current Status:** All systems operational

**Last Updated:** %s

**Performance:**
- %s: Working normally
- No reported issues in %s
- All services available

**Next Scheduled Check:** %s`,
			facility, titleWord(location), current.LastUpdated, facility, location, current.NextCheck)

		return agents.NewResponse(content, agents.UrgencyLow)

	case hostel.StateMaintenance:
		content := fmt.Sprintf(`🔧 **%s Status - %s:**

**Current Status:** Scheduled maintenance in progress

**Affected Areas:** %s
**Expected Duration:** 2-4 hours
**Expected Completion:** This evening

**Alternative Arrangements:**
Check with hostel office for temporary solutions

**Updates:** Check back in 2 hours for progress updates`,
			facility, titleWord(location), current.AffectedAreas)

		return agents.NewResponse(content, agents.UrgencyMedium)

	default:
		content := fmt.Sprintf(`⚠️ **%s Status - %s:**

**Current Status:** %s reported

**Affected Areas:** %s
**Issue Started:** Recently
**Estimated Resolution:** Working on it

**What we're doing:**
Technical team has been notified and is working on the issue

**Emergency Contact:** %s`,
			facility, titleWord(location), titleWord(string(current.State)), current.AffectedAreas, current.EmergencyContact)

		urgency := agents.UrgencyMedium
		if analysis.UrgencyIndicator == IndicatorEmergency {
			urgency = agents.UrgencyHigh
		}
		return agents.NewResponse(content, urgency)
	}
}

func (a *Agent) maintenanceSchedule(analysis Analysis) *agents.Response {
	schedule := hostel.MaintenanceFor(analysis.FacilityType)

	content := fmt.Sprintf(`📅 **Scheduled Maintenance - %s:**

**This Week's Schedule:**
%s

**Next Week:**
%s

**Regular Maintenance:**
%s

**How you'll be notified:**
- Notices posted 48 hours in advance
- WhatsApp group announcements
- Email notifications (if registered)

**During maintenance:**
- Temporary disruptions expected
- Alternative arrangements provided
- Emergency services remain available`,
		titleWord(analysis.FacilityType), schedule.ThisWeek, schedule.NextWeek, schedule.Regular)

	return agents.NewResponse(content, agents.UrgencyLow)
}

// outageReport is always at least high urgency: the student is telling us
// something is broken right now.
func (a *Agent) outageReport(analysis Analysis, current hostel.Status) *agents.Response {
	content := fmt.Sprintf(`📝 **Reporting %s Issue:**

**Current Known Status:**
%s

**To report a new issue:**
1. Note the exact location and time
2. Describe the problem clearly
3. Check if neighbors have the same issue
4. Contact hostel office immediately

**Emergency Contacts:**
- Hostel Office: [phone number]
- Security (24/7): [phone number]
- Maintenance: [phone number]

**For %s specifically:**
%s

**After reporting:**
- You'll receive a reference number
- Updates provided every 2-4 hours
- Estimated resolution time given`,
		titleWord(analysis.FacilityType), string(current.State), analysis.FacilityType, hostel.ReportingGuide(analysis.FacilityType))

	urgency := agents.UrgencyHigh
	if analysis.UrgencyIndicator == IndicatorEmergency {
		urgency = agents.UrgencyUrgent
	}

	resp := agents.NewResponse(content, urgency)
	resp.NextSteps = []string{
		"Contact hostel office with details",
		"Get a complaint reference number",
		"Check for updates every few hours",
		"Use emergency contact if urgent",
	}
	return resp
}

func (a *Agent) generalInfo(analysis Analysis) *agents.Response {
	facility := analysis.FacilityType

	content := fmt.Sprintf(`ℹ️ **%s Service Information:**

**Service Hours:**
%s

**Normal Operations:**
%s

**Common Issues & Solutions:**
%s

**Who to Contact:**
%s

**Service Standards:**
%s

Need specific current status? Ask me "What's the current %s status?"`,
		titleWord(facility),
		hostel.ServiceHours(facility),
		hostel.NormalOperations(facility),
		hostel.TroubleshootingTips(facility),
		hostel.ContactInfo(facility),
		hostel.ServiceStandards(facility),
		facility)

	return agents.NewResponse(content, agents.UrgencyLow)
}

func titleWord(s string) string {
	if s == "" {
		return "General"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
