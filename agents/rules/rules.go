package rules

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/hostel"
)

// Agent is the rules and policy specialist. Policy queries are text-only,
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

// New creates the policy specialist.
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
	return "Policy Advisor"
}

// Process analyzes the policy query and answers per the detected intent.
func (a *Agent) Process(ctx context.Context, query agents.Query, qctx agents.Context) (*agents.Response, error) {
	result, err := a.extractor.Extract(ctx, SystemPrompt, fmt.Sprintf("Policy query: %s", query.Text), Schema)
	if err != nil {
		return nil, err
	}
	analysis := AnalysisFromResult(result)

	policyInfo := hostel.PolicyInfo(string(analysis.PolicyCategory))

	switch analysis.QueryIntent {
	case IntentProcedure:
		return a.procedureGuidance(analysis), nil
	case IntentViolation:
		return a.violationConcern(analysis, policyInfo), nil
	case IntentClarification:
		return a.clarification(analysis, policyInfo), nil
	default:
		return a.information(analysis, policyInfo), nil
	}
}

func (a *Agent) information(analysis Analysis, policyInfo string) *agents.Response {
	content := fmt.Sprintf(`**%s Policy Information:**

%s

**Key Points:**
- These rules are for everyone's safety and comfort
- Violations may result in warnings or penalties
- Contact hostel office for clarifications
- Emergency exceptions may apply

**Need more specific information?** Feel free to ask about particular situations or procedures.`,
		titleCategory(analysis.PolicyCategory), policyInfo)

	return agents.NewResponse(content, agents.ParseUrgency(analysis.UrgencyLevel))
}

func (a *Agent) procedureGuidance(analysis Analysis) *agents.Response {
	category := string(analysis.PolicyCategory)
	content := fmt.Sprintf(`**Step-by-Step Procedure for %s:**

%s

**Required Documents/Information:**
%s

**Timeline:** %s

**Contact Information:**
- For questions: Hostel Office - [Phone]
- For approvals: Warden - [Phone]
- Emergency: Security - [Phone]`,
		titleCategory(analysis.PolicyCategory),
		hostel.ProcedureSteps(category),
		hostel.RequiredDocuments(category),
		hostel.ProcessingTime(category))

	resp := agents.NewResponse(content, agents.ParseUrgency(analysis.UrgencyLevel))
	resp.NextSteps = []string{
		"Gather required documents",
		"Follow the procedure steps above",
		"Contact hostel office if stuck",
		"Keep records of your submissions",
	}
	return resp
}

// violationConcern never responds below medium urgency: violations warrant
// follow-up even when the query itself reads calm.
func (a *Agent) violationConcern(analysis Analysis, policyInfo string) *agents.Response {
	content := fmt.Sprintf(`**Rule Violation Concerns - %s:**

**Relevant Policy:**
%s

**If you witnessed a violation:**
- Document the incident (time, place, people involved)
- Report to hostel authorities immediately
- Use anonymous reporting if concerned about safety

**If you're accused of a violation:**
- Review the policy above
- Gather evidence to support your case
- You have the right to appeal any decision
- Contact warden for formal hearing

**Disciplinary Process:**
1. Investigation by hostel authorities
2. Hearing (if required)
3. Decision and penalty (if applicable)
4. Appeal process (if desired)

**Emergency Situations:**
Contact security immediately for safety concerns.`,
		titleCategory(analysis.PolicyCategory), policyInfo)

	urgency := agents.UrgencyMedium
	if agents.ParseUrgency(analysis.UrgencyLevel) == agents.UrgencyHigh {
		urgency = agents.UrgencyHigh
	}

	resp := agents.NewResponse(content, urgency)
	resp.NextSteps = []string{
		"Document all relevant details",
		"Contact appropriate authorities",
		"Follow proper reporting procedures",
		"Keep records of all communications",
	}
	return resp
}

func (a *Agent) clarification(analysis Analysis, policyInfo string) *agents.Response {
	category := string(analysis.PolicyCategory)
	content := fmt.Sprintf(`**Policy Clarification - %s:**

%s

**Common Confusion Points:**
%s

**Exceptions and Special Cases:**
%s

**Still unclear?** Contact the hostel office for personalized guidance. They can explain how the policy applies to your specific situation.

**Remember:** Policies exist for everyone's safety and comfort. When in doubt, always ask rather than assume!`,
		titleCategory(analysis.PolicyCategory),
		policyInfo,
		hostel.CommonQuestions(category),
		hostel.PolicyExceptions(category))

	return agents.NewResponse(content, agents.ParseUrgency(analysis.UrgencyLevel))
}

func titleCategory(category PolicyCategory) string {
	s := string(category)
	if s == "" {
		return "General"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
