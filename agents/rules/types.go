package rules

import (
	"strings"

	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// PolicyCategory names the policy area a query falls under.
type PolicyCategory string

const (
	// CategoryVisitor covers guest registration and visiting hours.
	CategoryVisitor PolicyCategory = "visitor"
	// CategoryCurfew covers entry/exit times and late entry procedures.
	CategoryCurfew PolicyCategory = "curfew"
	// CategoryFees covers payment schedules, penalties, and refunds.
	CategoryFees PolicyCategory = "fees"
	// CategoryRoom covers allocation, transfers, and sharing policies.
	CategoryRoom PolicyCategory = "room"
	// CategoryDiscipline covers violations, warnings, and appeals.
	CategoryDiscipline PolicyCategory = "discipline"
	// CategoryEmergency covers safety protocols and emergency contacts.
	CategoryEmergency PolicyCategory = "emergency"
	// CategoryMaintenance covers repair request procedures.
	CategoryMaintenance PolicyCategory = "maintenance"
	// CategoryGeneral covers other hostel policies.
	CategoryGeneral PolicyCategory = "general"
)

// QueryIntent describes what the student wants from the policy query.
type QueryIntent string

const (
	// IntentInformation asks what a policy says.
	IntentInformation QueryIntent = "information_request"
	// IntentClarification asks how a policy applies to a situation.
	IntentClarification QueryIntent = "clarification_needed"
	// IntentProcedure asks how to carry out a process.
	IntentProcedure QueryIntent = "procedure_help"
	// IntentViolation raises a rule violation concern.
	IntentViolation QueryIntent = "violation_concern"
)

// Analysis is the structured reading of a rules/policy query.
type Analysis struct {
	PolicyCategory    PolicyCategory
	QueryIntent       QueryIntent
	UrgencyLevel      string
	SpecificSituation string
}

// Schema describes the fields the model must extract from a policy query.
var Schema = extraction.Schema{
	Name:        "rules_query_analysis",
	Description: "Analysis of hostel rules and policy query",
	Fields: []extraction.Field{
		{
			Name:        "policy_category",
			Description: "Category: visitor, curfew, fees, room, discipline, emergency, maintenance, or general",
			Enum:        []string{"visitor", "curfew", "fees", "room", "discipline", "emergency", "maintenance", "general"},
			Required:    true,
		},
		{
			Name:        "query_intent",
			Description: "Intent: information_request, clarification_needed, procedure_help, or violation_concern",
			Enum:        []string{"information_request", "clarification_needed", "procedure_help", "violation_concern"},
			Required:    true,
		},
		{
			Name:        "urgency_level",
			Description: "Urgency: low, medium, high (high for violations or emergencies)",
			Enum:        []string{"low", "medium", "high"},
		},
		{
			Name:        "specific_situation",
			Description: "Brief description of the specific situation or context",
		},
	},
}

// AnalysisFromResult maps an extraction result onto an Analysis.
func AnalysisFromResult(res extraction.Result) Analysis {
	return Analysis{
		PolicyCategory:    PolicyCategory(strings.ToLower(res.Get("policy_category"))),
		QueryIntent:       QueryIntent(strings.ToLower(res.Get("query_intent"))),
		UrgencyLevel:      strings.ToLower(res.Get("urgency_level")),
		SpecificSituation: res.Get("specific_situation"),
	}
}
