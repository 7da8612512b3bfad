package status

import (
	"strings"

	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// QueryScope names what kind of status answer the student wants.
type QueryScope string

const (
	// ScopeCurrentStatus asks for the real-time state of a facility.
	ScopeCurrentStatus QueryScope = "current_status"
	// ScopeMaintenance asks about planned maintenance windows.
	ScopeMaintenance QueryScope = "scheduled_maintenance"
	// ScopeOutageReport reports a new problem.
	ScopeOutageReport QueryScope = "outage_report"
	// ScopeGeneralInfo asks about service standards and normal operations.
	ScopeGeneralInfo QueryScope = "general_info"
)

// UrgencyIndicator grades how pressing the status query is.
type UrgencyIndicator string

const (
	// IndicatorRoutine is a routine status check.
	IndicatorRoutine UrgencyIndicator = "routine_check"
	// IndicatorService means a service visit is needed.
	IndicatorService UrgencyIndicator = "service_needed"
	// IndicatorEmergency is a critical situation needing immediate action.
	IndicatorEmergency UrgencyIndicator = "emergency_situation"
)

// Analysis is the structured reading of a facility status query.
type Analysis struct {
	FacilityType     string
	QueryScope       QueryScope
	LocationSpecific string
	UrgencyIndicator UrgencyIndicator
}

// Schema describes the fields the model must extract from a status query.
var Schema = extraction.Schema{
	Name:        "status_query_analysis",
	Description: "Analysis of facility status query",
	Fields: []extraction.Field{
		{
			Name:        "facility_type",
			Description: "Type: power, water, internet, wifi, maintenance, general, or emergency",
			Enum:        []string{"power", "water", "internet", "wifi", "maintenance", "general", "emergency"},
			Required:    true,
		},
		{
			Name:        "query_scope",
			Description: "Scope: current_status, scheduled_maintenance, outage_report, or general_info",
			Enum:        []string{"current_status", "scheduled_maintenance", "outage_report", "general_info"},
			Required:    true,
		},
		{
			Name:        "location_specific",
			Description: "Specific location mentioned? building/block name or 'general'",
		},
		{
			Name:        "urgency_indicator",
			Description: "Urgency: routine_check, service_needed, or emergency_situation",
			Enum:        []string{"routine_check", "service_needed", "emergency_situation"},
		},
	},
}

// AnalysisFromResult maps an extraction result onto an Analysis.
func AnalysisFromResult(res extraction.Result) Analysis {
	location := res.Get("location_specific")
	if location == "" {
		location = "general"
	}

	return Analysis{
		FacilityType:     strings.ToLower(res.Get("facility_type")),
		QueryScope:       QueryScope(strings.ToLower(res.Get("query_scope"))),
		LocationSpecific: location,
		UrgencyIndicator: UrgencyIndicator(strings.ToLower(res.Get("urgency_indicator"))),
	}
}
