// Package complaint implements the maintenance-complaint specialist. It
// extracts a structured complaint analysis from the query, maps severity to
// urgency, and routes the student to the right complaint form.
package complaint

import (
	"strings"

	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// IssueType categorizes a maintenance complaint.
type IssueType string

const (
	IssueElectrical IssueType = "electrical"
	IssuePlumbing   IssueType = "plumbing"
	IssueFurniture  IssueType = "furniture"
	IssueRoom       IssueType = "room"
	IssueInternet   IssueType = "internet"
	IssueGeneral    IssueType = "general"
)

// Severity grades a complaint from cosmetic to hazardous.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Analysis is the structured result of the complaint extraction schema.
type Analysis struct {
	IssueType             IssueType
	Severity              Severity
	ImmediateActionNeeded bool
	TemporarySolution     string
	EstimatedResolution   string
}

// Schema describes the complaint extraction shape.
var Schema = extraction.Schema{
	Name:        "complaint_analysis",
	Description: "Analysis of a maintenance complaint",
	Fields: []extraction.Field{
		{
			Name:        "issue_type",
			Description: "Type of issue",
			Enum:        []string{"electrical", "plumbing", "furniture", "room", "internet", "general"},
			Required:    true,
		},
		{
			Name:        "severity",
			Description: "Severity of the issue",
			Enum:        []string{"minor", "moderate", "major", "critical"},
			Required:    true,
		},
		{
			Name:        "immediate_action_needed",
			Description: "Immediate action required? Yes or No",
			Enum:        []string{"Yes", "No"},
		},
		{
			Name:        "temporary_solution",
			Description: "Any temporary solution or safety advice to give",
		},
		{
			Name:        "estimated_resolution",
			Description: "Estimated time to fix",
			Enum:        []string{"hours", "1-2 days", "3-5 days", "1+ weeks"},
		},
	},
}

// AnalysisFromResult maps an extraction result onto an Analysis. Enumerated
// values pass through as-is; downstream lookups and the urgency mapping
// absorb anything outside the declared sets.
func AnalysisFromResult(res extraction.Result) Analysis {
	resolution := res.Get("estimated_resolution")
	if resolution == "" {
		resolution = "1-2 days"
	}

	return Analysis{
		IssueType:             IssueType(strings.ToLower(res.Get("issue_type"))),
		Severity:              Severity(strings.ToLower(res.Get("severity"))),
		ImmediateActionNeeded: res.Flag("immediate_action_needed"),
		TemporarySolution:     res.Get("temporary_solution"),
		EstimatedResolution:   resolution,
	}
}
