package mess

import (
	"strings"

	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// QueryType classifies what a mess query is asking for.
type QueryType string

const (
	// QueryMenu asks about daily menus, weekly schedules, or ingredients.
	QueryMenu QueryType = "menu_inquiry"
	// QueryTiming asks about meal times and service hours.
	QueryTiming QueryType = "timing_question"
	// QueryFeedback shares opinions, suggestions, or compliments.
	QueryFeedback QueryType = "feedback"
	// QueryComplaint reports food quality, hygiene, or service issues.
	QueryComplaint QueryType = "complaint"
	// QueryDietary requests special diets or allergy accommodations.
	QueryDietary QueryType = "dietary_request"
	// QueryGeneral covers other mess-related questions.
	QueryGeneral QueryType = "general"
)

// ConcernLevel grades how serious a mess concern is.
type ConcernLevel string

const (
	// ConcernInfo is a plain information request.
	ConcernInfo ConcernLevel = "info_request"
	// ConcernMinor is an individual preference or small problem.
	ConcernMinor ConcernLevel = "minor_issue"
	// ConcernMajor is a serious quality or service problem.
	ConcernMajor ConcernLevel = "major_complaint"
	// ConcernHealth is food poisoning, contamination, or a severe
	// hygiene violation.
	ConcernHealth ConcernLevel = "health_concern"
)

// Analysis is the structured reading of a mess query.
type Analysis struct {
	QueryType                  QueryType
	MealType                   string
	ConcernLevel               ConcernLevel
	RequiresImmediateAttention bool
}

// Schema describes the fields the model must extract from a mess query.
var Schema = extraction.Schema{
	Name:        "mess_query_analysis",
	Description: "Analysis of mess-related query",
	Fields: []extraction.Field{
		{
			Name:        "query_type",
			Description: "Type: menu_inquiry, timing_question, feedback, complaint, dietary_request, or general",
			Enum:        []string{"menu_inquiry", "timing_question", "feedback", "complaint", "dietary_request", "general"},
			Required:    true,
		},
		{
			Name:        "meal_type",
			Description: "Meal: breakfast, lunch, dinner, snacks, or all",
			Enum:        []string{"breakfast", "lunch", "dinner", "snacks", "all"},
		},
		{
			Name:        "concern_level",
			Description: "Concern level: info_request, minor_issue, major_complaint, health_concern",
			Enum:        []string{"info_request", "minor_issue", "major_complaint", "health_concern"},
			Required:    true,
		},
		{
			Name:        "requires_immediate_attention",
			Description: "Needs immediate attention? Yes or No",
			Required:    true,
		},
	},
}

// AnalysisFromResult maps an extraction result onto an Analysis.
func AnalysisFromResult(res extraction.Result) Analysis {
	return Analysis{
		QueryType:                  QueryType(strings.ToLower(res.Get("query_type"))),
		MealType:                   strings.ToLower(res.Get("meal_type")),
		ConcernLevel:               ConcernLevel(strings.ToLower(res.Get("concern_level"))),
		RequiresImmediateAttention: res.Flag("requires_immediate_attention"),
	}
}
