package coordinator

import (
	"strings"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
)

// Domain names the specialist a query should route to.
type Domain string

const (
	// DomainComplaint routes maintenance issues and facility problems.
	DomainComplaint Domain = "COMPLAINT"
	// DomainLostFound routes lost or found item queries.
	DomainLostFound Domain = "LOST_FOUND"
	// DomainMess routes food, menu, and dining queries.
	DomainMess Domain = "MESS"
	// DomainRules routes policy, procedure, and regulation queries.
	DomainRules Domain = "RULES"
	// DomainStatus routes facility status and outage queries.
	DomainStatus Domain = "STATUS"
	// DomainGeneral covers greetings and queries no specialist owns.
	DomainGeneral Domain = "GENERAL"
)

// Classification is the routing decision extracted from a student query.
type Classification struct {
	Domain        Domain
	Urgency       agents.Urgency
	SafetyConcern bool
	Summary       string
}

// Schema describes the routing fields the model must extract.
var Schema = extraction.Schema{
	Name:        "query_classification",
	Description: "Classification of student query for routing",
	Fields: []extraction.Field{
		{
			Name:        "agent_type",
			Description: "Agent to handle query: COMPLAINT, LOST_FOUND, MESS, RULES, STATUS, or GENERAL",
			Enum:        []string{"COMPLAINT", "LOST_FOUND", "MESS", "RULES", "STATUS", "GENERAL"},
			Required:    true,
		},
		{
			Name:        "urgency",
			Description: "Urgency level: low, medium, high, urgent",
			Enum:        []string{"low", "medium", "high", "urgent"},
			Required:    true,
		},
		{
			Name:        "has_safety_concern",
			Description: "Safety concern present? Yes or No",
			Required:    true,
		},
		{
			Name:        "brief_summary",
			Description: "Brief summary of the query for context",
		},
	},
}

// ClassificationFromResult maps an extraction result onto a Classification.
// Unrecognized domains fall back to GENERAL so a sloppy model answer still
// produces a response instead of an error.
func ClassificationFromResult(res extraction.Result) Classification {
	domain := Domain(strings.ToUpper(strings.ReplaceAll(res.Get("agent_type"), " ", "_")))
	switch domain {
	case DomainComplaint, DomainLostFound, DomainMess, DomainRules, DomainStatus:
	default:
		domain = DomainGeneral
	}

	return Classification{
		Domain:        domain,
		Urgency:       agents.ParseUrgency(res.Get("urgency")),
		SafetyConcern: res.Flag("has_safety_concern"),
		Summary:       res.Get("brief_summary"),
	}
}
