// Package hostel holds the static lookup tables behind the specialists:
// form URLs, menus, policy text, and facility status. Every lookup is a
// total function over a case-insensitive key with an explicit default entry
// for unrecognized categories. The tables are initialized at compile time
// and never mutated, so they are safe for unlimited concurrent readers.
package hostel

import "strings"

// Form URLs for actionable reports.
const (
	FormElectrical       = "https://forms.gle/electrical123"
	FormPlumbing         = "https://forms.gle/plumbing123"
	FormFurniture        = "https://forms.gle/furniture123"
	FormRoomIssues       = "https://forms.gle/room123"
	FormInternet         = "https://forms.gle/internet123"
	FormGeneralComplaint = "https://forms.gle/general123"
	FormLostItem         = "https://forms.gle/lost123"
	FormFoundItem        = "https://forms.gle/found123"
	FormMessFeedback     = "https://forms.gle/mess123"
	FormMessComplaint    = "https://forms.gle/messcomplaint123"
)

var complaintForms = map[string]string{
	"electrical": FormElectrical,
	"plumbing":   FormPlumbing,
	"furniture":  FormFurniture,
	"room":       FormRoomIssues,
	"internet":   FormInternet,
	"wifi":       FormInternet,
}

// ComplaintForm returns the complaint form URL for the issue type, falling
// back to the general complaint form.
func ComplaintForm(issueType string) string {
	if form, ok := complaintForms[strings.ToLower(issueType)]; ok {
		return form
	}
	return FormGeneralComplaint
}

// LostFoundForm returns the report form URL and its explanation line for a
// lost or found item of the given category.
func LostFoundForm(lost bool, category string) (string, string) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "item"
	}

	if lost {
		return FormLostItem,
			"**Report your lost " + category + " officially:**\nFill out the lost item form so we can match it against found-item reports."
	}
	return FormFoundItem,
		"**Report the found " + category + " officially:**\nFill out the found item form so we can locate the owner."
}

// MessForm returns the mess form URL and its explanation line for the given
// request kind. Complaints get the complaint form; feedback, dietary
// requests, and anything unrecognized get the feedback form.
func MessForm(kind string) (string, string) {
	if strings.ToLower(kind) == "complaint" {
		return FormMessComplaint,
			"**File your mess complaint officially:**\nFill out the complaint form so the mess committee can document and track it."
	}
	return FormMessFeedback,
		"**Share it with the mess team:**\nFill out the feedback form so your input reaches the mess committee."
}
