package format

import (
	"strings"
	"testing"

	"github.com/adalundhe/hostelbuddy/core/agents"
)

func TestRenderFieldOrder(t *testing.T) {
	resp := &agents.Response{
		Content:   "Your fan issue has been recorded.",
		FormLink:  "https://forms.gle/electrical123",
		NextSteps: []string{"Fill out the form", "Note the complaint ID", "Follow up"},
		Urgency:   agents.UrgencyHigh,
	}

	out := Render(resp)

	banner := strings.Index(out, "HIGH PRIORITY")
	body := strings.Index(out, "Your fan issue")
	form := strings.Index(out, "Complete this form")
	steps := strings.Index(out, "Next Steps")

	for name, idx := range map[string]int{"banner": banner, "body": body, "form": form, "steps": steps} {
		if idx == -1 {
			t.Fatalf("%s missing from output:\n%s", name, out)
		}
	}

	if !(banner < body && body < form && form < steps) {
		t.Errorf("sections out of order: banner=%d body=%d form=%d steps=%d", banner, body, form, steps)
	}
}

func TestRenderNumbersSteps(t *testing.T) {
	resp := &agents.Response{
		Content:   "body",
		NextSteps: []string{"first", "second"},
		Urgency:   agents.UrgencyMedium,
	}

	out := Render(resp)
	if !strings.Contains(out, "1. first") || !strings.Contains(out, "2. second") {
		t.Errorf("steps not numbered:\n%s", out)
	}
}

func TestRenderOmitsAbsentSections(t *testing.T) {
	resp := agents.NewResponse("just info", agents.UrgencyLow)

	out := Render(resp)

	if strings.Contains(out, "Complete this form") {
		t.Error("form heading rendered without a form link")
	}
	if strings.Contains(out, "Next Steps") {
		t.Error("next steps heading rendered without steps")
	}
	if strings.Contains(out, "immediate assistance") {
		t.Error("emergency line rendered for low urgency")
	}
	if !strings.Contains(out, "ℹ️ **INFO**") {
		t.Error("low urgency banner missing")
	}
}

func TestRenderEmergencyLineOnlyWhenUrgent(t *testing.T) {
	urgent := Render(agents.NewResponse("danger", agents.UrgencyUrgent))
	if !strings.Contains(urgent, EmergencyContact) {
		t.Error("urgent reply missing emergency contact")
	}
	if !strings.HasSuffix(urgent, "**") {
		t.Error("emergency line should be the final section")
	}

	high := Render(agents.NewResponse("bad", agents.UrgencyHigh))
	if strings.Contains(high, "immediate assistance") {
		t.Error("high urgency should not carry the emergency line")
	}
}

func TestFailureCarriesGuidance(t *testing.T) {
	out := Failure("Could not understand the request")

	if !strings.Contains(out, "Could not understand the request") {
		t.Error("failure card missing the message")
	}
	if !strings.Contains(out, "rephrasing") {
		t.Error("failure card missing rephrase guidance")
	}
	if !strings.Contains(out, EmergencyContact) {
		t.Error("failure card missing the human fallback contact")
	}
}

func TestGreetingListsCapabilities(t *testing.T) {
	out := Greeting()

	for _, section := range []string{"Complaints", "Lost & Found", "Mess", "Rules", "Status"} {
		if !strings.Contains(out, section) {
			t.Errorf("greeting missing %q section", section)
		}
	}
}
