package hostel

import (
	"strings"
	"testing"
)

func TestComplaintForm(t *testing.T) {
	tests := []struct {
		name      string
		issueType string
		want      string
	}{
		{name: "electrical", issueType: "electrical", want: FormElectrical},
		{name: "case insensitive", issueType: "PLUMBING", want: FormPlumbing},
		{name: "wifi aliases internet", issueType: "wifi", want: FormInternet},
		{name: "unknown falls back to general", issueType: "teleportation", want: FormGeneralComplaint},
		{name: "empty falls back to general", issueType: "", want: FormGeneralComplaint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComplaintForm(tt.issueType); got != tt.want {
				t.Errorf("ComplaintForm(%q) = %q, want %q", tt.issueType, got, tt.want)
			}
		})
	}
}

func TestLostFoundForm(t *testing.T) {
	t.Run("lost item", func(t *testing.T) {
		link, explanation := LostFoundForm(true, "electronics")
		if link != FormLostItem {
			t.Errorf("link = %q, want lost item form", link)
		}
		if !strings.Contains(explanation, "lost electronics") {
			t.Errorf("explanation does not mention the category: %q", explanation)
		}
	})

	t.Run("found item", func(t *testing.T) {
		link, explanation := LostFoundForm(false, "keys")
		if link != FormFoundItem {
			t.Errorf("link = %q, want found item form", link)
		}
		if !strings.Contains(explanation, "found keys") {
			t.Errorf("explanation does not mention the category: %q", explanation)
		}
	})

	t.Run("blank category still reads naturally", func(t *testing.T) {
		_, explanation := LostFoundForm(true, "  ")
		if !strings.Contains(explanation, "lost item") {
			t.Errorf("explanation = %q", explanation)
		}
	})
}

func TestMessForm(t *testing.T) {
	if link, _ := MessForm("complaint"); link != FormMessComplaint {
		t.Errorf("MessForm(complaint) link = %q", link)
	}
	if link, _ := MessForm("feedback"); link != FormMessFeedback {
		t.Errorf("MessForm(feedback) link = %q", link)
	}
	if link, _ := MessForm("anything else"); link != FormMessFeedback {
		t.Errorf("MessForm(unknown) link = %q, want feedback form default", link)
	}
}

func TestMenuInfo(t *testing.T) {
	if !strings.Contains(MenuInfo("breakfast"), "Breakfast") {
		t.Error("breakfast menu missing")
	}
	if !strings.Contains(MenuInfo("LUNCH"), "Lunch") {
		t.Error("lookup is not case-insensitive")
	}
	full := MenuInfo("all")
	if got := MenuInfo("snacks"); got != full {
		t.Error("unrecognized meal type should return the full-day menu")
	}
}

func TestPolicyLookupsHaveDefaults(t *testing.T) {
	lookups := map[string]func(string) string{
		"PolicyInfo":        PolicyInfo,
		"ProcedureSteps":    ProcedureSteps,
		"RequiredDocuments": RequiredDocuments,
		"ProcessingTime":    ProcessingTime,
		"CommonQuestions":   CommonQuestions,
		"PolicyExceptions":  PolicyExceptions,
	}

	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			got := lookup("no-such-category")
			if got == "" {
				t.Errorf("%s returned an empty default", name)
			}
			if known := lookup("visitor"); known == got {
				t.Errorf("%s returned the default for a known key", name)
			}
		})
	}
}

func TestPolicyInfoCaseInsensitive(t *testing.T) {
	if PolicyInfo("VISITOR") != PolicyInfo("visitor") {
		t.Error("PolicyInfo lookup is not case-insensitive")
	}
}

func TestCurrentStatus(t *testing.T) {
	t.Run("known facility", func(t *testing.T) {
		status := CurrentStatus("power")
		if status.State != StateOperational {
			t.Errorf("State = %q, want operational", status.State)
		}
		if status.EmergencyContact == "" {
			t.Error("missing emergency contact")
		}
	})

	t.Run("wifi aliases internet", func(t *testing.T) {
		if CurrentStatus("wifi") != CurrentStatus("internet") {
			t.Error("wifi should alias internet")
		}
	})

	t.Run("unknown facility gets explicit default", func(t *testing.T) {
		status := CurrentStatus("teleporter")
		if status.State != StateUnknown {
			t.Errorf("State = %q, want unknown", status.State)
		}
		if status.EmergencyContact == "" {
			t.Error("default entry must still carry a contact")
		}
	})
}

func TestFacilityLookupsHaveDefaults(t *testing.T) {
	lookups := map[string]func(string) string{
		"ServiceHours":        ServiceHours,
		"ReportingGuide":      ReportingGuide,
		"TroubleshootingTips": TroubleshootingTips,
		"ContactInfo":         ContactInfo,
		"ServiceStandards":    ServiceStandards,
	}

	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			if lookup("no-such-facility") == "" {
				t.Errorf("%s returned an empty default", name)
			}
		})
	}

	schedule := MaintenanceFor("no-such-facility")
	if schedule.ThisWeek == "" || schedule.NextWeek == "" || schedule.Regular == "" {
		t.Error("MaintenanceFor default entry has empty fields")
	}
}
