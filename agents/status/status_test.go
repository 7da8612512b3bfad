package status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
)

type stubExtractor struct {
	result extraction.Result
	err    error
}

func (s *stubExtractor) Extract(_ context.Context, _, _ string, _ extraction.Schema) (extraction.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func process(t *testing.T, result extraction.Result) *agents.Response {
	t.Helper()
	resp, err := New(&stubExtractor{result: result}).Process(context.Background(), agents.Query{Text: "status question"}, agents.Context{})
	require.NoError(t, err)
	return resp
}

func TestOperationalStatus(t *testing.T) {
	resp := process(t, extraction.Result{
		"facility_type":     "power",
		"query_scope":       "current_status",
		"location_specific": "general",
		"urgency_indicator": "routine_check",
	})

	assert.Equal(t, agents.UrgencyLow, resp.Urgency)
	assert.Contains(t, resp.Content, "✅")
	assert.Contains(t, resp.Content, "All systems operational")
	assert.Contains(t, resp.Content, "all areas", "general location reads as all areas")
}

func TestWifiAliasesInternet(t *testing.T) {
	resp := process(t, extraction.Result{
		"facility_type":     "wifi",
		"query_scope":       "current_status",
		"location_specific": "general",
		"urgency_indicator": "routine_check",
	})

	assert.Equal(t, agents.UrgencyLow, resp.Urgency)
	assert.Contains(t, resp.Content, "All systems operational")
}

func TestUnknownFacilityReportsUnknownState(t *testing.T) {
	resp := process(t, extraction.Result{
		"facility_type":     "elevator",
		"query_scope":       "current_status",
		"location_specific": "Block B",
		"urgency_indicator": "routine_check",
	})

	assert.Equal(t, agents.UrgencyMedium, resp.Urgency)
	assert.Contains(t, resp.Content, "⚠️")
	assert.Contains(t, resp.Content, "Unknown reported")
	assert.Contains(t, resp.Content, "Block B")
}

func TestUnknownStateEmergencyIsHigh(t *testing.T) {
	resp := process(t, extraction.Result{
		"facility_type":     "emergency",
		"query_scope":       "current_status",
		"location_specific": "general",
		"urgency_indicator": "emergency_situation",
	})

	assert.Equal(t, agents.UrgencyHigh, resp.Urgency)
}

func TestEmergencyIndicatorNeverRoutinePriority(t *testing.T) {
	for _, scope := range []string{"current_status", "scheduled_maintenance", "general_info"} {
		t.Run(scope, func(t *testing.T) {
			resp := process(t, extraction.Result{
				"facility_type":     "power",
				"query_scope":       scope,
				"location_specific": "general",
				"urgency_indicator": "emergency_situation",
			})
			assert.GreaterOrEqual(t, resp.Urgency.Rank(), agents.UrgencyHigh.Rank())
		})
	}
}

func TestMaintenanceSchedule(t *testing.T) {
	resp := process(t, extraction.Result{
		"facility_type":     "water",
		"query_scope":       "scheduled_maintenance",
		"location_specific": "general",
		"urgency_indicator": "routine_check",
	})

	assert.Equal(t, agents.UrgencyLow, resp.Urgency)
	assert.Contains(t, resp.Content, "📅")
	assert.Contains(t, resp.Content, "This Week's Schedule")
}

func TestOutageReportUrgency(t *testing.T) {
	tests := []struct {
		indicator string
		want      agents.Urgency
	}{
		{"emergency_situation", agents.UrgencyUrgent},
		{"service_needed", agents.UrgencyHigh},
		{"routine_check", agents.UrgencyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.indicator, func(t *testing.T) {
			resp := process(t, extraction.Result{
				"facility_type":     "power",
				"query_scope":       "outage_report",
				"location_specific": "Block A",
				"urgency_indicator": tt.indicator,
			})

			assert.Equal(t, tt.want, resp.Urgency)
			assert.Contains(t, resp.Content, "📝")
			assert.Len(t, resp.NextSteps, 4)
		})
	}
}

func TestGeneralInfo(t *testing.T) {
	resp := process(t, extraction.Result{
		"facility_type":     "internet",
		"query_scope":       "general_info",
		"location_specific": "general",
		"urgency_indicator": "routine_check",
	})

	assert.Equal(t, agents.UrgencyLow, resp.Urgency)
	assert.Contains(t, resp.Content, "ℹ️")
	assert.Contains(t, resp.Content, "Service Standards")
	assert.Contains(t, resp.Content, "current internet status")
}
