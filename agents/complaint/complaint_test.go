package complaint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
)

type stubExtractor struct {
	result extraction.Result
	err    error

	lastSystem string
	lastUser   string
	lastSchema extraction.Schema
}

func (s *stubExtractor) Extract(_ context.Context, systemPrompt, userPrompt string, schema extraction.Schema) (extraction.Result, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	s.lastSchema = schema
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestProcessFanComplaint(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"issue_type":              "electrical",
		"severity":                "major",
		"immediate_action_needed": "No",
		"temporary_solution":      "Open windows for ventilation and use the common room fan.",
		"estimated_resolution":    "1-2 days",
	}}
	agent := New(stub)

	resp, err := agent.Process(context.Background(), agents.Query{Text: "My room fan is not working and it's very hot"}, agents.Context{})
	require.NoError(t, err)

	assert.Equal(t, agents.UrgencyHigh, resp.Urgency)
	assert.NotEmpty(t, resp.FormLink)
	assert.GreaterOrEqual(t, len(resp.NextSteps), 3)
	assert.Contains(t, resp.Content, "electrical issue")
	assert.Contains(t, resp.Content, "1-2 days")
	assert.Contains(t, stub.lastUser, "My room fan is not working")
	assert.Equal(t, Schema.Name, stub.lastSchema.Name)
}

func TestSeverityUrgencyMapping(t *testing.T) {
	tests := []struct {
		severity string
		want     agents.Urgency
	}{
		{"critical", agents.UrgencyUrgent},
		{"major", agents.UrgencyHigh},
		{"moderate", agents.UrgencyMedium},
		{"minor", agents.UrgencyMedium},
		{"", agents.UrgencyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			stub := &stubExtractor{result: extraction.Result{
				"issue_type": "plumbing",
				"severity":   tt.severity,
			}}
			resp, err := New(stub).Process(context.Background(), agents.Query{Text: "leaking tap"}, agents.Context{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Urgency)
		})
	}
}

func TestImmediateActionAddsSafetyWarning(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"issue_type":              "electrical",
		"severity":                "critical",
		"immediate_action_needed": "Yes",
	}}
	resp, err := New(stub).Process(context.Background(), agents.Query{Text: "sparks from the socket"}, agents.Context{})
	require.NoError(t, err)

	assert.Equal(t, agents.UrgencyUrgent, resp.Urgency)
	assert.Contains(t, resp.Content, "immediate safety precautions")
}

func TestFormLinkMatchesIssueType(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"issue_type": "wifi",
		"severity":   "minor",
	}}
	resp, err := New(stub).Process(context.Background(), agents.Query{Text: "wifi is slow"}, agents.Context{})
	require.NoError(t, err)

	assert.True(t, strings.Contains(resp.NextSteps[0], resp.FormLink))
}

func TestExtractionErrorPropagates(t *testing.T) {
	stub := &stubExtractor{err: &extraction.Error{Schema: "complaint_analysis", Err: extraction.ErrMalformed}}
	_, err := New(stub).Process(context.Background(), agents.Query{Text: "broken chair"}, agents.Context{})
	require.Error(t, err)
	assert.True(t, extraction.IsExtractionError(err))
}
