package rules

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
	resp, err := New(&stubExtractor{result: result}).Process(context.Background(), agents.Query{Text: "policy question"}, agents.Context{})
	require.NoError(t, err)
	return resp
}

func TestInformationRequest(t *testing.T) {
	resp := process(t, extraction.Result{
		"policy_category": "visitor",
		"query_intent":    "information_request",
		"urgency_level":   "low",
	})

	assert.Equal(t, agents.UrgencyLow, resp.Urgency)
	assert.Contains(t, resp.Content, "Visitor Policy Information")
	assert.Empty(t, resp.NextSteps)
}

func TestProcedureHelp(t *testing.T) {
	resp := process(t, extraction.Result{
		"policy_category": "room",
		"query_intent":    "procedure_help",
		"urgency_level":   "medium",
	})

	assert.Equal(t, agents.UrgencyMedium, resp.Urgency)
	assert.Contains(t, resp.Content, "Step-by-Step Procedure for Room")
	assert.Contains(t, resp.Content, "Required Documents/Information")
	assert.Len(t, resp.NextSteps, 4)
}

func TestViolationConcernClampedToMedium(t *testing.T) {
	tests := []struct {
		urgency string
		want    agents.Urgency
	}{
		{"low", agents.UrgencyMedium},
		{"medium", agents.UrgencyMedium},
		{"high", agents.UrgencyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.urgency, func(t *testing.T) {
			resp := process(t, extraction.Result{
				"policy_category": "discipline",
				"query_intent":    "violation_concern",
				"urgency_level":   tt.urgency,
			})
			assert.Equal(t, tt.want, resp.Urgency)
			assert.Len(t, resp.NextSteps, 4)
		})
	}
}

func TestClarificationIncludesExceptions(t *testing.T) {
	resp := process(t, extraction.Result{
		"policy_category": "curfew",
		"query_intent":    "clarification_needed",
		"urgency_level":   "low",
	})

	assert.Contains(t, resp.Content, "Policy Clarification - Curfew")
	assert.Contains(t, resp.Content, "Exceptions and Special Cases")
}

func TestUnknownIntentDefaultsToInformation(t *testing.T) {
	resp := process(t, extraction.Result{
		"policy_category": "fees",
		"query_intent":    "other",
		"urgency_level":   "low",
	})

	assert.Contains(t, resp.Content, "Fees Policy Information")
}

func TestUnknownCategoryStillAnswers(t *testing.T) {
	resp := process(t, extraction.Result{
		"policy_category": "parking",
		"query_intent":    "information_request",
		"urgency_level":   "low",
	})

	assert.NotEmpty(t, resp.Content)
	assert.Contains(t, resp.Content, "Parking Policy Information")
}
