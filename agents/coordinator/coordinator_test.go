package coordinator

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

type recordingAgent struct {
	name     string
	lastCtx  agents.Context
	response *agents.Response
}

func (r *recordingAgent) Name() string { return r.name }

func (r *recordingAgent) Process(_ context.Context, _ agents.Query, qctx agents.Context) (*agents.Response, error) {
	r.lastCtx = qctx
	return r.response, nil
}

func TestDispatchToSpecialist(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"agent_type":         "COMPLAINT",
		"urgency":            "high",
		"has_safety_concern": "No",
		"brief_summary":      "broken fan",
	}}
	specialist := &recordingAgent{
		name:     "Complaint Handler",
		response: agents.NewResponse("fan fix incoming", agents.UrgencyHigh),
	}

	coord := New(stub)
	coord.Register(DomainComplaint, specialist)

	resp, err := coord.Process(context.Background(), agents.Query{Text: "my fan broke"}, agents.Context{})
	require.NoError(t, err)

	assert.Equal(t, "fan fix incoming", resp.Content)
	assert.Equal(t, agents.UrgencyHigh, specialist.lastCtx.Urgency)
	assert.Equal(t, "broken fan", specialist.lastCtx.Summary)
	assert.False(t, specialist.lastCtx.SafetyConcern)
}

func TestSafetyConcernRaisesContextUrgency(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"agent_type":         "COMPLAINT",
		"urgency":            "medium",
		"has_safety_concern": "Yes",
		"brief_summary":      "sparks from outlet",
	}}
	specialist := &recordingAgent{
		name:     "Complaint Handler",
		response: agents.NewResponse("on it", agents.UrgencyMedium),
	}

	coord := New(stub)
	coord.Register(DomainComplaint, specialist)

	resp, err := coord.Process(context.Background(), agents.Query{Text: "sparks coming from the outlet"}, agents.Context{})
	require.NoError(t, err)

	assert.Equal(t, agents.UrgencyHigh, specialist.lastCtx.Urgency, "safety concern clamps context urgency to at least high")
	assert.True(t, specialist.lastCtx.SafetyConcern)
	assert.Equal(t, agents.UrgencyHigh, resp.Urgency, "safety concern clamps response urgency to at least high")
}

func TestSafetyConcernDoesNotLowerUrgentQueries(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"agent_type":         "COMPLAINT",
		"urgency":            "urgent",
		"has_safety_concern": "Yes",
		"brief_summary":      "fire hazard",
	}}
	specialist := &recordingAgent{
		name:     "Complaint Handler",
		response: agents.NewResponse("on it", agents.UrgencyUrgent),
	}

	coord := New(stub)
	coord.Register(DomainComplaint, specialist)

	resp, err := coord.Process(context.Background(), agents.Query{Text: "wires are burning"}, agents.Context{})
	require.NoError(t, err)

	assert.Equal(t, agents.UrgencyUrgent, specialist.lastCtx.Urgency)
	assert.Equal(t, agents.UrgencyUrgent, resp.Urgency, "clamp never lowers an urgent response")
}

func TestGeneralQueryGetsGreeting(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"agent_type":         "GENERAL",
		"urgency":            "low",
		"has_safety_concern": "No",
		"brief_summary":      "greeting",
	}}

	resp, err := New(stub).Process(context.Background(), agents.Query{Text: "hi there"}, agents.Context{})
	require.NoError(t, err)

	assert.Equal(t, GreetingContent, resp.Content)
	assert.Equal(t, agents.UrgencyLow, resp.Urgency)
}

func TestUnknownDomainFallsBackToGreeting(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"agent_type":         "LAUNDRY",
		"urgency":            "low",
		"has_safety_concern": "No",
	}}

	resp, err := New(stub).Process(context.Background(), agents.Query{Text: "where do I wash clothes"}, agents.Context{})
	require.NoError(t, err)
	assert.Equal(t, GreetingContent, resp.Content)
}

func TestUnregisteredSpecialistFallsBackToGreeting(t *testing.T) {
	stub := &stubExtractor{result: extraction.Result{
		"agent_type":         "MESS",
		"urgency":            "low",
		"has_safety_concern": "No",
	}}

	resp, err := New(stub).Process(context.Background(), agents.Query{Text: "what's for lunch"}, agents.Context{})
	require.NoError(t, err)
	assert.Equal(t, GreetingContent, resp.Content)
}

func TestClassificationErrorPropagates(t *testing.T) {
	stub := &stubExtractor{err: &extraction.Error{Schema: "query_classification", Err: extraction.ErrUnreachable}}

	_, err := New(stub).Process(context.Background(), agents.Query{Text: "anything"}, agents.Context{})
	require.Error(t, err)
	assert.True(t, extraction.IsExtractionError(err))
}

func TestClassificationNormalizesDomainSpelling(t *testing.T) {
	got := ClassificationFromResult(extraction.Result{
		"agent_type":         "lost found",
		"urgency":            "medium",
		"has_safety_concern": "No",
	})
	assert.Equal(t, DomainLostFound, got.Domain)
}
