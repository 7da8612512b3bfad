package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/hostelbuddy/core/agents"
	"github.com/adalundhe/hostelbuddy/core/extraction"
	"github.com/adalundhe/hostelbuddy/core/validate"
)

type stubRouter struct {
	response *agents.Response
	err      error

	lastQuery agents.Query
}

func (s *stubRouter) Name() string { return "stub" }

func (s *stubRouter) Process(_ context.Context, query agents.Query, _ agents.Context) (*agents.Response, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func TestHandleRendersResponse(t *testing.T) {
	resp := agents.NewResponse("Your fan will be fixed.", agents.UrgencyHigh)
	resp.FormLink = "https://forms.gle/electrical123"
	resp.NextSteps = []string{"Fill out the form", "Wait for a technician"}
	router := &stubRouter{response: resp}

	out, meta, err := New(router).Handle(context.Background(), "My fan is broken", "")
	require.NoError(t, err)

	assert.Contains(t, out, "⚠️ **HIGH PRIORITY**")
	assert.Contains(t, out, "Your fan will be fixed.")
	assert.Contains(t, out, "https://forms.gle/electrical123")
	assert.NotEmpty(t, meta.RequestID)
	assert.Equal(t, agents.UrgencyHigh, meta.Urgency)
	assert.True(t, meta.HadFormLink)
	assert.Equal(t, 2, meta.NextStepCount)
}

func TestHandleSanitizesQuery(t *testing.T) {
	router := &stubRouter{response: agents.NewResponse("ok", agents.UrgencyLow)}

	_, _, err := New(router).Handle(context.Background(), `Fan <broken> & "loud"`, "")
	require.NoError(t, err)

	assert.NotContains(t, router.lastQuery.Text, "<")
	assert.NotContains(t, router.lastQuery.Text, "&")
	assert.Contains(t, router.lastQuery.Text, "Fan")
}

func TestHandleRejectsInvalidQuery(t *testing.T) {
	router := &stubRouter{response: agents.NewResponse("ok", agents.UrgencyLow)}

	_, _, err := New(router).Handle(context.Background(), "hi", "")
	require.Error(t, err)

	var verr *validate.Error
	assert.True(t, errors.As(err, &verr))
}

func TestHandleRejectsInvalidImage(t *testing.T) {
	router := &stubRouter{response: agents.NewResponse("ok", agents.UrgencyLow)}

	_, _, err := New(router).Handle(context.Background(), "my room light is flickering", "not!!base64")
	require.Error(t, err)

	var verr *validate.Error
	assert.True(t, errors.As(err, &verr))
}

func TestHandleDegradesExtractionFailureToFailureCard(t *testing.T) {
	router := &stubRouter{err: &extraction.Error{Schema: "query_classification", Err: extraction.ErrMalformed}}

	out, meta, err := New(router).Handle(context.Background(), "my room light is flickering", "")
	require.NoError(t, err)

	assert.Contains(t, out, "couldn't process your query")
	assert.Equal(t, agents.UrgencyLow, meta.Urgency)
	assert.NotEmpty(t, meta.RequestID)
}

func TestHandlePropagatesUnexpectedErrors(t *testing.T) {
	router := &stubRouter{err: errors.New("boom")}

	_, _, err := New(router).Handle(context.Background(), "my room light is flickering", "")
	require.Error(t, err)
	assert.False(t, extraction.IsExtractionError(err))
}
