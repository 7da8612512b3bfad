// Package agents defines the shared contracts between the Coordinator and the
// domain specialists: the immutable query, the per-request context, and the
// uniform response every specialist produces.
package agents

import "context"

// Urgency represents the priority level attached to every Response.
type Urgency string

const (
	// UrgencyLow covers information requests and minor issues.
	UrgencyLow Urgency = "low"

	// UrgencyMedium covers standard complaints and important but
	// non-urgent issues.
	UrgencyMedium Urgency = "medium"

	// UrgencyHigh covers broken essential services and major problems
	// affecting daily life.
	UrgencyHigh Urgency = "high"

	// UrgencyUrgent covers safety hazards, emergencies, and critical
	// infrastructure failures.
	UrgencyUrgent Urgency = "urgent"
)

var urgencyRank = map[Urgency]int{
	UrgencyLow:    0,
	UrgencyMedium: 1,
	UrgencyHigh:   2,
	UrgencyUrgent: 3,
}

// Rank returns the ordinal position of the urgency level. Unknown values
// rank as medium.
func (u Urgency) Rank() int {
	if r, ok := urgencyRank[u]; ok {
		return r
	}
	return urgencyRank[UrgencyMedium]
}

// Valid reports whether the urgency is one of the four declared levels.
func (u Urgency) Valid() bool {
	_, ok := urgencyRank[u]
	return ok
}

// ParseUrgency maps a free-form value onto an Urgency, falling back to
// medium for anything unrecognized.
func ParseUrgency(s string) Urgency {
	u := Urgency(s)
	if u.Valid() {
		return u
	}
	return UrgencyMedium
}

// MaxUrgency returns the higher-ranked of two urgency levels.
func MaxUrgency(a, b Urgency) Urgency {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

// Query is the immutable input to the pipeline. It is constructed once per
// request and discarded after the response is produced.
type Query struct {
	// Text is the raw (pre-sanitized) student query.
	Text string

	// ImageData is an optional base64-encoded image payload.
	ImageData string
}

// HasImage reports whether the query carries image evidence.
func (q Query) HasImage() bool {
	return q.ImageData != ""
}

// Context carries the routing signals the Coordinator merges into the
// request before delegating to a specialist. A zero Context is valid for
// direct specialist invocation.
type Context struct {
	// Urgency is the coordinator's first-pass urgency signal.
	Urgency Urgency

	// SafetyConcern is set when the routing classification flagged a
	// safety hazard.
	SafetyConcern bool

	// Summary is the coordinator's short restatement of the query.
	Summary string
}

// Response is the uniform output contract every specialist produces. It is
// created once, immediately handed to the formatting layer, and never
// mutated afterwards.
type Response struct {
	// Content is the formatted reply body. Required.
	Content string

	// FormLink is an optional URL for actionable reports.
	FormLink string

	// NextSteps is an optional ordered list of short instructions.
	NextSteps []string

	// Urgency is the priority attached to the reply.
	Urgency Urgency

	// Confidence is the specialist's confidence in [0, 1].
	Confidence float64
}

// DefaultConfidence is assigned to responses that do not set an explicit
// confidence value.
const DefaultConfidence = 0.8

// NewResponse builds a Response with the default confidence.
func NewResponse(content string, urgency Urgency) *Response {
	return &Response{
		Content:    content,
		Urgency:    urgency,
		Confidence: DefaultConfidence,
	}
}

// Agent is the contract shared by the Coordinator and every domain
// specialist.
type Agent interface {
	// Name returns the human-readable agent name.
	Name() string

	// Process handles a single query with its enriched context. The
	// returned Response is owned exclusively by the caller.
	Process(ctx context.Context, query Query, qctx Context) (*Response, error)
}
