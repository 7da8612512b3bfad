// Package validate performs pre-pipeline input checks: query length bounds,
// markup sanitization, and image payload limits. It runs before the
// pipeline is invoked; the pipeline assumes its input already passed here.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adalundhe/hostelbuddy/core/agents"
)

const (
	// MinQueryLength is the minimum accepted query length in characters.
	MinQueryLength = 3

	// MaxQueryLength is the maximum accepted query length in characters.
	MaxQueryLength = 1000

	// MaxImageMB is the maximum accepted decoded image size.
	MaxImageMB = 10.0
)

// Error is a pre-pipeline validation failure. It is surfaced to the caller
// verbatim and never reaches the Coordinator.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

var (
	markupChars = regexp.MustCompile(`[<>"'&]`)
	base64Shape = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
)

// Query checks and sanitizes the raw query text, returning the sanitized
// form.
func Query(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < MinQueryLength {
		return "", &Error{Reason: "Query too short - please provide more details"}
	}
	if len(trimmed) > MaxQueryLength {
		return "", &Error{Reason: "Query too long - please be more concise"}
	}

	return markupChars.ReplaceAllString(trimmed, ""), nil
}

// Image checks an optional base64 image payload. An empty payload is valid.
func Image(imageBase64 string) error {
	if imageBase64 == "" {
		return nil
	}

	if !base64Shape.MatchString(imageBase64) {
		return &Error{Reason: "Invalid image format"}
	}

	// Base64 carries ~33% overhead over the decoded bytes.
	estimatedMB := float64(len(imageBase64)) * 0.75 / (1024 * 1024)
	if estimatedMB > MaxImageMB {
		return &Error{Reason: fmt.Sprintf("Image too large - please use image under %.0fMB", MaxImageMB)}
	}

	return nil
}

var (
	urgentKeywords = []string{"emergency", "urgent", "immediately", "asap", "critical", "danger"}
	highKeywords   = []string{"broken", "not working", "damaged", "leaking", "problem", "issue"}
	mediumKeywords = []string{"help", "question", "how", "when", "what"}
)

// UrgencyHint guesses an urgency level from keywords in the query. It is an
// observability signal only; the classification's urgency always wins.
func UrgencyHint(query string) agents.Urgency {
	lower := strings.ToLower(query)

	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			return agents.UrgencyUrgent
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(lower, kw) {
			return agents.UrgencyHigh
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(lower, kw) {
			return agents.UrgencyMedium
		}
	}
	return agents.UrgencyLow
}
