package extraction

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates the model endpoint could not be reached or
	// did not answer within the deadline.
	ErrUnreachable = errors.New("extraction capability unreachable")

	// ErrMalformed indicates the model answered but the reply contained
	// no parseable JSON object.
	ErrMalformed = errors.New("extraction result malformed")

	// ErrSchema indicates the parsed result is missing required fields.
	ErrSchema = errors.New("extraction result violates schema")
)

// Error wraps a failed extraction with the schema it targeted. Extraction
// failures are fatal for the request that issued them; callers surface them
// rather than synthesizing a fallback analysis.
type Error struct {
	Schema string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extraction %s: %v", e.Schema, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsExtractionError reports whether err originated in this package.
func IsExtractionError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
