// Package extraction implements the schema-constrained structured-extraction
// capability. Callers hand it a prompt and a schema of named fields with
// enumerated or free-text domains; it returns an instance populated from the
// input text or an extraction error. It is the only layer allowed to retry a
// model call.
package extraction

import (
	"fmt"
	"strings"
)

// Field describes one named field of an extraction schema.
type Field struct {
	// Name is the JSON key the model must emit.
	Name string

	// Description explains what belongs in the field.
	Description string

	// Enum lists the closed set of accepted values. Empty for free text.
	Enum []string

	// Required marks fields that must be present and non-empty in the
	// result.
	Required bool
}

// Schema describes the target shape of one extraction call.
type Schema struct {
	// Name identifies the schema in errors and logs.
	Name string

	// Description is a one-line summary of the intent of the extraction.
	Description string

	// Fields lists the named fields in emission order.
	Fields []Field
}

// Instructions renders the schema as prompt text instructing the model to
// respond with a single JSON object.
func (s Schema) Instructions() string {
	var b strings.Builder

	b.WriteString("Respond with a single JSON object and nothing else. Keys:\n")
	for _, f := range s.Fields {
		b.WriteString(fmt.Sprintf("- %q: %s", f.Name, f.Description))
		if len(f.Enum) > 0 {
			b.WriteString(fmt.Sprintf(" (one of: %s)", strings.Join(f.Enum, ", ")))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Validate checks a result against the schema's required fields. Values
// outside a field's enumeration are NOT rejected here; downstream lookups
// handle those through their default entries.
func (s Schema) Validate(res Result) error {
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(res[f.Name]) == "" {
			return fmt.Errorf("%w: %s missing required field %q", ErrSchema, s.Name, f.Name)
		}
	}
	return nil
}

// Result holds the extracted field values keyed by field name. Every value
// is coerced to a string during decoding.
type Result map[string]string

// Get returns the value for the named field, trimmed.
func (r Result) Get(name string) string {
	return strings.TrimSpace(r[name])
}

// Flag interprets the named field as a yes/no answer.
func (r Result) Flag(name string) bool {
	switch strings.ToLower(r.Get(name)) {
	case "yes", "true", "y", "1":
		return true
	}
	return false
}
