package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ExtractJSONBlock returns the first balanced JSON object embedded in text,
// or the empty string when none exists. Models in JSON mode usually return a
// bare object, but some wrap it in prose or fencing.
func ExtractJSONBlock(text string) string {
	start, end := findJSONBounds(text)
	if start == -1 || end == -1 {
		return ""
	}
	return text[start:end]
}

func findJSONBounds(text string) (int, int) {
	start := -1
	braceCount := 0
	for i, r := range text {
		if r == '{' {
			if start == -1 {
				start = i
			}
			braceCount++
			continue
		}
		if r == '}' {
			braceCount--
			if braceCount == 0 && start != -1 {
				return start, i + 1
			}
		}
	}
	return -1, -1
}

// decodeResult parses a JSON object into a Result, coercing every value to
// a string. Booleans become Yes/No to match the yes-or-no field phrasing in
// the schemas; arrays are comma-joined.
func decodeResult(data []byte) (Result, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(Result, len(raw))
	for k, v := range raw {
		out[k] = coerceValue(v)
	}
	return out, nil
}

func coerceValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, coerceValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
