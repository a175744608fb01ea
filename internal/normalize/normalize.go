// Package normalize coerces arbitrary model output into a list of
// career-path records. The model's response shape is not contractually
// enforced, so the accepted shapes are resolved by explicit inspection of a
// generic JSON value rather than strict typed deserialization.
package normalize

import (
	"encoding/json"
	"sort"
)

// CareerPaths extracts an array of career-path records from raw model
// output. Accepted shapes, in order:
//
//  1. a JSON-encoded string (or byte slice), parsed and re-inspected
//  2. a top-level array, returned verbatim
//  3. an object with a "suggestedCareerPaths" array
//  4. an object with a "careerPaths" array
//  5. an object with any array-valued fields, concatenated in key order
//
// Anything else yields an empty result. Pure; never returns an error. A
// string that fails to parse as JSON simply normalizes to nothing.
func CareerPaths(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return parseAndNormalize([]byte(v))
	case []byte:
		return parseAndNormalize(v)
	case json.RawMessage:
		return parseAndNormalize(v)
	case []any:
		return v
	case map[string]any:
		return fromObject(v)
	default:
		return nil
	}
}

// parseAndNormalize decodes a JSON document and re-inspects the result.
func parseAndNormalize(data []byte) []any {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	// A decoded string is not re-parsed; only one level of stringification
	// is tolerated.
	switch v := parsed.(type) {
	case []any:
		return v
	case map[string]any:
		return fromObject(v)
	default:
		return nil
	}
}

// fromObject extracts career paths from an object-shaped response.
func fromObject(obj map[string]any) []any {
	if arr, ok := obj["suggestedCareerPaths"].([]any); ok {
		return arr
	}
	if arr, ok := obj["careerPaths"].([]any); ok {
		return arr
	}

	// Last resort: concatenate every array-valued field. Key order is
	// sorted so the result is stable across runs. This can merge unrelated
	// arrays (e.g. stray metadata) into the result.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if _, ok := obj[k].([]any); ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	var out []any
	for _, k := range keys {
		out = append(out, obj[k].([]any)...)
	}
	return out
}
