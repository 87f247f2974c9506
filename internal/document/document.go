// Package document parses the raw structured output emitted by a
// shaping producer into a dynamically-typed value tree.
//
// A parsed document is one of: nil, bool, float64, string,
// []interface{}, or map[string]interface{} — the union encoding/json
// produces for untyped unmarshaling. Mapping keys are unique; key order
// carries no meaning. Sequence order is semantically meaningful.
package document

import (
	"encoding/json"
	"fmt"
)

// Parse decodes one self-describing JSON document. The input must be a
// single well-formed document; no partial or recovering parse is
// attempted. Callers are responsible for surfacing the raw text on
// failure.
func Parse(raw string) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}
