// Package compare implements the tolerance-aware structural comparison
// between two parsed shaping results.
//
// Comparison is recursive over the parsed document union (nil, bool,
// float64, string, []interface{}, map[string]interface{}), short-circuits
// on the first divergence, and traverses deterministically (sorted keys
// for mappings, positional order for sequences) so that mismatch reports
// are reproducible across runs on the same inputs.
package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Root is the rendering of the empty comparison path (JSON Path root).
const Root = "$"

// Mismatch describes the first point of divergence between two documents.
type Mismatch struct {
	Path   string // location within the tree, e.g. "$.glyphs[0].x"
	Reason string // mismatch kind with both values
}

// String renders the mismatch as a single path-qualified line.
func (m *Mismatch) String() string {
	return m.Path + ": " + m.Reason
}

// Compare checks reference and candidate for structural equality within
// an absolute numeric tolerance. It returns nil on a match, or the first
// mismatch in deterministic traversal order.
func Compare(reference, candidate interface{}, tolerance float64) *Mismatch {
	return compareValues(reference, candidate, tolerance, Root)
}

func compareValues(reference, candidate interface{}, tolerance float64, path string) *Mismatch {
	if reference == nil && candidate == nil {
		return nil
	}
	if reference == nil || candidate == nil {
		return valueMismatch(path, reference, candidate)
	}

	switch ref := reference.(type) {
	case map[string]interface{}:
		return compareMaps(ref, candidate, tolerance, path)
	case []interface{}:
		return compareSequences(ref, candidate, tolerance, path)
	case float64:
		return compareNumbers(ref, candidate, tolerance, path)
	case int:
		return compareNumbers(float64(ref), candidate, tolerance, path)
	case string:
		if cand, ok := candidate.(string); ok && ref == cand {
			return nil
		}
		return valueMismatch(path, reference, candidate)
	case bool:
		if cand, ok := candidate.(bool); ok && ref == cand {
			return nil
		}
		return valueMismatch(path, reference, candidate)
	default:
		if reference == candidate {
			return nil
		}
		return valueMismatch(path, reference, candidate)
	}
}

func compareMaps(reference map[string]interface{}, candidate interface{}, tolerance float64, path string) *Mismatch {
	cand, ok := candidate.(map[string]interface{})
	if !ok {
		return valueMismatch(path, reference, candidate)
	}

	refKeys := sortedKeys(reference)
	candKeys := sortedKeys(cand)
	if !equalKeys(refKeys, candKeys) {
		return &Mismatch{
			Path: path,
			Reason: fmt.Sprintf("key mismatch: reference=[%s] candidate=[%s]",
				strings.Join(refKeys, " "), strings.Join(candKeys, " ")),
		}
	}

	for _, key := range refKeys {
		if m := compareValues(reference[key], cand[key], tolerance, path+"."+key); m != nil {
			return m
		}
	}
	return nil
}

func compareSequences(reference []interface{}, candidate interface{}, tolerance float64, path string) *Mismatch {
	cand, ok := candidate.([]interface{})
	if !ok {
		return valueMismatch(path, reference, candidate)
	}

	if len(reference) != len(cand) {
		return &Mismatch{
			Path:   path,
			Reason: fmt.Sprintf("length mismatch: reference=%d candidate=%d", len(reference), len(cand)),
		}
	}

	for i := range reference {
		if m := compareValues(reference[i], cand[i], tolerance, fmt.Sprintf("%s[%d]", path, i)); m != nil {
			return m
		}
	}
	return nil
}

func compareNumbers(reference float64, candidate interface{}, tolerance float64, path string) *Mismatch {
	var cand float64
	switch v := candidate.(type) {
	case float64:
		cand = v
	case int:
		cand = float64(v)
	default:
		return valueMismatch(path, reference, candidate)
	}

	// Closed bound: a difference exactly equal to the tolerance matches.
	if math.Abs(reference-cand) <= tolerance {
		return nil
	}
	return &Mismatch{
		Path: path,
		Reason: fmt.Sprintf("number mismatch: reference=%v candidate=%v (tol=%v)",
			reference, cand, tolerance),
	}
}

func valueMismatch(path string, reference, candidate interface{}) *Mismatch {
	return &Mismatch{
		Path: path,
		Reason: fmt.Sprintf("value mismatch: reference=%s candidate=%s",
			formatValue(reference), formatValue(candidate)),
	}
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
