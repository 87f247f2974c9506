package compare

import (
	"encoding/json"
	"strings"
	"testing"
)

// mustParse decodes a JSON literal into the document union for test trees.
func mustParse(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test literal %q: %v", raw, err)
	}
	return v
}

func TestCompare_Primitives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		reference interface{}
		candidate interface{}
		match     bool
	}{
		{"equal strings", "hello", "hello", true},
		{"different strings", "hello", "world", false},
		{"equal bools", true, true, true},
		{"different bools", true, false, false},
		{"nil both", nil, nil, true},
		{"nil vs value", nil, "value", false},
		{"string vs number", "1", float64(1), false},
		{"bool vs number", true, float64(1), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := Compare(tt.reference, tt.candidate, 0)
			if (m == nil) != tt.match {
				t.Errorf("Compare() = %v, want match=%v", m, tt.match)
			}
		})
	}
}

func TestCompare_NumericTolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		reference float64
		candidate float64
		tolerance float64
		match     bool
	}{
		{"exact", 1.0, 1.0, 0, true},
		{"within", 0.0, 0.019, 0.02, true},
		{"at closed bound", 1.0, 1.02, 0.02, true},
		{"beyond", 0.0, 0.1, 0.02, false},
		{"negative difference within", 5.0, 4.99, 0.02, true},
		{"zero tolerance rejects any difference", 1.0, 1.0000001, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := Compare(tt.reference, tt.candidate, tt.tolerance)
			if (m == nil) != tt.match {
				t.Errorf("Compare(%v, %v, %v) = %v, want match=%v",
					tt.reference, tt.candidate, tt.tolerance, m, tt.match)
			}
		})
	}
}

func TestCompare_NumberMismatchReportsValuesAndTolerance(t *testing.T) {
	t.Parallel()

	m := Compare(float64(0.0), float64(0.1), 0.02)
	if m == nil {
		t.Fatal("expected mismatch")
	}
	if m.Path != "$" {
		t.Errorf("Path = %q, want %q", m.Path, "$")
	}
	for _, want := range []string{"reference=0", "candidate=0.1", "tol=0.02"} {
		if !strings.Contains(m.Reason, want) {
			t.Errorf("Reason %q missing %q", m.Reason, want)
		}
	}
}

func TestCompare_KeyOrderInsensitive(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, `{"a":1,"b":2}`)
	cand := mustParse(t, `{"b":2,"a":1}`)
	if m := Compare(ref, cand, 0); m != nil {
		t.Errorf("key order affected comparison: %v", m)
	}
}

func TestCompare_KeySetMismatch(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, `{"a":1,"b":2}`)
	cand := mustParse(t, `{"a":1,"c":2}`)
	m := Compare(ref, cand, 0)
	if m == nil {
		t.Fatal("expected key-set mismatch")
	}
	if m.Path != "$" {
		t.Errorf("Path = %q, want %q", m.Path, "$")
	}
	if !strings.Contains(m.Reason, "reference=[a b]") || !strings.Contains(m.Reason, "candidate=[a c]") {
		t.Errorf("Reason %q must name both sorted key sets", m.Reason)
	}
}

func TestCompare_SequenceOrderSensitive(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, `[1,2]`)
	cand := mustParse(t, `[2,1]`)
	m := Compare(ref, cand, 0)
	if m == nil {
		t.Fatal("expected mismatch")
	}
	if m.Path != "$[0]" {
		t.Errorf("Path = %q, want %q", m.Path, "$[0]")
	}
}

func TestCompare_SequenceLengthMismatch(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, `[1,2]`)
	cand := mustParse(t, `[1,2,3]`)
	m := Compare(ref, cand, 0)
	if m == nil {
		t.Fatal("expected length mismatch")
	}
	if m.Path != "$" {
		t.Errorf("Path = %q, want %q", m.Path, "$")
	}
	if !strings.Contains(m.Reason, "reference=2") || !strings.Contains(m.Reason, "candidate=3") {
		t.Errorf("Reason %q must report both lengths", m.Reason)
	}
}

func TestCompare_KindMismatch(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, `{"a":1}`)
	cand := mustParse(t, `[1]`)
	m := Compare(ref, cand, 0)
	if m == nil {
		t.Fatal("expected kind mismatch")
	}
	if !strings.Contains(m.Reason, "value mismatch") {
		t.Errorf("Reason = %q", m.Reason)
	}
}

func TestCompare_NestedLeafPath(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, `{"glyphs":[{"id":5,"x":0.0}]}`)
	within := mustParse(t, `{"glyphs":[{"id":5,"x":0.019}]}`)
	beyond := mustParse(t, `{"glyphs":[{"id":5,"x":0.1}]}`)

	if m := Compare(ref, within, 0.02); m != nil {
		t.Errorf("within tolerance reported mismatch: %v", m)
	}

	m := Compare(ref, beyond, 0.02)
	if m == nil {
		t.Fatal("expected mismatch beyond tolerance")
	}
	if m.Path != "$.glyphs[0].x" {
		t.Errorf("Path = %q, want %q", m.Path, "$.glyphs[0].x")
	}
}

func TestCompare_IdenticalTreeAlwaysMatches(t *testing.T) {
	t.Parallel()

	trees := []string{
		`null`,
		`true`,
		`3.25`,
		`"text"`,
		`[]`,
		`{}`,
		`{"glyphs":[{"id":5,"advance":7.21,"x":0,"y":-1.5}],"upem":2048,"name":"Arial"}`,
		`[[1,[2,[3]]],{"deep":{"deeper":[null,false]}}]`,
	}
	tolerances := []float64{0, 0.02, 1e9}

	for _, raw := range trees {
		for _, tol := range tolerances {
			a := mustParse(t, raw)
			b := mustParse(t, raw)
			if m := Compare(a, b, tol); m != nil {
				t.Errorf("Compare(%s, self, %v) = %v, want match", raw, tol, m)
			}
		}
	}
}

func TestCompare_Deterministic(t *testing.T) {
	t.Parallel()

	// Two divergent keys; the sorted-key traversal must always report
	// the same one first.
	ref := mustParse(t, `{"b":1,"a":1,"c":1}`)
	cand := mustParse(t, `{"b":2,"a":1,"c":2}`)

	first := Compare(ref, cand, 0)
	if first == nil {
		t.Fatal("expected mismatch")
	}
	if first.Path != "$.b" {
		t.Errorf("Path = %q, want %q (sorted key order)", first.Path, "$.b")
	}
	for i := 0; i < 10; i++ {
		again := Compare(ref, cand, 0)
		if again == nil || again.Path != first.Path || again.Reason != first.Reason {
			t.Fatalf("comparison not reproducible: first=%v again=%v", first, again)
		}
	}
}

func TestMismatch_String(t *testing.T) {
	t.Parallel()

	m := &Mismatch{Path: "$.glyphs[0].x", Reason: "number mismatch: reference=0 candidate=0.1 (tol=0.02)"}
	want := "$.glyphs[0].x: number mismatch: reference=0 candidate=0.1 (tol=0.02)"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
