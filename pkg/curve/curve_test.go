package curve

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseScalarSequence(t *testing.T) {
	seq, err := Parse([]byte("[1, 2.5, -3, 0]"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if seq.IsTuple() {
		t.Fatalf("expected scalar sequence")
	}
	if seq.Len() != 4 {
		t.Fatalf("len: got %d want 4", seq.Len())
	}
	vals, err := seq.Values()
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	want := []float64{1, 2.5, -3, 0}
	if !reflect.DeepEqual(vals, want) {
		t.Fatalf("values: got %v want %v", vals, want)
	}
}

func TestParseTupleSequence(t *testing.T) {
	seq, err := Parse([]byte("[[1,2],[3,4]]"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !seq.IsTuple() || seq.Width() != 2 || seq.Len() != 2 {
		t.Fatalf("shape: tuple=%v width=%d len=%d", seq.IsTuple(), seq.Width(), seq.Len())
	}
	c0, err := seq.Component(0)
	if err != nil {
		t.Fatalf("component 0: %v", err)
	}
	if !reflect.DeepEqual(c0, []float64{1, 3}) {
		t.Fatalf("component 0: got %v want [1 3]", c0)
	}
	c1, err := seq.Component(1)
	if err != nil {
		t.Fatalf("component 1: %v", err)
	}
	if !reflect.DeepEqual(c1, []float64{2, 4}) {
		t.Fatalf("component 1: got %v want [2 4]", c1)
	}
	if _, err := seq.Component(2); err == nil {
		t.Fatalf("expected error for out-of-range component")
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "torque: 12"},
		{"not a list", `{"a": 1}`},
		{"bare number", "42"},
		{"mixed elements", `[1, [2, 3]]`},
		{"non numeric", `[1, "two"]`},
		{"width mismatch", `[[1,2],[3]]`},
		{"empty tuple", `[[]]`},
		{"string tuple component", `[["a","b"]]`},
	}
	for _, tt := range cases {
		if _, err := Parse([]byte(tt.in)); err == nil {
			t.Fatalf("%s: expected parse error for %q", tt.name, tt.in)
		}
	}
}

func TestParseEmptyList(t *testing.T) {
	seq, err := Parse([]byte("[]"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if seq.Len() != 0 || seq.IsTuple() {
		t.Fatalf("empty list: len=%d tuple=%v", seq.Len(), seq.IsTuple())
	}
}

func TestCumulativeSum(t *testing.T) {
	seq, err := Parse([]byte("[1, 2, 3]"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sums, err := seq.CumulativeSum()
	if err != nil {
		t.Fatalf("cumulative sum: %v", err)
	}
	want := []float64{0, 1, 3, 6}
	if !reflect.DeepEqual(sums, want) {
		t.Fatalf("cumulative sum: got %v want %v", sums, want)
	}
}

func TestShapeMismatchedOperations(t *testing.T) {
	tuple, _ := Parse([]byte("[[1,2]]"))
	if _, err := tuple.Values(); err == nil {
		t.Fatalf("Values on tuple sequence should fail")
	}
	if _, err := tuple.CumulativeSum(); err == nil {
		t.Fatalf("CumulativeSum on tuple sequence should fail")
	}
	scalar, _ := Parse([]byte("[1]"))
	if _, err := scalar.Component(0); err == nil {
		t.Fatalf("Component on scalar sequence should fail")
	}
}

func TestSteps(t *testing.T) {
	if got := Steps(3); !reflect.DeepEqual(got, []float64{0, 1, 2}) {
		t.Fatalf("steps: got %v", got)
	}
	if got := ScaledSteps(3, 5); !reflect.DeepEqual(got, []float64{0, 5, 10}) {
		t.Fatalf("scaled steps: got %v", got)
	}
	if got := Steps(0); len(got) != 0 {
		t.Fatalf("steps(0): got %v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw_data.txt")
	if err := os.WriteFile(path, []byte("[0.5, 1.5]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	seq, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if seq.Len() != 2 {
		t.Fatalf("len: got %d want 2", seq.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
