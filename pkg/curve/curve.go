// Package curve loads raw sample sequences written by the stepper
// tooling. A raw-data file contains a single JSON list: either numbers
// (one sample per step) or equal-width lists of numbers (one tuple per
// step, e.g. a 2-component speed vector). The index is the step axis.
package curve

import (
	"encoding/json"
	"fmt"
	"os"
)

// Sequence is an ordered series of numeric samples. It is either
// scalar-shaped or tuple-shaped, never both.
type Sequence struct {
	scalars []float64
	tuples  [][]float64
}

// Load reads and parses a raw-data file.
func Load(path string) (*Sequence, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw data: %w", err)
	}
	seq, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return seq, nil
}

// Parse parses a raw-data literal. The content must be a list of
// numbers or a list of equal-width numeric lists.
func Parse(data []byte) (*Sequence, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("raw data: %w", err)
	}
	list, ok := root.([]interface{})
	if !ok {
		return nil, fmt.Errorf("raw data is not a list")
	}
	if len(list) == 0 {
		return &Sequence{scalars: []float64{}}, nil
	}
	switch list[0].(type) {
	case float64:
		return parseScalars(list)
	case []interface{}:
		return parseTuples(list)
	default:
		return nil, fmt.Errorf("element 0: expected number or list, got %T", list[0])
	}
}

func parseScalars(list []interface{}) (*Sequence, error) {
	out := make([]float64, len(list))
	for i, e := range list {
		v, ok := e.(float64)
		if !ok {
			return nil, fmt.Errorf("element %d: expected number, got %T", i, e)
		}
		out[i] = v
	}
	return &Sequence{scalars: out}, nil
}

func parseTuples(list []interface{}) (*Sequence, error) {
	first, _ := list[0].([]interface{})
	width := len(first)
	if width == 0 {
		return nil, fmt.Errorf("element 0: empty tuple")
	}
	out := make([][]float64, len(list))
	for i, e := range list {
		tup, ok := e.([]interface{})
		if !ok {
			return nil, fmt.Errorf("element %d: expected list, got %T", i, e)
		}
		if len(tup) != width {
			return nil, fmt.Errorf("element %d: tuple width %d, want %d", i, len(tup), width)
		}
		row := make([]float64, width)
		for j, c := range tup {
			v, ok := c.(float64)
			if !ok {
				return nil, fmt.Errorf("element %d component %d: expected number, got %T", i, j, c)
			}
			row[j] = v
		}
		out[i] = row
	}
	return &Sequence{tuples: out}, nil
}

// Len returns the number of steps in the sequence.
func (s *Sequence) Len() int {
	if s.tuples != nil {
		return len(s.tuples)
	}
	return len(s.scalars)
}

// IsTuple reports whether the sequence holds fixed-width tuples.
func (s *Sequence) IsTuple() bool { return s.tuples != nil }

// Width returns the number of components per step (1 for scalars).
func (s *Sequence) Width() int {
	if s.tuples == nil {
		return 1
	}
	return len(s.tuples[0])
}

// Values returns the scalar samples in step order.
func (s *Sequence) Values() ([]float64, error) {
	if s.tuples != nil {
		return nil, fmt.Errorf("sequence is tuple-shaped")
	}
	return s.scalars, nil
}

// Component extracts column i of a tuple sequence.
func (s *Sequence) Component(i int) ([]float64, error) {
	if s.tuples == nil {
		return nil, fmt.Errorf("sequence is scalar-shaped")
	}
	if i < 0 || i >= s.Width() {
		return nil, fmt.Errorf("component %d out of range [0,%d)", i, s.Width())
	}
	out := make([]float64, len(s.tuples))
	for step, tup := range s.tuples {
		out[step] = tup[i]
	}
	return out, nil
}

// CumulativeSum returns the N+1 partial sums of a scalar sequence,
// starting at 0: [1,2,3] -> [0,1,3,6].
func (s *Sequence) CumulativeSum() ([]float64, error) {
	if s.tuples != nil {
		return nil, fmt.Errorf("sequence is tuple-shaped")
	}
	out := make([]float64, len(s.scalars)+1)
	for i, v := range s.scalars {
		out[i+1] = out[i] + v
	}
	return out, nil
}

// Steps returns the step axis [0, 1, ..., n-1].
func Steps(n int) []float64 {
	return ScaledSteps(n, 1)
}

// ScaledSteps returns the step axis with each index multiplied by
// scale, e.g. an omega axis sampled every 5 [1/s].
func ScaledSteps(n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * scale
	}
	return out
}
