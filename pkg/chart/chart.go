// Package chart shapes sample sequences into the chart models the
// renderers draw: torque over angular speed, speed components over
// steps, and cumulative acceleration over steps.
package chart

import (
	"fmt"

	"github.com/mwalther/curvewatch/pkg/curve"
)

// Known chart kinds.
const (
	KindTorque       = "torque"
	KindSpeed        = "speed"
	KindAcceleration = "accel"
)

// DefaultOmegaStep is the angular speed sampled per step on the torque
// curve x-axis, in 1/s.
const DefaultOmegaStep = 5.0

type Series struct {
	Name string
	X    []float64
	Y    []float64
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Build constructs the chart of the given kind from seq. omegaStep is
// only used by the torque kind.
func Build(kind string, seq *curve.Sequence, omegaStep float64) (Chart, error) {
	switch kind {
	case KindTorque:
		return Torque(seq, omegaStep)
	case KindSpeed:
		return Speed(seq)
	case KindAcceleration:
		return Acceleration(seq)
	default:
		return Chart{}, fmt.Errorf("unknown chart kind %q", kind)
	}
}

// Torque plots a scalar torque sequence against the angular speed each
// step was sampled at.
func Torque(seq *curve.Sequence, omegaStep float64) (Chart, error) {
	if omegaStep <= 0 {
		return Chart{}, fmt.Errorf("omega step must be > 0, got %g", omegaStep)
	}
	vals, err := seq.Values()
	if err != nil {
		return Chart{}, fmt.Errorf("torque curve: %w", err)
	}
	return Chart{
		Title:  "Torque curve",
		XLabel: "Omega [1/s]",
		YLabel: "Torque [Nm]",
		Series: []Series{{Name: "torque", X: curve.ScaledSteps(seq.Len(), omegaStep), Y: vals}},
	}, nil
}

// Speed plots a speed sequence against the raw step index. A tuple
// sequence of width W becomes W overlaid series, one per component.
func Speed(seq *curve.Sequence) (Chart, error) {
	steps := curve.Steps(seq.Len())
	var series []Series
	if seq.IsTuple() {
		for c := 0; c < seq.Width(); c++ {
			col, err := seq.Component(c)
			if err != nil {
				return Chart{}, fmt.Errorf("speed curve: %w", err)
			}
			series = append(series, Series{Name: fmt.Sprintf("omega[%d]", c), X: steps, Y: col})
		}
	} else {
		vals, err := seq.Values()
		if err != nil {
			return Chart{}, fmt.Errorf("speed curve: %w", err)
		}
		series = []Series{{Name: "omega", X: steps, Y: vals}}
	}
	return Chart{
		Title:  "Speed curve",
		XLabel: "Steps",
		YLabel: "Omega [1/s]",
		Series: series,
	}, nil
}

// Acceleration plots the running sum of a scalar sequence, so N step
// times become N+1 cumulative values starting at 0.
func Acceleration(seq *curve.Sequence) (Chart, error) {
	sums, err := seq.CumulativeSum()
	if err != nil {
		return Chart{}, fmt.Errorf("acceleration curve: %w", err)
	}
	return Chart{
		Title:  "Acceleration curve",
		XLabel: "Steps",
		YLabel: "Time",
		Series: []Series{{Name: "time", X: curve.Steps(len(sums)), Y: sums}},
	}, nil
}
