package png

import (
	"bytes"
	"testing"

	"github.com/mwalther/curvewatch/pkg/chart"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderProducesPNG(t *testing.T) {
	c := chart.Chart{
		Title:  "Speed curve",
		XLabel: "Steps",
		YLabel: "Omega [1/s]",
		Series: []chart.Series{
			{Name: "omega[0]", X: []float64{0, 1}, Y: []float64{1, 3}},
			{Name: "omega[1]", X: []float64{0, 1}, Y: []float64{2, 4}},
		},
	}
	var buf bytes.Buffer
	if err := New().Render(c, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output does not start with PNG magic (%d bytes)", buf.Len())
	}
}

func TestRenderRejectsBadSeries(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(chart.Chart{Title: "empty"}, &buf); err == nil {
		t.Fatalf("expected error for chart without series")
	}
	uneven := chart.Chart{Series: []chart.Series{{Name: "x", X: []float64{0, 1}, Y: []float64{1}}}}
	if err := New().Render(uneven, &buf); err == nil {
		t.Fatalf("expected error for uneven series")
	}
}
