// Package html renders charts as self-contained interactive echarts
// pages.
package html

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mwalther/curvewatch/pkg/chart"
	"github.com/mwalther/curvewatch/pkg/render"
)

type HTMLRenderer struct{}

func New() render.Renderer { return &HTMLRenderer{} }

func (r *HTMLRenderer) Render(c chart.Chart, w io.Writer) error {
	if len(c.Series) == 0 {
		return fmt.Errorf("chart %q has no series", c.Title)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      c.XLabel,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      c.YLabel,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	// All series of one chart share the same step axis.
	line.SetXAxis(axisLabels(c.Series[0].X))
	for _, s := range c.Series {
		line.AddSeries(s.Name, lineData(s.Y))
	}
	return line.Render(w)
}

func axisLabels(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return out
}

func lineData(ys []float64) []opts.LineData {
	out := make([]opts.LineData, len(ys))
	for i, y := range ys {
		out[i] = opts.LineData{Value: y}
	}
	return out
}
