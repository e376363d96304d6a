// Package render defines the chart rendering contract. Concrete
// renderers live in subpackages.
package render

import (
	"io"

	"github.com/mwalther/curvewatch/pkg/chart"
)

// Known output formats.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
)

type Renderer interface {
	Render(c chart.Chart, w io.Writer) error
}
