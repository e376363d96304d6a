package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/mwalther/curvewatch/pkg/chart"
	"github.com/mwalther/curvewatch/pkg/config"
	"github.com/mwalther/curvewatch/pkg/curve"
	"github.com/mwalther/curvewatch/pkg/render"
	"github.com/mwalther/curvewatch/pkg/render/html"
	"github.com/mwalther/curvewatch/pkg/render/png"
)

func main() {
	cfg, err := config.LoadCurveplot(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	seq, err := curve.Load(cfg.Plot.Input)
	if err != nil {
		log.Fatal(err)
	}

	c, err := chart.Build(cfg.Plot.Kind, seq, cfg.Plot.OmegaStep)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Plot.ServeAddr != "" {
		var buf bytes.Buffer
		if err := html.New().Render(c, &buf); err != nil {
			log.Fatal(err)
		}
		if err := serveChart(cfg.Plot.ServeAddr, buf.Bytes()); err != nil {
			log.Fatal(err)
		}
		return
	}

	r, err := newRenderer(cfg.Plot.Format)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(cfg.Plot.Output)
	if err != nil {
		log.Fatal(err)
	}
	if err := r.Render(c, f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s, %d steps)", cfg.Plot.Output, cfg.Plot.Kind, seq.Len())
}

func newRenderer(format string) (render.Renderer, error) {
	switch format {
	case render.FormatHTML:
		return html.New(), nil
	case render.FormatPNG:
		return png.New(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
