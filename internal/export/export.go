// Package export writes the chart to files: SVG and PNG images of a single
// view, or an HTML page that keeps zoom and pan in the browser.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"

	"paleochart/internal/chart"
	"paleochart/internal/proxy"
)

type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	HTML Format = "html"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Options describe the view to export.
type Options struct {
	Layout    chart.Layout
	MinZoom   float64
	MaxZoom   float64
	Transform chart.Transform
}

func DefaultOptions() Options {
	return Options{
		Layout:    chart.DefaultLayout(),
		MinZoom:   1,
		MaxZoom:   10,
		Transform: chart.Identity,
	}
}

// FormatOf picks the export format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return SVG, nil
	case ".png":
		return PNG, nil
	case ".html", ".htm":
		return HTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// WriteFile exports recs to path in the format named by its extension.
func WriteFile(path string, recs []proxy.Record, o Options) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(out, f, recs, o); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Write renders recs in format f to w. Image formats show the view under
// o.Transform; HTML always starts fully zoomed out.
func Write(w io.Writer, f Format, recs []proxy.Record, o Options) error {
	switch f {
	case SVG:
		return Image(w, Scene(recs, o), gochart.SVG)
	case PNG:
		return Image(w, Scene(recs, o), gochart.PNG)
	case HTML:
		return HTMLPage(w, recs, o.Layout)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Scene draws recs the way the interactive chart does and applies the
// transform as a zoom event.
func Scene(recs []proxy.Record, o Options) *chart.Scene {
	c := chart.New(recs, o.Layout, o.Layout.Zoom(o.MinZoom, o.MaxZoom))
	sc := chart.NewScene(o.Layout)
	r := chart.NewRenderer(c, sc)
	r.Draw()
	if o.Transform != chart.Identity {
		r.Zoom(c.Zoom().Constrain(o.Transform))
	}
	return sc
}
