package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"paleochart/internal/chart"
)

const (
	tickSize    = 6
	tickPadding = 3
	axisFont    = 10.0
)

var (
	axisColor  = drawing.ColorFromHex("000000")
	background = drawing.ColorFromHex("ffffff")

	ErrEmptyScene = errors.New("scene has no size")
)

// Image paints sc with a go-chart renderer, for example gochart.SVG or
// gochart.PNG, and writes the result to w.
func Image(w io.Writer, sc *chart.Scene, provider gochart.RendererProvider) error {
	width, height := int(math.Round(sc.Layout.Width)), int(math.Round(sc.Layout.Height))
	if width <= 0 || height <= 0 {
		return ErrEmptyScene
	}
	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)

	p := painter{r: r, origin: chart.Point{X: sc.Layout.Margin.Left, Y: sc.Layout.Margin.Top}}
	p.fillBackground(width, height)
	clip, clipped := sc.Clip()
	for _, el := range sc.Elements() {
		switch e := el.(type) {
		case chart.PathSpec:
			segs := e.Segments
			if e.Clipped && clipped {
				segs = chart.ClipSegments(segs, clip)
			}
			p.path(e.Stroke, segs)
		case chart.AxisSpec:
			p.axis(e)
		case chart.TextSpec:
			p.text(e)
		}
	}
	return r.Save(w)
}

type painter struct {
	r      gochart.Renderer
	origin chart.Point
}

func (p painter) xy(pt chart.Point) (int, int) {
	return int(math.Round(pt.X + p.origin.X)), int(math.Round(pt.Y + p.origin.Y))
}

func (p painter) fillBackground(w, h int) {
	p.r.ResetStyle()
	p.r.SetFillColor(background)
	p.r.SetStrokeWidth(0)
	p.r.MoveTo(0, 0)
	p.r.LineTo(w, 0)
	p.r.LineTo(w, h)
	p.r.LineTo(0, h)
	p.r.Close()
	p.r.Fill()
}

func (p painter) path(s chart.Stroke, segs [][]chart.Point) {
	p.r.ResetStyle()
	p.r.SetStrokeColor(color(s.Color))
	p.r.SetStrokeWidth(s.Width)
	for _, seg := range segs {
		if len(seg) < 2 {
			continue
		}
		p.r.MoveTo(p.xy(seg[0]))
		for _, pt := range seg[1:] {
			p.r.LineTo(p.xy(pt))
		}
		p.r.Stroke()
	}
}

func (p painter) line(a, b chart.Point) {
	p.r.MoveTo(p.xy(a))
	p.r.LineTo(p.xy(b))
	p.r.Stroke()
}

func (p painter) axis(a chart.AxisSpec) {
	p.r.ResetStyle()
	p.r.SetStrokeColor(axisColor)
	p.r.SetStrokeWidth(1)
	p.r.SetFontColor(axisColor)
	p.r.SetFontSize(axisFont)

	o := a.Origin
	along := func(v, off float64) chart.Point {
		if a.Orient == chart.AxisLeft {
			return chart.Point{X: o.X - off, Y: o.Y + v}
		}
		return chart.Point{X: o.X + v, Y: o.Y + off}
	}
	p.line(along(a.Start, 0), along(a.End, 0))
	for _, t := range a.Ticks {
		p.line(along(t.Pos, 0), along(t.Pos, tickSize))
		box := p.r.MeasureText(t.Label)
		at := along(t.Pos, tickSize+tickPadding)
		x, y := p.xy(at)
		if a.Orient == chart.AxisLeft {
			p.r.Text(t.Label, x-box.Width(), y+box.Height()/2)
		} else {
			p.r.Text(t.Label, x-box.Width()/2, y+box.Height())
		}
	}
}

func (p painter) text(t chart.TextSpec) {
	p.r.ResetStyle()
	size := t.Size
	if size == 0 {
		size = axisFont
	}
	p.r.SetFontSize(size)
	c := axisColor
	if t.Color != "" {
		c = color(t.Color)
	}
	p.r.SetFontColor(c)

	box := p.r.MeasureText(t.Body)
	shift := 0.0
	switch t.Anchor {
	case chart.AnchorMiddle:
		shift = float64(box.Width()) / 2
	case chart.AnchorEnd:
		shift = float64(box.Width())
	}
	rad := t.Rotate * math.Pi / 180
	at := chart.Point{X: t.At.X - shift*math.Cos(rad), Y: t.At.Y - shift*math.Sin(rad)}
	x, y := p.xy(at)
	if rad != 0 {
		p.r.SetTextRotation(rad)
		defer p.r.ClearTextRotation()
	}
	p.r.Text(t.Body, x, y)
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
