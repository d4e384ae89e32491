package chart

import (
	"math"

	"paleochart/internal/proxy"
)

// Chart holds the fixed state of a rendered dataset: the filtered records,
// the base x-scale and one y-scale per series. It is never modified after
// New; gestures only change the Transform handed to Frame.
type Chart struct {
	layout Layout
	zoom   Zoom
	data   []proxy.Record
	series []Series
	x      Scale
	y      []Scale
}

// New derives the scales for recs. recs should already be filtered; an
// empty slice gives NaN domains and empty frames.
func New(recs []proxy.Record, layout Layout, zoom Zoom) *Chart {
	c := &Chart{
		layout: layout,
		zoom:   zoom,
		data:   recs,
		series: AllSeries(),
	}
	lo, hi, _ := Extent(recs, years)
	c.x = NewLinear(lo, hi, 0, layout.InnerWidth())
	for _, s := range c.series {
		lo, hi, _ := Extent(recs, s.Value)
		c.y = append(c.y, NewLinear(lo, hi, layout.InnerHeight(), 0))
	}
	return c
}

// Extent returns the min and max of value over recs, skipping NaN. ok is
// false when no value is a number.
func Extent(recs []proxy.Record, value func(proxy.Record) float64) (lo, hi float64, ok bool) {
	lo, hi = math.NaN(), math.NaN()
	for _, r := range recs {
		v := value(r)
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

func (c *Chart) Layout() Layout           { return c.layout }
func (c *Chart) Zoom() Zoom               { return c.zoom }
func (c *Chart) Data() []proxy.Record     { return c.data }
func (c *Chart) Series() []Series         { return c.series }
func (c *Chart) X() Scale                 { return c.x }
func (c *Chart) Y(series int) Scale       { return c.y[series] }
func (c *Chart) Len() int                 { return len(c.data) }
func (c *Chart) Empty() bool              { return len(c.data) == 0 }
func (c *Chart) Primary() (Series, Scale) { return c.series[0], c.y[0] }

// Generator maps a record to its pixel position for one series.
func (c *Chart) Generator(series int, x Scale) func(proxy.Record) Point {
	y, value := c.y[series], c.series[series].Value
	return func(r proxy.Record) Point {
		return Point{X: x.Map(r.YearsBefore2023), Y: y.Map(value(r))}
	}
}

// Polyline runs gen over recs in order. Records that map to a NaN
// coordinate end the current segment, so bad values show up as gaps.
func Polyline(recs []proxy.Record, gen func(proxy.Record) Point) [][]Point {
	var segs [][]Point
	var cur []Point
	for _, r := range recs {
		p := gen(r)
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// Line is one series' geometry in a frame.
type Line struct {
	Series   Series
	Y        Scale
	Segments [][]Point
}

// Frame is everything that changes with the gesture transform.
type Frame struct {
	Transform Transform
	X         Scale
	Lines     []Line
}

// Frame computes the geometry visible through t. It only reads c, so the
// same t always gives the same frame.
func (c *Chart) Frame(t Transform) Frame {
	x := t.RescaleX(c.x)
	f := Frame{Transform: t, X: x, Lines: make([]Line, len(c.series))}
	for i, s := range c.series {
		f.Lines[i] = Line{
			Series:   s,
			Y:        c.y[i],
			Segments: Polyline(c.data, c.Generator(i, x)),
		}
	}
	return f
}

// Nearest returns the record whose x position under scale x is closest to
// px.
func (c *Chart) Nearest(x Scale, px float64) (proxy.Record, bool) {
	best, found := math.Inf(1), false
	var rec proxy.Record
	for _, r := range c.data {
		d := math.Abs(x.Map(r.YearsBefore2023) - px)
		if d < best {
			best, rec, found = d, r, true
		}
	}
	return rec, found
}
