package chart

import "fmt"

const (
	Title = "CO2, CH4, and Temperature Anomalies Over Time"

	// Tick counts for the first draw; zoom redraws use the axis default.
	initialTicks = 3
	zoomTicks    = 10

	strokeWidth = 1.5
)

// Element ids used on the surface.
const (
	IDXAxis = "x-axis"
	IDYAxis = "y-axis"
)

func PathID(s Series) string { return "line-" + s.ID }

// Renderer draws a Chart on a Surface and keeps it in step with gestures.
type Renderer struct {
	chart     *Chart
	surface   Surface
	transform Transform
}

func NewRenderer(c *Chart, s Surface) *Renderer {
	return &Renderer{chart: c, surface: s, transform: Identity}
}

func (r *Renderer) Chart() *Chart        { return r.chart }
func (r *Renderer) Transform() Transform { return r.transform }
func (r *Renderer) Surface() Surface     { return r.surface }

// Draw emits the whole chart at the identity transform: clip region, both
// axes, the three lines, the labels and the title.
func (r *Renderer) Draw() {
	c, s := r.chart, r.surface
	l := c.Layout()
	w, h := l.InnerWidth(), l.InnerHeight()
	r.transform = Identity

	s.SetClip(l.Viewport())
	s.Axis(xAxis(c.X(), h, initialTicks))
	_, y := c.Primary()
	s.Axis(AxisSpec{
		ID:     IDYAxis,
		Orient: AxisLeft,
		Start:  h,
		End:    0,
		Ticks:  AxisTicks(y, initialTicks),
	})
	r.drawLines(c.Frame(Identity))

	s.Text(TextSpec{ID: "label-x", Body: "Year", At: Point{X: w / 2, Y: h + l.Margin.Bottom - 10}, Anchor: AnchorMiddle, Size: 12})
	// series labels sit rotated in the left margin, primary in the middle
	offsets := []float64{0, -75, 75}
	for i, ser := range c.Series() {
		s.Text(TextSpec{
			ID:     "label-" + ser.ID,
			Body:   ser.Label,
			At:     Point{X: -l.Margin.Left + 13, Y: h/2 + offsets[i%len(offsets)]},
			Rotate: -90,
			Anchor: AnchorMiddle,
			Color:  ser.Color,
			Size:   12,
		})
	}
	s.Text(TextSpec{ID: "title", Body: Title, At: Point{X: w / 2, Y: -l.Margin.Top / 2}, Anchor: AnchorMiddle, Size: 16})
}

// Zoom redraws the x-axis and every line for t. The y-scales are untouched.
func (r *Renderer) Zoom(t Transform) Frame {
	r.transform = t
	f := r.chart.Frame(t)
	r.surface.Axis(xAxis(f.X, r.chart.Layout().InnerHeight(), zoomTicks))
	r.drawLines(f)
	return f
}

// ScaleBy applies a zoom gesture around p through the chart's zoom bounds.
func (r *Renderer) ScaleBy(factor float64, p Point) Frame {
	return r.Zoom(r.chart.Zoom().ScaleBy(r.transform, factor, p))
}

// TranslateBy applies a pan gesture through the chart's zoom bounds.
func (r *Renderer) TranslateBy(dx, dy float64) Frame {
	return r.Zoom(r.chart.Zoom().TranslateBy(r.transform, dx, dy))
}

func (r *Renderer) drawLines(f Frame) {
	for _, line := range f.Lines {
		r.surface.Path(PathSpec{
			ID:       PathID(line.Series),
			Stroke:   Stroke{Color: line.Series.Color, Width: strokeWidth},
			Segments: line.Segments,
			Clipped:  true,
		})
	}
}

func xAxis(x Scale, h float64, ticks int) AxisSpec {
	r0, r1 := x.Range()
	return AxisSpec{
		ID:     IDXAxis,
		Orient: AxisBottom,
		Origin: Point{Y: h},
		Start:  r0,
		End:    r1,
		Ticks:  AxisTicks(x, ticks),
	}
}

// Describe summarises the chart for logs and status lines.
func (c *Chart) Describe() string {
	d0, d1 := c.x.Domain()
	y0, y1 := c.y[0].Domain()
	return fmt.Sprintf("records=%d years=[%g, %g] co2=[%g, %g]", len(c.data), d0, d1, y0, y1)
}
