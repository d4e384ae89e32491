package tui

import (
	"math"
	"strings"

	"paleochart/internal/chart"
	"paleochart/internal/proxy"
)

// Screen layout, in cells.
const (
	sidebarWidth = 28
	gutterWidth  = 8
	headerHeight = 2 // title and legend
	axisHeight   = 2 // axis line and tick labels
	footerHeight = 2
)

// plot is where the braille canvas sits on screen.
type plot struct {
	x, y int // top-left cell
	w, h int // size in cells
}

func (p plot) contains(cx, cy int) bool {
	return cx >= p.x && cx < p.x+p.w && cy >= p.y && cy < p.y+p.h
}

// micro converts a screen cell to the centre of that cell in canvas
// micro-pixels, the chart's inner coordinates.
func (p plot) micro(cx, cy int) chart.Point {
	return chart.Point{X: float64(2*(cx-p.x)) + 0.5, Y: float64(4*(cy-p.y)) + 1.5}
}

// layout is the chart layout for the canvas: one unit per micro-pixel and no
// margins, with the overscan rescaled from the full-size canvas.
func (p plot) layout(canvas chart.Layout) chart.Layout {
	w, h := float64(2*p.w-1), float64(4*p.h-1)
	ov := 0.0
	if iw := canvas.InnerWidth(); iw > 0 {
		ov = canvas.Overscan * w / iw
	}
	return chart.Layout{Width: w, Height: h, Overscan: ov}
}

// plotArea computes the canvas geometry for the current window.
func (m Model) plotArea() plot {
	left := 0
	if m.showSidebar {
		left = sidebarWidth + 1
	}
	return plot{
		x: left + gutterWidth,
		y: headerHeight,
		w: max(10, m.width-left-gutterWidth-1),
		h: max(4, m.height-headerHeight-axisHeight-footerHeight),
	}
}

// rebuild lays the chart out for the current window and carries the gesture
// transform over from the previous canvas.
func (m *Model) rebuild() {
	if m.width == 0 || m.height == 0 || m.records == nil {
		return
	}
	p := m.plotArea()
	l := p.layout(m.opts.Canvas)
	c := chart.New(m.records, l, l.Zoom(m.opts.MinZoom, m.opts.MaxZoom))
	sc := chart.NewScene(l)
	r := chart.NewRenderer(c, sc)
	r.Draw()
	if prev := m.renderer; prev != nil && prev.Transform() != chart.Identity {
		old := prev.Chart().Layout()
		t := prev.Transform().Retarget(l.InnerWidth()/old.InnerWidth(), l.InnerHeight()/old.InnerHeight())
		r.Zoom(c.Zoom().Constrain(t))
	}
	m.renderer, m.scene, m.canvas = r, sc, p
}

// frameX is the x-scale visible through the current transform.
func (m Model) frameX() chart.Scale {
	c := m.renderer.Chart()
	return m.renderer.Transform().RescaleX(c.X())
}

// renderCanvas draws the visible series and the hover marker, one string per
// canvas row.
func (m Model) renderCanvas() []string {
	p := m.canvas
	br := newBrailleBuf(p.w, p.h)
	clip, clipped := m.scene.Clip()
	for i, s := range m.renderer.Chart().Series() {
		if !m.show[i] {
			continue
		}
		e, ok := m.scene.Lookup(chart.PathID(s))
		if !ok {
			continue
		}
		segs := e.(chart.PathSpec).Segments
		if clipped {
			segs = chart.ClipSegments(segs, clip)
		}
		for _, seg := range segs {
			x0, y0 := pixel(seg[0])
			if len(seg) == 1 {
				br.setPixel(x0, y0, i)
				continue
			}
			for _, pt := range seg[1:] {
				x1, y1 := pixel(pt)
				br.drawLineMicro(x0, y0, x1, y1, i)
				x0, y0 = x1, y1
			}
		}
	}

	hx, hy := -1, -1
	if m.hovering {
		if pt, ok := m.hoverPoint(); ok {
			x, y := pixel(pt)
			hx, hy = x/2, y/4
		}
	}

	lines := make([]string, p.h)
	for y := 0; y < p.h; y++ {
		var sb strings.Builder
		run, owner := []rune{}, noOwner
		flush := func() {
			if len(run) == 0 {
				return
			}
			if owner == noOwner {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(seriesStyles[owner].Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < p.w; x++ {
			if x == hx && y == hy {
				flush()
				sb.WriteString(hoverStyle.Render("◯"))
				owner = noOwner
				continue
			}
			r, o := br.cell(x, y)
			if o != owner && r != ' ' {
				flush()
				owner = o
			}
			run = append(run, r)
		}
		flush()
		lines[y] = sb.String()
	}
	return lines
}

// hoverPoint is where the hovered record sits on the first visible series.
func (m Model) hoverPoint() (chart.Point, bool) {
	c := m.renderer.Chart()
	fx := m.frameX()
	for i := range c.Series() {
		if !m.show[i] {
			continue
		}
		pt := c.Generator(i, fx)(m.hoverRec)
		if math.IsNaN(pt.Y) {
			continue
		}
		if clip, _ := m.scene.Clip(); !clip.Contains(pt) {
			continue
		}
		return pt, true
	}
	return chart.Point{}, false
}

// renderGutter labels the primary y-axis ticks beside the canvas rows.
func (m Model) renderGutter() []string {
	p := m.canvas
	labels := map[int]string{}
	if e, ok := m.scene.Lookup(chart.IDYAxis); ok {
		for _, t := range e.(chart.AxisSpec).Ticks {
			labels[int(math.Round(t.Pos))/4] = t.Label
		}
	}
	style := seriesStyles[0]
	out := make([]string, p.h)
	for y := range out {
		if l, ok := labels[y]; ok {
			out[y] = style.Render(padLeft(l, gutterWidth-2)) + axisStyle.Render(" ┤")
			continue
		}
		out[y] = strings.Repeat(" ", gutterWidth-1) + axisStyle.Render("│")
	}
	return out
}

// renderXAxis draws the bottom axis line and its tick labels.
func (m Model) renderXAxis() (string, string) {
	p := m.canvas
	line := []rune(strings.Repeat("─", p.w))
	labels := []rune(strings.Repeat(" ", p.w+gutterWidth))
	e, ok := m.scene.Lookup(chart.IDXAxis)
	if ok {
		next := 0
		for _, t := range e.(chart.AxisSpec).Ticks {
			cx := int(math.Round(t.Pos)) / 2
			if cx < 0 || cx >= p.w {
				continue
			}
			line[cx] = '┬'
			// labels are centred under the tick and may run into the gutter
			lbl := []rune(t.Label)
			start := gutterWidth + cx - len(lbl)/2
			if start < next || start+len(lbl) > len(labels) {
				continue
			}
			copy(labels[start:], lbl)
			next = start + len(lbl) + 1
		}
	}
	axis := strings.Repeat(" ", gutterWidth-1) + axisStyle.Render("└"+string(line))
	return axis, axisStyle.Render(string(labels))
}

func (m Model) renderLegend() string {
	parts := make([]string, 0, 3)
	for i, s := range chart.AllSeries() {
		mark := "■"
		if !m.show[i] {
			mark = "□"
		}
		parts = append(parts, seriesStyles[i].Render(mark+" "+s.Label))
	}
	return strings.Join(parts, "   ")
}

// describeHover formats the hovered record for the footer.
func describeHover(r proxy.Record) string {
	return "year=" + formatValue(r.YearsBefore2023) +
		" co2=" + formatValue(r.CO2) +
		" ch4=" + formatValue(r.CH4) +
		" temp=" + formatValue(r.TempAnomaly)
}

func pixel(pt chart.Point) (int, int) {
	return int(math.Round(pt.X)), int(math.Round(pt.Y))
}
