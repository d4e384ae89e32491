package chart

import "math"

// Zoom turns pan/zoom gestures into constrained transforms.
type Zoom struct {
	// ScaleExtent bounds K.
	ScaleExtent [2]float64
	// Extent is the viewport the gestures act on.
	Extent Rect
	// TranslateExtent is the world area the viewport may show.
	TranslateExtent Rect
}

// Constrain clamps t.K to the scale extent and shifts t so the viewport
// stays inside the translate extent. If the viewport is larger than the
// extent along an axis it is centred.
func (z Zoom) Constrain(t Transform) Transform {
	t.K = z.clampK(t.K)
	dx0 := t.InvertX(z.Extent.X0) - z.TranslateExtent.X0
	dx1 := t.InvertX(z.Extent.X1) - z.TranslateExtent.X1
	dy0 := t.InvertY(z.Extent.Y0) - z.TranslateExtent.Y0
	dy1 := t.InvertY(z.Extent.Y1) - z.TranslateExtent.Y1
	return t.Translate(shift(dx0, dx1), shift(dy0, dy1))
}

func shift(d0, d1 float64) float64 {
	if d1 > d0 {
		return (d0 + d1) / 2
	}
	if v := math.Min(0, d0); v != 0 {
		return v
	}
	return math.Max(0, d1)
}

func (z Zoom) clampK(k float64) float64 {
	return math.Max(z.ScaleExtent[0], math.Min(z.ScaleExtent[1], k))
}

// Center is the middle of the viewport.
func (z Zoom) Center() Point {
	return Point{X: (z.Extent.X0 + z.Extent.X1) / 2, Y: (z.Extent.Y0 + z.Extent.Y1) / 2}
}

// ScaleTo sets the scale to k, keeping the world point under p in place.
func (z Zoom) ScaleTo(t Transform, k float64, p Point) Transform {
	p1 := t.Invert(p)
	k = z.clampK(k)
	next := Transform{K: k, X: p.X - p1.X*k, Y: p.Y - p1.Y*k}
	return z.Constrain(next)
}

// ScaleBy multiplies the scale by factor around p.
func (z Zoom) ScaleBy(t Transform, factor float64, p Point) Transform {
	return z.ScaleTo(t, t.K*factor, p)
}

// TranslateBy pans by (dx, dy) viewport units.
func (z Zoom) TranslateBy(t Transform, dx, dy float64) Transform {
	return z.Constrain(Transform{K: t.K, X: t.X + dx, Y: t.Y + dy})
}
