package chart

// Point is a position in layout units.
type Point struct {
	X, Y float64
}

// Rect spans [X0, X1] x [Y0, Y1].
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Transform is the state of a pan/zoom gesture: a uniform scale K followed
// by a translation (X, Y). Applied to p it yields p*K + (X, Y).
type Transform struct {
	K, X, Y float64
}

var Identity = Transform{K: 1}

func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.K + t.X, Y: p.Y*t.K + t.Y}
}

func (t Transform) ApplyX(x float64) float64 { return x*t.K + t.X }

func (t Transform) Invert(p Point) Point {
	return Point{X: (p.X - t.X) / t.K, Y: (p.Y - t.Y) / t.K}
}

func (t Transform) InvertX(x float64) float64 { return (x - t.X) / t.K }
func (t Transform) InvertY(y float64) float64 { return (y - t.Y) / t.K }

// Translate moves the transform by (x, y) in untransformed units.
func (t Transform) Translate(x, y float64) Transform {
	return Transform{K: t.K, X: t.X + t.K*x, Y: t.Y + t.K*y}
}

// RescaleX returns a copy of s whose domain is what is visible through t.
// The range is unchanged.
func (t Transform) RescaleX(s Scale) Scale {
	r0, r1 := s.Range()
	return NewLinear(s.Invert(t.InvertX(r0)), s.Invert(t.InvertX(r1)), r0, r1)
}

// Retarget converts a transform made for one layout size to another by
// scaling its translation.
func (t Transform) Retarget(sx, sy float64) Transform {
	return Transform{K: t.K, X: t.X * sx, Y: t.Y * sy}
}
