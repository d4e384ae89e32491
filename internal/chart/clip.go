package chart

// ClipSegments cuts polylines to r. A polyline that leaves and re-enters r
// comes back as several pieces.
func ClipSegments(segs [][]Point, r Rect) [][]Point {
	var out [][]Point
	for _, seg := range segs {
		if len(seg) == 1 {
			if r.Contains(seg[0]) {
				out = append(out, []Point{seg[0]})
			}
			continue
		}
		var cur []Point
		for i := 0; i+1 < len(seg); i++ {
			a, b := seg[i], seg[i+1]
			p, q, ok := clipLine(a, b, r)
			if !ok {
				if len(cur) > 0 {
					out = append(out, cur)
					cur = nil
				}
				continue
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, p, q)
			case cur[len(cur)-1] == p:
				cur = append(cur, q)
			default:
				out = append(out, cur)
				cur = []Point{p, q}
			}
			if q != b {
				out = append(out, cur)
				cur = nil
			}
		}
		if len(cur) > 0 {
			out = append(out, cur)
		}
	}
	return out
}

// clipLine is Liang-Barsky. Endpoints inside r are returned unchanged.
func clipLine(a, b Point, r Rect) (Point, Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - r.X0},
		{dx, r.X1 - a.X},
		{-dy, a.Y - r.Y0},
		{dy, r.Y1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return Point{}, Point{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return Point{}, Point{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	p, q := a, b
	if t0 > 0 {
		p = Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		q = Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return p, q, true
}
