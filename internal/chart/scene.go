package chart

// Stroke styles a path.
type Stroke struct {
	Color string
	Width float64
}

type Orient int

const (
	AxisBottom Orient = iota
	AxisLeft
)

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Tick is one labelled axis position.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// AxisTicks returns about count ticks of s with formatted labels.
func AxisTicks(s Scale, count int) []Tick {
	format := s.TickFormat(count)
	vals := s.Ticks(count)
	out := make([]Tick, 0, len(vals))
	for _, v := range vals {
		out = append(out, Tick{Value: v, Pos: s.Map(v), Label: format(v)})
	}
	return out
}

// Element is something drawn on a Surface. Elements with the same ID replace
// each other.
type Element interface {
	ElementID() string
}

type PathSpec struct {
	ID       string
	Stroke   Stroke
	Segments [][]Point
	Clipped  bool
}

// AxisSpec is an axis line from Start to End along Orient, with ticks at
// Tick.Pos measured along the axis from the inner origin.
type AxisSpec struct {
	ID     string
	Orient Orient
	Origin Point
	Start  float64
	End    float64
	Ticks  []Tick
}

// TextSpec is a label anchored at At, rotated by Rotate degrees around At.
type TextSpec struct {
	ID     string
	Body   string
	At     Point
	Rotate float64
	Anchor Anchor
	Color  string
	Size   float64
}

func (p PathSpec) ElementID() string { return p.ID }
func (a AxisSpec) ElementID() string { return a.ID }
func (t TextSpec) ElementID() string { return t.ID }

// Surface accepts drawing commands. Coordinates are inner coordinates: the
// surface owns the margins.
type Surface interface {
	SetClip(r Rect)
	Path(p PathSpec)
	Axis(a AxisSpec)
	Text(t TextSpec)
}

// Scene is a retained Surface: it keeps the latest version of every
// element in first-drawn order for a painter to walk.
type Scene struct {
	Layout  Layout
	clip    Rect
	hasClip bool
	elems   []Element
	index   map[string]int
}

func NewScene(l Layout) *Scene {
	return &Scene{Layout: l, index: map[string]int{}}
}

func (s *Scene) SetClip(r Rect)  { s.clip, s.hasClip = r, true }
func (s *Scene) Path(p PathSpec) { s.put(p) }
func (s *Scene) Axis(a AxisSpec) { s.put(a) }
func (s *Scene) Text(t TextSpec) { s.put(t) }

// Clip returns the clip region and whether one was set.
func (s *Scene) Clip() (Rect, bool) { return s.clip, s.hasClip }

func (s *Scene) Elements() []Element { return s.elems }

// Lookup returns the element with the given id.
func (s *Scene) Lookup(id string) (Element, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.elems[i], true
}

func (s *Scene) put(e Element) {
	if i, ok := s.index[e.ElementID()]; ok {
		s.elems[i] = e
		return
	}
	s.index[e.ElementID()] = len(s.elems)
	s.elems = append(s.elems, e)
}
