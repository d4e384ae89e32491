package chart

type Margins struct {
	Top, Right, Bottom, Left float64
}

// Layout is the drawable canvas. Everything inside the margins is the inner
// plot area; scales map onto it.
type Layout struct {
	Width, Height float64
	Margin        Margins
	// Overscan lets panning reach past the right end of the data.
	Overscan float64
}

func DefaultLayout() Layout {
	return Layout{
		Width:    980,
		Height:   670,
		Margin:   Margins{Top: 50, Right: 50, Bottom: 50, Left: 50},
		Overscan: 100,
	}
}

func (l Layout) InnerWidth() float64  { return l.Width - l.Margin.Left - l.Margin.Right }
func (l Layout) InnerHeight() float64 { return l.Height - l.Margin.Top - l.Margin.Bottom }

// Viewport is the inner plot area in inner coordinates.
func (l Layout) Viewport() Rect {
	return Rect{X1: l.InnerWidth(), Y1: l.InnerHeight()}
}

// Zoom returns the gesture bounds for this layout. The translate extent runs
// Overscan units past the inner width, so the view can pan into it at 1x.
func (l Layout) Zoom(minK, maxK float64) Zoom {
	return Zoom{
		ScaleExtent:     [2]float64{minK, maxK},
		Extent:          l.Viewport(),
		TranslateExtent: Rect{X1: l.InnerWidth() + l.Overscan, Y1: l.InnerHeight()},
	}
}
