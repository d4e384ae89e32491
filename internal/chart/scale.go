package chart

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scale maps a continuous domain linearly onto a pixel range.
type Scale struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Scale {
	return Scale{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s Scale) Domain() (float64, float64) { return s.d0, s.d1 }
func (s Scale) Range() (float64, float64)  { return s.r0, s.r1 }

// Map returns the pixel position of v. A zero-width domain maps every
// number to the middle of the range; NaN maps to NaN.
func (s Scale) Map(v float64) float64 {
	return s.r0 + normalize(s.d0, s.d1, v)*(s.r1-s.r0)
}

// Invert returns the domain value at pixel px.
func (s Scale) Invert(px float64) float64 {
	t := normalize(s.r0, s.r1, px)
	return s.d0 + t*(s.d1-s.d0)
}

func normalize(a, b, x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if d := b - a; d != 0 {
		return (x - a) / d
	}
	if math.IsNaN(a) {
		return math.NaN()
	}
	return 0.5
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// jsRound rounds half up, unlike math.Round which rounds half away from zero.
func jsRound(x float64) float64 { return math.Floor(x + 0.5) }

// tickSpec picks a 1, 2 or 5 x 10^k step. A negative inc means the step is
// 1/-inc.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = jsRound(start * inc)
		i2 = jsRound(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = jsRound(start / inc)
		i2 = jsRound(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns about count round values inside the domain, in domain order.
func (s Scale) Ticks(count int) []float64 {
	start, stop, n := s.d0, s.d1, float64(count)
	if !(n > 0) || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, n)
	if !(i2 >= i1) || math.IsInf(inc, 0) || inc == 0 {
		return nil
	}
	size := int(i2-i1) + 1
	out := make([]float64, size)
	for i := range out {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			out[i] = k / -inc
		} else {
			out[i] = k * inc
		}
	}
	return out
}

// TickStep is the distance between the values Ticks(count) returns.
func (s Scale) TickStep(count int) float64 {
	start, stop := s.d0, s.d1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		step = -step
	}
	return step
}

// TickFormat returns a formatter with just enough decimals for the tick
// step and English digit grouping.
func (s Scale) TickFormat(count int) func(float64) string {
	prec := 0
	if step := math.Abs(s.TickStep(count)); step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step) {
		prec = max(0, -int(math.Floor(math.Log10(step))))
	}
	p := message.NewPrinter(language.English)
	verb := fmt.Sprintf("%%.%df", prec)
	return func(v float64) string {
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		if prec == 0 {
			return p.Sprintf("%.0f", jsRound(v))
		}
		return p.Sprintf(verb, v)
	}
}
