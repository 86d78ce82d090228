// Package geom holds the value types shared by layout, text and input.
package geom

import "math"

// Inf marks an unconstrained dimension in a Size passed to Measure.
var Inf = float32(math.Inf(1))

// IsInf reports whether v is +Inf.
func IsInf(v float32) bool { return math.IsInf(float64(v), 1) }

type Size struct{ W, H float32 }

// Point is a pixel position (y grows downward).
type Point struct{ X, Y float32 }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Thickness is an inset on each edge (margin, padding).
type Thickness struct{ L, T, R, B float32 }

func Uniform(v float32) Thickness      { return Thickness{v, v, v, v} }
func Symmetric(h, v float32) Thickness { return Thickness{h, v, h, v} }

func (t Thickness) Horizontal() float32 { return t.L + t.R }
func (t Thickness) Vertical() float32   { return t.T + t.B }

// Rect is an integer pixel rectangle. Layout truncates toward zero when it
// converts from float sizes.
type Rect struct{ X, Y, W, H int }

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Shrink moves the origin in by the left/top insets and reduces the size by
// both insets of each axis. The result may have a negative size.
func (r Rect) Shrink(t Thickness) Rect {
	r.X += int(t.L)
	r.Y += int(t.T)
	r.W -= int(t.L + t.R)
	r.H -= int(t.T + t.B)
	return r
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= float32(r.X) && p.X < float32(r.Right()) &&
		p.Y >= float32(r.Y) && p.Y < float32(r.Bottom())
}

// ContainsRect reports whether o lies fully inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero Rect when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp[T int | float32 | float64](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
