package ui

import "github.com/hubastard/groveui/engine/geom"

// Stack lines its children up along one axis, separated by Spacing. On
// the cross axis every child stretches to the content width (or height).
type Stack struct {
	Panel
	Common[*Stack]
	orientation Orientation
	spacing     float32
}

func NewStack(o Orientation, children ...Element) *Stack {
	s := &Stack{orientation: o}
	s.Init(s)
	s.Common = NewCommon(s)
	s.Add(children...)
	return s
}

func VStack(children ...Element) *Stack { return NewStack(Vertical, children...) }
func HStack(children ...Element) *Stack { return NewStack(Horizontal, children...) }

func (s *Stack) Orientation() Orientation { return s.orientation }
func (s *Stack) Spacing() float32         { return s.spacing }

func (s *Stack) SetOrientation(o Orientation) {
	if s.orientation != o {
		s.orientation = o
		s.InvalidateVisual()
	}
}

func (s *Stack) SetSpacing(v float32) {
	if s.spacing != v {
		s.spacing = v
		s.InvalidateVisual()
	}
}

func (s *Stack) WithSpacing(v float32) *Stack { s.SetSpacing(v); return s }

func (s *Stack) MeasureOverride(avail geom.Size) geom.Size {
	inner := s.childAvailable(avail)
	if s.orientation == Vertical {
		inner.H = geom.Inf
	} else {
		inner.W = geom.Inf
	}
	var total, cross float32
	for _, c := range s.children {
		n := c.Node()
		n.Measure(inner)
		o := n.outer()
		if s.orientation == Vertical {
			total += o.H + s.spacing
			cross = max(cross, o.W)
		} else {
			total += o.W + s.spacing
			cross = max(cross, o.H)
		}
	}
	if len(s.children) > 0 {
		total -= s.spacing
	}
	content := geom.Size{W: cross, H: total}
	if s.orientation == Horizontal {
		content = geom.Size{W: total, H: cross}
	}
	return s.resolveDesired(content, avail)
}

func (s *Stack) ArrangeOverride(final geom.Rect) geom.Rect {
	bounds := s.Base.ArrangeOverride(final)
	content := bounds.Shrink(s.padding)
	if s.orientation == Vertical {
		cur := float32(content.Y)
		for i, c := range s.children {
			n := c.Node()
			m := n.margin
			if i > 0 {
				cur += s.spacing
			}
			n.Arrange(geom.Rect{
				X: content.X + int(m.L),
				Y: int(cur + m.T),
				W: max(0, content.W-int(m.L+m.R)),
				H: int(n.desired.H),
			})
			cur += m.T + n.desired.H + m.B
		}
		return bounds
	}
	cur := float32(content.X)
	for i, c := range s.children {
		n := c.Node()
		m := n.margin
		if i > 0 {
			cur += s.spacing
		}
		n.Arrange(geom.Rect{
			X: int(cur + m.L),
			Y: content.Y + int(m.T),
			W: int(n.desired.W),
			H: max(0, content.H-int(m.T+m.B)),
		})
		cur += m.L + n.desired.W + m.R
	}
	return bounds
}
