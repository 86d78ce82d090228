package ui

import "github.com/hubastard/groveui/engine/geom"

// Align positions an element inside the rectangle its parent offers.
// The zero value stretches to fill it.
type Align int

const (
	Stretch Align = iota
	Start
	Center
	End
)

func (a Align) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	}
	return "Stretch"
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// childAvailable is the space left for content once padding (and an
// explicit size) are taken into account.
func (b *Base) childAvailable(avail geom.Size) geom.Size {
	w := max(0, avail.W-b.padding.Horizontal())
	h := max(0, avail.H-b.padding.Vertical())
	if b.hasWidth {
		w = max(0, min(b.width-b.padding.Horizontal(), w))
	}
	if b.hasHeight {
		h = max(0, min(b.height-b.padding.Vertical(), h))
	}
	return geom.Size{W: w, H: h}
}

// resolveDesired wraps content in padding unless an explicit size is set,
// and never exceeds avail.
func (b *Base) resolveDesired(content, avail geom.Size) geom.Size {
	w := b.padding.Horizontal() + content.W
	if b.hasWidth {
		w = b.width
	}
	h := b.padding.Vertical() + content.H
	if b.hasHeight {
		h = b.height
	}
	return geom.Size{W: min(w, avail.W), H: min(h, avail.H)}
}

// outer is the desired size plus margins.
func (b *Base) outer() geom.Size {
	return geom.Size{
		W: b.desired.W + b.margin.Horizontal(),
		H: b.desired.H + b.margin.Vertical(),
	}
}

// slot is the rectangle a single child receives inside bounds.
func (b *Base) slot(bounds geom.Rect, child Element) geom.Rect {
	return bounds.Shrink(b.padding).Shrink(child.Node().margin)
}
