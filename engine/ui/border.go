package ui

import "github.com/hubastard/groveui/engine/geom"

// BorderThickness is the width of the bevel strips a Border draws.
const BorderThickness = 4

// Border decorates a single child with a background and a two-tone bevel:
// "Border.TopLeft" along the top and left edges, "Border.BottomRight" along
// the bottom and right edges.
type Border struct {
	Base
	Common[*Border]
	child Element
}

func NewBorder(child Element) *Border {
	b := &Border{}
	b.Init(b)
	b.Common = NewCommon(b)
	b.style = "Border"
	b.SetChild(child)
	return b
}

func (b *Border) Child() Element { return b.child }

// SetChild replaces the child. The old child is detached; a new child that
// belongs to another parent panics with *ParentError.
func (b *Border) SetChild(c Element) {
	if b.child == c {
		return
	}
	if c != nil {
		attach(b.elem(), c)
	}
	if old := b.child; old != nil {
		old.Node().setParent(nil)
	}
	b.child = c
	b.InvalidateVisual()
}

func (b *Border) visitChildren(fn func(Element)) {
	if b.child != nil {
		fn(b.child)
	}
}

func (b *Border) detachChild(c Element) {
	if b.child == c {
		b.SetChild(nil)
	}
}

func (b *Border) MeasureOverride(avail geom.Size) geom.Size {
	var content geom.Size
	if b.child != nil {
		n := b.child.Node()
		n.Measure(b.childAvailable(avail))
		content = n.outer()
	}
	return b.resolveDesired(content, avail)
}

func (b *Border) ArrangeOverride(final geom.Rect) geom.Rect {
	bounds := b.Base.ArrangeOverride(final)
	if b.child != nil {
		b.child.Node().Arrange(b.slot(bounds, b.child))
	}
	return bounds
}

func (b *Border) UpdateOverride(dt float64) {
	if b.child != nil {
		b.child.Node().Update(dt)
	}
}

func (b *Border) DrawOverride(s Surface) {
	b.Base.DrawOverride(s)
	r := b.bounds
	const t = BorderThickness
	br := b.ResourceColor("Border.BottomRight")
	s.FillRect(geom.Rect{X: r.X, Y: r.Bottom() - t, W: r.W, H: t}, br)
	s.FillRect(geom.Rect{X: r.Right() - t, Y: r.Y, W: t, H: r.H - t}, br)
	tl := b.ResourceColor("Border.TopLeft")
	s.FillRect(geom.Rect{X: r.X, Y: r.Y, W: r.W, H: t}, tl)
	s.FillRect(geom.Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - t}, tl)
	if b.child != nil {
		b.child.Node().Draw(s)
	}
}
