// Package ui is a retained-mode widget tree: elements are measured and
// arranged in a two-pass layout, drawn onto a Surface and fed input through
// the managers of their Context.
package ui

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

// Element is a node of the visual tree. Concrete elements embed Base (or a
// type built on it) and override the *Override hooks they need.
type Element interface {
	Node() *Base

	MeasureOverride(avail geom.Size) geom.Size
	ArrangeOverride(final geom.Rect) geom.Rect
	UpdateOverride(dt float64)
	DrawOverride(s Surface)

	// OnLoaded runs after the first Arrange since the element was attached.
	OnLoaded()
	// OnUnloaded runs when a loaded element leaves its parent, before the
	// parent reference is cleared.
	OnUnloaded()
}

// container is implemented by elements that own children.
type container interface {
	visitChildren(fn func(Element))
	detachChild(child Element)
}

// clipper narrows the clip rectangle used while drawing.
type clipper interface {
	clipRect() geom.Rect
}

// Base holds the layout state shared by every element.
type Base struct {
	self   Element
	parent Element
	ctx    *Context // roots only

	desired geom.Size
	bounds  geom.Rect
	actualW float32
	actualH float32

	margin    geom.Thickness
	padding   geom.Thickness
	width     float32
	height    float32
	hasWidth  bool
	hasHeight bool
	hAlign    Align
	vAlign    Align

	hidden      bool
	disabled    bool
	noClip      bool
	updateOrder int
	drawOrder   int

	background    colors.Color
	hasBackground bool
	style         string
	resources     Resources

	lastMeasure geom.Size
	lastArrange geom.Rect
	hasMeasure  bool
	hasArrange  bool
	loaded      bool
	invalidated bool
}

// Init binds b to the element that embeds it. Every constructor calls it
// before the element is used.
func (b *Base) Init(self Element) { b.self = self }

func (b *Base) Node() *Base { return b }

func (b *Base) elem() Element {
	if b.self == nil {
		return b
	}
	return b.self
}

func (b *Base) Parent() Element            { return b.parent }
func (b *Base) DesiredSize() geom.Size     { return b.desired }
func (b *Base) Bounds() geom.Rect          { return b.bounds }
func (b *Base) ActualWidth() float32       { return b.actualW }
func (b *Base) ActualHeight() float32      { return b.actualH }
func (b *Base) Margin() geom.Thickness     { return b.margin }
func (b *Base) Padding() geom.Thickness    { return b.padding }
func (b *Base) HorizontalAlignment() Align { return b.hAlign }
func (b *Base) VerticalAlignment() Align   { return b.vAlign }
func (b *Base) Enabled() bool              { return !b.disabled }
func (b *Base) ClipToBounds() bool         { return !b.noClip }
func (b *Base) UpdateOrder() int           { return b.updateOrder }
func (b *Base) DrawOrder() int             { return b.drawOrder }
func (b *Base) IsLoaded() bool             { return b.loaded }
func (b *Base) Style() string              { return b.style }

// Width returns the explicit width, if one is set.
func (b *Base) Width() (float32, bool)  { return b.width, b.hasWidth }
func (b *Base) Height() (float32, bool) { return b.height, b.hasHeight }

func (b *Base) Background() (colors.Color, bool) { return b.background, b.hasBackground }

// Visible is false when the element or any ancestor is hidden.
func (b *Base) Visible() bool {
	if b.hidden {
		return false
	}
	if b.parent != nil {
		return b.parent.Node().Visible()
	}
	return true
}

// Context returns the Context of the tree's root, or nil while detached.
func (b *Base) Context() *Context {
	n := b
	for n.parent != nil {
		n = n.parent.Node()
	}
	return n.ctx
}

func (b *Base) SetMargin(t geom.Thickness) {
	if b.margin != t {
		b.margin = t
		b.InvalidateVisual()
	}
}

func (b *Base) SetPadding(t geom.Thickness) {
	if b.padding != t {
		b.padding = t
		b.InvalidateVisual()
	}
}

func (b *Base) SetWidth(w float32) {
	if !b.hasWidth || b.width != w {
		b.width, b.hasWidth = w, true
		b.InvalidateVisual()
	}
}

func (b *Base) SetHeight(h float32) {
	if !b.hasHeight || b.height != h {
		b.height, b.hasHeight = h, true
		b.InvalidateVisual()
	}
}

// ClearWidth returns the width to automatic sizing.
func (b *Base) ClearWidth() {
	if b.hasWidth {
		b.hasWidth = false
		b.InvalidateVisual()
	}
}

func (b *Base) ClearHeight() {
	if b.hasHeight {
		b.hasHeight = false
		b.InvalidateVisual()
	}
}

func (b *Base) SetHorizontalAlignment(a Align) {
	if b.hAlign != a {
		b.hAlign = a
		b.InvalidateVisual()
	}
}

func (b *Base) SetVerticalAlignment(a Align) {
	if b.vAlign != a {
		b.vAlign = a
		b.InvalidateVisual()
	}
}

func (b *Base) SetVisible(v bool) {
	if b.hidden == v {
		b.hidden = !v
		b.InvalidateVisual()
	}
}

func (b *Base) SetEnabled(v bool) {
	if b.disabled == v {
		b.disabled = !v
		b.InvalidateVisual()
	}
}

func (b *Base) SetClipToBounds(v bool) {
	if b.noClip == v {
		b.noClip = !v
		b.InvalidateVisual()
	}
}

func (b *Base) SetUpdateOrder(v int) {
	if b.updateOrder != v {
		b.updateOrder = v
		b.InvalidateVisual()
	}
}

func (b *Base) SetDrawOrder(v int) {
	if b.drawOrder != v {
		b.drawOrder = v
		b.InvalidateVisual()
	}
}

func (b *Base) SetBackground(c colors.Color) {
	if !b.hasBackground || b.background != c {
		b.background, b.hasBackground = c, true
		b.InvalidateVisual()
	}
}

func (b *Base) ClearBackground() {
	if b.hasBackground {
		b.hasBackground = false
		b.InvalidateVisual()
	}
}

// SetStyle names the theme section resource lookups fall back to.
func (b *Base) SetStyle(name string) { b.style = name }

// Measure computes the desired size for avail, which includes margins.
func (b *Base) Measure(avail geom.Size) {
	b.lastMeasure, b.hasMeasure = avail, true
	content := geom.Size{
		W: max(0, avail.W-b.margin.Horizontal()),
		H: max(0, avail.H-b.margin.Vertical()),
	}
	if !b.Visible() {
		content = geom.Size{}
	}
	b.desired = b.elem().MeasureOverride(content)
}

// Arrange places the element inside final and loads it the first time.
func (b *Base) Arrange(final geom.Rect) {
	b.lastArrange, b.hasArrange = final, true
	e := b.elem()
	b.bounds = e.ArrangeOverride(final)
	b.actualW = float32(max(0, b.bounds.W))
	b.actualH = float32(max(0, b.bounds.H))
	if !b.loaded {
		b.loaded = true
		e.OnLoaded()
	}
}

// MeasureOverride sizes a leaf: the explicit size or just its padding.
func (b *Base) MeasureOverride(avail geom.Size) geom.Size {
	return b.resolveDesired(geom.Size{}, avail)
}

// ArrangeOverride sizes and aligns the element inside final.
func (b *Base) ArrangeOverride(final geom.Rect) geom.Rect {
	w := arrangeLength(b.hasWidth, b.width, b.hAlign, b.desired.W, final.W)
	h := arrangeLength(b.hasHeight, b.height, b.vAlign, b.desired.H, final.H)
	return geom.Rect{
		X: alignOffset(b.hAlign, final.X, final.W, w),
		Y: alignOffset(b.vAlign, final.Y, final.H, h),
		W: w,
		H: h,
	}
}

func arrangeLength(explicit bool, size float32, a Align, desired float32, final int) int {
	switch {
	case explicit:
		return int(min(size, float32(final)))
	case a == Stretch:
		return final
	}
	return int(min(desired, float32(final)))
}

func alignOffset(a Align, pos, final, size int) int {
	switch a {
	case Center:
		return pos + (final-size)/2
	case End:
		return pos + final - size
	}
	return pos
}

func (b *Base) UpdateOverride(dt float64) {}

// DrawOverride fills the background, if any.
func (b *Base) DrawOverride(s Surface) {
	if b.hasBackground {
		s.FillRect(b.bounds, b.background)
	}
}

func (b *Base) OnLoaded()   {}
func (b *Base) OnUnloaded() {}

// UpdateLayout runs a full measure and arrange pass at the origin.
func (b *Base) UpdateLayout(size geom.Size) {
	b.layoutAt(size, geom.Rect{W: int(size.W), H: int(size.H)})
}

func (b *Base) layoutAt(size geom.Size, r geom.Rect) {
	if ctx := b.Context(); ctx != nil {
		ctx.checkOwner()
	}
	b.Measure(size)
	b.Arrange(r)
}

// InvalidateVisual schedules a new layout. A child of a Canvas with cached
// layout inputs is re-laid out on its own during its next Update; anything
// else propagates to the root.
func (b *Base) InvalidateVisual() {
	if b.parent == nil {
		if b.hasMeasure {
			b.invalidated = true
		}
		return
	}
	if _, ok := b.parent.(*Canvas); ok && b.hasMeasure && b.hasArrange {
		b.invalidated = true
		return
	}
	b.hasMeasure, b.hasArrange = false, false
	b.parent.Node().InvalidateVisual()
}

// Update re-runs any pending layout, then the element's own update.
func (b *Base) Update(dt float64) {
	if b.invalidated {
		switch {
		case b.parent == nil && b.loaded:
			b.invalidated = false
			b.UpdateLayout(geom.Size{W: b.actualW, H: b.actualH})
		case b.parent != nil && b.hasMeasure && b.hasArrange:
			b.invalidated = false
			b.layoutAt(b.lastMeasure, b.lastArrange)
		}
	}
	b.elem().UpdateOverride(dt)
}

// Draw draws the element clipped to its bounds (unless clipping is off).
func (b *Base) Draw(s Surface) {
	if !b.Visible() {
		return
	}
	e := b.elem()
	if b.noClip {
		e.DrawOverride(s)
		return
	}
	r := b.bounds
	if c, ok := e.(clipper); ok {
		r = c.clipRect()
	}
	if r.Empty() {
		return
	}
	s.PushClip(r)
	e.DrawOverride(s)
	s.PopClip()
}

func (b *Base) setParent(p Element) {
	if b.parent == p {
		return
	}
	if b.loaded {
		unloadTree(b.elem())
	}
	b.parent = p
	b.hasMeasure, b.hasArrange = false, false
}

func unloadTree(e Element) {
	n := e.Node()
	if !n.loaded {
		return
	}
	n.loaded = false
	if f, ok := e.(input.Focusable); ok {
		if ctx := n.Context(); ctx != nil && ctx.Focus.IsFocused(f) {
			ctx.Focus.ClearFocus()
		}
	}
	e.OnUnloaded()
	if c, ok := e.(container); ok {
		c.visitChildren(unloadTree)
	}
}

// attach makes parent the parent of child. A child that belongs elsewhere
// is rejected.
func attach(parent, child Element) {
	n := child.Node()
	if n.parent == parent {
		return
	}
	if n.parent != nil {
		panic(&ParentError{Child: child, Parent: n.parent, Request: parent})
	}
	n.setParent(parent)
}

// detach removes e from whatever holds it.
func detach(e Element) {
	p := e.Node().parent
	if p == nil {
		return
	}
	if c, ok := p.(container); ok {
		c.detachChild(e)
		return
	}
	e.Node().setParent(nil)
}

// isAncestor reports whether a is e or one of e's ancestors.
func isAncestor(a, e Element) bool {
	for e != nil {
		if e == a {
			return true
		}
		e = e.Node().parent
	}
	return false
}
