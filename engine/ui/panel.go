package ui

import (
	"cmp"
	"slices"

	"github.com/hubastard/groveui/engine/geom"
)

// Panel owns an ordered list of children. Children update in UpdateOrder
// and draw in DrawOrder; ties keep insertion order.
type Panel struct {
	Base
	children []Element
	scratch  []Element
}

func (p *Panel) Children() []Element { return p.children }

// Add attaches children at the end. A child that already has a parent
// panics with *ParentError.
func (p *Panel) Add(children ...Element) {
	for _, c := range children {
		attach(p.elem(), c)
		p.children = append(p.children, c)
	}
	p.InvalidateVisual()
}

func (p *Panel) Insert(i int, child Element) {
	attach(p.elem(), child)
	p.children = slices.Insert(p.children, i, child)
	p.InvalidateVisual()
}

// Remove detaches child and reports whether it was a child of p.
func (p *Panel) Remove(child Element) bool {
	i := slices.Index(p.children, child)
	if i < 0 {
		return false
	}
	p.children = slices.Delete(p.children, i, i+1)
	child.Node().setParent(nil)
	p.InvalidateVisual()
	return true
}

func (p *Panel) Clear() {
	for _, c := range p.children {
		c.Node().setParent(nil)
	}
	clear(p.children)
	p.children = p.children[:0]
	p.InvalidateVisual()
}

func (p *Panel) visitChildren(fn func(Element)) {
	for _, c := range p.children {
		fn(c)
	}
}

func (p *Panel) detachChild(child Element) { p.Remove(child) }

func (p *Panel) clipRect() geom.Rect { return p.bounds.Shrink(p.padding) }

func (p *Panel) UpdateOverride(dt float64) {
	for _, c := range p.ordered(func(n *Base) int { return n.updateOrder }) {
		c.Node().Update(dt)
	}
	clear(p.scratch)
}

func (p *Panel) DrawOverride(s Surface) {
	p.Base.DrawOverride(s)
	for _, c := range p.ordered(func(n *Base) int { return n.drawOrder }) {
		c.Node().Draw(s)
	}
	clear(p.scratch)
}

func (p *Panel) ordered(key func(*Base) int) []Element {
	byKey := func(a, b Element) int { return cmp.Compare(key(a.Node()), key(b.Node())) }
	p.scratch = append(p.scratch[:0], p.children...)
	if !slices.IsSortedFunc(p.scratch, byKey) {
		slices.SortStableFunc(p.scratch, byKey)
	}
	return p.scratch
}
