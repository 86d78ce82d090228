package ui

import (
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

// Control hosts a template-built subtree and can take focus. The template
// is applied lazily on the first Measure after it changes.
type Control struct {
	Base
	template  Template
	applied   bool
	root      Element
	focusable bool
	gotFocus  []func()
	lostFocus []func()
}

func (c *Control) Template() Template { return c.template }

// TemplateRoot returns the element the template built, if applied.
func (c *Control) TemplateRoot() Element { return c.root }

func (c *Control) SetTemplate(t Template) {
	c.template = t
	c.applied = false
	c.InvalidateVisual()
}

// invalidateTemplate forces the template to be rebuilt on the next Measure.
func (c *Control) invalidateTemplate() {
	c.applied = false
	c.InvalidateVisual()
}

// ApplyTemplate builds the template now if it is not applied yet.
func (c *Control) ApplyTemplate() {
	if c.applied {
		return
	}
	c.applied = true
	var root Element
	if c.template != nil {
		root = c.template.Build(c.elem())
	}
	if old := c.root; old != nil && old != root {
		old.Node().setParent(nil)
	}
	c.root = root
	if root != nil {
		attach(c.elem(), root)
	}
}

func (c *Control) visitChildren(fn func(Element)) {
	if c.root != nil {
		fn(c.root)
	}
}

func (c *Control) detachChild(e Element) {
	if c.root == e {
		e.Node().setParent(nil)
		c.root = nil
		c.invalidateTemplate()
	}
}

func (c *Control) MeasureOverride(avail geom.Size) geom.Size {
	inner := c.childAvailable(avail)
	c.ApplyTemplate()
	var content geom.Size
	if c.root != nil {
		n := c.root.Node()
		n.Measure(inner)
		content = n.outer()
	}
	return c.resolveDesired(content, avail)
}

func (c *Control) ArrangeOverride(final geom.Rect) geom.Rect {
	bounds := c.Base.ArrangeOverride(final)
	c.arrangeRoot(bounds)
	return bounds
}

func (c *Control) arrangeRoot(bounds geom.Rect) {
	if c.root != nil {
		c.root.Node().Arrange(c.slot(bounds, c.root))
	}
}

func (c *Control) UpdateOverride(dt float64) {
	if c.root != nil {
		c.root.Node().Update(dt)
	}
}

func (c *Control) DrawOverride(s Surface) {
	c.Base.DrawOverride(s)
	if c.root != nil {
		c.root.Node().Draw(s)
	}
}

func (c *Control) Focusable() bool { return c.focusable }

func (c *Control) SetFocusable(v bool) { c.focusable = v }

// IsFocused reports whether the control holds focus in its Context.
func (c *Control) IsFocused() bool {
	ctx := c.Context()
	f, ok := c.elem().(input.Focusable)
	return ctx != nil && ok && ctx.Focus.IsFocused(f)
}

// Focus asks the Context to move focus here.
func (c *Control) Focus() bool {
	ctx := c.Context()
	f, ok := c.elem().(input.Focusable)
	return ctx != nil && ok && ctx.Focus.SetFocus(f)
}

func (c *Control) GotFocus() {
	for _, fn := range c.gotFocus {
		fn()
	}
}

func (c *Control) LostFocus() {
	for _, fn := range c.lostFocus {
		fn()
	}
}

func (c *Control) OnGotFocus(fn func())  { c.gotFocus = append(c.gotFocus, fn) }
func (c *Control) OnLostFocus(fn func()) { c.lostFocus = append(c.lostFocus, fn) }

// registerPointer and unregisterPointer connect the control to the
// pointer manager of its Context; call them from OnLoaded and OnUnloaded.
func (c *Control) registerPointer() {
	if ctx := c.Context(); ctx != nil {
		if r, ok := c.elem().(input.PointerReceiver); ok {
			ctx.Pointer.Register(r)
		}
	}
}

func (c *Control) unregisterPointer() {
	if ctx := c.Context(); ctx != nil {
		if r, ok := c.elem().(input.PointerReceiver); ok {
			ctx.Pointer.Unregister(r)
		}
	}
}
