package ui

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

// Common adds chainable setters to an element type. Embed it next to the
// element's Base-carrying type and bind it with NewCommon.
type Common[T Element] struct {
	owner T
}

func NewCommon[T Element](owner T) Common[T] { return Common[T]{owner: owner} }

func (c *Common[T]) WithSize(w, h float32) T {
	n := c.owner.Node()
	n.SetWidth(w)
	n.SetHeight(h)
	return c.owner
}

func (c *Common[T]) WithWidth(w float32) T  { c.owner.Node().SetWidth(w); return c.owner }
func (c *Common[T]) WithHeight(h float32) T { c.owner.Node().SetHeight(h); return c.owner }

func (c *Common[T]) WithMargin(all float32) T {
	c.owner.Node().SetMargin(geom.Uniform(all))
	return c.owner
}

func (c *Common[T]) WithMargin4(left, top, right, bottom float32) T {
	c.owner.Node().SetMargin(geom.Thickness{L: left, T: top, R: right, B: bottom})
	return c.owner
}

func (c *Common[T]) WithPadding(all float32) T {
	c.owner.Node().SetPadding(geom.Uniform(all))
	return c.owner
}

func (c *Common[T]) WithPadding2(horizontal, vertical float32) T {
	c.owner.Node().SetPadding(geom.Symmetric(horizontal, vertical))
	return c.owner
}

func (c *Common[T]) WithPadding4(left, top, right, bottom float32) T {
	c.owner.Node().SetPadding(geom.Thickness{L: left, T: top, R: right, B: bottom})
	return c.owner
}

func (c *Common[T]) WithAlign(h, v Align) T {
	n := c.owner.Node()
	n.SetHorizontalAlignment(h)
	n.SetVerticalAlignment(v)
	return c.owner
}

func (c *Common[T]) WithBackground(col colors.Color) T {
	c.owner.Node().SetBackground(col)
	return c.owner
}

func (c *Common[T]) WithVisible(v bool) T { c.owner.Node().SetVisible(v); return c.owner }
func (c *Common[T]) WithEnabled(v bool) T { c.owner.Node().SetEnabled(v); return c.owner }

func (c *Common[T]) WithOrder(update, draw int) T {
	n := c.owner.Node()
	n.SetUpdateOrder(update)
	n.SetDrawOrder(draw)
	return c.owner
}

// WithResource overrides one resource of the element.
func (c *Common[T]) WithResource(key string, v any) T {
	c.owner.Node().Resources()[key] = v
	return c.owner
}
