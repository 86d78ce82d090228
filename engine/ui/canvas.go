package ui

import "github.com/hubastard/groveui/engine/geom"

// Canvas stacks every child over the same padded area; each child places
// itself with its own margin and alignment. A Canvas does not grow with its
// children, so a child's layout change stays local to that child.
type Canvas struct {
	Panel
	Common[*Canvas]
}

func NewCanvas(children ...Element) *Canvas {
	c := &Canvas{}
	c.Init(c)
	c.Common = NewCommon(c)
	c.Add(children...)
	return c
}

func (c *Canvas) MeasureOverride(avail geom.Size) geom.Size {
	inner := c.childAvailable(avail)
	for _, ch := range c.children {
		ch.Node().Measure(inner)
	}
	return c.resolveDesired(geom.Size{}, avail)
}

func (c *Canvas) ArrangeOverride(final geom.Rect) geom.Rect {
	bounds := c.Base.ArrangeOverride(final)
	for i := len(c.children) - 1; i >= 0; i-- {
		ch := c.children[i]
		ch.Node().Arrange(c.slot(bounds, ch))
	}
	return bounds
}
