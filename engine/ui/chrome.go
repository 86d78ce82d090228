package ui

import "github.com/hubastard/groveui/engine/input"

// VisualState names the interaction state a control is drawn in.
type VisualState string

const (
	StateNormal           VisualState = "Normal"
	StateMouseOver        VisualState = "MouseOver"
	StatePressed          VisualState = "Pressed"
	StateChecked          VisualState = "Checked"
	StateCheckedMouseOver VisualState = "Checked.MouseOver"
	StateCheckedPressed   VisualState = "Checked.Pressed"
)

// chrome maps a control's visual state onto the bevel Border of its
// template. Colors come from "<prefix>.<state>.Background",
// "<prefix>.<state>.Border.TopLeft" and "<prefix>.<state>.Border.BottomRight";
// the top-left edge is softened except while pressed.
type chrome struct {
	prefix string
	base   VisualState
	state  VisualState
	border *Border
	mapper func(VisualState) VisualState
}

func newChrome(prefix string) chrome {
	return chrome{prefix: prefix, base: StateNormal, state: StateNormal}
}

func (c *chrome) State() VisualState { return c.state }

// set moves to base (before mapping) and repaints on change.
func (c *chrome) set(owner *Base, base VisualState) {
	c.base = base
	s := base
	if c.mapper != nil {
		s = c.mapper(base)
	}
	if s == c.state {
		return
	}
	c.state = s
	c.apply(owner)
}

// refresh re-runs the mapping for the current base state.
func (c *chrome) refresh(owner *Base) { c.set(owner, c.base) }

func (c *chrome) apply(owner *Base) {
	if c.border == nil {
		return
	}
	key := c.prefix + "." + string(c.state) + "."
	tl := owner.ResourceColor(key + "Border.TopLeft")
	if c.state != StatePressed && c.state != StateCheckedPressed {
		tl = tl.WithOpacity(0.75)
	}
	c.border.SetBackground(owner.ResourceColor(key + "Background"))
	res := c.border.Resources()
	res["Border.TopLeft"] = tl
	res["Border.BottomRight"] = owner.ResourceColor(key + "Border.BottomRight")
	c.border.InvalidateVisual()
}

// pointer runs the hover/press transitions shared by pressable controls.
func (c *chrome) pointer(owner *Base, e input.PointerEvent) {
	switch e.Kind {
	case input.PointerDown:
		c.set(owner, StatePressed)
	case input.PointerUp, input.PointerEnter:
		c.set(owner, StateMouseOver)
	case input.PointerLeave:
		c.set(owner, StateNormal)
	}
}
