package ui

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/text"
)

// Surface is the draw target of a tree. Clip rectangles nest: PushClip
// intersects r with the current clip and PopClip restores the previous one.
type Surface interface {
	text.GlyphDrawer
	FillRect(r geom.Rect, c colors.Color)
	PushClip(r geom.Rect)
	PopClip()
}
