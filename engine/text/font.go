package text

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

// GlyphDrawer is the quad sink fonts draw into. renderer2d.Renderer2D
// satisfies it; (x, y) is the top-left corner in pixels and uv holds
// u0, v0, u1, v1.
type GlyphDrawer interface {
	DrawQuad(x, y, w, h float32, color colors.Color)
	DrawGlyph(x, y, w, h float32, tex core.Texture, tint colors.Color, uv [4]float32)
}

// FontFamily is everything layout needs from a font: measure a run, the
// distance between baselines, and draw a run with its top-left at pos.
type FontFamily interface {
	Measure(s string) (w, h float32)
	LineSpacing() float32
	Draw(dst GlyphDrawer, s string, pos geom.Point, color colors.Color)
}

type Wrapping int

const (
	NoWrap Wrapping = iota
	Wrap
)

func (w Wrapping) String() string {
	if w == Wrap {
		return "wrap"
	}
	return "nowrap"
}
