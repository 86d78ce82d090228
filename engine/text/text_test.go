package text

import (
	"unicode/utf8"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

// recFont is a 10px-per-rune, 16px line font that records Draw calls.
type recFont struct {
	draws []drawCall
}

type drawCall struct {
	s   string
	pos geom.Point
}

func (f *recFont) Measure(s string) (float32, float32) {
	return float32(utf8.RuneCountInString(s)) * 10, 16
}
func (f *recFont) LineSpacing() float32 { return 16 }
func (f *recFont) Draw(_ GlyphDrawer, s string, pos geom.Point, _ colors.Color) {
	f.draws = append(f.draws, drawCall{s, pos})
}

// quadSink counts quads.
type quadSink struct {
	solid, textured int
}

func (q *quadSink) DrawQuad(x, y, w, h float32, c colors.Color) { q.solid++ }
func (q *quadSink) DrawGlyph(x, y, w, h float32, tex core.Texture, tint colors.Color, uv [4]float32) {
	q.textured++
}
