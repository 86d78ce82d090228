package text

import (
	"strings"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/mattn/go-runewidth"
)

// CellFont is a fixed-grid font: every rune occupies runewidth cells of
// CellW pixels. It draws runes as solid blocks, which is enough for
// headless hosts and layout tests.
type CellFont struct {
	CellW, CellH float32
}

func NewCellFont(cellW, cellH float32) *CellFont { return &CellFont{CellW: cellW, CellH: cellH} }

func (f *CellFont) Measure(s string) (w, h float32) {
	if s == "" {
		return 0, f.CellH
	}
	lines := strings.Split(s, "\n")
	var widest int
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	return float32(widest) * f.CellW, float32(len(lines)) * f.CellH
}

func (f *CellFont) LineSpacing() float32 { return f.CellH }

func (f *CellFont) Draw(dst GlyphDrawer, s string, pos geom.Point, color colors.Color) {
	x := pos.X
	for _, r := range s {
		cw := float32(runewidth.RuneWidth(r)) * f.CellW
		if cw > 0 && r != ' ' && r != '\t' {
			dst.DrawQuad(x, pos.Y+1, cw-1, f.CellH-2, color)
		}
		x += cw
	}
}
