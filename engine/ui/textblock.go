package ui

import (
	"sort"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/text"
)

// TextBlock shows read-only text, one logical line per "\n", optionally
// wrapped to the available width. Only the lines intersecting the parent's
// bounds are drawn.
type TextBlock struct {
	Base
	Common[*TextBlock]
	doc           *text.Document
	foreground    colors.Color
	hasForeground bool
	counts        []int
}

func NewTextBlock(s string) *TextBlock {
	t := &TextBlock{doc: text.NewDocument(s, nil, text.NoWrap)}
	t.Init(t)
	t.Common = NewCommon(t)
	t.style = "TextBlock"
	return t
}

// Document exposes the lines for editing. Call InvalidateVisual after
// changing them.
func (t *TextBlock) Document() *text.Document { return t.doc }

func (t *TextBlock) Text() string            { return t.doc.String() }
func (t *TextBlock) Font() text.FontFamily   { return t.doc.Font() }
func (t *TextBlock) Wrapping() text.Wrapping { return t.doc.Wrapping() }

func (t *TextBlock) SetText(s string) {
	if t.doc.String() == s {
		return
	}
	t.doc.SetText(s)
	t.InvalidateVisual()
}

func (t *TextBlock) SetFont(f text.FontFamily) {
	if t.doc.Font() != f {
		t.doc.SetFont(f)
		t.InvalidateVisual()
	}
}

func (t *TextBlock) SetWrapping(w text.Wrapping) {
	if t.doc.Wrapping() != w {
		t.doc.SetWrapping(w)
		t.InvalidateVisual()
	}
}

// Foreground is the text color: the explicit one, else the theme's.
func (t *TextBlock) Foreground() colors.Color {
	if t.hasForeground {
		return t.foreground
	}
	return t.ResourceColor("TextBlock.Foreground")
}

func (t *TextBlock) SetForeground(c colors.Color) {
	if !t.hasForeground || t.foreground != c {
		t.foreground, t.hasForeground = c, true
		t.InvalidateVisual()
	}
}

func (t *TextBlock) WithFont(f text.FontFamily) *TextBlock    { t.SetFont(f); return t }
func (t *TextBlock) WithWrapping(w text.Wrapping) *TextBlock  { t.SetWrapping(w); return t }
func (t *TextBlock) WithForeground(c colors.Color) *TextBlock { t.SetForeground(c); return t }

// font resolves the font, adopting the Context default when none is set.
func (t *TextBlock) font() text.FontFamily {
	if f := t.doc.Font(); f != nil {
		return f
	}
	if ctx := t.Context(); ctx != nil && ctx.DefaultFont != nil {
		t.doc.SetFont(ctx.DefaultFont)
	}
	return t.doc.Font()
}

func (t *TextBlock) MeasureOverride(avail geom.Size) geom.Size {
	if t.font() == nil || len(t.doc.Lines) == 0 {
		return t.resolveDesired(geom.Size{}, avail)
	}
	inner := geom.Size{
		W: max(0, avail.W-t.padding.Horizontal()),
		H: max(0, avail.H-t.padding.Vertical()),
	}
	var content geom.Size
	for _, l := range t.doc.Lines {
		sz := l.Measure(inner)
		content.W = max(content.W, sz.W)
		content.H += sz.H
	}
	t.counts = t.doc.SubLineCounts(t.counts)
	return t.resolveDesired(content, avail)
}

func (t *TextBlock) DrawOverride(s Surface) {
	t.Base.DrawOverride(s)
	f := t.doc.Font()
	area := t.bounds.Shrink(t.padding)
	if f == nil || area.Empty() || len(t.counts) != len(t.doc.Lines) {
		return
	}
	window := t.bounds
	if t.parent != nil {
		window = t.parent.Node().bounds
	}
	ls := f.LineSpacing()
	origin := geom.Point{X: float32(area.X), Y: float32(area.Y)}
	first := 0
	if top := float32(window.Y); origin.Y < top && ls > 0 {
		sub := int((top - origin.Y) / ls)
		first = sort.SearchInts(t.counts, sub+1)
		if first >= len(t.counts) {
			return
		}
		if first > 0 {
			origin.Y += float32(t.counts[first-1]) * ls
		}
	}
	color := t.Foreground()
	seen := false
	bottom := float32(window.Bottom())
	for _, l := range t.doc.Lines[first:] {
		if origin.Y >= bottom {
			break
		}
		if !l.DrawVisible(s, color, window, &origin) {
			if seen {
				break
			}
			continue
		}
		seen = true
	}
}
