package text

import (
	"errors"
	"fmt"
	"math"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

// ErrSubLineDesync means the sub-line cache no longer partitions the text.
var ErrSubLineDesync = errors.New("text: sub-line cache out of sync")

// Line is one logical (newline free) line of text. Measure breaks it into
// visual sub-lines and caches them for the available size it was given.
// Columns are rune indices into the logical line.
type Line struct {
	text []rune
	wrap Wrapping
	font FontFamily

	// subs holds the rune count of each visual sub-line, in order.
	// It is only meaningful while valid is set.
	subs     []int
	valid    bool
	avail    geom.Size
	measured geom.Size
}

func NewLine(s string, font FontFamily, wrap Wrapping) *Line {
	return &Line{text: []rune(s), font: font, wrap: wrap}
}

func (l *Line) Text() string         { return string(l.text) }
func (l *Line) Len() int             { return len(l.text) }
func (l *Line) Font() FontFamily     { return l.font }
func (l *Line) Wrapping() Wrapping   { return l.wrap }
func (l *Line) Valid() bool          { return l.valid }
func (l *Line) SubLines() int        { return len(l.subs) }
func (l *Line) SubLineLen(i int) int { return l.subs[i] }

// LastSubLineLen is the rune count of the bottom visual sub-line, 0 when
// the line has none.
func (l *Line) LastSubLineLen() int {
	if len(l.subs) == 0 {
		return 0
	}
	return l.subs[len(l.subs)-1]
}

// SubLine returns the text of visual sub-line i.
func (l *Line) SubLine(i int) string {
	start := 0
	for j := 0; j < i; j++ {
		start += l.subs[j]
	}
	return string(l.text[start : start+l.subs[i]])
}

func (l *Line) SetText(s string) {
	if s == string(l.text) {
		return
	}
	l.text = []rune(s)
	l.invalidate()
}

func (l *Line) SetWrapping(w Wrapping) {
	if w != l.wrap {
		l.wrap = w
		l.invalidate()
	}
}

func (l *Line) SetFont(f FontFamily) {
	if f != l.font {
		l.font = f
		l.invalidate()
	}
}

func (l *Line) invalidate() {
	l.valid = false
	l.subs = l.subs[:0]
}

func (l *Line) measureRunes(r []rune) float32 {
	w, _ := l.font.Measure(string(r))
	return w
}

// Measure lays the line out for avail and returns its size. A second call
// with the same avail and no edit in between is served from the cache.
func (l *Line) Measure(avail geom.Size) geom.Size {
	if l.valid && l.avail == avail {
		return l.measured
	}
	l.subs = l.subs[:0]
	l.avail = avail
	l.valid = true

	if l.wrap == NoWrap {
		w, h := l.font.Measure(string(l.text))
		l.subs = append(l.subs, len(l.text))
		l.measured = geom.Size{W: min(avail.W, w), H: max(h, l.font.LineSpacing())}
		return l.measured
	}

	l.measured = l.wrapFrom(0, 0)
	return l.measured
}

// wrapFrom appends sub-lines covering text[start:] and returns the new
// measured size. widest is the widest sub-line kept from before start.
func (l *Line) wrapFrom(start int, widest float32) geom.Size {
	maxW := l.avail.W
	for start < len(l.text) {
		rest := l.text[start:]
		restW := l.measureRunes(rest)
		if restW <= maxW {
			l.subs = append(l.subs, len(rest))
			widest = max(widest, restW)
			break
		}

		n := l.findLineLength(rest, maxW)
		if n == 0 {
			n = 1
		}
		l.subs = append(l.subs, n)
		widest = max(widest, l.measureRunes(rest[:n]))
		start += n
	}
	ls := l.font.LineSpacing()
	return geom.Size{W: min(maxW, widest), H: max(float32(len(l.subs))*ls, ls)}
}

// findLineLength estimates how many runes of s fit in maxW from the
// average rune width, then walks the estimate down while it overflows or
// up while one more rune still fits.
func (l *Line) findLineLength(s []rune, maxW float32) int {
	total := l.measureRunes(s)
	if total <= 0 {
		return len(s)
	}
	est := int(float32(len(s)) * (maxW / total))
	est = geom.Clamp(est, 1, len(s))

	if l.measureRunes(s[:est]) > maxW {
		for est > 0 && l.measureRunes(s[:est]) > maxW {
			est--
		}
		return est
	}
	for est < len(s) && l.measureRunes(s[:est+1]) <= maxW {
		est++
	}
	return est
}

// FindLineIndex returns the visual sub-line holding rune index i and the
// rune index that sub-line starts at. The end of the text maps to the last
// sub-line. A line without sub-lines reports (0, 0). Any other index that
// no sub-line covers panics with ErrSubLineDesync.
func (l *Line) FindLineIndex(i int) (line, start int) {
	cur := 0
	for k, n := range l.subs {
		if i >= cur && i < cur+n {
			return k, cur
		}
		cur += n
	}
	if len(l.subs) == 0 {
		return 0, 0
	}
	if i == len(l.text) {
		return len(l.subs) - 1, cur - l.subs[len(l.subs)-1]
	}
	panic(fmt.Errorf("%w: index %d, %d runes in %d sub-lines", ErrSubLineDesync, i, cur, len(l.subs)))
}

// Insert puts r at rune index i (clamped). With a valid multi sub-line
// cache only the sub-lines from the edited one onward are rebuilt.
func (l *Line) Insert(i int, r rune) {
	i = geom.Clamp(i, 0, len(l.text))
	incremental := l.valid && len(l.subs) > 1
	var k, start int
	if incremental {
		k, start = l.FindLineIndex(i)
	}

	l.text = append(l.text, 0)
	copy(l.text[i+1:], l.text[i:])
	l.text[i] = r

	if !incremental {
		l.invalidate()
		return
	}
	l.relayoutFrom(k, start)
}

// Delete removes the rune at index i. Out of range indices are ignored.
func (l *Line) Delete(i int) {
	if i < 0 || i >= len(l.text) {
		return
	}
	incremental := l.valid && len(l.subs) > 1
	var k, start int
	if incremental {
		k, start = l.FindLineIndex(i)
	}

	l.text = append(l.text[:i], l.text[i+1:]...)

	if !incremental {
		l.invalidate()
		return
	}
	l.relayoutFrom(k, start)
}

// relayoutFrom drops the sub-lines from k on and wraps text[start:] again.
// The height is left unclamped, exactly as a full Measure reports it.
func (l *Line) relayoutFrom(k, start int) {
	l.subs = l.subs[:k]
	var widest float32
	cur := 0
	for _, n := range l.subs {
		widest = max(widest, l.measureRunes(l.text[cur:cur+n]))
		cur += n
	}
	l.measured = l.wrapFrom(start, widest)
}

// CursorPosition offsets base by the caret position of column col.
// A column sitting exactly on a wrap boundary is placed at the start of the
// following sub-line. ok is false while the line awaits a Measure.
func (l *Line) CursorPosition(col int, base geom.Point) (geom.Point, bool) {
	if !l.valid {
		return base, false
	}
	if len(l.subs) == 0 {
		return base, true
	}
	col = geom.Clamp(col, 0, len(l.text))
	ls := l.font.LineSpacing()

	cur := 0
	for k, n := range l.subs {
		if col <= cur+n {
			if len(l.subs) != 1 && cur+n != len(l.text) && col == cur+n {
				base.Y += float32(k+1) * ls
				return base, true
			}
			base.X += l.measureRunes(l.text[cur:col])
			base.Y += float32(k) * ls
			return base, true
		}
		cur += n
	}

	last := len(l.subs) - 1
	base.X += l.measureRunes(l.text[cur-l.subs[last] : cur])
	base.Y += float32(last) * ls
	return base, true
}

// Draw draws every sub-line from origin, advancing origin.Y by one line
// spacing per sub-line (one for an empty line).
func (l *Line) Draw(dst GlyphDrawer, color colors.Color, origin *geom.Point) {
	ls := l.font.LineSpacing()
	if len(l.subs) == 0 {
		origin.Y += ls
		return
	}
	cur := 0
	for _, n := range l.subs {
		l.font.Draw(dst, string(l.text[cur:cur+n]), *origin, color)
		origin.Y += ls
		cur += n
	}
}

// DrawVisible draws only the sub-lines intersecting window, but always
// advances origin.Y past the whole line. It reports whether any part of
// the line overlaps the window.
func (l *Line) DrawVisible(dst GlyphDrawer, color colors.Color, window geom.Rect, origin *geom.Point) bool {
	ls := l.font.LineSpacing()
	top, bottom := float32(window.Y), float32(window.Bottom())
	startY := origin.Y
	endY := startY + float32(max(len(l.subs), 1))*ls
	visible := endY > top && startY < bottom

	if len(l.subs) == 0 {
		origin.Y += ls
		return visible
	}

	first, last := 0, len(l.subs)-1
	if origin.Y < top {
		first = min(int((top-origin.Y)/ls), len(l.subs)-1)
	}
	if endY > bottom {
		last = int(math.Ceil(float64((bottom-origin.Y)/ls))) - 1
		last = geom.Clamp(last, 0, len(l.subs)-1)
	}

	cur := 0
	for k := 0; k < first; k++ {
		cur += l.subs[k]
	}
	origin.Y += float32(first) * ls

	k := first
	for ; k <= last; k++ {
		n := l.subs[k]
		if origin.Y+ls > top && origin.Y < bottom && origin.X < float32(window.Right()) {
			l.font.Draw(dst, string(l.text[cur:cur+n]), *origin, color)
		}
		cur += n
		origin.Y += ls
		if origin.Y >= bottom {
			k++
			break
		}
	}
	origin.Y += float32(len(l.subs)-k) * ls
	return visible
}
