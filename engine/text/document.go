package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in NFC form so that one column is one composed rune.
func Normalize(s string) string { return norm.NFC.String(s) }

// Compose folds r onto prev when the pair has a single-rune canonical
// composition (e.g. 'e' + U+0301). ok is false when they stay separate.
func Compose(prev, r rune) (rune, bool) {
	c := []rune(norm.NFC.String(string([]rune{prev, r})))
	if len(c) != 1 {
		return 0, false
	}
	return c[0], true
}

// Document is the ordered list of logical lines a Cursor edits. It always
// holds at least one line.
type Document struct {
	Lines []*Line
	font  FontFamily
	wrap  Wrapping
}

func NewDocument(s string, font FontFamily, wrap Wrapping) *Document {
	d := &Document{font: font, wrap: wrap}
	d.SetText(s)
	return d
}

// SetText replaces every line with the NFC form of s split on '\n'.
func (d *Document) SetText(s string) {
	parts := strings.Split(Normalize(s), "\n")
	d.Lines = d.Lines[:0]
	for _, p := range parts {
		d.Lines = append(d.Lines, NewLine(p, d.font, d.wrap))
	}
}

func (d *Document) String() string {
	var sb strings.Builder
	for i, l := range d.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

func (d *Document) Font() FontFamily   { return d.font }
func (d *Document) Wrapping() Wrapping { return d.wrap }

func (d *Document) SetFont(f FontFamily) {
	d.font = f
	for _, l := range d.Lines {
		l.SetFont(f)
	}
}

func (d *Document) SetWrapping(w Wrapping) {
	d.wrap = w
	for _, l := range d.Lines {
		l.SetWrapping(w)
	}
}

// SubLineCounts returns the running total of visual sub-lines per logical
// line (counts[i] covers lines 0..i). Lines without sub-lines count as one.
func (d *Document) SubLineCounts(dst []int) []int {
	dst = dst[:0]
	total := 0
	for _, l := range d.Lines {
		total += max(l.SubLines(), 1)
		dst = append(dst, total)
	}
	return dst
}
