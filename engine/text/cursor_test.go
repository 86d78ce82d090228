package text

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/hubastard/groveui/engine/geom"
)

func lines(d *Document) []string {
	out := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = l.Text()
	}
	return out
}

func layout(d *Document, width float32) {
	for _, l := range d.Lines {
		l.Measure(geom.Size{W: width, H: geom.Inf})
	}
}

func TestCursorDeleteMergesAtLineStart(t *testing.T) {
	d := NewDocument("ab\ncd", &recFont{}, NoWrap)
	c := NewCursor(d)
	c.MoveTo(1, 0)
	c.Delete()
	if got := strings.Join(lines(d), "|"); got != "abcd" {
		t.Errorf("lines = %q, want %q", got, "abcd")
	}
	if c.Line() != 0 || c.Column() != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", c.Line(), c.Column())
	}
}

func TestCursorDeleteAtDocumentStartIsNoop(t *testing.T) {
	d := NewDocument("ab", &recFont{}, NoWrap)
	c := NewCursor(d)
	c.Delete()
	if d.String() != "ab" || c.Line() != 0 || c.Column() != 0 {
		t.Errorf("doc = %q cursor = (%d,%d)", d.String(), c.Line(), c.Column())
	}
}

func TestCursorInsertNewLineSplits(t *testing.T) {
	d := NewDocument("hello", &recFont{}, Wrap)
	c := NewCursor(d)
	c.MoveTo(0, 2)
	c.Insert('\n')
	if got := strings.Join(lines(d), "|"); got != "he|llo" {
		t.Errorf("lines = %q, want %q", got, "he|llo")
	}
	if c.Line() != 1 || c.Column() != 0 || c.DesiredColumn() != 0 {
		t.Errorf("cursor = (%d,%d,%d), want (1,0,0)", c.Line(), c.Column(), c.DesiredColumn())
	}
	if d.Lines[1].Wrapping() != Wrap {
		t.Error("new line did not inherit wrapping")
	}
}

func TestCursorInsertDeleteRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', ' ', 'Z', '\u00e9', '\u4e16', '\t'} {
		d := NewDocument("first\nsecond line", &recFont{}, Wrap)
		layout(d, 45)
		c := NewCursor(d)
		c.MoveTo(1, 3)
		before := d.String()
		c.Insert(r)
		c.Delete()
		if d.String() != before {
			t.Errorf("%q: text = %q, want %q", r, d.String(), before)
		}
		if c.Line() != 1 || c.Column() != 3 {
			t.Errorf("%q: cursor = (%d,%d), want (1,3)", r, c.Line(), c.Column())
		}
	}
}

func TestCursorVerticalNavigationAcrossWrappedLines(t *testing.T) {
	// Line 0 wraps at 40px into "AAAA" "AAAA" "AA".
	d := NewDocument("AAAAAAAAAA\nBB", &recFont{}, Wrap)
	layout(d, 40)
	c := NewCursor(d)
	c.MoveTo(0, 6)
	if c.DesiredColumn() != 2 {
		t.Fatalf("desired = %d, want 2", c.DesiredColumn())
	}

	steps := []struct {
		name      string
		move      func()
		line, col int
	}{
		{"down into last sub-line", c.MoveDown, 0, 10},
		{"down into next line", c.MoveDown, 1, 2},
		{"down at document end", c.MoveDown, 1, 2},
		{"up into bottom sub-line", c.MoveUp, 0, 10},
		{"up keeps desired column", c.MoveUp, 0, 6},
		{"up to top sub-line", c.MoveUp, 0, 2},
		{"up at document start", c.MoveUp, 0, 2},
	}
	for _, s := range steps {
		s.move()
		if c.Line() != s.line || c.Column() != s.col {
			t.Fatalf("%s: cursor = (%d,%d), want (%d,%d)", s.name, c.Line(), c.Column(), s.line, s.col)
		}
		if c.DesiredColumn() != 2 {
			t.Fatalf("%s: desired = %d, want 2", s.name, c.DesiredColumn())
		}
	}
}

func TestCursorMoveDownOntoUnmeasuredLine(t *testing.T) {
	d := NewDocument("abcd\nefgh", &recFont{}, Wrap)
	d.Lines[0].Measure(geom.Size{W: 100, H: geom.Inf})
	c := NewCursor(d)
	c.MoveTo(0, 3)
	c.MoveDown()
	if c.Line() != 1 || c.Column() != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", c.Line(), c.Column())
	}
}

func TestCursorHorizontalNavigation(t *testing.T) {
	d := NewDocument("AAAAAA\nB", &recFont{}, Wrap)
	layout(d, 40)
	c := NewCursor(d)
	c.MoveTo(1, 0)

	c.MoveLeft()
	if c.Line() != 0 || c.Column() != 6 || c.DesiredColumn() != 2 {
		t.Errorf("left across lines = (%d,%d,%d), want (0,6,2)", c.Line(), c.Column(), c.DesiredColumn())
	}
	c.MoveLeft()
	c.MoveLeft()
	if c.Column() != 4 || c.DesiredColumn() != 0 {
		t.Errorf("left onto wrap boundary = (%d,%d), want (4,0)", c.Column(), c.DesiredColumn())
	}
	c.MoveLeft()
	if c.DesiredColumn() != 3 {
		t.Errorf("desired = %d, want 3", c.DesiredColumn())
	}
	c.MoveTo(0, 6)
	c.MoveRight()
	if c.Line() != 1 || c.Column() != 0 {
		t.Errorf("right across lines = (%d,%d), want (1,0)", c.Line(), c.Column())
	}
	c.MoveRight()
	c.MoveRight()
	if c.Line() != 1 || c.Column() != 1 {
		t.Errorf("right at document end = (%d,%d), want (1,1)", c.Line(), c.Column())
	}
}

func TestCursorMoveEndGoesToLastLineStart(t *testing.T) {
	d := NewDocument("one\ntwo\nthree", &recFont{}, NoWrap)
	c := NewCursor(d)
	c.MoveTo(0, 2)
	c.MoveEnd()
	if c.Line() != 2 || c.Column() != 0 || c.DesiredColumn() != 0 {
		t.Errorf("MoveEnd = (%d,%d,%d), want (2,0,0)", c.Line(), c.Column(), c.DesiredColumn())
	}
}

func TestCursorPosition(t *testing.T) {
	d := NewDocument("AAAAAAAAAA\nBB", &recFont{}, Wrap)
	layout(d, 40)
	c := NewCursor(d)
	c.MoveTo(1, 1)
	bounds := geom.Rect{W: 40, H: 100}
	if got, want := c.Position(bounds), (geom.Point{X: 10, Y: 48}); got != want {
		t.Errorf("Position = %v, want %v", got, want)
	}
	c.MoveTo(0, 4)
	if got, want := c.Position(bounds), (geom.Point{X: 0, Y: 16}); got != want {
		t.Errorf("Position at wrap = %v, want %v", got, want)
	}
}

func TestCursorClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewDocument("lorem ipsum\ndolor sit amet\n\nconsectetur", &recFont{}, Wrap)
	c := NewCursor(d)
	runes := []rune("ab \n")
	for i := 0; i < 2000; i++ {
		layout(d, 45)
		switch rng.Intn(6) {
		case 0:
			c.Insert(runes[rng.Intn(len(runes))])
		case 1:
			c.Delete()
		case 2:
			c.MoveLeft()
		case 3:
			c.MoveRight()
		case 4:
			c.MoveUp()
		case 5:
			c.MoveDown()
		}
		if c.Line() < 0 || c.Line() >= len(d.Lines) {
			t.Fatalf("step %d: line %d out of [0,%d)", i, c.Line(), len(d.Lines))
		}
		if n := d.Lines[c.Line()].Len(); c.Column() < 0 || c.Column() > n {
			t.Fatalf("step %d: column %d out of [0,%d]", i, c.Column(), n)
		}
	}
}

func TestDocumentNormalizesAndJoins(t *testing.T) {
	d := NewDocument("e\u0301\nx", &recFont{}, NoWrap)
	if got := d.Lines[0].Len(); got != 1 {
		t.Errorf("composed line length = %d, want 1", got)
	}
	if got := d.String(); got != "\u00e9\nx" {
		t.Errorf("String = %q", got)
	}
	if r, ok := Compose('e', '\u0301'); !ok || r != '\u00e9' {
		t.Errorf("Compose = %q,%v", r, ok)
	}
	if _, ok := Compose('x', 'y'); ok {
		t.Error("Compose joined unrelated runes")
	}
	counts := d.SubLineCounts(nil)
	if len(counts) != 2 || counts[1] != 2 {
		t.Errorf("SubLineCounts = %v, want [1 2]", counts)
	}
}
