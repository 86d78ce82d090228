package text

import "github.com/hubastard/groveui/engine/geom"

// Cursor is a caret over a Document. Column is a rune index into the
// logical line; the desired column is the sticky offset within a visual
// sub-line that vertical moves aim for.
type Cursor struct {
	doc     *Document
	line    int
	col     int
	desired int

	posValid  bool
	pos       geom.Point
	posBounds geom.Rect
}

func NewCursor(doc *Document) *Cursor { return &Cursor{doc: doc} }

func (c *Cursor) Document() *Document { return c.doc }
func (c *Cursor) Line() int           { return c.line }
func (c *Cursor) Column() int         { return c.col }
func (c *Cursor) DesiredColumn() int  { return c.desired }

func (c *Cursor) setLine(v int) {
	if v != c.line {
		c.line = v
		c.posValid = false
	}
}

func (c *Cursor) setCol(v int) {
	if v != c.col {
		c.col = v
		c.posValid = false
	}
}

// clamp pulls line and column back into the document.
func (c *Cursor) clamp() *Line {
	c.setLine(geom.Clamp(c.line, 0, len(c.doc.Lines)-1))
	l := c.doc.Lines[c.line]
	c.setCol(geom.Clamp(c.col, 0, l.Len()))
	return l
}

// MoveTo places the caret at (line, col), clamped.
func (c *Cursor) MoveTo(line, col int) {
	c.setLine(line)
	c.setCol(col)
	l := c.clamp()
	_, start := l.FindLineIndex(c.col)
	c.desired = c.col - start
}

// Insert types r at the caret. '\n' splits the line.
func (c *Cursor) Insert(r rune) {
	if r == '\n' {
		c.insertNewLine()
		return
	}
	l := c.clamp()
	l.Insert(c.col, r)
	c.setCol(c.col + 1)
	c.desired++
	c.posValid = false
}

func (c *Cursor) insertNewLine() {
	l := c.clamp()
	rest := string(l.text[c.col:])
	l.SetText(string(l.text[:c.col]))

	nl := NewLine(rest, l.font, l.wrap)
	lines := append(c.doc.Lines, nil)
	copy(lines[c.line+2:], lines[c.line+1:])
	lines[c.line+1] = nl
	c.doc.Lines = lines

	c.setLine(c.line + 1)
	c.setCol(0)
	c.desired = 0
}

// Delete removes the rune before the caret (backspace). At column 0 the
// line is merged onto the previous one.
func (c *Cursor) Delete() {
	cur := c.clamp()
	if c.col > 0 {
		cur.Delete(c.col - 1)
		c.setCol(c.col - 1)
		c.desired = max(0, c.desired-1)
		c.posValid = false
		return
	}
	if c.line == 0 {
		return
	}

	c.doc.Lines = append(c.doc.Lines[:c.line], c.doc.Lines[c.line+1:]...)
	c.setLine(c.line - 1)
	prev := c.doc.Lines[c.line]

	c.setCol(prev.Len())
	c.desired = prev.LastSubLineLen()
	prev.SetText(prev.Text() + cur.Text())
}

func (c *Cursor) MoveLeft() {
	l := c.clamp()
	if c.col > 0 {
		c.setCol(c.col - 1)
		_, start := l.FindLineIndex(c.col)
		c.desired = c.col - start
		return
	}
	if c.line > 0 {
		c.setLine(c.line - 1)
		prev := c.doc.Lines[c.line]
		c.setCol(prev.Len())
		c.desired = prev.LastSubLineLen()
	}
}

func (c *Cursor) MoveRight() {
	l := c.clamp()
	if c.col < l.Len() {
		c.setCol(c.col + 1)
		_, start := l.FindLineIndex(c.col)
		c.desired = c.col - start
		return
	}
	if c.line < len(c.doc.Lines)-1 {
		c.setLine(c.line + 1)
		c.setCol(0)
		c.desired = 0
	}
}

// MoveUp goes to the visual sub-line above, crossing into the previous
// logical line's bottom sub-line from the top one.
func (c *Cursor) MoveUp() {
	l := c.clamp()
	k, start := l.FindLineIndex(c.col)
	if k >= 1 {
		prevLen := l.SubLineLen(k - 1)
		start -= prevLen
		c.setCol(geom.Clamp(start+c.desired, start, start+prevLen))
		return
	}
	if c.line == 0 {
		return
	}
	c.setLine(c.line - 1)
	prev := c.doc.Lines[c.line]
	lastStart := 0
	if prev.SubLines() > 1 {
		lastStart = prev.Len() - prev.LastSubLineLen()
	}
	c.setCol(geom.Clamp(lastStart+c.desired, lastStart, prev.Len()))
}

// MoveDown goes to the visual sub-line below, crossing into the next
// logical line's top sub-line from the bottom one. A next line that has
// not been measured yet is entered at column 0.
func (c *Cursor) MoveDown() {
	l := c.clamp()
	k, start := l.FindLineIndex(c.col)
	if k < l.SubLines()-1 {
		start += l.SubLineLen(k)
		c.setCol(geom.Clamp(start+c.desired, start, start+l.SubLineLen(k+1)))
		return
	}
	if c.line >= len(c.doc.Lines)-1 {
		return
	}
	c.setLine(c.line + 1)
	next := c.doc.Lines[c.line]
	firstEnd := 0
	if next.Valid() && next.SubLines() >= 1 {
		firstEnd = next.SubLineLen(0)
	}
	c.setCol(geom.Clamp(c.desired, 0, firstEnd))
}

// MoveEnd jumps to column 0 of the last logical line. This is not
// "end of line"; callers bound to an End key get document-level behavior.
func (c *Cursor) MoveEnd() {
	c.setLine(len(c.doc.Lines) - 1)
	c.setCol(0)
	c.desired = 0
}

// Position returns the caret offset relative to the top-left of the text
// area. The value is cached per bounds until the caret moves or an edit
// happens; while the caret line awaits a Measure the last good value is
// returned.
func (c *Cursor) Position(bounds geom.Rect) geom.Point {
	if c.posValid && c.posBounds == bounds {
		return c.pos
	}
	c.clamp()
	var base geom.Point
	for i := 0; i < c.line; i++ {
		l := c.doc.Lines[i]
		ls := l.Font().LineSpacing()
		base.Y += max(ls, float32(l.SubLines())*ls)
	}
	if p, ok := c.doc.Lines[c.line].CursorPosition(c.col, base); ok {
		c.pos = p
		c.posBounds = bounds
		c.posValid = true
	}
	return c.pos
}
