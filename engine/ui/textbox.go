package ui

import (
	"time"
	"unicode"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/text"
)

// CaretWidth is the width of the text caret in pixels.
const CaretWidth = 3

// TextBox is an editable TextBlock inside a ScrollViewer inside a bevel.
// While focused it takes typed characters and arrow keys and draws a
// blinking caret.
type TextBox struct {
	Control
	Common[*TextBox]
	chrome chrome

	text          string
	font          text.FontFamily
	wrapping      text.Wrapping
	foreground    colors.Color
	hasForeground bool
	canH, canV    bool

	border *Border
	viewer *ScrollViewer
	block  *TextBlock
	cursor *text.Cursor

	blink      time.Duration
	caretShown bool
	follow     bool
	changed    []func(string)
}

func NewTextBox(s string) *TextBox {
	t := &TextBox{text: s, canV: true}
	t.Init(t)
	t.Common = NewCommon(t)
	t.style = "TextBox"
	t.chrome = newChrome("TextBox")
	t.focusable = true
	t.width, t.hasWidth = 128, true
	t.height, t.hasHeight = 32, true
	t.template = TemplateFunc[*TextBox]((*TextBox).build)
	return t
}

func (t *TextBox) build() Element {
	line, col := 0, 0
	if t.block != nil {
		t.text = t.block.Text()
		line, col = t.cursor.Line(), t.cursor.Column()
	}
	t.block = NewTextBlock(t.text)
	t.block.WithAlign(Start, Start)
	t.block.SetFont(t.font)
	t.block.SetWrapping(t.wrapping)
	t.block.SetForeground(t.Foreground())
	t.viewer = NewScrollViewer(t.block)
	t.viewer.SetVerticallyScrollable(t.canV)
	t.viewer.SetHorizontallyScrollable(t.canH)
	t.border = NewBorder(t.viewer)
	t.border.SetPadding(geom.Uniform(8))
	t.cursor = text.NewCursor(t.block.Document())
	t.cursor.MoveTo(line, col)
	t.chrome.border = t.border
	t.chrome.apply(&t.Base)
	return t.border
}

// Text returns the current contents, edits included.
func (t *TextBox) Text() string {
	if t.block != nil {
		return t.block.Text()
	}
	return t.text
}

func (t *TextBox) SetText(s string) {
	if t.Text() == s {
		return
	}
	t.text = s
	if t.block != nil {
		t.block.SetText(s)
		t.cursor.MoveTo(t.cursor.Line(), t.cursor.Column())
	}
	t.InvalidateVisual()
	emit(t.changed, s)
}

// OnTextChanged registers fn to run after every edit.
func (t *TextBox) OnTextChanged(fn func(string)) { t.changed = append(t.changed, fn) }

func (t *TextBox) Cursor() *text.Cursor        { return t.cursor }
func (t *TextBox) VisualState() VisualState    { return t.chrome.State() }
func (t *TextBox) ScrollViewer() *ScrollViewer { return t.viewer }
func (t *TextBox) TextBlock() *TextBlock       { return t.block }

func (t *TextBox) SetFont(f text.FontFamily) {
	t.font = f
	if t.block != nil {
		t.block.SetFont(f)
	}
}

func (t *TextBox) SetWrapping(w text.Wrapping) {
	t.wrapping = w
	if t.block != nil {
		t.block.SetWrapping(w)
	}
}

// Foreground is the text and caret color.
func (t *TextBox) Foreground() colors.Color {
	if t.hasForeground {
		return t.foreground
	}
	return t.ResourceColor("TextBox.Foreground")
}

func (t *TextBox) SetForeground(c colors.Color) {
	t.foreground, t.hasForeground = c, true
	if t.block != nil {
		t.block.SetForeground(c)
	}
}

func (t *TextBox) SetVerticallyScrollable(v bool) {
	t.canV = v
	if t.viewer != nil {
		t.viewer.SetVerticallyScrollable(v)
	}
}

func (t *TextBox) SetHorizontallyScrollable(v bool) {
	t.canH = v
	if t.viewer != nil {
		t.viewer.SetHorizontallyScrollable(v)
	}
}

func (t *TextBox) WithFont(f text.FontFamily) *TextBox   { t.SetFont(f); return t }
func (t *TextBox) WithWrapping(w text.Wrapping) *TextBox { t.SetWrapping(w); return t }

func (t *TextBox) HandlePointer(e input.PointerEvent) { t.chrome.pointer(&t.Base, e) }

func (t *TextBox) HandleKey(e input.KeyEvent) {
	if !e.Down || t.cursor == nil {
		return
	}
	switch e.Key {
	case core.KeyUp:
		t.cursor.MoveUp()
	case core.KeyDown:
		t.cursor.MoveDown()
	case core.KeyLeft:
		t.cursor.MoveLeft()
	case core.KeyRight:
		t.cursor.MoveRight()
	case core.KeyPageDown:
		t.cursor.MoveEnd()
	case core.KeyBackspace:
		t.edit('\b')
		return
	case core.KeyEnter:
		t.edit('\n')
		return
	default:
		return
	}
	t.resetBlink()
	t.follow = true
}

// HandleText inserts a typed character. A combining mark merges with the
// character before it when a precomposed form exists.
func (t *TextBox) HandleText(r rune) {
	if t.cursor == nil {
		return
	}
	if unicode.IsControl(r) {
		switch r {
		case '\b':
			t.edit('\b')
		case '\r', '\n':
			t.edit('\n')
		}
		return
	}
	t.edit(r)
}

func (t *TextBox) edit(r rune) {
	switch r {
	case '\b':
		t.cursor.Delete()
	case '\n':
		t.cursor.Insert('\n')
	default:
		if prev, ok := t.prevRune(); ok {
			if c, ok := text.Compose(prev, r); ok {
				t.cursor.Delete()
				r = c
			}
		}
		t.cursor.Insert(r)
	}
	t.block.InvalidateVisual()
	t.resetBlink()
	t.follow = true
	emit(t.changed, t.block.Text())
}

func (t *TextBox) prevRune() (rune, bool) {
	col := t.cursor.Column()
	if col == 0 {
		return 0, false
	}
	runes := []rune(t.block.Document().Lines[t.cursor.Line()].Text())
	if col > len(runes) {
		return 0, false
	}
	return runes[col-1], true
}

// caretRect is the caret in screen coordinates.
func (t *TextBox) caretRect() (geom.Rect, bool) {
	if t.block == nil || t.block.Font() == nil {
		return geom.Rect{}, false
	}
	area := t.block.bounds.Shrink(t.block.padding)
	p := t.cursor.Position(area)
	return geom.Rect{
		X: area.X + int(p.X),
		Y: area.Y + int(p.Y),
		W: CaretWidth,
		H: int(t.block.Font().LineSpacing()),
	}, true
}

// scrollToCaret scrolls the viewer just enough to show the caret. Edits
// request it through follow so it runs once the text is laid out again.
func (t *TextBox) scrollToCaret() {
	caret, ok := t.caretRect()
	if !ok || !t.viewer.IsVerticallyScrollable() {
		return
	}
	view := t.viewer.ViewportRect()
	switch {
	case caret.Y < view.Y:
		t.viewer.ScrollToVerticalOffset(t.viewer.VerticalOffset() - float32(view.Y-caret.Y))
	case caret.Bottom() > view.Bottom():
		t.viewer.ScrollToVerticalOffset(t.viewer.VerticalOffset() + float32(caret.Bottom()-view.Bottom()))
	}
}

func (t *TextBox) resetBlink() {
	t.blink = 0
	t.caretShown = true
}

func (t *TextBox) blinkInterval() time.Duration {
	if ctx := t.Context(); ctx != nil && ctx.CaretBlink > 0 {
		return ctx.CaretBlink
	}
	return 530 * time.Millisecond
}

// CaretVisible reports whether the caret is in the "on" phase of its blink.
func (t *TextBox) CaretVisible() bool { return t.caretShown }

func (t *TextBox) UpdateOverride(dt float64) {
	if t.IsFocused() {
		t.blink += time.Duration(dt * float64(time.Second))
		if iv := t.blinkInterval(); t.blink >= iv {
			t.blink -= iv
			t.caretShown = !t.caretShown
		}
	}
	t.Control.UpdateOverride(dt)
	if t.follow {
		t.follow = false
		t.scrollToCaret()
	}
}

func (t *TextBox) DrawOverride(s Surface) {
	t.Control.DrawOverride(s)
	if !t.caretShown || !t.IsFocused() {
		return
	}
	caret, ok := t.caretRect()
	if !ok || !t.viewer.ViewportRect().Contains(geom.Point{X: float32(caret.X), Y: float32(caret.Y)}) {
		return
	}
	s.FillRect(caret, t.Foreground())
	t.Context().textInput().SetTextInputRect(caret.X, caret.Y, caret.W, caret.H)
}

func (t *TextBox) GotFocus() {
	ti := t.Context().textInput()
	if !t.bounds.Empty() {
		ti.SetTextInputRect(t.bounds.X, t.bounds.Y, t.bounds.W, t.bounds.H)
	}
	ti.StartTextInput()
	t.resetBlink()
	t.Control.GotFocus()
}

func (t *TextBox) LostFocus() {
	t.Context().textInput().StopTextInput()
	t.Control.LostFocus()
}

func (t *TextBox) OnLoaded() {
	t.registerPointer()
	if ctx := t.Context(); ctx != nil {
		ctx.Keyboard.RegisterOnFocused(t)
	}
}

func (t *TextBox) OnUnloaded() {
	t.unregisterPointer()
	if ctx := t.Context(); ctx != nil {
		ctx.Keyboard.UnregisterOnFocused(t)
	}
}
