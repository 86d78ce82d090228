package ui

import (
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

// Button shows its content inside a bevel and reports clicks. A click
// counts only when the press started on the button and the pointer did not
// leave it before release.
type Button struct {
	ContentControl
	Common[*Button]
	chrome  chrome
	armed   bool
	clicked []func()
}

// buttonHost is satisfied by every type embedding Button.
type buttonHost interface {
	contentHost
	buttonNode() *Button
}

func NewButton(content any) *Button {
	b := &Button{}
	b.Init(b)
	b.Common = NewCommon(b)
	b.initButton(content, "Button")
	return b
}

func (b *Button) initButton(content any, style string) {
	b.initContent(content)
	b.template = buttonTemplate
	b.style = style
	b.chrome = newChrome(style)
	b.focusable = true
}

var buttonTemplate = TemplateFunc[buttonHost](func(o buttonHost) Element {
	b := o.buttonNode()
	border := NewBorder(b.contentVisual(o))
	border.SetPadding(geom.Symmetric(16, 12))
	b.chrome.border = border
	b.chrome.apply(&b.Base)
	return border
})

func (b *Button) buttonNode() *Button { return b }

func (b *Button) VisualState() VisualState { return b.chrome.State() }

// OnClick registers fn to run on every click.
func (b *Button) OnClick(fn func()) { b.clicked = append(b.clicked, fn) }

// WithClick is OnClick in builder form.
func (b *Button) WithClick(fn func()) *Button { b.OnClick(fn); return b }

// Click runs the click handlers as if the button had been clicked.
func (b *Button) Click() {
	for _, fn := range b.clicked {
		fn()
	}
}

func (b *Button) HandlePointer(e input.PointerEvent) {
	switch e.Kind {
	case input.PointerDown:
		b.armed = true
	case input.PointerLeave, input.PointerUp:
		b.armed = false
	case input.PointerClick:
		if b.armed {
			b.Click()
		}
	}
	b.chrome.pointer(&b.Base, e)
}

func (b *Button) OnLoaded()   { b.registerPointer() }
func (b *Button) OnUnloaded() { b.unregisterPointer() }
