package ui

import "github.com/hubastard/groveui/engine/input"

// Thumb is the draggable part of a ScrollBar. A drag that starts on the
// thumb keeps reporting deltas after the pointer leaves it.
type Thumb struct {
	Control
	Common[*Thumb]
	chrome   chrome
	dragging bool

	started []func(input.PointerEvent)
	delta   []func(input.PointerEvent)
	ended   []func(input.PointerEvent)
}

func NewThumb() *Thumb {
	t := &Thumb{}
	t.Init(t)
	t.Common = NewCommon(t)
	t.style = "Thumb"
	t.chrome = newChrome("Thumb")
	t.focusable = true
	t.template = TemplateFunc[*Thumb](func(t *Thumb) Element {
		border := NewBorder(nil)
		t.chrome.border = border
		t.chrome.apply(&t.Base)
		return border
	})
	return t
}

func (t *Thumb) IsDragging() bool         { return t.dragging }
func (t *Thumb) VisualState() VisualState { return t.chrome.State() }

func (t *Thumb) OnDragStarted(fn func(input.PointerEvent)) { t.started = append(t.started, fn) }
func (t *Thumb) OnDragDelta(fn func(input.PointerEvent))   { t.delta = append(t.delta, fn) }
func (t *Thumb) OnDragEnded(fn func(input.PointerEvent))   { t.ended = append(t.ended, fn) }

func (t *Thumb) HandlePointer(e input.PointerEvent) {
	switch e.Kind {
	case input.PointerDragStart:
		if t.bounds.Contains(e.Pos) {
			t.dragging = true
			emit(t.started, e)
		}
	case input.PointerDrag:
		if t.dragging {
			emit(t.delta, e)
		}
	case input.PointerDragEnd:
		if t.dragging {
			t.dragging = false
			emit(t.ended, e)
		}
	}
	t.chrome.pointer(&t.Base, e)
}

func (t *Thumb) OnLoaded() { t.registerPointer() }

func (t *Thumb) OnUnloaded() {
	t.dragging = false
	t.unregisterPointer()
}

func emit[E any](fns []func(E), e E) {
	for _, fn := range fns {
		fn(e)
	}
}
