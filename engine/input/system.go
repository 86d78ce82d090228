package input

import (
	"time"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

// System bundles the focus manager and the three input managers of one UI
// tree, plus the pointer listener feeding them.
type System struct {
	Focus    *FocusManager
	Pointer  *PointerManager
	Keyboard *KeyboardManager
	Touch    *TouchManager
	Listener *PointerListener
}

func NewSystem(s ListenerSettings) *System {
	focus := NewFocusManager()
	sys := &System{
		Focus:    focus,
		Pointer:  NewPointerManager(focus),
		Keyboard: NewKeyboardManager(focus),
		Touch:    NewTouchManager(),
	}
	sys.Listener = NewPointerListener(s, sys.Pointer.Dispatch)
	return sys
}

// Feed routes one raw event observed at time t. It reports whether the
// event was input at all.
func (s *System) Feed(ev core.Event, t time.Duration) bool {
	switch e := ev.(type) {
	case core.EventMouseButton, core.EventMouseMove, core.EventScroll:
		s.Listener.Feed(ev, t)
	case core.EventKey:
		s.Keyboard.DispatchKey(KeyEvent{Key: e.Key, Down: e.Down, Repeat: e.Repeat, Mods: e.Mods})
	case core.EventChar:
		s.Keyboard.DispatchText(e.Rune)
	case core.EventTouch:
		s.Touch.Dispatch(TouchEvent{ID: e.ID, Phase: e.Phase, Pos: geom.Point{X: float32(e.X), Y: float32(e.Y)}, Time: t})
	default:
		return false
	}
	return true
}
