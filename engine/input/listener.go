package input

import (
	"time"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

type ListenerSettings struct {
	DoubleClick   time.Duration
	DragThreshold float32 // Manhattan distance in pixels
}

func DefaultListenerSettings() ListenerSettings {
	return ListenerSettings{DoubleClick: 500 * time.Millisecond, DragThreshold: 2}
}

// PointerListener turns raw button / cursor / wheel events into pointer
// gestures: click, double click and drag are synthesized here.
type PointerListener struct {
	settings ListenerSettings
	emit     func(PointerEvent)

	pos  geom.Point
	mods core.Mod

	pressed    bool
	pressEv    PointerEvent
	dragging   bool
	doubled    bool
	lastUp     time.Duration
	haveLastUp bool
}

func NewPointerListener(s ListenerSettings, emit func(PointerEvent)) *PointerListener {
	return &PointerListener{settings: s, emit: emit}
}

func (l *PointerListener) Position() geom.Point { return l.pos }
func (l *PointerListener) Dragging() bool       { return l.dragging }

// Feed consumes one raw event observed at time t. Events it does not
// understand are ignored.
func (l *PointerListener) Feed(ev core.Event, t time.Duration) {
	switch e := ev.(type) {
	case core.EventMouseButton:
		l.mods = e.Mods
		l.moveTo(geom.Point{X: float32(e.X), Y: float32(e.Y)}, t)
		if e.Down {
			l.press(e.Button, t)
		} else {
			l.release(e.Button, t)
		}
	case core.EventMouseMove:
		l.moveTo(geom.Point{X: float32(e.X), Y: float32(e.Y)}, t)
	case core.EventScroll:
		l.emit(PointerEvent{
			Kind:   PointerWheel,
			Pos:    l.pos,
			Wheel:  float32(e.Yoff) * WheelDelta,
			WheelH: float32(e.Xoff) * WheelDelta,
			Mods:   l.mods,
			Time:   t,
		})
	}
}

func (l *PointerListener) press(b core.MouseButton, t time.Duration) {
	if l.pressed {
		// second button while one is held: only report it
		l.emit(l.event(PointerDown, b, t))
		return
	}
	e := l.event(PointerDown, b, t)
	l.emit(e)
	l.pressed = true
	l.pressEv = e
	if l.haveLastUp {
		if t-l.lastUp <= l.settings.DoubleClick {
			e.Kind = PointerDoubleClick
			l.emit(e)
			l.doubled = true
		}
		l.haveLastUp = false
	}
}

func (l *PointerListener) release(b core.MouseButton, t time.Duration) {
	e := l.event(PointerUp, b, t)
	if l.pressed && b == l.pressEv.Button {
		switch {
		case l.dragging:
			e.Kind = PointerDragEnd
			l.emit(e)
		case manhattan(e.Pos, l.pressEv.Pos) <= l.settings.DragThreshold && !l.doubled:
			e.Kind = PointerClick
			l.emit(e)
		}
		l.pressed = false
		l.dragging = false
		l.doubled = false
		l.lastUp = t
		l.haveLastUp = true
	}
	e.Kind = PointerUp
	l.emit(e)
}

func (l *PointerListener) moveTo(p geom.Point, t time.Duration) {
	if p == l.pos {
		return
	}
	moved := geom.Point{X: p.X - l.pos.X, Y: p.Y - l.pos.Y}
	l.pos = p
	e := PointerEvent{Kind: PointerMove, Pos: p, Moved: moved, Mods: l.mods, Time: t}
	l.emit(e)
	if !l.pressed {
		return
	}
	e.Button = l.pressEv.Button
	switch {
	case l.dragging:
		e.Kind = PointerDrag
		l.emit(e)
	case manhattan(p, l.pressEv.Pos) > l.settings.DragThreshold:
		l.dragging = true
		e.Kind = PointerDragStart
		l.emit(e)
	}
}

func (l *PointerListener) event(k PointerKind, b core.MouseButton, t time.Duration) PointerEvent {
	return PointerEvent{Kind: k, Button: b, Pos: l.pos, Mods: l.mods, Time: t}
}

func manhattan(a, b geom.Point) float32 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
