package input

import (
	"time"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerClick
	PointerDoubleClick
	PointerMove
	PointerEnter
	PointerLeave
	PointerWheel
	PointerDragStart
	PointerDrag
	PointerDragEnd
)

var pointerKindNames = [...]string{
	"Down", "Up", "Click", "DoubleClick", "Move", "Enter", "Leave",
	"Wheel", "DragStart", "Drag", "DragEnd",
}

func (k PointerKind) String() string {
	if int(k) < len(pointerKindNames) {
		return pointerKindNames[k]
	}
	return "PointerKind(?)"
}

// WheelDelta is the wheel amount reported for one notch.
const WheelDelta = 120

// PointerEvent is a synthesized pointer gesture step.
type PointerEvent struct {
	Kind   PointerKind
	Button core.MouseButton
	Pos    geom.Point
	Moved  geom.Point // since the previous pointer event
	Wheel  float32    // vertical, WheelDelta per notch
	WheelH float32    // horizontal
	Mods   core.Mod
	Time   time.Duration
}

type KeyEvent struct {
	Key    core.Key
	Down   bool
	Repeat bool
	Mods   core.Mod
}

type TouchEvent struct {
	ID    int
	Phase core.TouchPhase
	Pos   geom.Point
	Time  time.Duration
}
