package input

import "github.com/hubastard/groveui/engine/geom"

// PointerReceiver is an element that wants pointer gestures. Hit testing
// uses the receiver's current Bounds.
type PointerReceiver interface {
	Bounds() geom.Rect
	Visible() bool
	Enabled() bool
	HandlePointer(e PointerEvent)
}

// PointerManager routes pointer gestures to the registered receivers under
// the pointer. Drag and drag-end reach every live receiver so a drag that
// leaves its source keeps being reported.
type PointerManager struct {
	focus     *FocusManager
	receivers []PointerReceiver
	inside    map[PointerReceiver]bool
	scratch   []PointerReceiver
}

func NewPointerManager(focus *FocusManager) *PointerManager {
	return &PointerManager{focus: focus, inside: map[PointerReceiver]bool{}}
}

func (m *PointerManager) Register(r PointerReceiver) {
	for _, x := range m.receivers {
		if x == r {
			return
		}
	}
	m.receivers = append(m.receivers, r)
}

func (m *PointerManager) Unregister(r PointerReceiver) {
	for i, x := range m.receivers {
		if x == r {
			m.receivers = append(m.receivers[:i], m.receivers[i+1:]...)
			break
		}
	}
	delete(m.inside, r)
}

func (m *PointerManager) Registered(r PointerReceiver) bool {
	for _, x := range m.receivers {
		if x == r {
			return true
		}
	}
	return false
}

func (m *PointerManager) Len() int { return len(m.receivers) }

// Dispatch delivers e. Handlers may register or unregister receivers; the
// change takes effect with the next event.
func (m *PointerManager) Dispatch(e PointerEvent) {
	m.scratch = append(m.scratch[:0], m.receivers...)
	switch e.Kind {
	case PointerMove:
		m.dispatchMove(e)
	case PointerDown:
		focused := false
		for _, r := range m.scratch {
			if !hit(r, e.Pos) {
				continue
			}
			if !focused && m.focus != nil {
				if f, ok := r.(Focusable); ok && f.Focusable() {
					m.focus.SetFocus(f)
					focused = true
				}
			}
			r.HandlePointer(e)
		}
	case PointerDrag, PointerDragEnd:
		for _, r := range m.scratch {
			if r.Visible() && r.Enabled() {
				r.HandlePointer(e)
			}
		}
	default:
		for _, r := range m.scratch {
			if hit(r, e.Pos) {
				r.HandlePointer(e)
			}
		}
	}
	clear(m.scratch)
}

func (m *PointerManager) dispatchMove(e PointerEvent) {
	for _, r := range m.scratch {
		if !hit(r, e.Pos) {
			if m.inside[r] {
				delete(m.inside, r)
				leave := e
				leave.Kind = PointerLeave
				r.HandlePointer(leave)
			}
			continue
		}
		if !m.inside[r] {
			m.inside[r] = true
			enter := e
			enter.Kind = PointerEnter
			r.HandlePointer(enter)
		}
		r.HandlePointer(e)
	}
}

func hit(r PointerReceiver, p geom.Point) bool {
	return r.Visible() && r.Enabled() && r.Bounds().Contains(p)
}
