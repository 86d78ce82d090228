package input

// Focusable is anything the focus manager can hand focus to.
type Focusable interface {
	Focusable() bool
	GotFocus()
	LostFocus()
}

// FocusManager tracks the single focused element of one UI tree.
type FocusManager struct {
	focused   Focusable
	listeners []func(Focusable)
}

func NewFocusManager() *FocusManager { return &FocusManager{} }

func (f *FocusManager) Focused() Focusable { return f.focused }

// SetFocus moves focus to c. It refuses (and returns false) when c does not
// accept focus; nil clears.
func (f *FocusManager) SetFocus(c Focusable) bool {
	if c != nil && !c.Focusable() {
		return false
	}
	f.set(c)
	return true
}

func (f *FocusManager) ClearFocus() { f.set(nil) }

func (f *FocusManager) IsFocused(c Focusable) bool { return c != nil && f.focused == c }

// OnGotFocus registers fn to run after any element gains focus.
func (f *FocusManager) OnGotFocus(fn func(Focusable)) {
	f.listeners = append(f.listeners, fn)
}

func (f *FocusManager) set(c Focusable) {
	if f.focused == c {
		return
	}
	old := f.focused
	f.focused = c
	if old != nil {
		old.LostFocus()
	}
	if c != nil {
		c.GotFocus()
		for _, fn := range f.listeners {
			fn(c)
		}
	}
}
