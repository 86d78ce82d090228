package input

type KeyReceiver interface {
	HandleKey(e KeyEvent)
}

// TextReceiver accepts typed characters while focused.
type TextReceiver interface {
	HandleText(r rune)
}

// FocusedKeyReceiver only hears keys while it holds focus.
type FocusedKeyReceiver interface {
	KeyReceiver
	Focusable
}

// KeyboardManager delivers key events to the focused receiver (when it
// registered for focused delivery) and then to every regular receiver.
type KeyboardManager struct {
	focus     *FocusManager
	receivers []KeyReceiver
	onFocused []FocusedKeyReceiver
	scratch   []KeyReceiver
}

func NewKeyboardManager(focus *FocusManager) *KeyboardManager {
	return &KeyboardManager{focus: focus}
}

func (m *KeyboardManager) Register(r KeyReceiver) {
	if indexOf(m.receivers, r) < 0 {
		m.receivers = append(m.receivers, r)
	}
}

func (m *KeyboardManager) Unregister(r KeyReceiver) {
	if i := indexOf(m.receivers, r); i >= 0 {
		m.receivers = append(m.receivers[:i], m.receivers[i+1:]...)
	}
}

func (m *KeyboardManager) RegisterOnFocused(r FocusedKeyReceiver) {
	if indexOf(m.onFocused, r) < 0 {
		m.onFocused = append(m.onFocused, r)
	}
}

func (m *KeyboardManager) UnregisterOnFocused(r FocusedKeyReceiver) {
	if i := indexOf(m.onFocused, r); i >= 0 {
		m.onFocused = append(m.onFocused[:i], m.onFocused[i+1:]...)
	}
}

func (m *KeyboardManager) DispatchKey(e KeyEvent) {
	if r := m.focusedReceiver(); r != nil {
		r.HandleKey(e)
	}
	m.scratch = append(m.scratch[:0], m.receivers...)
	for _, r := range m.scratch {
		r.HandleKey(e)
	}
	clear(m.scratch)
}

// DispatchText hands a typed character to the focused receiver if it
// accepts text.
func (m *KeyboardManager) DispatchText(ch rune) bool {
	r := m.focusedReceiver()
	if r == nil {
		return false
	}
	tr, ok := r.(TextReceiver)
	if !ok {
		return false
	}
	tr.HandleText(ch)
	return true
}

func (m *KeyboardManager) focusedReceiver() FocusedKeyReceiver {
	if m.focus == nil || m.focus.Focused() == nil {
		return nil
	}
	for _, r := range m.onFocused {
		if Focusable(r) == m.focus.Focused() {
			return r
		}
	}
	return nil
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}
