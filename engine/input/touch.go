package input

type TouchReceiver interface {
	HandleTouch(e TouchEvent)
}

// TouchManager broadcasts touch events to every registered receiver.
type TouchManager struct {
	receivers []TouchReceiver
	scratch   []TouchReceiver
}

func NewTouchManager() *TouchManager { return &TouchManager{} }

func (m *TouchManager) Register(r TouchReceiver) {
	if indexOf(m.receivers, r) < 0 {
		m.receivers = append(m.receivers, r)
	}
}

func (m *TouchManager) Unregister(r TouchReceiver) {
	if i := indexOf(m.receivers, r); i >= 0 {
		m.receivers = append(m.receivers[:i], m.receivers[i+1:]...)
	}
}

func (m *TouchManager) Dispatch(e TouchEvent) {
	m.scratch = append(m.scratch[:0], m.receivers...)
	for _, r := range m.scratch {
		r.HandleTouch(e)
	}
	clear(m.scratch)
}
