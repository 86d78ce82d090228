package ui

import "github.com/hubastard/groveui/engine/input"

// ToggleButton is a Button that flips IsChecked on every click and draws
// its checked states from the "Checked" resource family.
type ToggleButton struct {
	Button
	Common[*ToggleButton]
	checked bool
	changed []func(bool)
}

func NewToggleButton(content any) *ToggleButton {
	t := &ToggleButton{}
	t.Init(t)
	t.Common = NewCommon(t)
	t.initButton(content, "ToggleButton")
	t.chrome.mapper = t.mapState
	return t
}

func (t *ToggleButton) IsChecked() bool { return t.checked }

func (t *ToggleButton) SetChecked(v bool) {
	if t.checked == v {
		return
	}
	t.checked = v
	t.chrome.refresh(&t.Base)
	for _, fn := range t.changed {
		fn(v)
	}
}

// OnCheckedChanged registers fn to run whenever IsChecked changes.
func (t *ToggleButton) OnCheckedChanged(fn func(bool)) { t.changed = append(t.changed, fn) }

func (t *ToggleButton) HandlePointer(e input.PointerEvent) {
	if e.Kind == input.PointerClick && t.armed {
		t.SetChecked(!t.checked)
	}
	t.Button.HandlePointer(e)
}

func (t *ToggleButton) mapState(s VisualState) VisualState {
	if !t.checked {
		return s
	}
	switch s {
	case StateMouseOver:
		return StateCheckedMouseOver
	case StatePressed:
		return StateCheckedPressed
	}
	return StateChecked
}
