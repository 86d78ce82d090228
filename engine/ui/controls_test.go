package ui

import (
	"errors"
	"math"
	"testing"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

func down(x, y float64) core.Event {
	return core.EventMouseButton{Button: core.MouseLeft, Down: true, X: x, Y: y}
}

func up(x, y float64) core.Event {
	return core.EventMouseButton{Button: core.MouseLeft, X: x, Y: y}
}

func feed(h *Host, evs ...core.Event) {
	for _, ev := range evs {
		h.HandleEvent(ev)
	}
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 0.01 }

func TestButtonClick(t *testing.T) {
	host := newTestHost(400, 300)
	clicks := 0
	b := NewButton(nil).WithAlign(Start, Start).WithClick(func() { clicks++ })
	host.Add(b)
	host.Update(0)

	if got, want := b.Bounds(), (geom.Rect{W: 32, H: 24}); got != want {
		t.Fatalf("Bounds = %v, want %v", got, want)
	}
	feed(host, down(10, 10))
	if got := b.VisualState(); got != StatePressed {
		t.Errorf("state after press = %s, want %s", got, StatePressed)
	}
	feed(host, up(10, 10))
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if got := b.VisualState(); got != StateMouseOver {
		t.Errorf("state after release = %s, want %s", got, StateMouseOver)
	}
	if host.Context().Focus.Focused() != b {
		t.Error("press did not focus the button")
	}
}

func TestButtonClickCancelledByLeaving(t *testing.T) {
	host := newTestHost(400, 300)
	clicks := 0
	b := NewButton(nil).WithAlign(Start, Start).WithClick(func() { clicks++ })
	host.Add(b)
	host.Update(0)

	feed(host, down(10, 10), core.EventMouseMove{X: 100, Y: 100}, up(100, 100))
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if got := b.VisualState(); got != StateNormal {
		t.Errorf("state = %s, want %s", got, StateNormal)
	}
}

func TestButtonVisualStateColors(t *testing.T) {
	host := newTestHost(400, 300)
	b := NewButton(nil).WithAlign(Start, Start)
	host.Add(b)
	host.Update(0)

	border := b.TemplateRoot().(*Border)
	check := func(state VisualState) {
		t.Helper()
		want := b.ResourceColor("Button." + string(state) + ".Background")
		if got, _ := border.Background(); got != want {
			t.Errorf("%s background = %v, want %v", state, got, want)
		}
	}
	check(StateNormal)
	feed(host, core.EventMouseMove{X: 5, Y: 5})
	check(StateMouseOver)
	feed(host, down(5, 5))
	check(StatePressed)
	if got, want := border.Resources()["Border.TopLeft"], b.ResourceColor("Button.Pressed.Border.TopLeft"); got != want {
		t.Errorf("pressed top-left = %v, want %v (unsoftened)", got, want)
	}
}

func TestToggleButton(t *testing.T) {
	host := newTestHost(400, 300)
	tg := NewToggleButton(nil).WithAlign(Start, Start)
	var seen []bool
	tg.OnCheckedChanged(func(v bool) { seen = append(seen, v) })
	host.Add(tg)
	host.Update(0)

	feed(host, down(5, 5), up(5, 5))
	if !tg.IsChecked() {
		t.Fatal("IsChecked = false after click")
	}
	if got := tg.VisualState(); got != StateCheckedMouseOver {
		t.Errorf("state = %s, want %s", got, StateCheckedMouseOver)
	}
	host.Update(1)
	feed(host, down(5, 5), up(5, 5))
	if tg.IsChecked() {
		t.Error("IsChecked = true after second click")
	}
	feed(host, core.EventMouseMove{X: 300, Y: 300})
	tg.SetChecked(true)
	if got := tg.VisualState(); got != StateChecked {
		t.Errorf("state = %s, want %s", got, StateChecked)
	}
	if len(seen) != 3 || !seen[0] || seen[1] || !seen[2] {
		t.Errorf("changes = %v, want [true false true]", seen)
	}
}

func TestTemplateTypeMismatch(t *testing.T) {
	b := NewButton(nil)
	b.SetTemplate(TemplateFunc[*ScrollBar](func(*ScrollBar) Element { return nil }))
	v := mustPanic(t, func() { b.Measure(geom.Size{W: 100, H: 100}) })
	var te *TemplateError
	if err, ok := v.(error); !ok || !errors.As(err, &te) {
		t.Fatalf("panic = %v, want *TemplateError", v)
	}
	if te.Want != "*ui.ScrollBar" {
		t.Errorf("Want = %q, want %q", te.Want, "*ui.ScrollBar")
	}
}

func TestReapplyTemplateKeepsContent(t *testing.T) {
	host := newTestHost(400, 300)
	content := NewCanvas().WithSize(10, 10)
	b := NewButton(content).WithAlign(Start, Start)
	host.Add(b)
	host.Update(0)
	old := b.TemplateRoot()

	b.SetTemplate(buttonTemplate)
	host.Update(0)
	if b.TemplateRoot() == old {
		t.Fatal("template was not rebuilt")
	}
	if content.Parent() != b.TemplateRoot() {
		t.Errorf("content parent = %T, want the new border", content.Parent())
	}
	if old.Node().Parent() != nil {
		t.Error("old template root still attached")
	}
}

func TestContentOwnedElsewhere(t *testing.T) {
	content := NewCanvas()
	NewCanvas(content)
	b := NewButton(content)
	v := mustPanic(t, func() { b.Measure(geom.Size{W: 100, H: 100}) })
	if _, ok := v.(*ParentError); !ok {
		t.Errorf("panic = %T, want *ParentError", v)
	}
}

func TestContentTemplate(t *testing.T) {
	cc := NewContentControl(42)
	cc.SetContentTemplate(DataTemplateFunc[int](func(owner Element, n int) Element {
		return NewCanvas().WithSize(float32(n), 1)
	}))
	cc.UpdateLayout(geom.Size{W: 200, H: 200})
	if got, want := cc.DesiredSize(), (geom.Size{W: 42, H: 1}); got != want {
		t.Errorf("DesiredSize = %v, want %v", got, want)
	}
	if cc.Content() != 42 {
		t.Errorf("Content = %v, want 42", cc.Content())
	}
}

func TestScrollBarTrackClick(t *testing.T) {
	host := newTestHost(100, 300)
	sb := NewScrollBar(Vertical).WithSize(16, 200).WithAlign(Start, Start)
	var values []float32
	sb.OnValueChanged(func(v float32) { values = append(values, v) })
	host.Add(sb)
	host.Update(0)

	if h, _ := sb.Thumb().Height(); h != MinThumbLength {
		t.Errorf("thumb height = %v, want %v", h, MinThumbLength)
	}
	feed(host, down(8, 150), up(8, 150))
	if !near(sb.Value(), 140.0/180*100) {
		t.Errorf("Value = %v, want %v", sb.Value(), 140.0/180*100)
	}
	if len(values) != 1 {
		t.Errorf("ValueChanged fired %d times, want 1", len(values))
	}
	host.Update(0)
	if got := sb.Thumb().Bounds().Y; got < 139 || got > 140 {
		t.Errorf("thumb Y = %d, want 140", got)
	}
}

func TestScrollBarThumbDrag(t *testing.T) {
	host := newTestHost(100, 300)
	sb := NewScrollBar(Vertical).WithSize(16, 200).WithAlign(Start, Start)
	host.Add(sb)
	host.Update(0)

	feed(host, down(8, 10), core.EventMouseMove{X: 8, Y: 13})
	if !sb.Thumb().IsDragging() {
		t.Fatal("drag did not start on the thumb")
	}
	feed(host, core.EventMouseMove{X: 60, Y: 110})
	if !near(sb.Value(), 100.0/180*100) {
		t.Errorf("Value = %v, want %v", sb.Value(), 100.0/180*100)
	}
	feed(host, up(60, 110))
	if sb.Thumb().IsDragging() {
		t.Error("still dragging after release")
	}
}

func TestScrollViewer(t *testing.T) {
	host := newTestHost(200, 100)
	content := NewCanvas().WithSize(100, 500)
	sv := NewScrollViewer(content).WithScroll(false, true)
	host.Add(sv)
	host.Update(0)

	if got := sv.ScrollableHeight(); got != 400 {
		t.Fatalf("ScrollableHeight = %v, want 400", got)
	}
	bar := sv.VerticalBar()
	if bar.Maximum() != 400 || bar.Viewport() != 100 {
		t.Errorf("bar max/viewport = %v/%v, want 400/100", bar.Maximum(), bar.Viewport())
	}
	if sv.HorizontalBar().Node().Visible() {
		t.Error("horizontal bar visible")
	}

	feed(host, core.EventMouseMove{X: 50, Y: 50}, core.EventScroll{Yoff: -1})
	if got := sv.VerticalOffset(); got != 20 {
		t.Errorf("VerticalOffset after wheel = %v, want 20", got)
	}
	if bar.Value() != 20 {
		t.Errorf("bar Value = %v, want 20", bar.Value())
	}
	host.Update(0)
	if got := content.Bounds().Y; got != -20 {
		t.Errorf("content Y = %d, want -20", got)
	}

	tests := []struct {
		to, want float32
	}{
		{1000, 400},
		{-5, 0},
		{123, 123},
	}
	for _, tt := range tests {
		sv.ScrollToVerticalOffset(tt.to)
		if got := sv.VerticalOffset(); got != tt.want {
			t.Errorf("ScrollToVerticalOffset(%v) = %v, want %v", tt.to, got, tt.want)
		}
	}

	bar.SetValue(50)
	if got := sv.VerticalOffset(); got != 50 {
		t.Errorf("offset after bar change = %v, want 50", got)
	}
}

func TestScrollViewerDefaultsToFixed(t *testing.T) {
	host := newTestHost(200, 100)
	sv := NewScrollViewer(NewCanvas().WithSize(100, 500))
	host.Add(sv)
	host.Update(0)

	if sv.IsVerticallyScrollable() || sv.IsHorizontallyScrollable() {
		t.Error("new ScrollViewer scrolls by default")
	}
	if got := sv.ScrollableHeight(); got != 0 {
		t.Errorf("ScrollableHeight = %v, want 0", got)
	}
	if sv.VerticalBar().Node().Visible() {
		t.Error("vertical bar visible")
	}
}

func TestScrollViewerMargins(t *testing.T) {
	tests := []struct {
		name       string
		h, v       bool
		wantMargin geom.Thickness
	}{
		{"vertical", false, true, geom.Thickness{R: 20}},
		{"horizontal", true, false, geom.Thickness{B: 20}},
		{"both", true, true, geom.Thickness{R: 20, B: 20}},
		{"none", false, false, geom.Thickness{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv := NewScrollViewer(nil)
			sv.SetHorizontallyScrollable(tt.h)
			sv.SetVerticallyScrollable(tt.v)
			sv.UpdateLayout(geom.Size{W: 100, H: 100})
			if got := sv.Presenter().Margin(); got != tt.wantMargin {
				t.Errorf("presenter margin = %v, want %v", got, tt.wantMargin)
			}
			if got := sv.VerticalBar().hidden; got == tt.v {
				t.Errorf("vertical bar hidden = %v", got)
			}
		})
	}
}

func TestTextBlockDrawsVisibleLinesOnly(t *testing.T) {
	host := newTestHost(200, 48)
	lines := "x"
	for i := 1; i < 100; i++ {
		lines += "\nx"
	}
	block := NewTextBlock(lines)
	sv := NewScrollViewer(block).WithScroll(false, true)
	host.Add(sv)
	host.Update(0)
	sv.ScrollToVerticalOffset(160)
	host.Update(0)

	s := &recSurface{}
	host.Draw(s)
	if s.quads != 3 {
		t.Errorf("glyph quads = %d, want 3", s.quads)
	}
}

func TestUnloadUnregisters(t *testing.T) {
	host := newTestHost(400, 300)
	b := NewButton(nil).WithAlign(Start, Start)
	host.Add(b)
	host.Update(0)
	if !host.Input().Pointer.Registered(b) {
		t.Fatal("button not registered after load")
	}
	b.Focus()

	host.Root().Remove(b)
	if host.Input().Pointer.Registered(b) {
		t.Error("button still registered after removal")
	}
	if host.Context().Focus.Focused() != nil {
		t.Error("removed button kept focus")
	}
	if b.IsLoaded() {
		t.Error("IsLoaded = true after removal")
	}
}
