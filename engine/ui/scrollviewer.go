package ui

import (
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

// ScrollBarSize is the thickness of a ScrollViewer's bars.
const ScrollBarSize = 16

// scrollGap is the room kept free next to a visible bar.
const scrollGap = 20

// wheelStep converts wheel units into pixels of scroll.
const wheelStep = 6

// ScrollViewer shows its content through a ScrollContentPresenter with a
// ScrollBar for every scrollable axis. Bars and offsets stay in sync both
// ways.
type ScrollViewer struct {
	ContentControl
	Common[*ScrollViewer]
	canH, canV bool

	presenter *ScrollContentPresenter
	vBar      *ScrollBar
	hBar      *ScrollBar
	syncing   bool
}

func NewScrollViewer(content any) *ScrollViewer {
	s := &ScrollViewer{}
	s.Init(s)
	s.Common = NewCommon(s)
	s.initContent(content)
	s.template = TemplateFunc[*ScrollViewer]((*ScrollViewer).build)
	return s
}

func (s *ScrollViewer) build() Element {
	s.vBar = NewScrollBar(Vertical)
	s.vBar.SetHorizontalAlignment(End)
	s.vBar.SetWidth(ScrollBarSize)
	s.hBar = NewScrollBar(Horizontal)
	s.hBar.SetVerticalAlignment(End)
	s.hBar.SetHeight(ScrollBarSize)
	s.presenter = NewScrollContentPresenter(s.contentVisual(s))

	s.vBar.OnValueChanged(s.setVerticalOffset)
	s.hBar.OnValueChanged(s.setHorizontalOffset)
	s.presenter.OnScrollInfoChanged(s.syncBars)
	s.updateBars()
	return NewCanvas(s.vBar, s.hBar, s.presenter)
}

func (s *ScrollViewer) Presenter() *ScrollContentPresenter { return s.presenter }
func (s *ScrollViewer) VerticalBar() *ScrollBar            { return s.vBar }
func (s *ScrollViewer) HorizontalBar() *ScrollBar          { return s.hBar }

func (s *ScrollViewer) IsVerticallyScrollable() bool   { return s.canV }
func (s *ScrollViewer) IsHorizontallyScrollable() bool { return s.canH }

func (s *ScrollViewer) SetVerticallyScrollable(v bool) {
	if s.canV != v {
		s.canV = v
		s.updateBars()
		s.InvalidateVisual()
	}
}

func (s *ScrollViewer) SetHorizontallyScrollable(v bool) {
	if s.canH != v {
		s.canH = v
		s.updateBars()
		s.InvalidateVisual()
	}
}

// WithScroll enables scrolling on each axis.
func (s *ScrollViewer) WithScroll(h, v bool) *ScrollViewer {
	s.SetHorizontallyScrollable(h)
	s.SetVerticallyScrollable(v)
	return s
}

func (s *ScrollViewer) VerticalOffset() float32 {
	if s.presenter == nil {
		return 0
	}
	return s.presenter.VerticalOffset()
}

func (s *ScrollViewer) HorizontalOffset() float32 {
	if s.presenter == nil {
		return 0
	}
	return s.presenter.HorizontalOffset()
}

// ScrollableHeight is how far the content can scroll vertically.
func (s *ScrollViewer) ScrollableHeight() float32 {
	if s.presenter == nil {
		return 0
	}
	return s.presenter.Scrollable().H
}

func (s *ScrollViewer) ScrollableWidth() float32 {
	if s.presenter == nil {
		return 0
	}
	return s.presenter.Scrollable().W
}

// ViewportRect is the on-screen area the content is shown through.
func (s *ScrollViewer) ViewportRect() geom.Rect {
	if s.presenter == nil {
		return s.bounds
	}
	return s.presenter.bounds.Shrink(s.presenter.padding)
}

// ScrollToVerticalOffset scrolls to o, clamped to the scrollable range.
func (s *ScrollViewer) ScrollToVerticalOffset(o float32) {
	s.setVerticalOffset(geom.Clamp(o, 0, s.ScrollableHeight()))
}

func (s *ScrollViewer) ScrollToHorizontalOffset(o float32) {
	s.setHorizontalOffset(geom.Clamp(o, 0, s.ScrollableWidth()))
}

func (s *ScrollViewer) setVerticalOffset(o float32) {
	if s.presenter == nil || s.syncing {
		return
	}
	s.syncing = true
	s.presenter.SetVerticalOffset(o)
	s.vBar.SetValue(o)
	s.syncing = false
}

func (s *ScrollViewer) setHorizontalOffset(o float32) {
	if s.presenter == nil || s.syncing {
		return
	}
	s.syncing = true
	s.presenter.SetHorizontalOffset(o)
	s.hBar.SetValue(o)
	s.syncing = false
}

// syncBars follows the presenter's extent. An offset past the new end is
// pulled back.
func (s *ScrollViewer) syncBars() {
	p := s.presenter
	s.vBar.SetViewport(p.Viewport().H)
	s.vBar.SetMaximum(p.Scrollable().H)
	s.hBar.SetViewport(p.Viewport().W)
	s.hBar.SetMaximum(p.Scrollable().W)
	if p.VerticalOffset() > p.Scrollable().H {
		s.ScrollToVerticalOffset(p.Scrollable().H)
	}
	if p.HorizontalOffset() > p.Scrollable().W {
		s.ScrollToHorizontalOffset(p.Scrollable().W)
	}
}

func (s *ScrollViewer) updateBars() {
	if s.presenter == nil {
		return
	}
	s.presenter.SetCanScrollVertically(s.canV)
	s.presenter.SetCanScrollHorizontally(s.canH)
	s.vBar.SetVisible(s.canV)
	s.hBar.SetVisible(s.canH)
	switch {
	case s.canV && s.canH:
		s.vBar.SetMargin(geom.Thickness{B: ScrollBarSize})
		s.hBar.SetMargin(geom.Thickness{R: ScrollBarSize})
		s.presenter.SetMargin(geom.Thickness{R: scrollGap, B: scrollGap})
	case s.canV:
		s.vBar.SetMargin(geom.Thickness{})
		s.presenter.SetMargin(geom.Thickness{R: scrollGap})
	case s.canH:
		s.hBar.SetMargin(geom.Thickness{})
		s.presenter.SetMargin(geom.Thickness{B: scrollGap})
	default:
		s.presenter.SetMargin(geom.Thickness{})
	}
}

func (s *ScrollViewer) HandlePointer(e input.PointerEvent) {
	if e.Kind != input.PointerWheel {
		return
	}
	if e.WheelH != 0 && s.canH {
		s.ScrollToHorizontalOffset(s.HorizontalOffset() - e.WheelH/wheelStep)
	}
	if e.Wheel == 0 {
		return
	}
	switch {
	case s.canV:
		s.ScrollToVerticalOffset(s.VerticalOffset() - e.Wheel/wheelStep)
	case s.canH:
		s.ScrollToHorizontalOffset(s.HorizontalOffset() - e.Wheel/wheelStep)
	}
}

func (s *ScrollViewer) OnLoaded()   { s.registerPointer() }
func (s *ScrollViewer) OnUnloaded() { s.unregisterPointer() }
