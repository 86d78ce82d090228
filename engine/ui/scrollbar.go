package ui

import (
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

// MinThumbLength is the smallest thumb a ScrollBar draws.
const MinThumbLength = 20

// ThumbLength is the thumb size for a track of the given length: the
// viewport's share of the whole range, clamped to the track and never
// below MinThumbLength.
func ThumbLength(track, viewport, minimum, maximum float32) float32 {
	ideal := track
	if total := maximum - minimum + viewport; total > 0 {
		ideal = track * viewport / total
	}
	return max(MinThumbLength, geom.Clamp(ideal, 0, track))
}

// ThumbOffset is the thumb position along a track for value.
func ThumbOffset(track, thumb, value, minimum, maximum float32) float32 {
	if maximum <= minimum || track <= thumb {
		return 0
	}
	rng := track - thumb
	return geom.Clamp((value-minimum)/(maximum-minimum)*rng, 0, rng)
}

// ScrollBar selects a value in [Minimum, Maximum] with a draggable Thumb
// over a sunken track. Clicking the track jumps the thumb to the pointer.
type ScrollBar struct {
	Control
	Common[*ScrollBar]
	orientation Orientation
	minimum     float32
	maximum     float32
	value       float32
	viewport    float32

	track     *Border
	thumb     *Thumb
	length    int
	onChanged []func(float32)
}

func NewScrollBar(o Orientation) *ScrollBar {
	s := &ScrollBar{orientation: o, maximum: 100, viewport: 10}
	s.Init(s)
	s.Common = NewCommon(s)
	s.style = "ScrollBar"
	s.template = TemplateFunc[*ScrollBar]((*ScrollBar).build)
	return s
}

func (s *ScrollBar) build() Element {
	s.track = NewBorder(nil)
	s.track.SetStyle("ScrollBar")
	s.track.SetPadding(geom.Uniform(4))
	s.thumb = NewThumb()
	if s.orientation == Vertical {
		s.track.SetHorizontalAlignment(Center)
		s.thumb.SetVerticalAlignment(Start)
	} else {
		s.track.SetVerticalAlignment(Center)
		s.thumb.SetHorizontalAlignment(Start)
	}
	s.thumb.OnDragDelta(func(e input.PointerEvent) { s.moveThumbTo(e.Pos) })
	s.updateThumb()
	return NewCanvas(s.track, s.thumb)
}

func (s *ScrollBar) Orientation() Orientation { return s.orientation }
func (s *ScrollBar) Minimum() float32         { return s.minimum }
func (s *ScrollBar) Maximum() float32         { return s.maximum }
func (s *ScrollBar) Value() float32           { return s.value }
func (s *ScrollBar) Viewport() float32        { return s.viewport }
func (s *ScrollBar) Thumb() *Thumb            { return s.thumb }

// OnValueChanged registers fn to run whenever Value changes.
func (s *ScrollBar) OnValueChanged(fn func(float32)) { s.onChanged = append(s.onChanged, fn) }

func (s *ScrollBar) SetValue(v float32) {
	if s.value == v {
		return
	}
	s.value = v
	s.updateThumb()
	emit(s.onChanged, v)
}

func (s *ScrollBar) SetMinimum(v float32) {
	if s.minimum != v {
		s.minimum = v
		s.updateThumb()
	}
}

func (s *ScrollBar) SetMaximum(v float32) {
	if s.maximum != v {
		s.maximum = v
		s.updateThumb()
	}
}

func (s *ScrollBar) SetViewport(v float32) {
	if s.viewport != v {
		s.viewport = v
		s.updateThumb()
	}
}

func (s *ScrollBar) updateThumb() {
	if s.thumb == nil {
		return
	}
	track := float32(s.length)
	size := ThumbLength(track, s.viewport, s.minimum, s.maximum)
	off := ThumbOffset(track, size, s.value, s.minimum, s.maximum)
	if s.orientation == Vertical {
		s.thumb.SetHeight(size)
		s.thumb.SetMargin(geom.Thickness{T: off})
	} else {
		s.thumb.SetWidth(size)
		s.thumb.SetMargin(geom.Thickness{L: off})
	}
}

// moveThumbTo centers the thumb on p (within the track) and derives Value
// from the new position.
func (s *ScrollBar) moveThumbTo(p geom.Point) {
	track := float32(s.length)
	var size, pos float32
	if s.orientation == Vertical {
		size, _ = s.thumb.Height()
		pos = p.Y - float32(s.bounds.Y)
	} else {
		size, _ = s.thumb.Width()
		pos = p.X - float32(s.bounds.X)
	}
	rng := track - size
	off := geom.Clamp(pos-size/2, 0, rng)
	v := s.minimum
	if rng > 0 {
		v = s.minimum + off/rng*(s.maximum-s.minimum)
	}
	s.SetValue(v)
}

func (s *ScrollBar) ArrangeOverride(final geom.Rect) geom.Rect {
	bounds := s.Base.ArrangeOverride(final)
	length := bounds.H
	if s.orientation == Horizontal {
		length = bounds.W
	}
	if length != s.length {
		s.length = length
		s.updateThumb()
	}
	s.arrangeRoot(bounds)
	return bounds
}

func (s *ScrollBar) HandlePointer(e input.PointerEvent) {
	if e.Kind == input.PointerDown && s.thumb != nil && !s.thumb.Bounds().Contains(e.Pos) {
		s.moveThumbTo(e.Pos)
	}
}

func (s *ScrollBar) OnLoaded()   { s.registerPointer() }
func (s *ScrollBar) OnUnloaded() { s.unregisterPointer() }
