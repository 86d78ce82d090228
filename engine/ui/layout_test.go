package ui

import (
	"errors"
	"math"
	"testing"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/text"
)

type fill struct {
	r geom.Rect
	c colors.Color
}

// recSurface records what a tree draws.
type recSurface struct {
	fills []fill
	clips []geom.Rect
	quads int
	depth int
}

func (s *recSurface) DrawQuad(x, y, w, h float32, c colors.Color) { s.quads++ }

func (s *recSurface) DrawGlyph(x, y, w, h float32, tex core.Texture, tint colors.Color, uv [4]float32) {
	s.quads++
}

func (s *recSurface) FillRect(r geom.Rect, c colors.Color) { s.fills = append(s.fills, fill{r, c}) }

func (s *recSurface) PushClip(r geom.Rect) {
	s.clips = append(s.clips, r)
	s.depth++
}

func (s *recSurface) PopClip() { s.depth-- }

func (s *recSurface) filled(r geom.Rect) bool {
	for _, f := range s.fills {
		if f.r == r {
			return true
		}
	}
	return false
}

func mustPanic(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
	return nil
}

func newTestHost(w, h int) *Host {
	host := NewHost(HostOptions{Font: text.NewCellFont(8, 16)})
	host.Resize(w, h)
	return host
}

func TestStackSpacing(t *testing.T) {
	a := NewCanvas().WithSize(100, 20)
	b := NewCanvas().WithSize(100, 30)
	s := VStack(a, b).WithSpacing(4)
	s.UpdateLayout(geom.Size{W: 200, H: 200})

	if got, want := s.DesiredSize(), (geom.Size{W: 100, H: 54}); got != want {
		t.Errorf("DesiredSize = %v, want %v", got, want)
	}
	if got, want := a.Bounds(), (geom.Rect{X: 0, Y: 0, W: 100, H: 20}); got != want {
		t.Errorf("first child = %v, want %v", got, want)
	}
	if got, want := b.Bounds(), (geom.Rect{X: 0, Y: 24, W: 100, H: 30}); got != want {
		t.Errorf("second child = %v, want %v", got, want)
	}
}

func TestStackHorizontalMargins(t *testing.T) {
	a := NewCanvas().WithSize(10, 10).WithMargin4(2, 3, 4, 5)
	b := NewCanvas().WithSize(20, 10)
	s := HStack(a, b).WithPadding(1)
	s.UpdateLayout(geom.Size{W: 100, H: 50})

	if got, want := s.DesiredSize(), (geom.Size{W: 2 + 10 + 4 + 20 + 2, H: 3 + 10 + 5 + 2}); got != want {
		t.Errorf("DesiredSize = %v, want %v", got, want)
	}
	if got, want := a.Bounds(), (geom.Rect{X: 3, Y: 4, W: 10, H: 10}); got != want {
		t.Errorf("first child = %v, want %v", got, want)
	}
	if got := b.Bounds().X; got != 1+2+10+4 {
		t.Errorf("second child X = %d, want %d", got, 17)
	}
}

func TestStackFractionalSpacing(t *testing.T) {
	var kids []Element
	for range 3 {
		kids = append(kids, NewCanvas().WithSize(10, 10))
	}
	s := VStack(kids...).WithSpacing(2.5)
	s.UpdateLayout(geom.Size{W: 100, H: 100})

	if got, want := s.DesiredSize().H, float32(35); got != want {
		t.Errorf("DesiredSize.H = %v, want %v", got, want)
	}
	for i, want := range []int{0, 12, 25} {
		if got := kids[i].Node().Bounds().Y; got != want {
			t.Errorf("child %d Y = %d, want %d", i, got, want)
		}
	}
	if got := kids[2].Node().Bounds().Bottom(); got != 35 {
		t.Errorf("last child bottom = %d, want 35", got)
	}
}

func TestEmptyStack(t *testing.T) {
	s := VStack().WithSpacing(8)
	s.UpdateLayout(geom.Size{W: 100, H: 100})
	if got := s.DesiredSize(); got != (geom.Size{}) {
		t.Errorf("DesiredSize = %v, want zero", got)
	}
}

func TestArrangeAlignment(t *testing.T) {
	tests := []struct {
		name string
		h, v Align
		want geom.Rect
	}{
		{"stretch", Stretch, Stretch, geom.Rect{W: 100, H: 80}},
		{"start", Start, Start, geom.Rect{W: 30, H: 20}},
		{"center", Center, Center, geom.Rect{X: 35, Y: 30, W: 30, H: 20}},
		{"end", End, End, geom.Rect{X: 70, Y: 60, W: 30, H: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := NewBorder(NewCanvas().WithSize(30, 20)).WithAlign(tt.h, tt.v)
			root := NewCanvas(child)
			root.UpdateLayout(geom.Size{W: 100, H: 80})
			if got := child.Bounds(); got != tt.want {
				t.Errorf("Bounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExplicitSizeClampsToFinal(t *testing.T) {
	c := NewCanvas().WithSize(500, 500)
	root := NewCanvas(c)
	root.UpdateLayout(geom.Size{W: 100, H: 80})
	if got, want := c.Bounds(), (geom.Rect{W: 100, H: 80}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestMeasureIsIdempotent(t *testing.T) {
	tb := NewTextBlock("one\ntwo words\nthree").WithFont(text.NewCellFont(8, 16)).WithWrapping(text.Wrap)
	b := NewBorder(tb).WithPadding(6)
	s := VStack(b, NewCanvas().WithSize(40, 40)).WithSpacing(3)
	avail := geom.Size{W: 70, H: 300}

	s.Measure(avail)
	first := s.DesiredSize()
	s.Measure(avail)
	if got := s.DesiredSize(); got != first {
		t.Errorf("second Measure = %v, want %v", got, first)
	}
	if first.W > avail.W || first.H > avail.H {
		t.Errorf("DesiredSize %v exceeds %v", first, avail)
	}
}

func TestChildrenStayInsideParent(t *testing.T) {
	inner := NewCanvas().WithMargin(5)
	border := NewBorder(inner).WithPadding(7)
	stack := VStack(border, NewCanvas().WithSize(10, 10)).WithPadding(3)
	root := NewCanvas(stack)
	root.UpdateLayout(geom.Size{W: 120, H: 90})

	pairs := []struct {
		name          string
		parent, child Element
	}{
		{"root/stack", root, stack},
		{"stack/border", stack, border},
		{"border/inner", border, inner},
	}
	for _, p := range pairs {
		if !p.parent.Node().Bounds().ContainsRect(p.child.Node().Bounds()) {
			t.Errorf("%s: %v not inside %v", p.name, p.child.Node().Bounds(), p.parent.Node().Bounds())
		}
	}
	if got, want := inner.Bounds(), (geom.Rect{X: 3 + 7 + 5, Y: 3 + 7 + 5, W: 114 - 14 - 10, H: 0}); got != want {
		t.Errorf("inner = %v, want %v", got, want)
	}
}

func TestHiddenElementMeasuresEmpty(t *testing.T) {
	c := NewCanvas().WithSize(50, 50).WithVisible(false)
	VStack(c).UpdateLayout(geom.Size{W: 100, H: 100})
	if got := c.DesiredSize(); got != (geom.Size{}) {
		t.Errorf("DesiredSize = %v, want zero", got)
	}
}

func TestCanvasChildInvalidatesLocally(t *testing.T) {
	host := newTestHost(200, 100)
	child := NewBorder(nil).WithAlign(Start, Start)
	host.Add(child)
	host.Update(0)

	child.SetPadding(geom.Uniform(10))
	if !child.invalidated {
		t.Fatal("canvas child not marked for local layout")
	}
	if host.Root().invalidated {
		t.Error("root invalidated by a canvas child")
	}
	host.Update(0)
	if child.invalidated {
		t.Error("child still invalidated after Update")
	}
	if got, want := child.Bounds(), (geom.Rect{W: 20, H: 20}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestNestedChangeReachesRoot(t *testing.T) {
	host := newTestHost(200, 100)
	leaf := NewCanvas().WithSize(10, 10)
	stack := VStack(leaf)
	outer := VStack(stack)
	host.Add(outer)
	host.Update(0)

	leaf.SetHeight(30)
	if !outer.invalidated {
		t.Fatal("nearest canvas child not invalidated")
	}
	if stack.hasMeasure {
		t.Error("ancestor kept its cached measure input")
	}
	host.Update(0)
	if got := leaf.Bounds().H; got != 30 {
		t.Errorf("leaf height = %d, want 30", got)
	}
}

func TestSetterSkipsUnchangedValue(t *testing.T) {
	host := newTestHost(100, 100)
	leaf := NewCanvas().WithSize(10, 10)
	outer := VStack(leaf)
	host.Add(outer)
	host.Update(0)

	leaf.SetWidth(10)
	leaf.SetMargin(geom.Thickness{})
	if outer.invalidated || host.Root().invalidated {
		t.Error("unchanged values invalidated the tree")
	}
}

func TestParentError(t *testing.T) {
	child := NewCanvas()
	NewCanvas(child)
	v := mustPanic(t, func() { NewCanvas(child) })
	var pe *ParentError
	if err, ok := v.(error); !ok || !errors.As(err, &pe) {
		t.Fatalf("panic = %v, want *ParentError", v)
	}
}

func TestRemoveThenReattach(t *testing.T) {
	child := NewCanvas()
	a := NewCanvas(child)
	if !a.Remove(child) {
		t.Fatal("Remove = false")
	}
	b := NewCanvas(child)
	if child.Parent() != Element(b) {
		t.Errorf("Parent = %T, want the second canvas", child.Parent())
	}
	if a.Remove(child) {
		t.Error("Remove of a foreign child = true")
	}
}

func TestDrawOrderAndClip(t *testing.T) {
	red := NewCanvas().WithBackground(colors.Red).WithOrder(0, 1)
	green := NewCanvas().WithBackground(colors.Green)
	root := NewCanvas(red, green).WithPadding(5)
	root.UpdateLayout(geom.Size{W: 50, H: 40})

	s := &recSurface{}
	root.Draw(s)
	if len(s.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(s.fills))
	}
	if s.fills[0].c != colors.Green || s.fills[1].c != colors.Red {
		t.Errorf("draw order = %v, %v; want green then red", s.fills[0].c, s.fills[1].c)
	}
	if got, want := s.clips[0], (geom.Rect{X: 5, Y: 5, W: 40, H: 30}); got != want {
		t.Errorf("root clip = %v, want %v", got, want)
	}
	if s.depth != 0 {
		t.Errorf("clip depth = %d after Draw, want 0", s.depth)
	}
}

func TestExtremeDrawOrder(t *testing.T) {
	red := NewCanvas().WithBackground(colors.Red).WithOrder(0, math.MaxInt)
	green := NewCanvas().WithBackground(colors.Green).WithOrder(0, math.MinInt)
	root := NewCanvas(red, green)
	root.UpdateLayout(geom.Size{W: 50, H: 40})

	s := &recSurface{}
	root.Draw(s)
	if len(s.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(s.fills))
	}
	if s.fills[0].c != colors.Green || s.fills[1].c != colors.Red {
		t.Errorf("draw order = %v, %v; want green then red", s.fills[0].c, s.fills[1].c)
	}
}

func TestBorderBevel(t *testing.T) {
	b := NewBorder(nil).WithSize(40, 30)
	b.UpdateLayout(geom.Size{W: 40, H: 30})
	s := &recSurface{}
	b.Draw(s)

	tl := b.ResourceColor("Border.TopLeft")
	br := b.ResourceColor("Border.BottomRight")
	want := []fill{
		{geom.Rect{X: 0, Y: 26, W: 40, H: 4}, br},
		{geom.Rect{X: 36, Y: 0, W: 4, H: 26}, br},
		{geom.Rect{X: 0, Y: 0, W: 40, H: 4}, tl},
		{geom.Rect{X: 0, Y: 4, W: 4, H: 26}, tl},
	}
	if len(s.fills) != len(want) {
		t.Fatalf("fills = %d, want %d", len(s.fills), len(want))
	}
	for i, f := range want {
		if s.fills[i] != f {
			t.Errorf("fill %d = %v, want %v", i, s.fills[i], f)
		}
	}
}

func TestMissingResourcePanics(t *testing.T) {
	c := NewCanvas()
	v := mustPanic(t, func() { c.ResourceColor("Nope") })
	if _, ok := v.(*ResourceError); !ok {
		t.Errorf("panic = %T, want *ResourceError", v)
	}
}

func TestThumbLength(t *testing.T) {
	tests := []struct {
		name                      string
		track, viewport, min, max float32
		want                      float32
	}{
		{"proportional", 200, 200, 0, 400, 200.0 / 3},
		{"minimum", 100, 10, 0, 1000, MinThumbLength},
		{"nothing to scroll", 100, 10, 0, 0, 100},
		{"empty range", 100, 0, 0, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThumbLength(tt.track, tt.viewport, tt.min, tt.max)
			if math.Abs(float64(got-tt.want)) > 0.01 {
				t.Errorf("ThumbLength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThumbOffset(t *testing.T) {
	tests := []struct {
		value, want float32
	}{
		{0, 0},
		{50, 40},
		{100, 80},
		{150, 80},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := ThumbOffset(100, 20, tt.value, 0, 100); got != tt.want {
			t.Errorf("ThumbOffset(value %v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestWrongGoroutinePanics(t *testing.T) {
	host := newTestHost(100, 100)
	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		host.Root().UpdateLayout(geom.Size{W: 50, H: 50})
	}()
	if v := <-done; v != ErrWrongGoroutine {
		t.Errorf("panic = %v, want ErrWrongGoroutine", v)
	}
}
