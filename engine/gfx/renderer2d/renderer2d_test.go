package renderer2d

import (
	"maps"
	"testing"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

type fakeTex struct{ w, h int }

func (t *fakeTex) Size() (int, int) { return t.w, t.h }

type fakeRes struct{ released bool }

func (f *fakeRes) Release() { f.released = true }

type scissor struct {
	on         bool
	x, y, w, h int
}

type fakeRenderer struct {
	draws    []core.DrawCmd
	uploads  [][]float32
	scissors []scissor
	textures int
}

func (f *fakeRenderer) Init() error              { return nil }
func (f *fakeRenderer) Resize(w, h int)          {}
func (f *fakeRenderer) Clear(r, g, b, a float32) {}
func (f *fakeRenderer) Shutdown()                {}
func (f *fakeRenderer) GPUVendor() string        { return "fake" }
func (f *fakeRenderer) GPURenderer() string      { return "fake" }
func (f *fakeRenderer) GPUVersion() string       { return "0" }

func (f *fakeRenderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return &fakeRes{}, nil
}

func (f *fakeRenderer) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	f.textures++
	return &fakeTex{d.Width, d.Height}, nil
}

func (f *fakeRenderer) CreateMesh(core.MeshDesc) (core.Mesh, error) { return &fakeRes{}, nil }

func (f *fakeRenderer) UpdateMesh(m core.Mesh, v []float32, i []uint32) error {
	f.uploads = append(f.uploads, append([]float32(nil), v...))
	return nil
}

func (f *fakeRenderer) Draw(cmd core.DrawCmd) {
	cmd.Samplers = maps.Clone(cmd.Samplers)
	f.draws = append(f.draws, cmd)
}

func (f *fakeRenderer) SetScissor(on bool, x, y, w, h int) {
	f.scissors = append(f.scissors, scissor{on, x, y, w, h})
}

func newTestRenderer(t *testing.T, maxQuads int) (*Renderer2D, *fakeRenderer) {
	t.Helper()
	f := &fakeRenderer{}
	rd, err := New(f, "vs", "fs", maxQuads)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rd, f
}

func TestFillRectBatches(t *testing.T) {
	rd, f := newTestRenderer(t, 100)
	rd.BeginScene([16]float32{})
	rd.FillRect(geom.Rect{X: 10, Y: 20, W: 4, H: 2}, colors.White)
	rd.FillRect(geom.Rect{X: 0, Y: 0, W: 0, H: 5}, colors.White)
	rd.FillRect(geom.Rect{W: 1, H: 1}, colors.White)
	rd.EndScene()

	if len(f.draws) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(f.draws))
	}
	if got := rd.Stats().QuadCount; got != 2 {
		t.Errorf("QuadCount = %d, want 2", got)
	}
	v := f.uploads[0]
	// First corner of the first quad is its top-left.
	if v[0] != 10 || v[1] != 20 {
		t.Errorf("top-left = (%v, %v), want (10, 20)", v[0], v[1])
	}
	if br := v[3*vStride : 3*vStride+2]; br[0] != 14 || br[1] != 22 {
		t.Errorf("bottom-right = %v, want [14 22]", br)
	}
}

func TestBatchFlushesWhenFull(t *testing.T) {
	rd, _ := newTestRenderer(t, 2)
	rd.BeginScene([16]float32{})
	for i := 0; i < 5; i++ {
		rd.FillRect(geom.Rect{W: 1, H: 1}, colors.White)
	}
	rd.EndScene()
	if got := rd.Stats().DrawCalls; got != 3 {
		t.Errorf("DrawCalls = %d, want 3", got)
	}
	if got := rd.Stats().TotalVertexCount(); got != 20 {
		t.Errorf("TotalVertexCount = %d, want 20", got)
	}
}

func TestTextureSlots(t *testing.T) {
	rd, f := newTestRenderer(t, 100)
	rd.BeginScene([16]float32{})
	a, b := &fakeTex{8, 8}, &fakeTex{8, 8}
	rd.DrawGlyph(0, 0, 1, 1, a, colors.White, fullUV)
	rd.DrawGlyph(0, 0, 1, 1, b, colors.White, fullUV)
	rd.DrawGlyph(0, 0, 1, 1, a, colors.White, fullUV)
	rd.EndScene()

	if got := len(f.draws[0].Samplers); got != 3 {
		t.Errorf("samplers = %d, want 3 (white + 2)", got)
	}
	if f.draws[0].Samplers["uTex[1]"] != a || f.draws[0].Samplers["uTex[2]"] != b {
		t.Error("textures bound to unexpected slots")
	}
	v := f.uploads[0]
	if idx := v[2*4*vStride+8]; idx != 1 {
		t.Errorf("third quad texture index = %v, want 1", idx)
	}
}

func TestTextureSlotsFlushWhenFull(t *testing.T) {
	rd, f := newTestRenderer(t, 100)
	rd.BeginScene([16]float32{})
	var last core.Texture
	for i := 0; i < maxTexSlots; i++ {
		last = &fakeTex{i + 1, 1}
		rd.DrawGlyph(0, 0, 1, 1, last, colors.White, fullUV)
	}
	rd.EndScene()

	if len(f.draws) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(f.draws))
	}
	if got := len(f.draws[0].Samplers); got != maxTexSlots {
		t.Errorf("first batch samplers = %d, want %d", got, maxTexSlots)
	}
	if got := f.draws[1].Samplers["uTex[1]"]; got != last {
		t.Errorf("second batch uTex[1] = %v, want the last texture", got)
	}
	if got := rd.Stats().TextureCount; got != maxTexSlots {
		t.Errorf("TextureCount = %d, want %d", got, maxTexSlots)
	}
}

func TestClipStack(t *testing.T) {
	rd, f := newTestRenderer(t, 100)
	rd.BeginScene([16]float32{})
	rd.FillRect(geom.Rect{W: 1, H: 1}, colors.White)
	rd.PushClip(geom.Rect{X: 0, Y: 0, W: 100, H: 100})
	rd.FillRect(geom.Rect{W: 1, H: 1}, colors.White)
	rd.PushClip(geom.Rect{X: 50, Y: 50, W: 100, H: 100})
	if got, _ := rd.Clip(); got != (geom.Rect{X: 50, Y: 50, W: 50, H: 50}) {
		t.Errorf("nested clip = %v, want the intersection", got)
	}
	rd.PopClip()
	rd.PopClip()
	rd.PopClip()
	rd.EndScene()

	want := []scissor{
		{on: false},
		{true, 0, 0, 100, 100},
		{true, 50, 50, 50, 50},
		{true, 0, 0, 100, 100},
		{on: false},
	}
	if len(f.scissors) != len(want) {
		t.Fatalf("scissor calls = %v, want %v", f.scissors, want)
	}
	for i := range want {
		if f.scissors[i] != want[i] {
			t.Errorf("scissor[%d] = %v, want %v", i, f.scissors[i], want[i])
		}
	}
	if len(f.draws) != 2 {
		t.Errorf("draw calls = %d, want 2 (one per clip change with quads queued)", len(f.draws))
	}
}

func TestClose(t *testing.T) {
	rd, _ := newTestRenderer(t, 1)
	mesh, pipe := rd.mesh.(*fakeRes), rd.pipe.(*fakeRes)
	rd.Close()
	if !mesh.released || !pipe.released {
		t.Error("Close did not release GPU objects")
	}
}
