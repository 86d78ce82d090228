package renderer2d

import (
	"fmt"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
)

// Texture units bound per draw call. Slot 0 is always the white texture.
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + slot1.
const (
	vStride      = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

var quadLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4},
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4},
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4},
	},
}

var fullUV = [4]float32{0, 0, 1, 1}

// Statistics counts what one frame submitted.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }
func (s Statistics) TotalIndexCount() int  { return s.QuadCount * indsPerQuad }

// Renderer2D batches axis-aligned quads in pixel space. It is the draw
// surface of a UI tree: solid rects, glyph quads and a scissor clip stack.
type Renderer2D struct {
	r     core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture

	maxQuads int
	verts    []float32
	inds     []uint32
	quads    int
	slots    []core.Texture

	slotNames [maxTexSlots]string
	samplers  map[string]core.Texture
	uniforms  map[string]any

	vp    [16]float32
	stats Statistics
	clips []geom.Rect
}

// New compiles the quad pipeline and allocates a mesh for maxQuads quads
// (10000 when maxQuads <= 0).
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d pipeline: %w", err)
	}
	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		pipe.Release()
		return nil, fmt.Errorf("renderer2d white texture: %w", err)
	}
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadLayout,
	})
	if err != nil {
		pipe.Release()
		return nil, fmt.Errorf("renderer2d mesh: %w", err)
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, mesh: mesh, white: white,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
		slots:    make([]core.Texture, 0, maxTexSlots),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.slotNames {
		rd.slotNames[i] = fmt.Sprintf("uTex[%d]", i)
	}
	rd.reset()
	return rd, nil
}

// BeginScene starts a frame drawn with the view-projection vp.
func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.clips = rd.clips[:0]
	rd.r.SetScissor(false, 0, 0, 0, 0)
	rd.reset()
}

// EndScene submits what is queued and drops any clip left pushed.
func (rd *Renderer2D) EndScene() {
	rd.flush()
	if len(rd.clips) > 0 {
		rd.clips = rd.clips[:0]
		rd.r.SetScissor(false, 0, 0, 0, 0)
	}
}

func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawQuad queues a solid quad with its top-left corner at (x, y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, c colors.Color) {
	rd.quad(x, y, w, h, c, rd.white, fullUV)
}

// DrawGlyph queues a tinted quad sampling uv (u0, v0, u1, v1) of tex.
func (rd *Renderer2D) DrawGlyph(x, y, w, h float32, tex core.Texture, tint colors.Color, uv [4]float32) {
	rd.quad(x, y, w, h, tint, tex, uv)
}

// ------ Helper ------

func (rd *Renderer2D) quad(x, y, w, h float32, c colors.Color, tex core.Texture, uv [4]float32) {
	if rd.quads >= rd.maxQuads {
		rd.flush()
	}
	slot := float32(rd.slot(tex))
	base := uint32(rd.quads * vertsPerQuad)
	x1, y1 := x+w, y+h
	rd.verts = append(rd.verts,
		x, y, c[0], c[1], c[2], c[3], uv[0], uv[1], slot,
		x1, y, c[0], c[1], c[2], c[3], uv[2], uv[1], slot,
		x, y1, c[0], c[1], c[2], c[3], uv[0], uv[3], slot,
		x1, y1, c[0], c[1], c[2], c[3], uv[2], uv[3], slot,
	)
	rd.inds = append(rd.inds, base, base+2, base+1, base+1, base+2, base+3)
	rd.quads++
	rd.stats.QuadCount++
}

// slot returns the texture unit of t, flushing when every unit is taken.
func (rd *Renderer2D) slot(t core.Texture) int {
	for i, s := range rd.slots {
		if s == t {
			return i
		}
	}
	if len(rd.slots) == maxTexSlots {
		rd.flush()
	}
	rd.slots = append(rd.slots, t)
	rd.stats.TextureCount = max(rd.stats.TextureCount, len(rd.slots))
	return len(rd.slots) - 1
}

func (rd *Renderer2D) flush() {
	if rd.quads == 0 {
		return
	}
	if err := rd.r.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		panic(err)
	}
	clear(rd.samplers)
	for i, t := range rd.slots {
		rd.samplers[rd.slotNames[i]] = t
	}
	rd.uniforms["uVP"] = rd.vp
	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++
	rd.reset()
}

func (rd *Renderer2D) reset() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quads = 0
	clear(rd.slots)
	rd.slots = append(rd.slots[:0], rd.white)
}

// Close frees the batch mesh and shader pipeline.
func (rd *Renderer2D) Close() {
	if rd.mesh != nil {
		rd.mesh.Release()
		rd.mesh = nil
	}
	if rd.pipe != nil {
		rd.pipe.Release()
		rd.pipe = nil
	}
}
