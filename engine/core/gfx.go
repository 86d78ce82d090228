package core

// Renderer is the GPU backend renderer2d draws through.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	// SetScissor limits drawing to a top-left origin pixel rectangle.
	// enabled=false turns clipping off.
	SetScissor(enabled bool, x, y, w, h int)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// Pipeline is a compiled shader program with its fixed-function state.
type Pipeline interface{ Release() }

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type Texture interface {
	Size() (w, h int)
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

// Mesh is a vertex/index buffer pair. Release frees the GPU objects.
type Mesh interface{ Release() }

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws a whole mesh with a pipeline. Uniform values may be
// float32, [16]float32 or int32; samplers bind in name order.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}
