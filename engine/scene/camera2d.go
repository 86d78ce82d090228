package scene

// OrthoCamera2D maps pixel coordinates with a top-left origin (Y down) to
// clip space. Zoom scales around the camera position; 1 = one unit per pixel.
type OrthoCamera2D struct {
	width, height float32
	X, Y          float32
	zoom          float32
	vp            [16]float32
	dirty         bool
}

func NewOrtho2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{zoom: 1}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	c.width, c.height = float32(w), float32(h)
	c.dirty = true
}

// Width and Height are the visible extent in world units.
func (c *OrthoCamera2D) Width() float32  { return c.width / c.zoom }
func (c *OrthoCamera2D) Height() float32 { return c.height / c.zoom }

func (c *OrthoCamera2D) Zoom() float32 { return c.zoom }

func (c *OrthoCamera2D) SetPosition(x, y float32) { c.X, c.Y = x, y; c.dirty = true }
func (c *OrthoCamera2D) Move(dx, dy float32)      { c.X += dx; c.Y += dy; c.dirty = true }

func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.zoom = z
	c.dirty = true
}

// ScreenToWorld converts a window pixel position to world units.
func (c *OrthoCamera2D) ScreenToWorld(x, y float64) (float64, float64) {
	z := float64(c.zoom)
	return x/z + float64(c.X), y/z + float64(c.Y)
}

func (c *OrthoCamera2D) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	proj := ortho(0, c.Width(), c.Height(), 0, -1, 1)
	c.vp = mul(proj, translate(-c.X, -c.Y, 0))
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[0+4*j]*b[i+0] + a[1+4*j]*b[i+4] + a[2+4*j]*b[i+8] + a[3+4*j]*b[i+12]
		}
	}
	return out
}
