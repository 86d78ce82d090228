package text

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// TextureCreator uploads atlas pixels to the GPU.
type TextureCreator interface {
	CreateTexture(desc core.TextureDesc) (core.Texture, error)
}

// FaceFont adapts an x/image font.Face. Measuring works right away; drawing
// needs Upload to have built the glyph atlas texture.
type FaceFont struct {
	face      font.Face
	ascent    float32
	lineH     float32
	glyphs    map[rune]Glyph
	tex       core.Texture
	closeFace func() error
}

func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	return &FaceFont{
		face:   face,
		ascent: float32(m.Ascent.Ceil()),
		lineH:  float32(m.Height.Ceil()),
	}
}

// ParseFont loads a TrueType/OpenType font at sizePx (72 DPI).
func ParseFont(data []byte, sizePx float32) (*FaceFont, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	f := NewFaceFont(face)
	f.closeFace = face.Close
	return f, nil
}

// Upload rasterizes the Latin-1 range into an atlas texture.
func (f *FaceFont) Upload(r TextureCreator) error {
	pix, glyphs, err := BuildAtlas(f.face, Latin1())
	if err != nil {
		return err
	}
	b := pix.Bounds()
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: b.Dx(), Height: b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    pix.Pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.glyphs, f.tex = glyphs, tex
	return nil
}

func (f *FaceFont) Close() {
	if f != nil && f.closeFace != nil {
		_ = f.closeFace()
		f.closeFace = nil
	}
}

func (f *FaceFont) LineSpacing() float32 { return f.lineH }

func (f *FaceFont) Measure(s string) (w, h float32) {
	lines := float32(1)
	var lineW, widest float32
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			widest = max(widest, lineW)
			lineW, prev = 0, -1
			lines++
			continue
		}
		if prev >= 0 {
			lineW += float32(f.face.Kern(prev, r)) / 64
		}
		if adv, ok := f.face.GlyphAdvance(r); ok {
			lineW += float32(adv) / 64
		}
		prev = r
	}
	return max(widest, lineW), lines * f.lineH
}

func (f *FaceFont) Draw(dst GlyphDrawer, s string, pos geom.Point, color colors.Color) {
	if f.tex == nil || s == "" {
		return
	}
	penX := pos.X
	baseY := pos.Y + f.ascent
	prev := rune(-1)
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		s = s[n:]

		g, ok := f.glyphs[r]
		if !ok {
			if sp, ok := f.glyphs[' ']; ok {
				penX += sp.Advance
			}
			prev = r
			continue
		}
		if prev >= 0 {
			penX += float32(f.face.Kern(prev, r)) / 64
		}
		if g.W > 0 && g.H > 0 && !unicode.IsSpace(r) {
			left := penX + g.BearingX
			top := baseY - g.BearingY
			dst.DrawGlyph(left, top, float32(g.W), float32(g.H), f.tex, color, [4]float32{g.U0, g.V0, g.U1, g.V1})
		}
		penX += g.Advance
		prev = r
	}
}
