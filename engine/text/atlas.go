package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // distance from baseline to glyph top
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
)

// Latin1 is the default rune set rasterized into an atlas.
func Latin1() []rune {
	runes := make([]rune, 0, 224)
	for r := rune(32); r <= rune(255); r++ {
		runes = append(runes, r)
	}
	return runes
}

// BuildAtlas rasterizes runes from face into a white-on-transparent RGBA
// sheet with a shelf packer, growing the sheet until everything fits.
func BuildAtlas(face font.Face, runes []rune) (*image.RGBA, map[rune]Glyph, error) {
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measured := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measured = append(measured, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv) / 64,
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	size := atlasMinSize
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measured))
		for _, g := range measured {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+2*atlasPadding > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			return nil, nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measured))
	for _, g := range measured {
		glyph := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		p, ok := pos[g.r]
		if ok {
			clip := image.Rect(p.X, p.Y, p.X+g.w, p.Y+g.h)
			drawer.Dst = dst.SubImage(clip).(draw.Image)
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))

			glyph.U0 = float32(p.X) / float32(size)
			glyph.V0 = float32(p.Y) / float32(size)
			glyph.U1 = float32(p.X+g.w) / float32(size)
			glyph.V1 = float32(p.Y+g.h) / float32(size)
		}
		glyphs[g.r] = glyph
	}
	return dst, glyphs, nil
}
