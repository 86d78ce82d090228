package renderer2d

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

// FillRect draws an axis-aligned solid rectangle given by its top-left corner.
func (rd *Renderer2D) FillRect(r geom.Rect, c colors.Color) {
	if r.Empty() {
		return
	}
	rd.DrawQuad(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c)
}

// PushClip narrows drawing to r intersected with the current clip. Queued
// quads are flushed first since the scissor applies per draw call.
func (rd *Renderer2D) PushClip(r geom.Rect) {
	if n := len(rd.clips); n > 0 {
		r = r.Intersect(rd.clips[n-1])
	}
	rd.flush()
	rd.clips = append(rd.clips, r)
	rd.applyClip()
}

// PopClip restores the clip that was active before the matching PushClip.
func (rd *Renderer2D) PopClip() {
	if len(rd.clips) == 0 {
		return
	}
	rd.flush()
	rd.clips = rd.clips[:len(rd.clips)-1]
	rd.applyClip()
}

// Clip returns the active clip rectangle, if any.
func (rd *Renderer2D) Clip() (geom.Rect, bool) {
	if n := len(rd.clips); n > 0 {
		return rd.clips[n-1], true
	}
	return geom.Rect{}, false
}

func (rd *Renderer2D) applyClip() {
	r, ok := rd.Clip()
	rd.r.SetScissor(ok, r.X, r.Y, r.W, r.H)
}
