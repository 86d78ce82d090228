package main

import (
	"fmt"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/profiler"
	"github.com/hubastard/groveui/engine/scene"
	"github.com/hubastard/groveui/engine/ui"
)

// ------- Stats overlay layer -------
type LayerDebug struct {
	opts          ui.HostOptions
	cam           *scene.OrthoCamera2D
	r2d           *renderer2d.Renderer2D
	stats         *renderer2d.Statistics
	host          *ui.Host
	lines         []*ui.TextBlock
	frameDuration float32
	tick          int
}

var debugRows = []string{
	"Frame", "", "",
	"2D Renderer", "", "", "", "",
	"Memory", "", "", "",
	"CPU", "",
	"GPU", "", "", "",
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)

	panel := ui.VStack()
	for _, title := range debugRows {
		tb := ui.NewTextBlock(title)
		if title != "" {
			tb.SetForeground(colors.Yellow)
		}
		l.lines = append(l.lines, tb)
		panel.Add(tb)
	}

	l.host = ui.NewHost(l.opts)
	l.host.Add(ui.NewBorder(panel).
		WithPadding(16).
		WithMargin(16).
		WithBackground(colors.Black.WithAlpha(0.5)).
		WithAlign(ui.End, ui.Start))
	l.host.Resize(w, h)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	set := func(i int, format string, args ...any) { l.lines[i].SetText(fmt.Sprintf(format, args...)) }

	set(1, "  Tick: %d", l.tick)
	set(2, "  %2.3f ms (%.2f FPS)", l.frameDuration, 1000.0/max(l.frameDuration, 0.001))
	set(4, "  Draw Calls: %d", l.stats.DrawCalls)
	set(5, "  Quads: %d", l.stats.QuadCount)
	set(6, "  Vertices: %d", l.stats.TotalVertexCount())
	set(7, "  Textures: %d", l.stats.TextureCount)
	set(9, "  Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20))
	set(10, "  Allocs: %d", profiler.MemoryAllocs())
	set(11, "  Goroutines: %d", profiler.NumGoroutine())
	set(13, "  Count: %d", profiler.NumCPU())
	set(15, "  Vendor: %s", e.Renderer.GPUVendor())
	set(16, "  Renderer: %s", e.Renderer.GPURenderer())
	set(17, "  Version: %s", e.Renderer.GPUVersion())

	l.host.Update(dt)
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerDebug.OnRender")
	l.r2d.BeginScene(l.cam.VP())
	l.host.Draw(l.r2d)
	l.r2d.EndScene()
	end()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				fmt.Println("speedscope dump:", path)
			} else {
				fmt.Println("profiler dump error:", err)
			}
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
		l.host.Resize(v.W, v.H)
	}
	return false
}
