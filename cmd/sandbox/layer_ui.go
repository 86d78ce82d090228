package main

import (
	"fmt"
	"strings"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/profiler"
	"github.com/hubastard/groveui/engine/scene"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

// ------- Widget gallery layer -------
type LayerUI struct {
	opts ui.HostOptions
	cam  *scene.OrthoCamera2D
	r2d  *renderer2d.Renderer2D
	host *ui.Host

	status *ui.TextBlock
	clicks int
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)

	if ti := e.TextInput(); ti != nil {
		l.opts.TextInput = ti
	}
	l.host = ui.NewHost(l.opts)
	l.host.Add(l.build())
	l.host.Resize(int(l.cam.Width()), int(l.cam.Height()))
}

func (l *LayerUI) build() ui.Element {
	l.status = ui.NewTextBlock("Ready")

	click := ui.NewButton("Click me").WithClick(func() {
		l.clicks++
		l.status.SetText(fmt.Sprintf("Clicked %d times", l.clicks))
	})

	editor := ui.NewTextBox("Type here.\nArrow keys move the caret.").
		WithWrapping(text.Wrap).
		WithSize(360, 160)
	editor.OnTextChanged(func(s string) {
		l.status.SetText(fmt.Sprintf("%d characters", len([]rune(s))))
	})

	wrap := ui.NewToggleButton("Wrap")
	wrap.SetChecked(true)
	wrap.OnCheckedChanged(func(on bool) {
		if on {
			editor.SetWrapping(text.Wrap)
		} else {
			editor.SetWrapping(text.NoWrap)
		}
	})

	var lines strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&lines, "Line %02d of a long scrolling text block\n", i)
	}
	scroller := ui.NewScrollViewer(ui.NewTextBlock(strings.TrimRight(lines.String(), "\n"))).
		WithScroll(false, true).
		WithSize(360, 160)

	return ui.NewBorder(
		ui.VStack(
			ui.NewTextBlock("Widget gallery").WithForeground(colors.Yellow),
			ui.HStack(click, wrap).WithSpacing(8),
			editor,
			scroller,
			l.status,
		).WithSpacing(12),
	).
		WithPadding(16).
		WithMargin(24).
		WithAlign(ui.Start, ui.Start)
}

func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {
	end := profiler.Start("LayerUI.OnUpdate")
	l.host.Update(dt)
	end()

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerUI.OnRender")
	l.r2d.BeginScene(l.cam.VP())
	l.host.Draw(l.r2d)
	l.r2d.EndScene()
	end()
}

// OnEvent maps window pixels into the UI's coordinates before routing.
func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
		l.host.Resize(int(l.cam.Width()), int(l.cam.Height()))
		return false
	case core.EventMouseMove:
		v.X, v.Y = l.cam.ScreenToWorld(v.X, v.Y)
		ev = v
	case core.EventMouseButton:
		v.X, v.Y = l.cam.ScreenToWorld(v.X, v.Y)
		ev = v
	}
	return l.host.HandleEvent(ev)
}
