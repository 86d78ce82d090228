package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) { eng.dispatch(app, ev) })

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
		dt      = float64(tick) / float64(time.Second)
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			app.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	for eng.Layers.Len() > 0 {
		eng.PopLayer()
	}
	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}

// dispatch feeds input state, resizes the renderer and offers ev to the
// layers top-down; unhandled events reach the app.
func (e *Engine) dispatch(app App, ev Event) {
	e.Input.Handle(ev)
	switch ev.(type) {
	case EventResize:
		fw, fh := e.Window.FramebufferSize()
		if fw >= 1 && fh >= 1 {
			e.Renderer.Resize(fw, fh)
		}
	case EventCloseRequested:
		e.Window.RequestClose()
	}
	handled := false
	e.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(e, ev)
		return handled
	})
	if !handled {
		app.OnEvent(e, ev)
	}
}

// TextInput returns the window's text input service, or nil when the
// platform has none.
func (e *Engine) TextInput() TextInput {
	ti, _ := e.Window.(TextInput)
	return ti
}
