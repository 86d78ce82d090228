package ui

import (
	"time"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/theme"
)

type HostOptions struct {
	Font       text.FontFamily
	Theme      theme.Theme
	TextInput  core.TextInput
	Listener   input.ListenerSettings
	CaretBlink time.Duration
}

// OptionsFromConfig maps the [ui] section of the engine config.
func OptionsFromConfig(c core.UIConfig) HostOptions {
	return HostOptions{
		Listener: input.ListenerSettings{
			DoubleClick:   c.DoubleClickTime(),
			DragThreshold: c.DragThreshold,
		},
		CaretBlink: c.CaretBlink(),
	}
}

// Host owns one UI tree: its Context, its input system and a root Canvas
// sized to the viewport. Each frame the host feeds the frame's events, then
// updates and draws the tree.
type Host struct {
	ctx   *Context
	sys   *input.System
	root  *Canvas
	clock time.Duration
	size  geom.Size
}

func NewHost(o HostOptions) *Host {
	if o.Listener == (input.ListenerSettings{}) {
		o.Listener = input.DefaultListenerSettings()
	}
	sys := input.NewSystem(o.Listener)
	ctx := NewContext(sys)
	ctx.DefaultFont = o.Font
	ctx.Theme = o.Theme
	if o.TextInput != nil {
		ctx.TextInput = o.TextInput
	}
	if o.CaretBlink > 0 {
		ctx.CaretBlink = o.CaretBlink
	}
	root := NewCanvas()
	root.ctx = ctx
	return &Host{ctx: ctx, sys: sys, root: root}
}

func (h *Host) Context() *Context    { return h.ctx }
func (h *Host) Input() *input.System { return h.sys }
func (h *Host) Root() *Canvas        { return h.root }
func (h *Host) Size() geom.Size      { return h.size }

// Clock is the time accumulated by Update; input events are stamped with it.
func (h *Host) Clock() time.Duration { return h.clock }

func (h *Host) Add(children ...Element) { h.root.Add(children...) }

// Resize lays the tree out for a new viewport.
func (h *Host) Resize(w, hgt int) {
	size := geom.Size{W: float32(max(0, w)), H: float32(max(0, hgt))}
	if size == h.size && h.root.loaded {
		return
	}
	h.size = size
	h.root.UpdateLayout(size)
}

// HandleEvent routes one platform event and reports whether it was input.
func (h *Host) HandleEvent(ev core.Event) bool {
	if r, ok := ev.(core.EventResize); ok {
		h.Resize(r.W, r.H)
		return false
	}
	return h.sys.Feed(ev, h.clock)
}

func (h *Host) Update(dt float64) {
	h.clock += time.Duration(dt * float64(time.Second))
	h.root.Update(dt)
}

func (h *Host) Draw(s Surface) { h.root.Draw(s) }

// Frame runs one full frame: events in order, then Update and Draw.
func (h *Host) Frame(events []core.Event, dt float64, s Surface) {
	for _, ev := range events {
		h.HandleEvent(ev)
	}
	h.Update(dt)
	if s != nil {
		h.Draw(s)
	}
}
