package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hubastard/groveui/engine/assets"
	"github.com/hubastard/groveui/engine/core"
	glbackend "github.com/hubastard/groveui/engine/gfx/gl"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/platform"
	"github.com/hubastard/groveui/engine/profiler"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

type App struct {
	cfg        core.Config
	store      *assets.Store
	lastFrame  time.Time
	tick       int
	r2d        *renderer2d.Renderer2D
	stats      renderer2d.Statistics
	font       *text.FaceFont
	layer      *LayerUI
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples

	vs, err := a.store.LoadShader("renderer2d.vert")
	if err != nil {
		log.Fatal(err)
	}
	fs, err := a.store.LoadShader("renderer2d.frag")
	if err != nil {
		log.Fatal(err)
	}
	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		log.Fatal(err)
	}

	a.font, err = a.store.LoadFont(a.cfg.UI.Font, float32(a.cfg.UI.FontSize))
	if err != nil {
		log.Fatal(err)
	}
	if err := a.font.Upload(e.Renderer); err != nil {
		log.Fatal(err)
	}

	th, err := a.store.LoadTheme(a.cfg.UI.Theme)
	if err != nil {
		log.Printf("theme: %v; using the built-in theme", err)
	} else if a.cfg.UI.Theme != "" {
		log.Printf("theme: loaded %s", a.cfg.UI.Theme)
	}

	opts := ui.OptionsFromConfig(a.cfg.UI)
	opts.Font = a.font
	opts.Theme = th

	a.layer = &LayerUI{opts: opts, r2d: a.r2d}
	e.PushLayer(a.layer)

	a.debugLayer = &LayerDebug{opts: opts, r2d: a.r2d, stats: &a.stats}
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Close()
	a.r2d.Close()
}

func main() {
	configPath := flag.String("config", "sandbox.toml", "TOML config file")
	assetDir := flag.String("assets", "assets", "asset root directory")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	app := &App{cfg: cfg, store: assets.New(os.DirFS(*assetDir))}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
