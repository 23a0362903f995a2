// Package ebitenhost runs a kinex Engine inside an Ebitengine game loop and
// draws style-driven boxes through a scrollable camera.
package ebitenhost

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/kinex"
)

// RunConfig holds optional configuration for [Run] and [NewHost].
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	// If zero, defaults to 640x480.
	Width, Height int
	// Background fills the screen before elements are drawn.
	Background Color
	// ShowFPS draws an FPS, TPS and active tween counter in the top-left.
	ShowFPS bool

	// Logger and Presets are passed to the host's Engine.
	Logger  *slog.Logger
	Presets kinex.Presets
}

// Host drives a [kinex.Engine] from ebiten's update loop and draws a flat
// list of [Element] values. It implements [ebiten.Game].
type Host struct {
	cfg      RunConfig
	engine   *kinex.Engine
	loop     *kinex.Loop
	camera   *Camera
	viewport *kinex.Viewport
	elements []*Element
	updateFn func() error
	ticks    int64
}

// NewHost creates a host whose engine is paced by ebiten ticks.
func NewHost(cfg RunConfig) *Host {
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	e := kinex.NewEngine(kinex.Config{Logger: cfg.Logger, Presets: cfg.Presets})
	cam := NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	return &Host{
		cfg:      cfg,
		engine:   e,
		loop:     e.Loop(),
		camera:   cam,
		viewport: kinex.NewViewport(cam),
	}
}

// Engine returns the tween engine driven by this host.
func (h *Host) Engine() *kinex.Engine { return h.engine }

// Camera returns the camera elements are drawn through.
func (h *Host) Camera() *Camera { return h.camera }

// Viewport returns a tween target whose "scrollX" and "scrollY" move the
// camera.
func (h *Host) Viewport() *kinex.Viewport { return h.viewport }

// Elements returns the elements in draw order.
func (h *Host) Elements() []*Element { return h.elements }

// Add appends elements to the draw list. Later elements draw on top.
func (h *Host) Add(els ...*Element) {
	h.elements = append(h.elements, els...)
}

// SetUpdateFunc registers a callback invoked once per tick after tweens have
// advanced. Returning an error ends the game loop.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFn = fn
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		// SyncWithFPS: no fixed tick rate.
		tps = ebiten.DefaultTPS
	}
	return h.step(time.Second / time.Duration(tps))
}

// step advances the engine clock by dt, running due timers and frames, then
// the update callback.
func (h *Host) step(dt time.Duration) error {
	h.ticks++
	h.loop.Step(dt)
	if h.updateFn != nil {
		return h.updateFn()
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.cfg.Background.toRGBA())
	for _, el := range h.elements {
		el.draw(screen, h.camera)
	}
	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), h.engine.Len()))
	}
}

// Layout implements ebiten.Game.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

// Run opens a window and runs the host until the window is closed or the
// update callback returns an error.
func Run(h *Host) error {
	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	return ebiten.RunGame(h)
}
