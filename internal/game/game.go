// Package game implements the main loop: input, fixed-tick movement,
// CPU raycasting and presentation.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/config"
	"github.com/Faultbox/raycaster/internal/engine/debug"
	"github.com/Faultbox/raycaster/internal/engine/input"
	"github.com/Faultbox/raycaster/internal/engine/renderer"
	"github.com/Faultbox/raycaster/internal/engine/window"
	"github.com/Faultbox/raycaster/internal/game/controls"
	"github.com/Faultbox/raycaster/internal/logger"
	"github.com/Faultbox/raycaster/internal/mapload"
)

// Title is the window title.
const Title = "Raycaster"

// DefaultBindings maps movement to WASD and the arrow keys.
var DefaultBindings = controls.Bindings{
	controls.MoveForward:  {int(sdl.SCANCODE_W), int(sdl.SCANCODE_UP)},
	controls.MoveBackward: {int(sdl.SCANCODE_S), int(sdl.SCANCODE_DOWN)},
	controls.RotateLeft:   {int(sdl.SCANCODE_A), int(sdl.SCANCODE_LEFT)},
	controls.RotateRight:  {int(sdl.SCANCODE_D), int(sdl.SCANCODE_RIGHT)},
}

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	scene    *scene
	bindings controls.Bindings
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture
}

// New loads the map and opens the window.
func New(cfg *config.Config) (*Game, error) {
	width, height := cfg.Logical()
	logger.Info("initializing game",
		zap.String("map", cfg.World.MapPath),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("frameWidth", width),
		zap.Int("frameHeight", height),
	)

	// The map is loaded before any window exists so a bad map fails fast.
	world, err := mapload.Load(cfg.World.MapPath, mapload.Options{
		EmptyKey:        cfg.World.EmptyKey,
		AllowUnenclosed: cfg.World.AllowUnenclosed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}

	sc, err := newScene(cfg, world)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:   cfg,
		scene:    sc,
		bindings: DefaultBindings,
		input:    input.New(),
		shots:    debug.NewScreenshotCapture(cfg.UI.ScreenshotDir, "raycaster"),
	}

	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		MinWidth:   width,
		MinHeight:  height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the GL context must exist.
	drawW, drawH := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		FrameWidth:     width,
		FrameHeight:    height,
		DrawableWidth:  drawW,
		DrawableHeight: drawH,
	})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create renderer: %w", err), g.window.Close())
	}

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	clock := newTickClock(g.config.Controls.TickRate, g.config.Controls.MaxFrameSec)
	last := time.Now()
	fps := newFrameCounter(last, time.Second)

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(last)
		last = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		cmd := g.bindings.FromKeyState(g.input.KeyState())
		for range clock.Advance(dt) {
			g.scene.tick(cmd)
		}

		if err := g.scene.draw(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if err := g.renderer.Present(g.scene.frame); err != nil {
			return fmt.Errorf("present error: %w", err)
		}
		g.window.SwapBuffers()

		if rate, ok := fps.Frame(now); ok {
			logger.Debug("fps",
				zap.Float64("fps", rate),
				zap.Duration("frame", dt),
				zap.Stringer("command", cmd),
			)
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			// Event sizes are in window points; the viewport needs pixels.
			w, h := g.window.DrawableSize()
			g.renderer.Resize(w, h)
		case input.EventKeyDown:
			g.handleKey(event.Key)
		}
	}
}

func (g *Game) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_F1:
		g.scene.showMinimap = !g.scene.showMinimap
		logger.Debug("minimap toggled", zap.Bool("visible", g.scene.showMinimap))
	case sdl.SCANCODE_F2:
		g.scene.showBand = !g.scene.showBand
		logger.Debug("band toggled", zap.Bool("visible", g.scene.showBand))
	case sdl.SCANCODE_F12:
		width, height := g.scene.projector.Size()
		path, err := g.shots.CaptureFrame(g.scene.frame, width, height)
		if err != nil {
			logger.Error("screenshot failed", zap.Error(err))
			return
		}
		logger.Info("screenshot saved", zap.String("path", path))
	}
}

// Close releases the renderer and window, collecting every teardown error.
func (g *Game) Close() error {
	logger.Info("closing game")

	var err error
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		err = multierr.Append(err, g.window.Close())
		g.window = nil
	}
	return err
}
