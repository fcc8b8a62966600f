// Package app implements the main application loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mkoren/driftnet/internal/config"
	"github.com/mkoren/driftnet/internal/engine/input"
	"github.com/mkoren/driftnet/internal/engine/renderer"
	"github.com/mkoren/driftnet/internal/engine/scene"
	"github.com/mkoren/driftnet/internal/engine/window"
	"github.com/mkoren/driftnet/internal/fishnet"
	"github.com/mkoren/driftnet/internal/logger"
)

const windowTitle = "Driftnet"

// App is the main application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene

	net *fishnet.Net
	sim *fishnet.Sim
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
		zap.Int("grid_size", cfg.Net.GridSize),
	)

	a := &App{
		cfg:     cfg,
		running: false,
	}

	// Nonsense geometry falls back to defaults rather than aborting
	gridSize := cfg.Net.GridSize
	spacing := cfg.Net.Spacing
	if gridSize <= 0 || spacing <= 0 {
		def := config.Default()
		logger.Warn("invalid net geometry, using defaults",
			zap.Int("grid_size", gridSize),
			zap.Float64("spacing", spacing),
		)
		gridSize = def.Net.GridSize
		spacing = def.Net.Spacing
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Create input handler
	a.input = input.New()

	// Build the net and its simulation
	lattice := fishnet.NewLattice(gridSize, spacing)
	a.net = fishnet.BuildNet(lattice)
	a.sim = fishnet.NewSim(a.net, nil)

	a.scene, err = scene.New(scene.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	a.scene.Upload(a.net)

	logger.Info("app initialized successfully")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	frameCount := 0
	fpsTimer := time.Now()

	// Software frame limiter, only when VSync is not pacing us
	var frameBudget time.Duration
	if !a.cfg.Graphics.VSync && a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting main loop")

	for a.running {
		frameStart := time.Now()

		// 1. Process input
		if a.input.Update() {
			// Quit event received
			a.running = false
			break
		}

		// Handle events
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(event.Width, event.Height)
				a.scene.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				// ESC to quit
				if event.Key == input.KeyEscape {
					a.running = false
				}
			}
		}

		// 2. Advance the simulation
		a.sim.Tick()

		// 3. Render. A failed frame is logged, not fatal
		if err := a.render(); err != nil {
			logger.Error("render error", zap.Error(err))
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.cfg.Graphics.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d fps", windowTitle, frameCount))
			}
			logger.Debug("fps",
				zap.Int("frames", frameCount),
				zap.Float64("sim_time", a.sim.Time()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}

	return nil
}

// render draws the current frame.
func (a *App) render() error {
	a.renderer.Begin()
	a.scene.Render(a.net)
	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
