package app

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/internal/config"
	"github.com/philipparndt/gochair/internal/interaction"
)

// Options control how the viewer is started
type Options struct {
	ConfigPath string // config file to watch for live reload
	Watch      bool
}

// Run opens the viewer window and blocks until it is closed
func Run(cfg config.Config, opts Options, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	session, err := interaction.Build(cfg, logger)
	if err != nil {
		return err
	}

	app := &App{
		Session: session,
		Config:  cfg,
		View:    ViewSettings{showHelp: true},
		ConfigWatch: ConfigWatchState{
			path:   opts.ConfigPath,
			reload: make(chan struct{}, 1),
		},
		logger: logger,
	}

	if opts.Watch {
		if err := app.setupConfigWatcher(); err != nil {
			logger.Warn("failed to set up config watching, live reload disabled", "error", err)
		} else {
			defer app.closeConfigWatcher()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	logger.Info("viewer started",
		"objects", len(session.Scene.Objects()),
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
	)

	return app.loop()
}

// loop runs one update and draw cycle per display refresh
func (app *App) loop() error {
	if app.Session == nil || app.Session.Scene == nil {
		return fmt.Errorf("render loop: %w", interaction.ErrUninitializedScene)
	}

	for !rl.WindowShouldClose() {
		now := time.Now()

		app.applyReload()
		app.handleInput(now)
		app.Session.Tick(now)
		app.syncCamera(app.Session.Camera)

		rl.BeginDrawing()
		rl.ClearBackground(rlColor(app.Session.Scene.Background, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}
