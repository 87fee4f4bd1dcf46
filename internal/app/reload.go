package app

import (
	"errors"
	"time"

	"github.com/philipparndt/gochair/internal/config"
	"github.com/philipparndt/gochair/internal/interaction"
	"github.com/philipparndt/gochair/pkg/watcher"
)

const reloadDebounce = 200 * time.Millisecond

// setupConfigWatcher watches the config file and queues a reload on change
func (app *App) setupConfigWatcher() error {
	if app.ConfigWatch.path == "" {
		return errors.New("no config file to watch")
	}

	fw, err := watcher.NewFileWatcher(reloadDebounce, app.logger)
	if err != nil {
		return err
	}

	err = fw.Watch([]string{app.ConfigWatch.path}, func(string) {
		// Called from the watcher goroutine; the render loop picks it up
		select {
		case app.ConfigWatch.reload <- struct{}{}:
		default:
		}
	})
	if err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	app.ConfigWatch.watcher = fw
	app.logger.Info("watching config", "path", app.ConfigWatch.path)
	return nil
}

// closeConfigWatcher unregisters the config file and stops the watcher
func (app *App) closeConfigWatcher() {
	fw := app.ConfigWatch.watcher
	if fw == nil {
		return
	}
	if err := fw.RemoveAll(); err != nil {
		app.logger.Warn("failed to unwatch config", "error", err)
	}
	if err := fw.Close(); err != nil {
		app.logger.Warn("failed to close config watcher", "error", err)
	}
	app.ConfigWatch.watcher = nil
}

// applyReload reloads the config if the watcher signalled a change.
// Must run on the render thread.
func (app *App) applyReload() {
	select {
	case <-app.ConfigWatch.reload:
	default:
		return
	}

	cfg, err := config.Load(app.ConfigWatch.path)
	if err != nil {
		app.logger.Warn("config reload failed, keeping previous settings", "error", err)
		return
	}

	interaction.ApplyConfig(app.Session, cfg)
	app.Config = cfg
	app.logger.Info("config reloaded", "path", app.ConfigWatch.path)
}
