package app

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/internal/config"
	"github.com/philipparndt/gochair/internal/interaction"
	"github.com/philipparndt/gochair/pkg/watcher"
)

// App is the raylib host around an interaction session
type App struct {
	Session     *interaction.Session
	Config      config.Config
	Camera      CameraState
	Interaction InputState
	View        ViewSettings
	ConfigWatch ConfigWatchState
	logger      *slog.Logger
}

// CameraState mirrors the session camera into raylib's camera type
type CameraState struct {
	camera rl.Camera3D
}

// InputState holds mouse tracking between frames
type InputState struct {
	mouseDownPos rl.Vector2
	lastMousePos rl.Vector2
	mouseMoved   bool // moved past the click threshold while held
	dragging     bool
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showOutline bool
	showHelp    bool
	showFPS     bool
}

// ConfigWatchState holds config file watching and reload state
type ConfigWatchState struct {
	path    string
	watcher *watcher.FileWatcher
	reload  chan struct{} // signalled from the watcher goroutine
}
