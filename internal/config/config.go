package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/philipparndt/gochair/pkg/scene"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the viewer looks for its config when no --config is given
const DefaultPath = "gochair.yaml"

// ErrInvalid is wrapped by every error caused by bad config content
var ErrInvalid = errors.New("invalid config")

// Vec3 is a YAML friendly [x, y, z] triple
type Vec3 [3]float64

// Vector converts to geometry.Vector3
func (v Vec3) Vector() geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// Window holds the host window settings
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// Camera holds the perspective camera settings
type Camera struct {
	FOV      float64 `yaml:"fov"` // vertical, degrees
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
}

// Rotation holds the idle orbit settings
type Rotation struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // radians per frame
}

// Timing holds the interaction timeouts in milliseconds
type Timing struct {
	PauseMillis int `yaml:"pause_ms"`
	LabelMillis int `yaml:"label_ms"`
}

// Colors holds the scene palette
type Colors struct {
	Wood       scene.Color `yaml:"wood"`
	Background scene.Color `yaml:"background"`
	Highlight  scene.Color `yaml:"highlight"`
}

// Controls holds the manual orbit settings
type Controls struct {
	Damping     bool    `yaml:"damping"`
	DampingRate float64 `yaml:"damping_factor"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
}

// Config is the complete viewer configuration
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Rotation Rotation `yaml:"rotation"`
	Timing   Timing   `yaml:"timing"`
	Colors   Colors   `yaml:"colors"`
	Controls Controls `yaml:"controls"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: Window{Width: 1400, Height: 900, Title: "GoChair", FPS: 60},
		Camera: Camera{
			FOV:      60,
			Near:     0.1,
			Far:      1000,
			Position: Vec3{5, 5, 5},
			Target:   Vec3{0, 1, 0},
		},
		Rotation: Rotation{Radius: 8, Speed: 0.002},
		Timing:   Timing{PauseMillis: 3000, LabelMillis: 2000},
		Colors: Colors{
			Wood:       scene.DefaultWoodColor,
			Background: scene.DefaultBackgroundColor,
			Highlight:  0x444444,
		},
		Controls: Controls{Damping: true, DampingRate: 0.05, RotateSpeed: 1, ZoomSpeed: 1},
	}
}

// PauseDuration is the quiet period before auto-rotation resumes
func (c Config) PauseDuration() time.Duration {
	return time.Duration(c.Timing.PauseMillis) * time.Millisecond
}

// LabelDuration is how long a click label stays visible
func (c Config) LabelDuration() time.Duration {
	return time.Duration(c.Timing.LabelMillis) * time.Millisecond
}

// Load reads the config at path on top of Default(). A missing file is not
// an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Window.FPS)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov must be in (0, 180), got %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: need 0 < near < far, got near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Rotation.Radius <= 0:
		return fmt.Errorf("%w: rotation radius must be positive, got %v", ErrInvalid, c.Rotation.Radius)
	case c.Timing.PauseMillis < 0 || c.Timing.LabelMillis < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalid)
	case c.Controls.DampingRate <= 0 || c.Controls.DampingRate > 1:
		return fmt.Errorf("%w: damping factor must be in (0, 1], got %v", ErrInvalid, c.Controls.DampingRate)
	}
	return nil
}
