package interaction

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gochair/internal/config"
	"github.com/philipparndt/gochair/pkg/picker"
	"github.com/philipparndt/gochair/pkg/scene"
	"github.com/philipparndt/gochair/pkg/viewer"
)

// OptionsFrom extracts the session tunables from a config
func OptionsFrom(cfg config.Config) Options {
	return Options{
		PauseDuration:  cfg.PauseDuration(),
		LabelDuration:  cfg.LabelDuration(),
		AngleStep:      cfg.Rotation.Speed,
		Radius:         cfg.Rotation.Radius,
		Target:         cfg.Camera.Target.Vector(),
		HighlightColor: cfg.Colors.Highlight,
		Wood:           cfg.Colors.Wood,
	}
}

// Build creates the chair scene, its camera and a session around them
func Build(cfg config.Config, logger *slog.Logger) (*Session, error) {
	s := scene.BuildChair(cfg.Colors.Wood, cfg.Colors.Background)
	vp := picker.Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height}

	cam := viewer.NewCamera(
		cfg.Camera.Position.Vector(),
		cfg.Camera.Target.Vector(),
		cfg.Camera.FOV,
		float64(vp.Width)/float64(vp.Height),
		cfg.Camera.Near,
		cfg.Camera.Far,
	)

	session, err := NewSession(s, cam, vp, OptionsFrom(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	ApplyConfig(session, cfg)
	return session, nil
}

// ApplyConfig pushes the live-reloadable parts of a config into a running session
func ApplyConfig(s *Session, cfg config.Config) {
	s.Apply(OptionsFrom(cfg))
	s.Scene.Background = cfg.Colors.Background

	s.Controls.EnableDamping = cfg.Controls.Damping
	s.Controls.DampingFactor = cfg.Controls.DampingRate
	s.Controls.RotateSpeed = cfg.Controls.RotateSpeed
	s.Controls.ZoomSpeed = cfg.Controls.ZoomSpeed
}
