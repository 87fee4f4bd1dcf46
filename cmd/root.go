package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/philipparndt/gochair/internal/app"
	"github.com/philipparndt/gochair/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	watch      bool
	width      int
	height     int
	fps        int
)

var rootCmd = &cobra.Command{
	Use:   "gochair",
	Short: "Interactive 3D chair viewer",
	Long: `GoChair shows a wooden chair that slowly orbits until you grab it.
Drag to rotate, scroll to zoom, click a part to give it a new color.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg, app.Options{ConfigPath: configPath, Watch: watch}, logger)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath, "path to the YAML config file")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.IntVar(&width, "width", 0, "window width in pixels (overrides config)")
	flags.IntVar(&height, "height", 0, "window height in pixels (overrides config)")

	rootCmd.Flags().IntVar(&fps, "fps", 0, "target frames per second (overrides config)")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
}

// loadConfig reads the config file and applies the flags that were set
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		cfg.Window.Width = width
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		cfg.Window.Height = height
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.Window.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
