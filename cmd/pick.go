package cmd

import (
	"fmt"

	"github.com/philipparndt/gochair/internal/interaction"
	"github.com/philipparndt/gochair/pkg/picker"
	"github.com/spf13/cobra"
)

var (
	pickX float64
	pickY float64
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Report which object is under a pointer position",
	Long: `Cast a ray from the initial camera through the given pixel and print the
name of the nearest object, or "none" when nothing is hit.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().Float64Var(&pickX, "x", 0, "pointer x in pixels")
	pickCmd.Flags().Float64Var(&pickY, "y", 0, "pointer y in pixels")
	_ = pickCmd.MarkFlagRequired("x")
	_ = pickCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	session, err := interaction.Build(cfg, logger)
	if err != nil {
		return err
	}

	hit, ok := picker.Pick(
		picker.Pointer{X: pickX, Y: pickY},
		session.Viewport,
		session.Camera,
		session.Scene.Objects(),
	)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}

	logger.Debug("pick", "object", hit.Object.Name(), "distance", hit.Distance, "index", hit.Index)
	fmt.Fprintln(cmd.OutOrStdout(), hit.Object.Name())
	return nil
}
