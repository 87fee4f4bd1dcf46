package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/gochair/internal/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the viewer config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to --config",
	Long:  "Write the built-in defaults as YAML so they can be edited. An existing file is kept unless --force is given.",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if !forceInit {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := config.Save(configPath, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
