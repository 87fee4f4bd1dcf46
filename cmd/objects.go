package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/gochair/pkg/scene"
	"github.com/spf13/cobra"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List the objects of the chair scene",
	Long:  "Show every scene object in pick order with its capabilities and current color.",
	Args:  cobra.NoArgs,
	RunE:  runObjects,
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}

func runObjects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := scene.BuildChair(cfg.Colors.Wood, cfg.Colors.Background)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tHIGHLIGHT\tRECOLOR\tCOLOR")
	for i, obj := range s.Objects() {
		_, highlight := obj.(scene.Highlightable)
		color := "-"
		c, recolor := obj.(scene.Colorable)
		if recolor {
			color = c.BaseColor().String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, obj.Name(), yesNo(highlight), yesNo(recolor), color)
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
