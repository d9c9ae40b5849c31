package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spandrel",
		Short: "Bridge detection for planar slicer regions",
	}

	rootCmd.AddCommand(detectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func detectCmd() *cobra.Command {
	var opts detectOptions

	cmd := &cobra.Command{
		Use:   "detect [scene-path]",
		Short: "Find the optimal bridging direction for a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDetect(args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.angle, "angle", -1, "force this bridging angle (radians) instead of searching")
	cmd.Flags().BoolVar(&opts.precise, "precise", false, "use the precise coverage decomposition")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write a debug SVG rendering to this path")
	return cmd
}
