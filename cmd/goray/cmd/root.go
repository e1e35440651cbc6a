// Package cmd is the goray command tree: a cobra root command plus the
// render subcommand.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matteoilardi/goray/internal/applog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goray",
	Short: "goray renders CSG scenes described in a small declarative DSL",
	Long: `goray is an offline, single-threaded path tracer. It parses a scene
file written in the goray scene DSL (float variables, materials, shapes,
camera, point lights) and writes the resulting HDR image to disk as a PFM
or a tone-mapped, gamma-corrected PNG.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applog.Init(verbose)
	},
}

func Execute() error {
	defer applog.Sync() //nolint:errcheck
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode (console, debug-level) logging")
	rootCmd.AddCommand(renderCmd)
}
