// Package cli implements the fractal command-line interface.
//
// Each fractal family is a subcommand (fern, hilbert, sierpinski, dragon)
// that writes point data to stdout, either as plain "x y" coordinate lines
// or as JSON. Logs and progress timing go to stderr, so the data stream can
// be redirected or piped straight into gnuplot or similar tools.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yonesuke/fractal/internal/buildinfo"
)

// Execute runs the fractal CLI. The context carries cancellation from the
// caller, typically signal.NotifyContext in main.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "fractal",
		Short: "Generate classic fractal point sets",
		Long: `Fractal generates classic fractal point sets (Barnsley fern, Hilbert
curve, Sierpinski triangle, dragon curve) and prints them as plain
coordinate columns or JSON, ready for plotting.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFernCmd())
	root.AddCommand(newHilbertCmd())
	root.AddCommand(newSierpinskiCmd())
	root.AddCommand(newDragonCmd())

	return root.ExecuteContext(ctx)
}
