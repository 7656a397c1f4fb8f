package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	verbose bool
	workers int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "wasmforge",
		Short:         "Decode, validate, and re-encode wasm binary modules",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug-level logging")
	root.PersistentFlags().IntVar(&flags.workers, "workers", 0, "bound the function parse/emit worker pool (0 = unbounded)")

	root.AddCommand(
		newDumpCmd(flags),
		newValidateCmd(flags),
		newRoundtripCmd(flags),
	)
	return root
}

// newLogger builds a zap logger whose level follows --verbose: a terse
// console encoder at info level by default, full debug output when asked.
func newLogger(flags *rootFlags) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	if flags.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
