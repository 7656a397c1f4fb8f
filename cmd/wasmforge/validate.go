package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lhaig/wasmforge/internal/diagnostic"
	"github.com/lhaig/wasmforge/internal/wasmmod"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.wasm>",
		Short: "Decode a module and report any structural or body errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			diags := diagnostic.New()
			_, decodeErr := wasmmod.Decode(data, wasmmod.Config{WorkerLimit: flags.workers})
			if decodeErr != nil {
				diags.FromError(decodeErr)
			}

			if diags.HasErrors() {
				fmt.Fprintln(cmd.OutOrStdout(), diags.Format())
				log.Error("validation failed", zap.Int("errors", diags.ErrorCount()), zap.String("path", args[0]))
				return fmt.Errorf("%s: %d error(s)", args[0], diags.ErrorCount())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}
