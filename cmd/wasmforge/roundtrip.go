package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lhaig/wasmforge/internal/wasmmod"
)

func newRoundtripCmd(flags *rootFlags) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "roundtrip <file.wasm>",
		Short: "Decode a module and re-encode it, reporting whether the bytes match",
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

			m, err := wasmmod.Decode(data, wasmmod.Config{WorkerLimit: flags.workers})
			if err != nil {
				return errors.Wrap(err, "decode")
			}

			out, err := wasmmod.Encode(m)
			if err != nil {
				return errors.Wrap(err, "encode")
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, out, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(out))
				return nil
			}

			if bytes.Equal(data, out) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: round-trips byte for byte (%d bytes)\n", args[0], len(out))
				return nil
			}

			log.Warn("round-trip produced different bytes",
				zap.String("path", args[0]), zap.Int("in", len(data)), zap.Int("out", len(out)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: round-trips to a semantically equivalent but differently-encoded module (%d -> %d bytes)\n",
				args[0], len(data), len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the re-encoded module to this path instead of comparing")
	return cmd
}
