package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lhaig/wasmforge/internal/wasmmod"
)

func newDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.wasm>",
		Short: "Decode a module and print a summary of its index spaces",
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

			log.Debug("decoding module", zap.String("path", args[0]), zap.Int("bytes", len(data)))
			m, err := wasmmod.Decode(data, wasmmod.Config{WorkerLimit: flags.workers})
			if err != nil {
				return err
			}

			printSummary(cmd, m)
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, m *wasmmod.Module) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "types:    %d\n", m.Types.Len())
	fmt.Fprintf(out, "funcs:    %d\n", m.Funcs.Len())
	fmt.Fprintf(out, "tables:   %d\n", m.Tables.Len())
	fmt.Fprintf(out, "memories: %d\n", m.Memories.Len())
	fmt.Fprintf(out, "globals:  %d\n", m.Globals.Len())
	fmt.Fprintf(out, "data:     %d\n", m.Data.Len())
	fmt.Fprintf(out, "elements: %d\n", m.Elements.Len())
	fmt.Fprintf(out, "exports:  %d\n", len(m.Exports))
	if m.HasStart {
		fmt.Fprintf(out, "start:    func %d\n", m.Start)
	}

	m.Funcs.Each(func(idx uint32, f wasmmod.Function) {
		switch f.Kind {
		case wasmmod.FuncImport:
			fmt.Fprintf(out, "  func[%d] import %s.%s\n", idx, f.Import.Module, f.Import.Name)
		case wasmmod.FuncLocal:
			fmt.Fprintf(out, "  func[%d] %s locals=%d exprs=%d\n", idx, f.Name, len(f.Local.Locals), f.Local.Arena.Len())
		}
	})

	for _, e := range m.Exports {
		fmt.Fprintf(out, "  export %q -> %s\n", e.Name, exportTarget(e))
	}
}

func exportTarget(e wasmmod.Export) string {
	switch e.Kind {
	case wasmmod.ExportFunc:
		return fmt.Sprintf("func %d", e.Func)
	case wasmmod.ExportTable:
		return fmt.Sprintf("table %d", e.Table)
	case wasmmod.ExportMemory:
		return fmt.Sprintf("memory %d", e.Memory)
	case wasmmod.ExportGlobal:
		return fmt.Sprintf("global %d", e.Global)
	default:
		return "?"
	}
}
