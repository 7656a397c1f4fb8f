package wasmmod

import (
	"context"

	"github.com/lhaig/wasmforge/internal/bodyemitter"
	"github.com/lhaig/wasmforge/internal/leb128"
	"github.com/lhaig/wasmforge/internal/scheduler"
)

type emittedFunc struct {
	prelude, body []byte
}

// writeCodeSection emits every locally defined function's body in
// parallel, via internal/scheduler, then concatenates the results back in
// FunctionsOrderedForCodeSection's deterministic order (spec.md §4.4).
func writeCodeSection(m *Module, idx *moduleIndices) ([]byte, error) {
	ordered := FunctionsOrderedForCodeSection(m)
	if len(ordered) == 0 {
		return nil, nil
	}

	results, err := scheduler.Run(context.Background(), len(ordered), scheduler.Config{Limit: m.Config.WorkerLimit},
		func(_ context.Context, i int) (emittedFunc, error) {
			f := m.Funcs.MustGet(uint32(ordered[i]))
			prelude, body, _, err := bodyemitter.EmitBody(f.Local, idx)
			if err != nil {
				return emittedFunc{}, err
			}
			return emittedFunc{prelude: prelude, body: body}, nil
		})
	if err != nil {
		return nil, err
	}

	buf := leb128.NewBuffer()
	buf.WriteUvarint(uint64(len(results)))
	for _, r := range results {
		entry := leb128.NewBuffer()
		entry.WriteBytes(r.prelude)
		entry.WriteBytes(r.body)
		buf.WriteUvarint(uint64(entry.Len()))
		buf.WriteBytes(entry.Bytes())
	}
	return buf.Bytes(), nil
}
