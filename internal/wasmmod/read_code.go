package wasmmod

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/lhaig/wasmforge/internal/bodyparser"
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/leb128"
	"github.com/lhaig/wasmforge/internal/scheduler"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

type preparedBody struct {
	id     ir.FuncID
	typeID ir.TypeID
	fn     *ir.LocalFunction
	ops    []byte
}

// readCodeSection implements the second half of the two-phase local
// declaration walrus calls declare_local_functions/parse_local_functions:
// readFunctionSection has already allocated an uninitialized Function
// entry per local function; this pass serially declares each function's
// body locals (arguments are already implicit in its signature) and
// extracts its operator stream, then parses every body in parallel via
// internal/scheduler, and finally commits each parsed *ir.LocalFunction
// back into the arena (spec.md §5's "local ids created during the serial
// pre-pass... then handed frozen to the parallel parse").
func readCodeSection(r *leb128.Reader, m *Module, funcTypeIndices []ir.TypeID) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	if int(n) != len(funcTypeIndices) {
		return errors.Errorf("wasmmod: code section has %d entries, function section declared %d", n, len(funcTypeIndices))
	}

	numImports := m.Funcs.Len() - len(funcTypeIndices)
	if numImports < 0 {
		return errors.New("wasmmod: function section entries exceed declared functions")
	}

	bodies := make([]preparedBody, n)
	for i := uint64(0); i < n; i++ {
		bodyLen, err := r.ReadUvarint()
		if err != nil {
			return err
		}
		raw, err := r.ReadBytes(int(bodyLen))
		if err != nil {
			return err
		}
		br := leb128.NewReader(raw)

		id := ir.FuncID(numImports + int(i))
		typeID := funcTypeIndices[i]
		sig := m.Types.MustGet(uint32(typeID))

		name := m.Funcs.MustGet(uint32(id)).Name
		fn := ir.NewLocalFunction(id, name, sig)

		runCount, err := br.ReadUvarint()
		if err != nil {
			return err
		}
		var totalLocals uint64
		for j := uint64(0); j < runCount; j++ {
			runOffset := br.Pos()
			count, err := br.ReadUvarint()
			if err != nil {
				return err
			}
			tByte, err := br.ReadByte()
			if err != nil {
				return err
			}
			t, ok := wasmval.ValTypeFromByte(tByte)
			if !ok {
				return errors.Errorf("wasmmod: unknown local type byte 0x%x", tByte)
			}
			totalLocals += count
			if totalLocals > math.MaxUint32 {
				return ir.NewInvalidFunctionBody(id, runOffset,
					"oversized locals: sum of declared local run counts exceeds 2^32-1")
			}
			for k := uint64(0); k < count; k++ {
				fn.DeclareLocal(t)
			}
		}

		bodies[i] = preparedBody{id: id, typeID: typeID, fn: fn, ops: raw[br.Pos():]}
	}

	symbols := moduleSymbols{m: m}
	_, err = scheduler.Run(context.Background(), len(bodies), scheduler.Config{Limit: m.Config.WorkerLimit},
		func(_ context.Context, i int) (struct{}, error) {
			b := bodies[i]
			return struct{}{}, bodyparser.ParseBody(b.fn, b.ops, symbols)
		})
	if err != nil {
		return err
	}

	for _, b := range bodies {
		m.Funcs.Set(uint32(b.id), Function{Type: b.typeID, Kind: FuncLocal, Name: b.fn.Name, Local: b.fn})
	}
	return nil
}
