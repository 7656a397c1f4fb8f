// Package bodyemitter lowers a function's arena-based IR back into a wasm
// opcode byte stream and locals prelude, the inverse of internal/bodyparser
// (spec.md §4.2). Emission assumes the arena it is given already validates
// (it was either produced by bodyparser or a transformation pass that
// upholds the same invariants) and reports a programmer error, not a user
// error, if it does not.
package bodyemitter

import (
	"fmt"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/leb128"
	"github.com/lhaig/wasmforge/internal/localalloc"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

type emitter struct {
	fn     *ir.LocalFunction
	ids    IdsToIndices
	locals localalloc.Mapping
	buf    *leb128.Buffer

	// blocks is the stack of enclosing Block/IfElse-arm ids, innermost
	// last, used to resolve a Br/BrIf/BrTable target to a wire depth.
	blocks []ir.ExprID
}

// EmitBody lowers fn into its wire-format locals prelude and instruction
// bytes. The returned Mapping is exposed so a caller building the rest of
// the code-section entry (the prelude's own length prefix; debug info) does
// not need to recompute the allocation.
func EmitBody(fn *ir.LocalFunction, ids IdsToIndices) (preludeBytes, bodyBytes []byte, mapping localalloc.Mapping, err error) {
	mapping = localalloc.Allocate(fn)
	e := &emitter{fn: fn, ids: ids, locals: mapping, buf: leb128.NewBuffer()}
	if err := e.emitRoot(); err != nil {
		return nil, nil, localalloc.Mapping{}, err
	}

	prelude := leb128.NewBuffer()
	prelude.WriteUvarint(uint64(len(mapping.Prelude)))
	for _, run := range mapping.Prelude {
		prelude.WriteUvarint(uint64(run.Count))
		prelude.WriteByte(byte(run.Type))
	}
	return prelude.Bytes(), e.buf.Bytes(), mapping, nil
}

func (e *emitter) invalid(id ir.ExprID, format string, args ...interface{}) error {
	return ir.NewInvalidTransformation(e.fn.ID, id, format, args...)
}

// emitRoot walks the function's FunctionEntry block. The entry itself
// opens no bracket opcode but is still pushed onto the block stack, since a
// br/br_table may legally target it (branching out of a function body
// behaves like a fallthrough return, spec.md §4.2).
func (e *emitter) emitRoot() error {
	entryExpr, ok := e.fn.Arena.Get(e.fn.Entry)
	if !ok {
		return e.invalid(e.fn.Entry, "function entry id is invalid or tombstoned")
	}
	entry, ok := entryExpr.(*ir.Block)
	if !ok || entry.BlockKind != wasmval.BlockKindFunctionEntry {
		return e.invalid(e.fn.Entry, "function entry expression is not a FunctionEntry block")
	}

	e.blocks = append(e.blocks, e.fn.Entry)
	for _, child := range entry.Children {
		if err := e.emitExpr(child); err != nil {
			return err
		}
	}
	e.blocks = e.blocks[:len(e.blocks)-1]
	e.buf.WriteByte(wasmval.OpEnd)
	return nil
}

// emitExpr emits id's full instruction sequence: its operand subexpressions
// (each itself emitted recursively, in the order they execute) followed by
// id's own opcode and immediates.
func (e *emitter) emitExpr(id ir.ExprID) error {
	expr, ok := e.fn.Arena.Get(id)
	if !ok {
		return e.invalid(id, "expression id is invalid or tombstoned")
	}

	switch x := expr.(type) {
	case *ir.Const:
		return e.emitConst(x)
	case *ir.Block:
		return e.emitBlock(x, id)
	case *ir.IfElse:
		return e.emitIfElse(x, id)
	case *ir.BrTable:
		return e.emitBrTable(x)
	case *ir.Br:
		return e.emitBr(x)
	case *ir.BrIf:
		return e.emitBrIf(x)
	case *ir.Return:
		return e.emitReturn(x)
	case *ir.Drop:
		if err := e.emitExpr(x.Value); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.OpDrop)
		return nil
	case *ir.Select:
		return e.emitSelect(x)
	case *ir.Unreachable:
		e.buf.WriteByte(wasmval.OpUnreachable)
		return nil
	case *ir.Call:
		return e.emitCall(x)
	case *ir.CallIndirect:
		return e.emitCallIndirect(x)
	case *ir.LocalGet:
		return e.emitLocalOp(id, wasmval.OpLocalGet, x.Local)
	case *ir.LocalSet:
		if err := e.emitExpr(x.Value); err != nil {
			return err
		}
		return e.emitLocalOp(id, wasmval.OpLocalSet, x.Local)
	case *ir.LocalTee:
		if err := e.emitExpr(x.Value); err != nil {
			return err
		}
		return e.emitLocalOp(id, wasmval.OpLocalTee, x.Local)
	case *ir.GlobalGet:
		e.buf.WriteByte(wasmval.OpGlobalGet)
		e.buf.WriteUvarint(uint64(e.ids.GlobalIndex(x.Global)))
		return nil
	case *ir.GlobalSet:
		if err := e.emitExpr(x.Value); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.OpGlobalSet)
		e.buf.WriteUvarint(uint64(e.ids.GlobalIndex(x.Global)))
		return nil
	case *ir.Load:
		return e.emitLoad(x)
	case *ir.Store:
		return e.emitStore(x)
	case *ir.MemorySize:
		e.buf.WriteByte(wasmval.OpMemorySize)
		e.buf.WriteUvarint(uint64(e.ids.MemoryIndex(x.Memory)))
		return nil
	case *ir.MemoryGrow:
		if err := e.emitExpr(x.Pages); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.OpMemoryGrow)
		e.buf.WriteUvarint(uint64(e.ids.MemoryIndex(x.Memory)))
		return nil
	case *ir.MemoryInit:
		return e.emitMemoryInit(x)
	case *ir.MemoryCopy:
		return e.emitMemoryCopy(x)
	case *ir.MemoryFill:
		return e.emitMemoryFill(x)
	case *ir.DataDrop:
		e.buf.WriteByte(wasmval.PrefixBulkMemory)
		e.buf.WriteUvarint(uint64(wasmval.BulkDataDrop))
		e.buf.WriteUvarint(uint64(e.ids.DataIndex(x.Data)))
		return nil
	case *ir.AtomicRmw:
		return e.emitAtomicRmw(x)
	case *ir.Cmpxchg:
		return e.emitCmpxchg(x)
	case *ir.AtomicWait:
		return e.emitAtomicWait(x)
	case *ir.AtomicNotify:
		return e.emitAtomicNotify(x)
	case *ir.TableGet:
		if err := e.emitExpr(x.Index); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.OpTableGet)
		e.buf.WriteUvarint(uint64(e.ids.TableIndex(x.Table)))
		return nil
	case *ir.TableSet:
		if err := e.emitExpr(x.Index); err != nil {
			return err
		}
		if err := e.emitExpr(x.Value); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.OpTableSet)
		e.buf.WriteUvarint(uint64(e.ids.TableIndex(x.Table)))
		return nil
	case *ir.TableGrow:
		if err := e.emitExpr(x.InitVal); err != nil {
			return err
		}
		if err := e.emitExpr(x.Delta); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.PrefixBulkMemory)
		e.buf.WriteUvarint(uint64(wasmval.BulkTableGrow))
		e.buf.WriteUvarint(uint64(e.ids.TableIndex(x.Table)))
		return nil
	case *ir.TableSize:
		e.buf.WriteByte(wasmval.PrefixBulkMemory)
		e.buf.WriteUvarint(uint64(wasmval.BulkTableSize))
		e.buf.WriteUvarint(uint64(e.ids.TableIndex(x.Table)))
		return nil
	case *ir.RefNull:
		e.buf.WriteByte(wasmval.OpRefNull)
		e.buf.WriteByte(byte(x.Type))
		return nil
	case *ir.RefIsNull:
		if err := e.emitExpr(x.Value); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.OpRefIsNull)
		return nil
	case *ir.V128Bitselect:
		if err := e.emitExpr(x.A); err != nil {
			return err
		}
		if err := e.emitExpr(x.B); err != nil {
			return err
		}
		if err := e.emitExpr(x.Mask); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.PrefixSIMD)
		e.buf.WriteUvarint(uint64(wasmval.SimdV128Bitselect))
		return nil
	case *ir.V128Shuffle:
		if err := e.emitExpr(x.A); err != nil {
			return err
		}
		if err := e.emitExpr(x.B); err != nil {
			return err
		}
		e.buf.WriteByte(wasmval.PrefixSIMD)
		e.buf.WriteUvarint(uint64(wasmval.SimdI8x16Shuffle))
		e.buf.WriteBytes(x.Indices[:])
		return nil
	case *ir.Binop:
		return e.emitBinop(x)
	case *ir.Unop:
		return e.emitUnop(x)
	case *ir.WithSideEffects:
		return e.emitWithSideEffects(x)
	default:
		return e.invalid(id, "unknown expression type %T", expr)
	}
}

func (e *emitter) emitConst(x *ir.Const) error {
	switch x.Value.Type {
	case wasmval.I32:
		e.buf.WriteByte(wasmval.OpI32Const)
		e.buf.WriteVarint(int64(x.Value.I32))
	case wasmval.I64:
		e.buf.WriteByte(wasmval.OpI64Const)
		e.buf.WriteVarint(x.Value.I64)
	case wasmval.F32:
		e.buf.WriteByte(wasmval.OpF32Const)
		e.buf.WriteF32(x.Value.F32)
	case wasmval.F64:
		e.buf.WriteByte(wasmval.OpF64Const)
		e.buf.WriteF64(x.Value.F64)
	case wasmval.V128:
		e.buf.WriteByte(wasmval.PrefixSIMD)
		e.buf.WriteUvarint(uint64(wasmval.SimdV128Const))
		e.buf.WriteV128(x.Value.V128)
	default:
		return fmt.Errorf("const: unhandled value type %s", x.Value.Type)
	}
	return nil
}

func (e *emitter) emitLocalOp(id ir.ExprID, op byte, local ir.LocalID) error {
	idx, ok := e.locals.WireIndex(local)
	if !ok {
		return e.invalid(id, "local %d has no assigned wire index", local)
	}
	e.buf.WriteByte(op)
	e.buf.WriteUvarint(uint64(idx))
	return nil
}

func (e *emitter) writeMemArg(m wasmval.MemArg) {
	e.buf.WriteUvarint(uint64(m.Align))
	e.buf.WriteUvarint(uint64(m.Offset))
}

// writeBlockType encodes a block/if result-type annotation. results has at
// most one entry under this IR's no-multi-value restriction (spec.md §9);
// a longer list reaching emission is a pass that forgot to lower
// multi-value away, which is reported rather than silently truncated.
func (e *emitter) writeBlockType(id ir.ExprID, results []wasmval.ValType) error {
	switch len(results) {
	case 0:
		e.buf.WriteByte(wasmval.BlockTypeEmpty)
		return nil
	case 1:
		e.buf.WriteByte(wasmval.SingleResultBlockType(results[0]))
		return nil
	default:
		return ir.NewUnsupportedFeature("multi-value block results")
	}
}

// depthOf resolves target to the wire branch depth relative to the
// innermost currently-open block. Failing to find target among the
// enclosing blocks is a programmer error: a rewrite pass spliced in a
// branch whose target is not (or no longer) lexically enclosing.
func (e *emitter) depthOf(target ir.ExprID) (uint32, error) {
	for i := len(e.blocks) - 1; i >= 0; i-- {
		if e.blocks[i] == target {
			return uint32(len(e.blocks) - 1 - i), nil
		}
	}
	return 0, e.invalid(target, "branch target is not a lexically enclosing block")
}
