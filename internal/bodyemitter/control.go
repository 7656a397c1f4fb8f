package bodyemitter

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (e *emitter) emitBr(x *ir.Br) error {
	depth, err := e.depthOf(x.Target)
	if err != nil {
		return err
	}
	for _, a := range x.Args {
		if err := e.emitExpr(a); err != nil {
			return err
		}
	}
	e.buf.WriteByte(wasmval.OpBr)
	e.buf.WriteUvarint(uint64(depth))
	return nil
}

func (e *emitter) emitBrIf(x *ir.BrIf) error {
	depth, err := e.depthOf(x.Target)
	if err != nil {
		return err
	}
	for _, a := range x.Args {
		if err := e.emitExpr(a); err != nil {
			return err
		}
	}
	if err := e.emitExpr(x.Condition); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.OpBrIf)
	e.buf.WriteUvarint(uint64(depth))
	return nil
}

func (e *emitter) emitBrTable(x *ir.BrTable) error {
	for _, a := range x.Args {
		if err := e.emitExpr(a); err != nil {
			return err
		}
	}
	if err := e.emitExpr(x.Selector); err != nil {
		return err
	}

	depths := make([]uint32, len(x.Targets))
	for i, t := range x.Targets {
		d, err := e.depthOf(t)
		if err != nil {
			return err
		}
		depths[i] = d
	}
	defaultDepth, err := e.depthOf(x.Default)
	if err != nil {
		return err
	}

	e.buf.WriteByte(wasmval.OpBrTable)
	e.buf.WriteUvarint(uint64(len(depths)))
	for _, d := range depths {
		e.buf.WriteUvarint(uint64(d))
	}
	e.buf.WriteUvarint(uint64(defaultDepth))
	return nil
}

// emitReturn emits each declared return value. A value that is
// ir.InvalidExprID is a placeholder for a result slot the validator found
// missing in already-unreachable code (spec.md §4.1) — there is nothing to
// emit for it, and the surrounding dead code never executes regardless.
func (e *emitter) emitReturn(x *ir.Return) error {
	for _, v := range x.Values {
		if v == ir.InvalidExprID {
			continue
		}
		if err := e.emitExpr(v); err != nil {
			return err
		}
	}
	e.buf.WriteByte(wasmval.OpReturn)
	return nil
}

// emitSelect emits the untyped select opcode for an ordinary Select and the
// typed `select t*` form (opcode plus a one-element result-type vector) for
// one parsed from that wire form — x.Typed records which, since the untyped
// opcode is only valid wasm when both operands are a numtype or vectype and
// re-encoding a reference-typed select as untyped would produce an invalid
// module (see DESIGN.md).
func (e *emitter) emitSelect(x *ir.Select) error {
	if err := e.emitExpr(x.Then); err != nil {
		return err
	}
	if err := e.emitExpr(x.Else); err != nil {
		return err
	}
	if err := e.emitExpr(x.Condition); err != nil {
		return err
	}
	if x.Typed {
		e.buf.WriteByte(wasmval.OpSelectT)
		e.buf.WriteUvarint(1)
		e.buf.WriteByte(byte(x.ResultType))
		return nil
	}
	e.buf.WriteByte(wasmval.OpSelect)
	return nil
}

func (e *emitter) emitCall(x *ir.Call) error {
	for _, a := range x.Args {
		if err := e.emitExpr(a); err != nil {
			return err
		}
	}
	e.buf.WriteByte(wasmval.OpCall)
	e.buf.WriteUvarint(uint64(e.ids.FuncIndex(x.Func)))
	return nil
}

func (e *emitter) emitCallIndirect(x *ir.CallIndirect) error {
	for _, a := range x.Args {
		if err := e.emitExpr(a); err != nil {
			return err
		}
	}
	if err := e.emitExpr(x.Func); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.OpCallIndirect)
	e.buf.WriteUvarint(uint64(e.ids.TypeIndex(x.Type)))
	e.buf.WriteUvarint(uint64(e.ids.TableIndex(x.Table)))
	return nil
}
