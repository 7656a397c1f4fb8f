package bodyemitter

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// emitBlock brackets a nested Block or Loop expression. BlockKindIfElseArm
// and BlockKindFunctionEntry never appear as a normal child reference — the
// former is only reachable through its owning IfElse, the latter only as
// fn.Entry — so encountering either here means the arena was built or
// rewritten incorrectly.
func (e *emitter) emitBlock(b *ir.Block, id ir.ExprID) error {
	var op byte
	switch b.BlockKind {
	case wasmval.BlockKindBlock:
		op = wasmval.OpBlock
	case wasmval.BlockKindLoop:
		op = wasmval.OpLoop
	default:
		return e.invalid(id, "block kind %s cannot be emitted as a nested expression", b.BlockKind)
	}

	e.buf.WriteByte(op)
	if err := e.writeBlockType(id, b.Results); err != nil {
		return err
	}

	e.blocks = append(e.blocks, id)
	for _, child := range b.Children {
		if err := e.emitExpr(child); err != nil {
			return err
		}
	}
	e.blocks = e.blocks[:len(e.blocks)-1]
	e.buf.WriteByte(wasmval.OpEnd)
	return nil
}

func (e *emitter) emitIfElse(x *ir.IfElse, id ir.ExprID) error {
	consExpr, ok := e.fn.Arena.Get(x.Consequent)
	if !ok {
		return e.invalid(x.Consequent, "if-else consequent id is invalid or tombstoned")
	}
	cons, ok := consExpr.(*ir.Block)
	if !ok || cons.BlockKind != wasmval.BlockKindIfElseArm {
		return e.invalid(x.Consequent, "if-else consequent is not an if-else-arm block")
	}
	altExpr, ok := e.fn.Arena.Get(x.Alternative)
	if !ok {
		return e.invalid(x.Alternative, "if-else alternative id is invalid or tombstoned")
	}
	alt, ok := altExpr.(*ir.Block)
	if !ok || alt.BlockKind != wasmval.BlockKindIfElseArm {
		return e.invalid(x.Alternative, "if-else alternative is not an if-else-arm block")
	}

	if err := e.emitExpr(x.Condition); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.OpIf)
	if err := e.writeBlockType(id, cons.Results); err != nil {
		return err
	}

	e.blocks = append(e.blocks, x.Consequent)
	for _, child := range cons.Children {
		if err := e.emitExpr(child); err != nil {
			return err
		}
	}
	e.blocks = e.blocks[:len(e.blocks)-1]

	e.buf.WriteByte(wasmval.OpElse)
	e.blocks = append(e.blocks, x.Alternative)
	for _, child := range alt.Children {
		if err := e.emitExpr(child); err != nil {
			return err
		}
	}
	e.blocks = e.blocks[:len(e.blocks)-1]

	e.buf.WriteByte(wasmval.OpEnd)
	return nil
}
