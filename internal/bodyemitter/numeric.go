package bodyemitter

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (e *emitter) emitBinop(x *ir.Binop) error {
	if err := e.emitExpr(x.Lhs); err != nil {
		return err
	}
	if err := e.emitExpr(x.Rhs); err != nil {
		return err
	}
	if !wasmval.EncodeBinOp(x.Op, e.buf.WriteByte, e.buf.WriteUvarint) {
		return e.invalid(ir.InvalidExprID, "binop %d has no wire encoding", x.Op)
	}
	return nil
}

func (e *emitter) emitUnop(x *ir.Unop) error {
	if err := e.emitExpr(x.Value); err != nil {
		return err
	}
	if !wasmval.EncodeUnOp(x.Op, e.buf.WriteByte, e.buf.WriteUvarint) {
		return e.invalid(ir.InvalidExprID, "unop %d has no wire encoding", x.Op)
	}
	return nil
}
