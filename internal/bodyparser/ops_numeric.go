package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (p *parser) stepBinop(offset int, op wasmval.BinOp) error {
	sig, ok := wasmval.BinOpSig(op)
	if !ok {
		return p.fail(offset, "binop %d has no registered signature", op)
	}
	rhs, err := p.popExpect(offset, sig.Operand)
	if err != nil {
		return err
	}
	lhs, err := p.popExpect(offset, sig.Operand)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.Binop{Op: op, Lhs: lhs, Rhs: rhs})
	p.emit(id, &sig.Result)
	return nil
}

func (p *parser) stepUnop(offset int, op wasmval.UnOp) error {
	sig, ok := wasmval.UnOpSig(op)
	if !ok {
		return p.fail(offset, "unop %d has no registered signature", op)
	}
	val, err := p.popExpect(offset, sig.Operand)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.Unop{Op: op, Value: val})
	p.emit(id, &sig.Result)
	return nil
}
