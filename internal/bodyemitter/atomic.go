package bodyemitter

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (e *emitter) emitAtomicRmw(x *ir.AtomicRmw) error {
	if err := e.emitExpr(x.Address); err != nil {
		return err
	}
	if err := e.emitExpr(x.Value); err != nil {
		return err
	}
	b, ok := wasmval.EncodeAtomicRmw(x.Op, x.Width)
	if !ok {
		return e.invalid(ir.InvalidExprID, "atomic rmw: op %d width %d has no wire encoding", x.Op, x.Width)
	}
	e.buf.WriteByte(wasmval.PrefixAtomic)
	e.buf.WriteUvarint(uint64(b))
	e.writeMemArg(x.MemArg)
	return nil
}

func (e *emitter) emitCmpxchg(x *ir.Cmpxchg) error {
	if err := e.emitExpr(x.Address); err != nil {
		return err
	}
	if err := e.emitExpr(x.Expected); err != nil {
		return err
	}
	if err := e.emitExpr(x.New); err != nil {
		return err
	}
	b, ok := wasmval.EncodeAtomicCmpxchg(x.Width)
	if !ok {
		return e.invalid(ir.InvalidExprID, "atomic cmpxchg: width %d has no wire encoding", x.Width)
	}
	e.buf.WriteByte(wasmval.PrefixAtomic)
	e.buf.WriteUvarint(uint64(b))
	e.writeMemArg(x.MemArg)
	return nil
}

func (e *emitter) emitAtomicWait(x *ir.AtomicWait) error {
	if err := e.emitExpr(x.Address); err != nil {
		return err
	}
	if err := e.emitExpr(x.Expected); err != nil {
		return err
	}
	if err := e.emitExpr(x.Timeout); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.PrefixAtomic)
	if x.Sixty4 {
		e.buf.WriteUvarint(uint64(wasmval.AtomicWait64))
	} else {
		e.buf.WriteUvarint(uint64(wasmval.AtomicWait32))
	}
	e.writeMemArg(x.MemArg)
	return nil
}

func (e *emitter) emitAtomicNotify(x *ir.AtomicNotify) error {
	if err := e.emitExpr(x.Address); err != nil {
		return err
	}
	if err := e.emitExpr(x.Count); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.PrefixAtomic)
	e.buf.WriteUvarint(uint64(wasmval.AtomicNotify))
	e.writeMemArg(x.MemArg)
	return nil
}
