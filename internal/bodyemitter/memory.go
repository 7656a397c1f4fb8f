package bodyemitter

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (e *emitter) emitLoad(x *ir.Load) error {
	if err := e.emitExpr(x.Address); err != nil {
		return err
	}
	if x.LoadKind.IsAtomic() {
		b, ok := wasmval.EncodeAtomicLoadKind(x.LoadKind)
		if !ok {
			return e.invalid(ir.InvalidExprID, "load: atomic kind %d has no wire encoding", x.LoadKind)
		}
		e.buf.WriteByte(wasmval.PrefixAtomic)
		e.buf.WriteUvarint(uint64(b))
	} else {
		b, ok := wasmval.EncodeLoadKind(x.LoadKind)
		if !ok {
			return e.invalid(ir.InvalidExprID, "load: kind %d has no wire encoding", x.LoadKind)
		}
		e.buf.WriteByte(b)
	}
	e.writeMemArg(x.MemArg)
	return nil
}

func (e *emitter) emitStore(x *ir.Store) error {
	if err := e.emitExpr(x.Address); err != nil {
		return err
	}
	if err := e.emitExpr(x.Value); err != nil {
		return err
	}
	if x.StoreKind.IsAtomic() {
		b, ok := wasmval.EncodeAtomicStoreKind(x.StoreKind)
		if !ok {
			return e.invalid(ir.InvalidExprID, "store: atomic kind %d has no wire encoding", x.StoreKind)
		}
		e.buf.WriteByte(wasmval.PrefixAtomic)
		e.buf.WriteUvarint(uint64(b))
	} else {
		b, ok := wasmval.EncodeStoreKind(x.StoreKind)
		if !ok {
			return e.invalid(ir.InvalidExprID, "store: kind %d has no wire encoding", x.StoreKind)
		}
		e.buf.WriteByte(b)
	}
	e.writeMemArg(x.MemArg)
	return nil
}

func (e *emitter) emitMemoryInit(x *ir.MemoryInit) error {
	if err := e.emitExpr(x.MemoryOffset); err != nil {
		return err
	}
	if err := e.emitExpr(x.DataOffset); err != nil {
		return err
	}
	if err := e.emitExpr(x.Len); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.PrefixBulkMemory)
	e.buf.WriteUvarint(uint64(wasmval.BulkMemoryInit))
	e.buf.WriteUvarint(uint64(e.ids.DataIndex(x.Data)))
	e.buf.WriteUvarint(uint64(e.ids.MemoryIndex(x.Memory)))
	return nil
}

func (e *emitter) emitMemoryCopy(x *ir.MemoryCopy) error {
	if err := e.emitExpr(x.DstOffset); err != nil {
		return err
	}
	if err := e.emitExpr(x.SrcOffset); err != nil {
		return err
	}
	if err := e.emitExpr(x.Len); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.PrefixBulkMemory)
	e.buf.WriteUvarint(uint64(wasmval.BulkMemoryCopy))
	e.buf.WriteUvarint(uint64(e.ids.MemoryIndex(x.Dst)))
	e.buf.WriteUvarint(uint64(e.ids.MemoryIndex(x.Src)))
	return nil
}

func (e *emitter) emitMemoryFill(x *ir.MemoryFill) error {
	if err := e.emitExpr(x.Offset); err != nil {
		return err
	}
	if err := e.emitExpr(x.Value); err != nil {
		return err
	}
	if err := e.emitExpr(x.Len); err != nil {
		return err
	}
	e.buf.WriteByte(wasmval.PrefixBulkMemory)
	e.buf.WriteUvarint(uint64(wasmval.BulkMemoryFill))
	e.buf.WriteUvarint(uint64(e.ids.MemoryIndex(x.Memory)))
	return nil
}
