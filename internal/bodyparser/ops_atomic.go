package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// stepAtomic decodes an instruction under the 0xFE (threads/atomics)
// prefix.
func (p *parser) stepAtomic(offset int) error {
	sub64, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	sub := byte(sub64)

	switch sub {
	case wasmval.AtomicNotify:
		memarg, err := p.readMemArg(offset)
		if err != nil {
			return err
		}
		count, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		addr, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.AtomicNotify{Memory: p.symbols.MemoryID(0), Address: addr, Count: count, MemArg: memarg})
		t := wasmval.I32
		p.emit(id, &t)
		return nil

	case wasmval.AtomicWait32, wasmval.AtomicWait64:
		memarg, err := p.readMemArg(offset)
		if err != nil {
			return err
		}
		timeout, err := p.popExpect(offset, wasmval.I64)
		if err != nil {
			return err
		}
		expectedType := wasmval.I32
		if sub == wasmval.AtomicWait64 {
			expectedType = wasmval.I64
		}
		expected, err := p.popExpect(offset, expectedType)
		if err != nil {
			return err
		}
		addr, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.AtomicWait{
			Sixty4: sub == wasmval.AtomicWait64, Memory: p.symbols.MemoryID(0),
			Address: addr, Expected: expected, Timeout: timeout, MemArg: memarg,
		})
		t := wasmval.I32
		p.emit(id, &t)
		return nil

	case wasmval.AtomicFence:
		return ir.NewUnsupportedFeature("atomic.fence (not modeled by this IR)")
	}

	if k, ok := wasmval.DecodeAtomicLoadKind(sub); ok {
		memarg, err := p.readMemArg(offset)
		if err != nil {
			return err
		}
		addr, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.Load{LoadKind: k, Memory: p.symbols.MemoryID(0), Address: addr, MemArg: memarg})
		t := k.ValueType()
		p.emit(id, &t)
		return nil
	}
	if k, ok := wasmval.DecodeAtomicStoreKind(sub); ok {
		memarg, err := p.readMemArg(offset)
		if err != nil {
			return err
		}
		val, err := p.popExpect(offset, k.ValueType())
		if err != nil {
			return err
		}
		addr, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.Store{StoreKind: k, Memory: p.symbols.MemoryID(0), Address: addr, Value: val, MemArg: memarg})
		p.emit(id, nil)
		return nil
	}
	if op, width, ok := wasmval.DecodeAtomicRmw(sub); ok {
		memarg, err := p.readMemArg(offset)
		if err != nil {
			return err
		}
		val, err := p.popExpect(offset, width.ValueType())
		if err != nil {
			return err
		}
		addr, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.AtomicRmw{Op: op, Width: width, Memory: p.symbols.MemoryID(0), Address: addr, Value: val, MemArg: memarg})
		t := width.ValueType()
		p.emit(id, &t)
		return nil
	}
	if width, ok := wasmval.DecodeAtomicCmpxchg(sub); ok {
		memarg, err := p.readMemArg(offset)
		if err != nil {
			return err
		}
		newVal, err := p.popExpect(offset, width.ValueType())
		if err != nil {
			return err
		}
		expected, err := p.popExpect(offset, width.ValueType())
		if err != nil {
			return err
		}
		addr, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.Cmpxchg{Width: width, Memory: p.symbols.MemoryID(0), Address: addr, Expected: expected, New: newVal, MemArg: memarg})
		t := width.ValueType()
		p.emit(id, &t)
		return nil
	}

	return p.fail(offset, "unknown atomic opcode 0xfe 0x%02x", sub)
}
