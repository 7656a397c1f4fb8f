package bodyparser

import (
	"fmt"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (p *parser) stepMemorySize(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	memID := p.symbols.MemoryID(uint32(wireIdx))
	id := p.fn.Arena.Alloc(&ir.MemorySize{Memory: memID})
	t := wasmval.I32
	p.emit(id, &t)
	return nil
}

func (p *parser) stepMemoryGrow(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	memID := p.symbols.MemoryID(uint32(wireIdx))
	pages, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.MemoryGrow{Memory: memID, Pages: pages})
	t := wasmval.I32
	p.emit(id, &t)
	return nil
}

func (p *parser) stepLoad(offset int, k wasmval.LoadKind) error {
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

func (p *parser) stepStore(offset int, k wasmval.StoreKind) error {
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

// stepBulkMemory decodes an instruction under the 0xFC prefix. This prefix
// is shared, confusingly, by the bulk-memory/table proposal and by the
// saturating-truncation conversions (which are unary numeric ops, not
// memory ops at all) — both register their sub-opcode in the same byte
// space, so the dispatch checks DecodeUnOpTrunc first.
func (p *parser) stepBulkMemory(offset int) error {
	sub64, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	sub := byte(sub64)

	if uop, ok := wasmval.DecodeUnOpTrunc(sub); ok {
		return p.stepUnop(offset, uop)
	}

	switch sub {
	case wasmval.BulkMemoryInit:
		dataWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		memWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		dataID := p.symbols.DataID(uint32(dataWire))
		memID := p.symbols.MemoryID(uint32(memWire))
		length, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		src, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		dst, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.MemoryInit{Memory: memID, Data: dataID, MemoryOffset: dst, DataOffset: src, Len: length})
		p.emit(id, nil)
		return nil

	case wasmval.BulkDataDrop:
		dataWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		dataID := p.symbols.DataID(uint32(dataWire))
		id := p.fn.Arena.Alloc(&ir.DataDrop{Data: dataID})
		p.emit(id, nil)
		return nil

	case wasmval.BulkMemoryCopy:
		dstWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		srcWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		dstMem := p.symbols.MemoryID(uint32(dstWire))
		srcMem := p.symbols.MemoryID(uint32(srcWire))
		length, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		src, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		dst, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.MemoryCopy{Dst: dstMem, Src: srcMem, DstOffset: dst, SrcOffset: src, Len: length})
		p.emit(id, nil)
		return nil

	case wasmval.BulkMemoryFill:
		memWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		memID := p.symbols.MemoryID(uint32(memWire))
		length, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		value, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		dstOffset, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.MemoryFill{Memory: memID, Offset: dstOffset, Value: value, Len: length})
		p.emit(id, nil)
		return nil

	case wasmval.BulkTableGrow:
		tableWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		tableID := p.symbols.TableID(uint32(tableWire))
		elemType := p.symbols.TableElementType(tableID)
		delta, err := p.popExpect(offset, wasmval.I32)
		if err != nil {
			return err
		}
		initVal, err := p.popExpect(offset, elemType)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.TableGrow{Table: tableID, InitVal: initVal, Delta: delta})
		t := wasmval.I32
		p.emit(id, &t)
		return nil

	case wasmval.BulkTableSize:
		tableWire, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		tableID := p.symbols.TableID(uint32(tableWire))
		id := p.fn.Arena.Alloc(&ir.TableSize{Table: tableID})
		t := wasmval.I32
		p.emit(id, &t)
		return nil

	default:
		return ir.NewUnsupportedFeature(fmt.Sprintf("bulk-memory/table opcode 0xfc 0x%02x (table.init/elem.drop/table.copy/table.fill are not modeled by this IR)", sub))
	}
}
