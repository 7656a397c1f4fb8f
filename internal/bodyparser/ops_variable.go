package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (p *parser) stepLocalGet(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	localID := ir.LocalID(wireIdx)
	t, err := p.localType(offset, localID)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.LocalGet{Local: localID})
	p.emit(id, &t)
	return nil
}

func (p *parser) stepLocalSet(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	localID := ir.LocalID(wireIdx)
	t, err := p.localType(offset, localID)
	if err != nil {
		return err
	}
	val, err := p.popExpect(offset, t)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.LocalSet{Local: localID, Value: val})
	p.emit(id, nil)
	return nil
}

func (p *parser) stepLocalTee(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	localID := ir.LocalID(wireIdx)
	t, err := p.localType(offset, localID)
	if err != nil {
		return err
	}
	val, err := p.popExpect(offset, t)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.LocalTee{Local: localID, Value: val})
	p.emit(id, &t)
	return nil
}

func (p *parser) stepGlobalGet(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	globalID := p.symbols.GlobalID(uint32(wireIdx))
	t := p.symbols.GlobalType(globalID)
	id := p.fn.Arena.Alloc(&ir.GlobalGet{Global: globalID})
	p.emit(id, &t)
	return nil
}

func (p *parser) stepGlobalSet(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	globalID := p.symbols.GlobalID(uint32(wireIdx))
	t := p.symbols.GlobalType(globalID)
	val, err := p.popExpect(offset, t)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.GlobalSet{Global: globalID, Value: val})
	p.emit(id, nil)
	return nil
}

func (p *parser) stepTableGet(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	tableID := p.symbols.TableID(uint32(wireIdx))
	elemType := p.symbols.TableElementType(tableID)
	idx, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.TableGet{Table: tableID, Index: idx})
	p.emit(id, &elemType)
	return nil
}

func (p *parser) stepTableSet(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	tableID := p.symbols.TableID(uint32(wireIdx))
	elemType := p.symbols.TableElementType(tableID)
	val, err := p.popExpect(offset, elemType)
	if err != nil {
		return err
	}
	idx, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.TableSet{Table: tableID, Index: idx, Value: val})
	p.emit(id, nil)
	return nil
}

func (p *parser) stepRefNull(offset int) error {
	b, err := p.r.ReadByte()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	t, ok := wasmval.ValTypeFromByte(b)
	if !ok || !t.IsReference() {
		return p.fail(offset, "ref.null: invalid reference type byte 0x%02x", b)
	}
	id := p.fn.Arena.Alloc(&ir.RefNull{Type: t})
	p.emit(id, &t)
	return nil
}
