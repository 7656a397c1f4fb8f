package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func (p *parser) stepBr(offset int) error {
	depth, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	f, ok := p.frameAt(uint32(depth))
	if !ok {
		return p.fail(offset, "br: unknown label depth %d", depth)
	}
	args, err := p.popLabelArgsDiscard(offset, f)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.Br{Target: f.blockID, Args: args})
	p.emit(id, nil)
	p.cur().unreachable = true
	return nil
}

func (p *parser) stepBrIf(offset int) error {
	depth, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	f, ok := p.frameAt(uint32(depth))
	if !ok {
		return p.fail(offset, "br_if: unknown label depth %d", depth)
	}
	cond, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	args, err := p.popLabelArgsKeep(offset, f)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.BrIf{Target: f.blockID, Args: args, Condition: cond})
	p.emit(id, nil)
	return nil
}

func (p *parser) stepBrTable(offset int) error {
	count, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	frames := make([]*frame, count)
	for i := range frames {
		depth, err := p.r.ReadUvarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		f, ok := p.frameAt(uint32(depth))
		if !ok {
			return p.fail(offset, "br_table target %d: unknown label depth %d", i, depth)
		}
		frames[i] = f
	}
	defaultDepth, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	defaultFrame, ok := p.frameAt(uint32(defaultDepth))
	if !ok {
		return p.fail(offset, "br_table default: unknown label depth %d", defaultDepth)
	}

	selector, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	args, err := p.popLabelArgsDiscard(offset, defaultFrame)
	if err != nil {
		return err
	}
	want := len(defaultFrame.labelTypes())
	targets := make([]ir.ExprID, len(frames))
	for i, f := range frames {
		if len(f.labelTypes()) != want {
			return p.fail(offset, "br_table target %d arity %d does not match default arity %d", i, len(f.labelTypes()), want)
		}
		targets[i] = f.blockID
	}

	id := p.fn.Arena.Alloc(&ir.BrTable{Selector: selector, Targets: targets, Default: defaultFrame.blockID, Args: args})
	p.emit(id, nil)
	p.cur().unreachable = true
	return nil
}

func (p *parser) stepCall(offset int) error {
	wireIdx, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	fnID := p.symbols.FuncID(uint32(wireIdx))
	sig := p.symbols.FuncSignature(fnID)
	args, err := p.popTypes(offset, sig.Params)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.Call{Func: fnID, Args: args})
	p.emitResults(id, sig.Results)
	return nil
}

func (p *parser) stepCallIndirect(offset int) error {
	typeWire, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	tableWire, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	typeID := p.symbols.TypeID(uint32(typeWire))
	tableID := p.symbols.TableID(uint32(tableWire))
	sig := p.symbols.TypeSignature(typeID)

	funcIdx, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	args, err := p.popTypes(offset, sig.Params)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.CallIndirect{Type: typeID, Table: tableID, Func: funcIdx, Args: args})
	p.emitResults(id, sig.Results)
	return nil
}

func (p *parser) stepSelect(offset int) error {
	cond, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	elseEntry, elseID, err := p.pop(offset)
	if err != nil {
		return err
	}
	thenEntry, thenID, err := p.pop(offset)
	if err != nil {
		return err
	}
	if !thenEntry.unknown && !elseEntry.unknown && thenEntry.typ != elseEntry.typ {
		return p.fail(offset, "select: operand type mismatch %s vs %s", thenEntry.typ, elseEntry.typ)
	}
	result := wasmval.I32
	switch {
	case !thenEntry.unknown:
		result = thenEntry.typ
	case !elseEntry.unknown:
		result = elseEntry.typ
	}
	id := p.fn.Arena.Alloc(&ir.Select{Condition: cond, Then: thenID, Else: elseID})
	p.emit(id, &result)
	return nil
}

// stepSelectTyped decodes the reference-types `select t*` variant, whose
// encoding carries an explicit (single-element, under this IR's no
// multi-value restriction) result-type vector instead of inferring it from
// the operand stack.
func (p *parser) stepSelectTyped(offset int) error {
	count, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	if count != 1 {
		return ir.NewUnsupportedFeature("typed select with multiple result types")
	}
	b, err := p.r.ReadByte()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	t, ok := wasmval.ValTypeFromByte(b)
	if !ok {
		return p.fail(offset, "select: invalid result type byte 0x%02x", b)
	}

	cond, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	elseID, err := p.popExpect(offset, t)
	if err != nil {
		return err
	}
	thenID, err := p.popExpect(offset, t)
	if err != nil {
		return err
	}
	id := p.fn.Arena.Alloc(&ir.Select{Condition: cond, Then: thenID, Else: elseID, Typed: true, ResultType: t})
	p.emit(id, &t)
	return nil
}
