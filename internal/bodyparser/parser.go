package bodyparser

import (
	"github.com/pkg/errors"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/leb128"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

type parser struct {
	r       *leb128.Reader
	fn      *ir.LocalFunction
	symbols Symbols

	stack []svEntry
	exprs []ir.ExprID
	ctrl  []*frame
}

// ParseBody lowers operatorStream into fn's arena, assuming fn was just
// constructed by ir.NewLocalFunction (so its parameter locals are already
// declared). On success, fn.Entry is set to the root FunctionEntry id.
func ParseBody(fn *ir.LocalFunction, operatorStream []byte, symbols Symbols) error {
	p := &parser{
		r:       leb128.NewReader(operatorStream),
		fn:      fn,
		symbols: symbols,
	}

	root := &frame{
		kind:    wasmval.BlockKindFunctionEntry,
		results: fn.Sig.Results,
		height:  0,
	}
	root.blockID = fn.Arena.Alloc(&ir.Block{BlockKind: wasmval.BlockKindFunctionEntry, Results: fn.Sig.Results})
	p.ctrl = append(p.ctrl, root)

	for len(p.ctrl) > 0 {
		if p.r.Done() {
			return p.fail(p.r.Pos(), "unexpected end of operator stream, %d block(s) still open", len(p.ctrl))
		}
		offset := p.r.Pos()
		op, err := p.r.ReadByte()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		if err := p.step(offset, op); err != nil {
			return err
		}
	}

	if !p.r.Done() {
		return p.fail(p.r.Pos(), "trailing bytes after function's outer end")
	}
	return nil
}

func (p *parser) fail(offset int, format string, args ...interface{}) error {
	return ir.NewInvalidFunctionBody(p.fn.ID, offset, format, args...)
}

func (p *parser) cur() *frame {
	return p.ctrl[len(p.ctrl)-1]
}

// emit records id as having just executed in the current frame and, if t
// is non-nil, makes its value available to later operand pops.
func (p *parser) emit(id ir.ExprID, result *wasmval.ValType) {
	f := p.cur()
	f.children = append(f.children, id)
	if result != nil {
		p.stack = append(p.stack, known(*result))
		p.exprs = append(p.exprs, id)
	}
}

// pop removes and returns the top value-stack entry and its producing id.
// In a frame that has gone unreachable, popping past the frame's entry
// height yields a phantom unknown/InvalidExprID pair instead of failing —
// this is how the validator tolerates dead code after a divergent
// instruction (spec.md §4.1 "Unreachable handling").
func (p *parser) pop(offset int) (svEntry, ir.ExprID, error) {
	f := p.cur()
	if len(p.stack) <= f.height {
		if f.unreachable {
			return unknownEntry, ir.InvalidExprID, nil
		}
		return svEntry{}, ir.InvalidExprID, p.fail(offset, "value stack underflow")
	}
	e := p.stack[len(p.stack)-1]
	id := p.exprs[len(p.exprs)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.exprs = p.exprs[:len(p.exprs)-1]
	return e, id, nil
}

// popExpect pops one value and requires it to be of type t (an unknown
// polymorphic entry is accepted as any type).
func (p *parser) popExpect(offset int, t wasmval.ValType) (ir.ExprID, error) {
	e, id, err := p.pop(offset)
	if err != nil {
		return ir.InvalidExprID, err
	}
	if !e.unknown && e.typ != t {
		return ir.InvalidExprID, p.fail(offset, "type mismatch: expected %s, found %s", t, e.typ)
	}
	return id, nil
}

func (p *parser) popN(offset int, n int) ([]ir.ExprID, error) {
	ids := make([]ir.ExprID, n)
	for i := n - 1; i >= 0; i-- {
		_, id, err := p.pop(offset)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// popTypes pops len(types) operands in reverse (last-pushed-first) and
// validates each against its expected type, returning ids in program
// (left-to-right) order. Used for call/call_indirect argument lists.
func (p *parser) popTypes(offset int, types []wasmval.ValType) ([]ir.ExprID, error) {
	ids := make([]ir.ExprID, len(types))
	for i := len(types) - 1; i >= 0; i-- {
		id, err := p.popExpect(offset, types[i])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// popReference pops an operand that must be a reference type (or unknown,
// in dead code after unreachable).
func (p *parser) popReference(offset int) (ir.ExprID, error) {
	e, id, err := p.pop(offset)
	if err != nil {
		return ir.InvalidExprID, err
	}
	if !e.unknown && !e.typ.IsReference() {
		return ir.InvalidExprID, p.fail(offset, "type mismatch: expected a reference type, found %s", e.typ)
	}
	return id, nil
}

// emitResults is emit but takes a result slice of length 0 or 1 (a function
// or block's result list, never more under this IR's single-value
// restriction — spec.md §9).
func (p *parser) emitResults(id ir.ExprID, results []wasmval.ValType) {
	if len(results) == 0 {
		p.emit(id, nil)
		return
	}
	p.emit(id, &results[0])
}

func (p *parser) localType(offset int, id ir.LocalID) (wasmval.ValType, error) {
	l, ok := p.fn.Locals.ByID(id)
	if !ok {
		return 0, p.fail(offset, "use of undeclared local %d", id)
	}
	return l.Type, nil
}

func (p *parser) decodeBlockType(offset int) ([]wasmval.ValType, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return nil, p.fail(offset, "%s", err)
	}
	if b == wasmval.BlockTypeEmpty {
		return nil, nil
	}
	t, ok := wasmval.ValTypeFromByte(b)
	if !ok {
		return nil, ir.NewUnsupportedFeature("multi-value block results")
	}
	return []wasmval.ValType{t}, nil
}

func (p *parser) readMemArg(offset int) (wasmval.MemArg, error) {
	align, err := p.r.ReadUvarint()
	if err != nil {
		return wasmval.MemArg{}, p.fail(offset, "%s", err)
	}
	off, err := p.r.ReadUvarint()
	if err != nil {
		return wasmval.MemArg{}, p.fail(offset, "%s", err)
	}
	return wasmval.MemArg{Align: uint32(align), Offset: uint32(off)}, nil
}

// exitValues validates the current frame's stack suffix against its
// declared result types and returns the corresponding value-producing ids
// in order. It does not pop anything past the frame's floor in the
// unreachable case beyond what is actually present.
func (p *parser) exitValues(offset int, f *frame) ([]ir.ExprID, error) {
	want := f.results
	have := len(p.stack) - f.height
	if !f.unreachable && have != len(want) {
		return nil, p.fail(offset, "block exit arity mismatch: want %d value(s), have %d", len(want), have)
	}
	if f.unreachable && have > len(want) {
		return nil, p.fail(offset, "block exit arity mismatch: want %d value(s), have %d", len(want), have)
	}
	// Pad missing polymorphic values with InvalidExprID so the caller
	// always receives exactly len(want) ids.
	ids := make([]ir.ExprID, len(want))
	for i := len(want) - 1; i >= 0; i-- {
		if len(p.stack) <= f.height {
			ids[i] = ir.InvalidExprID
			continue
		}
		t := want[i]
		id, err := p.popExpect(offset, t)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func (p *parser) pushResults(results []wasmval.ValType, id ir.ExprID) {
	if len(results) == 0 {
		return
	}
	// The spec's IR restricts compound expressions to at most one result
	// (multi-value is unsupported), so results has length 0 or 1 here.
	t := results[0]
	p.stack = append(p.stack, known(t))
	p.exprs = append(p.exprs, id)
}
