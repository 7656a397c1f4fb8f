package bodyparser

import "github.com/lhaig/wasmforge/internal/ir"

func (p *parser) frameAt(depth uint32) (*frame, bool) {
	idx := len(p.ctrl) - 1 - int(depth)
	if idx < 0 {
		return nil, false
	}
	return p.ctrl[idx], true
}

// popLabelArgsDiscard pops and permanently removes the operands matching
// target's label types — used by br and br_table, which never fall
// through.
func (p *parser) popLabelArgsDiscard(offset int, target *frame) ([]ir.ExprID, error) {
	types := target.labelTypes()
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

// popLabelArgsKeep pops the operands matching target's label types, then
// pushes the same values back — used by br_if, which may fall through
// when the condition is false.
func (p *parser) popLabelArgsKeep(offset int, target *frame) ([]ir.ExprID, error) {
	ids, err := p.popLabelArgsDiscard(offset, target)
	if err != nil {
		return nil, err
	}
	for i, t := range target.labelTypes() {
		p.stack = append(p.stack, known(t))
		p.exprs = append(p.exprs, ids[i])
	}
	return ids, nil
}
