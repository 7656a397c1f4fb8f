package bodyemitter

import "github.com/lhaig/wasmforge/internal/ir"

// emitWithSideEffects emits a rewrite pass's spliced-in Before/After
// instructions around the wrapped Value, which still determines the
// node's apparent type (spec.md §9).
func (e *emitter) emitWithSideEffects(x *ir.WithSideEffects) error {
	for _, b := range x.Before {
		if err := e.emitExpr(b); err != nil {
			return err
		}
	}
	if err := e.emitExpr(x.Value); err != nil {
		return err
	}
	for _, a := range x.After {
		if err := e.emitExpr(a); err != nil {
			return err
		}
	}
	return nil
}
