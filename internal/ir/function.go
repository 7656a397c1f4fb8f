package ir

import (
	"strconv"

	"github.com/lhaig/wasmforge/internal/wasmval"
)

// Signature is a function's param/result type list. It is duplicated here
// rather than referenced by TypeID so that a LocalFunction is self
// describing without a module lookup — the module layer still interns an
// equal Signature into the type section and records the TypeID separately.
type Signature struct {
	Params  []wasmval.ValType
	Results []wasmval.ValType
}

// LocalFunction is the parsed, in-memory body of a single wasm function:
// one arena, the id of its entry block, and its full local table (params
// then declared locals). Everything internal/bodyparser produces and
// internal/bodyemitter consumes is a *LocalFunction.
type LocalFunction struct {
	ID        FuncID
	Name      string
	Sig       Signature
	Locals    Locals
	Arena     *Arena
	Entry     ExprID
	nextLocal LocalID
}

// NewLocalFunction allocates a function with its parameter locals already
// declared (ids 0..len(sig.Params)-1, matching the wire's implicit
// parameter-index convention) and an empty arena.
func NewLocalFunction(id FuncID, name string, sig Signature) *LocalFunction {
	fn := &LocalFunction{
		ID:    id,
		Name:  name,
		Sig:   sig,
		Arena: NewArena(),
	}
	for i, t := range sig.Params {
		fn.Locals = append(fn.Locals, Local{
			ID:      fn.nextLocal,
			Type:    t,
			Name:    syntheticParamName(i),
			IsParam: true,
		})
		fn.nextLocal++
	}
	return fn
}

// DeclareLocal adds a non-parameter local and returns its id.
func (fn *LocalFunction) DeclareLocal(t wasmval.ValType) LocalID {
	id := fn.nextLocal
	fn.nextLocal++
	fn.Locals = append(fn.Locals, Local{
		ID:   id,
		Type: t,
		Name: syntheticLocalName(int(id)),
	})
	return id
}

func syntheticParamName(index int) string {
	return "arg" + strconv.Itoa(index)
}

func syntheticLocalName(index int) string {
	return "l" + strconv.Itoa(index)
}
