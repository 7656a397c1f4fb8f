package bodyemitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/bodyparser"
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// noopSymbols satisfies bodyparser.Symbols for bodies that reference no
// module-scoped entities (locals-only arithmetic). Every lookup just
// echoes the wire index back as the id, since nothing in these tests
// distinguishes the two numbering spaces.
type noopSymbols struct{}

func (noopSymbols) FuncID(w uint32) ir.FuncID     { return ir.FuncID(w) }
func (noopSymbols) TypeID(w uint32) ir.TypeID     { return ir.TypeID(w) }
func (noopSymbols) TableID(w uint32) ir.TableID   { return ir.TableID(w) }
func (noopSymbols) MemoryID(w uint32) ir.MemoryID { return ir.MemoryID(w) }
func (noopSymbols) GlobalID(w uint32) ir.GlobalID { return ir.GlobalID(w) }
func (noopSymbols) DataID(w uint32) ir.DataID     { return ir.DataID(w) }

func (noopSymbols) FuncSignature(ir.FuncID) ir.Signature { return ir.Signature{} }
func (noopSymbols) TypeSignature(ir.TypeID) ir.Signature { return ir.Signature{} }
func (noopSymbols) GlobalType(ir.GlobalID) wasmval.ValType        { return wasmval.I32 }
func (noopSymbols) TableElementType(ir.TableID) wasmval.ValType   { return wasmval.FuncRef }

// identityIds satisfies IdsToIndices by echoing ids back as indices,
// mirroring noopSymbols.
type identityIds struct{}

func (identityIds) FuncIndex(id ir.FuncID) uint32     { return uint32(id) }
func (identityIds) TypeIndex(id ir.TypeID) uint32     { return uint32(id) }
func (identityIds) TableIndex(id ir.TableID) uint32   { return uint32(id) }
func (identityIds) MemoryIndex(id ir.MemoryID) uint32 { return uint32(id) }
func (identityIds) GlobalIndex(id ir.GlobalID) uint32 { return uint32(id) }
func (identityIds) DataIndex(id ir.DataID) uint32     { return uint32(id) }

func TestEmitBodyConstRoundTrip(t *testing.T) {
	// (func (result i32) i32.const 42) — spec.md's smallest worked example.
	operators := []byte{0x41, 0x2a, 0x0b}

	sig := ir.Signature{Results: []wasmval.ValType{wasmval.I32}}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, bodyparser.ParseBody(fn, operators, noopSymbols{}))

	prelude, body, mapping, err := EmitBody(fn, identityIds{})
	require.NoError(t, err)
	require.Empty(t, mapping.Prelude)
	require.Equal(t, []byte{0x00}, prelude)
	require.Equal(t, operators, body)
}

func TestEmitBodyLocalArithmeticRoundTrip(t *testing.T) {
	// (func (param i32 i32) (result i32) local.get 0 local.get 1 i32.add)
	operators := []byte{0x20, 0x00, 0x20, 0x01, 0x6A, 0x0b}

	sig := ir.Signature{
		Params:  []wasmval.ValType{wasmval.I32, wasmval.I32},
		Results: []wasmval.ValType{wasmval.I32},
	}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, bodyparser.ParseBody(fn, operators, noopSymbols{}))

	prelude, body, mapping, err := EmitBody(fn, identityIds{})
	require.NoError(t, err)
	require.Empty(t, mapping.Prelude)
	require.Equal(t, []byte{0x00}, prelude)
	require.Equal(t, operators, body)
}

func TestEmitBodyIfElseBranchRoundTrip(t *testing.T) {
	// (func (param i32) (result i32)
	//   local.get 0
	//   if (result i32)
	//     i32.const 1
	//   else
	//     i32.const 0
	//   end)
	operators := []byte{
		0x20, 0x00, // local.get 0
		0x04, 0x7F, // if (result i32)
		0x41, 0x01, // i32.const 1
		0x05,       // else
		0x41, 0x00, // i32.const 0
		0x0B, // end (if)
		0x0B, // end (function)
	}

	sig := ir.Signature{
		Params:  []wasmval.ValType{wasmval.I32},
		Results: []wasmval.ValType{wasmval.I32},
	}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, bodyparser.ParseBody(fn, operators, noopSymbols{}))

	_, body, _, err := EmitBody(fn, identityIds{})
	require.NoError(t, err)
	require.Equal(t, operators, body)
}

func TestEmitBodySelectRoundTrip(t *testing.T) {
	// (func (param i32 i32 i32) (result i32)
	//   local.get 0 local.get 1 local.get 2 select)
	operators := []byte{
		0x20, 0x00, // local.get 0 (then)
		0x20, 0x01, // local.get 1 (else)
		0x20, 0x02, // local.get 2 (cond)
		0x1B, // select
		0x0B, // end
	}

	sig := ir.Signature{
		Params:  []wasmval.ValType{wasmval.I32, wasmval.I32, wasmval.I32},
		Results: []wasmval.ValType{wasmval.I32},
	}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, bodyparser.ParseBody(fn, operators, noopSymbols{}))

	_, body, _, err := EmitBody(fn, identityIds{})
	require.NoError(t, err)
	require.Equal(t, operators, body)
}

func TestEmitBodySelectTypedRoundTrip(t *testing.T) {
	// (func (param funcref funcref i32) (result funcref)
	//   local.get 0 local.get 1 local.get 2 select (result funcref))
	//
	// The untyped select opcode is only valid wasm for numtype/vectype
	// operands, so a reference-typed select must come back out as the
	// typed select t* form or the re-encoded module would be invalid.
	operators := []byte{
		0x20, 0x00, // local.get 0 (then)
		0x20, 0x01, // local.get 1 (else)
		0x20, 0x02, // local.get 2 (cond)
		0x1C, 0x01, 0x70, // select (result funcref)
		0x0B, // end
	}

	sig := ir.Signature{
		Params:  []wasmval.ValType{wasmval.FuncRef, wasmval.FuncRef, wasmval.I32},
		Results: []wasmval.ValType{wasmval.FuncRef},
	}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, bodyparser.ParseBody(fn, operators, noopSymbols{}))

	_, body, _, err := EmitBody(fn, identityIds{})
	require.NoError(t, err)
	require.Equal(t, operators, body)
}

func TestEmitBodyLoopBranchRoundTrip(t *testing.T) {
	// (func (param i32)
	//   loop
	//     local.get 0
	//     br_if 0
	//   end)
	operators := []byte{
		0x03, 0x40, // loop (empty result)
		0x20, 0x00, // local.get 0
		0x0D, 0x00, // br_if 0
		0x0B, // end (loop)
		0x0B, // end (function)
	}

	sig := ir.Signature{Params: []wasmval.ValType{wasmval.I32}}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, bodyparser.ParseBody(fn, operators, noopSymbols{}))

	_, body, _, err := EmitBody(fn, identityIds{})
	require.NoError(t, err)
	require.Equal(t, operators, body)
}
