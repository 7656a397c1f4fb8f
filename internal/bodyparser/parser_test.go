package bodyparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// noopSymbols satisfies Symbols for bodies that reference no module-scoped
// entities, echoing wire indices back as ids.
type noopSymbols struct{}

func (noopSymbols) FuncID(w uint32) ir.FuncID     { return ir.FuncID(w) }
func (noopSymbols) TypeID(w uint32) ir.TypeID     { return ir.TypeID(w) }
func (noopSymbols) TableID(w uint32) ir.TableID   { return ir.TableID(w) }
func (noopSymbols) MemoryID(w uint32) ir.MemoryID { return ir.MemoryID(w) }
func (noopSymbols) GlobalID(w uint32) ir.GlobalID { return ir.GlobalID(w) }
func (noopSymbols) DataID(w uint32) ir.DataID     { return ir.DataID(w) }

func (noopSymbols) FuncSignature(ir.FuncID) ir.Signature      { return ir.Signature{} }
func (noopSymbols) TypeSignature(ir.TypeID) ir.Signature      { return ir.Signature{} }
func (noopSymbols) GlobalType(ir.GlobalID) wasmval.ValType    { return wasmval.I32 }
func (noopSymbols) TableElementType(ir.TableID) wasmval.ValType { return wasmval.FuncRef }

func TestParseBodyRejectsIfWithResultAndNoElse(t *testing.T) {
	// (func (param i32) (result i32)
	//   local.get 0
	//   if (result i32)
	//     i32.const 1
	//   end)                -- no else: the implicit empty alternative
	//                          can't produce the declared i32 result.
	operators := []byte{
		0x20, 0x00, // local.get 0
		0x04, 0x7F, // if (result i32)
		0x41, 0x01, // i32.const 1
		0x0B, // end (if) -- should fail here
		0x0B, // end (function)
	}

	sig := ir.Signature{
		Params:  []wasmval.ValType{wasmval.I32},
		Results: []wasmval.ValType{wasmval.I32},
	}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	err := ParseBody(fn, operators, noopSymbols{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "else")
}

func TestParseBodyAcceptsIfWithResultAndElse(t *testing.T) {
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
	require.NoError(t, ParseBody(fn, operators, noopSymbols{}))
}

func TestParseBodyAcceptsIfWithEmptyResultAndNoElse(t *testing.T) {
	operators := []byte{
		0x20, 0x00, // local.get 0
		0x04, 0x40, // if (empty result)
		0x20, 0x00, // local.get 0
		0x1A, // drop
		0x0B, // end (if)
		0x0B, // end (function)
	}

	sig := ir.Signature{Params: []wasmval.ValType{wasmval.I32}}
	fn := ir.NewLocalFunction(ir.FuncID(0), "f", sig)
	require.NoError(t, ParseBody(fn, operators, noopSymbols{}))
}
