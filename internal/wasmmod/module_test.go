package wasmmod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/bodyparser"
	"github.com/lhaig/wasmforge/internal/ir"
)

// addModuleBytes is a hand-built module exporting a single function
// `add(i32, i32) -> i32` as "add": type, function, export, and code
// sections only (every other section is legitimately empty and omitted).
var addModuleBytes = []byte{
	0x00, 0x61, 0x73, 0x6D, // magic
	0x01, 0x00, 0x00, 0x00, // version

	// type section: (i32, i32) -> i32
	0x01, 0x07,
	0x01, 0x60, 0x02, 0x7F, 0x7F, 0x01, 0x7F,

	// function section: one local func of type 0
	0x03, 0x02,
	0x01, 0x00,

	// export section: "add" -> func 0
	0x07, 0x07,
	0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00,

	// code section: local.get 0; local.get 1; i32.add; end
	0x0A, 0x09,
	0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6A, 0x0B,
}

func TestDecodeAddModule(t *testing.T) {
	m, err := Decode(addModuleBytes, Config{})
	require.NoError(t, err)

	require.Equal(t, 1, m.Types.Len())
	sig, ok := m.Types.Get(0)
	require.True(t, ok)
	require.Len(t, sig.Params, 2)
	require.Len(t, sig.Results, 1)

	require.Equal(t, 1, m.Funcs.Len())
	fn, ok := m.Funcs.Get(0)
	require.True(t, ok)
	require.Equal(t, FuncLocal, fn.Kind)
	require.NotNil(t, fn.Local)

	require.Len(t, m.Exports, 1)
	require.Equal(t, "add", m.Exports[0].Name)
	require.Equal(t, ExportFunc, m.Exports[0].Kind)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	m, err := Decode(addModuleBytes, Config{})
	require.NoError(t, err)

	out, err := Encode(m)
	require.NoError(t, err)
	require.Equal(t, addModuleBytes, out)
}

func TestFunctionsOrderedForCodeSectionSizeDescending(t *testing.T) {
	m, err := Decode(addModuleBytes, Config{})
	require.NoError(t, err)

	// Add a second, larger local function by hand and confirm it sorts
	// ahead of the smaller one decoded above, despite its higher id.
	sig, _ := m.Types.Get(0)
	bigFn := ir.NewLocalFunction(ir.FuncID(1), "big", sig)
	ops := []byte{
		0x20, 0x00, 0x20, 0x01, 0x6A, // local.get 0; local.get 1; i32.add
		0x20, 0x00, 0x6A, // local.get 0; i32.add
		0x20, 0x01, 0x6A, // local.get 1; i32.add
		0x0B,
	}
	require.NoError(t, bodyparser.ParseBody(bigFn, ops, moduleSymbols{m: m}))
	m.Funcs.Alloc(Function{Type: 0, Kind: FuncLocal, Local: bigFn})

	ordered := FunctionsOrderedForCodeSection(m)
	require.Len(t, ordered, 2)
	require.Equal(t, ir.FuncID(1), ordered[0])
	require.Equal(t, ir.FuncID(0), ordered[1])
}
