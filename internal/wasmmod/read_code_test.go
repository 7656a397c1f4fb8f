package wasmmod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/leb128"
)

// oversizedLocalsModuleBytes declares a single nullary function whose body
// has one local-declaration run claiming 2^32 i32 locals — one past the
// 2^32-1 bound spec.md §4.1/§7/§8 requires the parser to reject.
func oversizedLocalsModuleBytes() []byte {
	body := leb128.NewBuffer()
	body.WriteUvarint(1)             // one local-declaration run
	body.WriteUvarint(1 << 32)       // count: 2^32, one past the bound
	body.WriteByte(0x7F)             // i32
	body.WriteByte(0x0B)             // end (never reached by a conforming parser)

	code := leb128.NewBuffer()
	code.WriteUvarint(1) // one function body
	code.WriteUvarint(uint64(body.Len()))
	code.WriteBytes(body.Bytes())

	out := leb128.NewBuffer()
	out.WriteBytes(wasmMagic[:])
	out.WriteBytes(wasmVersion[:])

	out.WriteByte(secType)
	typeSec := leb128.NewBuffer()
	typeSec.WriteUvarint(1)
	typeSec.WriteByte(0x60)
	typeSec.WriteUvarint(0)
	typeSec.WriteUvarint(0)
	out.WriteUvarint(uint64(typeSec.Len()))
	out.WriteBytes(typeSec.Bytes())

	out.WriteByte(secFunction)
	funcSec := leb128.NewBuffer()
	funcSec.WriteUvarint(1)
	funcSec.WriteUvarint(0)
	out.WriteUvarint(uint64(funcSec.Len()))
	out.WriteBytes(funcSec.Bytes())

	out.WriteByte(secCode)
	out.WriteUvarint(uint64(code.Len()))
	out.WriteBytes(code.Bytes())

	return out.Bytes()
}

func TestDecodeRejectsOversizedLocals(t *testing.T) {
	_, err := Decode(oversizedLocalsModuleBytes(), Config{})
	require.Error(t, err)

	var body *ir.InvalidFunctionBody
	require.ErrorAs(t, err, &body)
	require.Equal(t, ir.FuncID(0), body.Func)
}
