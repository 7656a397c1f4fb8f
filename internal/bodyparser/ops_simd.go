package bodyparser

import (
	"fmt"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// stepSIMD decodes an instruction under the 0xFD prefix. Only the subset
// wasmval documents (v128.const, i8x16.shuffle, v128.bitselect, and every
// binop/unop already registered in the shared operator tables — splats,
// lane compares, and the numeric lane families) is modeled; v128 load/store
// and individual lane extract/replace are not IR variants in this
// implementation.
func (p *parser) stepSIMD(offset int) error {
	sub64, err := p.r.ReadUvarint()
	if err != nil {
		return p.fail(offset, "%s", err)
	}
	sub := uint32(sub64)

	switch sub {
	case wasmval.SimdV128Const:
		v, err := p.r.ReadV128()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		id := p.fn.Arena.Alloc(&ir.Const{Value: ir.ConstValue{Type: wasmval.V128, V128: v}})
		t := wasmval.V128
		p.emit(id, &t)
		return nil

	case wasmval.SimdI8x16Shuffle:
		var indices [16]byte
		for i := range indices {
			b, err := p.r.ReadByte()
			if err != nil {
				return p.fail(offset, "%s", err)
			}
			indices[i] = b
		}
		b, err := p.popExpect(offset, wasmval.V128)
		if err != nil {
			return err
		}
		a, err := p.popExpect(offset, wasmval.V128)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.V128Shuffle{A: a, B: b, Indices: indices})
		t := wasmval.V128
		p.emit(id, &t)
		return nil

	case wasmval.SimdV128Bitselect:
		mask, err := p.popExpect(offset, wasmval.V128)
		if err != nil {
			return err
		}
		b, err := p.popExpect(offset, wasmval.V128)
		if err != nil {
			return err
		}
		a, err := p.popExpect(offset, wasmval.V128)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.V128Bitselect{A: a, B: b, Mask: mask})
		t := wasmval.V128
		p.emit(id, &t)
		return nil
	}

	if bop, ok := wasmval.DecodeBinOpSimd(sub); ok {
		return p.stepBinop(offset, bop)
	}
	if uop, ok := wasmval.DecodeUnOpSimd(sub); ok {
		return p.stepUnop(offset, uop)
	}

	return ir.NewUnsupportedFeature(fmt.Sprintf("simd opcode 0xfd 0x%x (not in the modeled subset)", sub))
}
