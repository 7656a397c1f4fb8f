package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// step decodes and validates the single instruction starting at op
// (already consumed from the stream at offset).
func (p *parser) step(offset int, op byte) error {
	switch op {
	case wasmval.OpUnreachable:
		id := p.fn.Arena.Alloc(&ir.Unreachable{})
		p.emit(id, nil)
		p.cur().unreachable = true
		return nil

	case wasmval.OpNop:
		return nil

	case wasmval.OpBlock, wasmval.OpLoop:
		return p.stepBlockOrLoop(offset, op)

	case wasmval.OpIf:
		return p.stepIf(offset)

	case wasmval.OpElse:
		return p.stepElse(offset)

	case wasmval.OpEnd:
		return p.stepEnd(offset)

	case wasmval.OpBr:
		return p.stepBr(offset)

	case wasmval.OpBrIf:
		return p.stepBrIf(offset)

	case wasmval.OpBrTable:
		return p.stepBrTable(offset)

	case wasmval.OpReturn:
		ids, err := p.exitValues(offset, p.ctrl[0])
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.Return{Values: ids})
		p.emit(id, nil)
		p.cur().unreachable = true
		return nil

	case wasmval.OpCall:
		return p.stepCall(offset)

	case wasmval.OpCallIndirect:
		return p.stepCallIndirect(offset)

	case wasmval.OpDrop:
		_, valID, err := p.pop(offset)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.Drop{Value: valID})
		p.emit(id, nil)
		return nil

	case wasmval.OpSelect:
		return p.stepSelect(offset)
	case wasmval.OpSelectT:
		return p.stepSelectTyped(offset)

	case wasmval.OpLocalGet:
		return p.stepLocalGet(offset)
	case wasmval.OpLocalSet:
		return p.stepLocalSet(offset)
	case wasmval.OpLocalTee:
		return p.stepLocalTee(offset)
	case wasmval.OpGlobalGet:
		return p.stepGlobalGet(offset)
	case wasmval.OpGlobalSet:
		return p.stepGlobalSet(offset)

	case wasmval.OpTableGet:
		return p.stepTableGet(offset)
	case wasmval.OpTableSet:
		return p.stepTableSet(offset)

	case wasmval.OpRefNull:
		return p.stepRefNull(offset)
	case wasmval.OpRefIsNull:
		valID, err := p.popReference(offset)
		if err != nil {
			return err
		}
		id := p.fn.Arena.Alloc(&ir.RefIsNull{Value: valID})
		r := wasmval.I32
		p.emit(id, &r)
		return nil

	case wasmval.OpI32Const:
		v, err := p.r.ReadVarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		id := p.fn.Arena.Alloc(&ir.Const{Value: ir.ConstValue{Type: wasmval.I32, I32: int32(v)}})
		t := wasmval.I32
		p.emit(id, &t)
		return nil

	case wasmval.OpI64Const:
		v, err := p.r.ReadVarint()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		id := p.fn.Arena.Alloc(&ir.Const{Value: ir.ConstValue{Type: wasmval.I64, I64: v}})
		t := wasmval.I64
		p.emit(id, &t)
		return nil

	case wasmval.OpF32Const:
		v, err := p.r.ReadF32()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		id := p.fn.Arena.Alloc(&ir.Const{Value: ir.ConstValue{Type: wasmval.F32, F32: v}})
		t := wasmval.F32
		p.emit(id, &t)
		return nil

	case wasmval.OpF64Const:
		v, err := p.r.ReadF64()
		if err != nil {
			return p.fail(offset, "%s", err)
		}
		id := p.fn.Arena.Alloc(&ir.Const{Value: ir.ConstValue{Type: wasmval.F64, F64: v}})
		t := wasmval.F64
		p.emit(id, &t)
		return nil

	case wasmval.OpMemorySize:
		return p.stepMemorySize(offset)
	case wasmval.OpMemoryGrow:
		return p.stepMemoryGrow(offset)

	case wasmval.PrefixBulkMemory:
		return p.stepBulkMemory(offset)
	case wasmval.PrefixAtomic:
		return p.stepAtomic(offset)
	case wasmval.PrefixSIMD:
		return p.stepSIMD(offset)
	}

	if k, ok := wasmval.DecodeLoadKind(op); ok {
		return p.stepLoad(offset, k)
	}
	if k, ok := wasmval.DecodeStoreKind(op); ok {
		return p.stepStore(offset, k)
	}
	if bop, ok := wasmval.DecodeBinOpByte(op); ok {
		return p.stepBinop(offset, bop)
	}
	if uop, ok := wasmval.DecodeUnOpByte(op); ok {
		return p.stepUnop(offset, uop)
	}

	return p.fail(offset, "unknown opcode 0x%02x", op)
}

func (p *parser) stepBlockOrLoop(offset int, op byte) error {
	results, err := p.decodeBlockType(offset)
	if err != nil {
		return err
	}
	kind := wasmval.BlockKindBlock
	if op == wasmval.OpLoop {
		kind = wasmval.BlockKindLoop
	}
	id := p.fn.Arena.Alloc(&ir.Block{BlockKind: kind, Results: results})
	p.ctrl = append(p.ctrl, &frame{kind: kind, results: results, height: len(p.stack), blockID: id})
	return nil
}

func (p *parser) stepIf(offset int) error {
	condID, err := p.popExpect(offset, wasmval.I32)
	if err != nil {
		return err
	}
	results, err := p.decodeBlockType(offset)
	if err != nil {
		return err
	}
	consequent := p.fn.Arena.Alloc(&ir.Block{BlockKind: wasmval.BlockKindIfElseArm, Results: results})
	alternative := p.fn.Arena.Alloc(&ir.Block{BlockKind: wasmval.BlockKindIfElseArm, Results: results})
	p.ctrl = append(p.ctrl, &frame{
		kind: wasmval.BlockKindIfElseArm, results: results, height: len(p.stack),
		blockID: consequent, isIf: true, condition: condID,
		consequentID: consequent, alternativeID: alternative,
	})
	return nil
}

func (p *parser) stepElse(offset int) error {
	f := p.cur()
	if !f.isIf || f.sawElse {
		return p.fail(offset, "else without matching if")
	}
	if _, err := p.exitValues(offset, f); err != nil {
		return err
	}
	p.fn.Arena.Set(f.consequentID, &ir.Block{BlockKind: wasmval.BlockKindIfElseArm, Results: f.results, Children: f.children})
	p.stack = p.stack[:f.height]
	p.exprs = p.exprs[:f.height]
	f.children = nil
	f.blockID = f.alternativeID
	f.sawElse = true
	f.unreachable = false
	return nil
}

func (p *parser) stepEnd(offset int) error {
	f := p.cur()
	resultIDs, err := p.exitValues(offset, f)
	if err != nil {
		return err
	}

	if f.isIf {
		if !f.sawElse && len(f.results) > 0 {
			return p.fail(offset, "if with result type %v has no else: the implicit empty alternative cannot produce a value", f.results)
		}
		p.fn.Arena.Set(f.blockID, &ir.Block{BlockKind: wasmval.BlockKindIfElseArm, Results: f.results, Children: f.children})
		ifElseID := p.fn.Arena.Alloc(&ir.IfElse{Condition: f.condition, Consequent: f.consequentID, Alternative: f.alternativeID})
		p.ctrl = p.ctrl[:len(p.ctrl)-1]
		p.stack = p.stack[:f.height]
		p.exprs = p.exprs[:f.height]
		p.emit(ifElseID, nil)
		p.pushResults(f.results, ifElseID)
		_ = resultIDs
		return nil
	}

	p.fn.Arena.Set(f.blockID, &ir.Block{BlockKind: f.kind, Results: f.results, Children: f.children})
	p.ctrl = p.ctrl[:len(p.ctrl)-1]
	p.stack = p.stack[:f.height]
	p.exprs = p.exprs[:f.height]

	if f.kind == wasmval.BlockKindFunctionEntry {
		p.fn.Entry = f.blockID
		return nil
	}
	p.emit(f.blockID, nil)
	p.pushResults(f.results, f.blockID)
	return nil
}
