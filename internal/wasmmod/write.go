package wasmmod

import (
	"github.com/pkg/errors"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/leb128"
)

// Encode serializes m into a wasm binary module. Section order follows the
// binary format (type, import, function, table, memory, global, export,
// start, element, code, data); any section with nothing live in it is
// omitted entirely.
func Encode(m *Module) ([]byte, error) {
	idx := buildIndices(m)

	out := leb128.NewBuffer()
	out.WriteBytes(wasmMagic[:])
	out.WriteBytes(wasmVersion[:])

	writeSection(out, secType, writeTypeSection(m))
	writeSection(out, secImport, writeImportSection(m))
	writeSection(out, secFunction, writeFunctionSection(m, idx))
	writeSection(out, secTable, writeTableSection(m))
	writeSection(out, secMemory, writeMemorySection(m))
	writeSection(out, secGlobal, writeGlobalSection(m))
	writeSection(out, secExport, writeExportSection(m, idx))
	if m.HasStart {
		writeSection(out, secStart, writeStartSection(m, idx))
	}
	writeSection(out, secElement, writeElementSection(m, idx))

	code, err := writeCodeSection(m, idx)
	if err != nil {
		return nil, errors.Wrap(err, "wasmmod: encode code section")
	}
	writeSection(out, secCode, code)

	writeSection(out, secData, writeDataSection(m, idx))

	return out.Bytes(), nil
}

// writeSection appends id, the LEB128 length of payload, and payload
// itself — but only if payload is non-empty, matching every producer's
// habit of omitting sections with nothing to say.
func writeSection(out *leb128.Buffer, id byte, payload []byte) {
	if len(payload) == 0 {
		return
	}
	out.WriteByte(id)
	out.WriteUvarint(uint64(len(payload)))
	out.WriteBytes(payload)
}

func writeLimits(buf *leb128.Buffer, min, max uint32, hasMax bool) {
	if hasMax {
		buf.WriteByte(0x01)
		buf.WriteUvarint(uint64(min))
		buf.WriteUvarint(uint64(max))
	} else {
		buf.WriteByte(0x00)
		buf.WriteUvarint(uint64(min))
	}
}

func writeTypeSection(m *Module) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Types.Each(func(_ uint32, sig ir.Signature) {
		count++
		buf.WriteByte(0x60)
		buf.WriteUvarint(uint64(len(sig.Params)))
		for _, t := range sig.Params {
			buf.WriteByte(byte(t))
		}
		buf.WriteUvarint(uint64(len(sig.Results)))
		for _, t := range sig.Results {
			buf.WriteByte(byte(t))
		}
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}

func writeImportSection(m *Module) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Funcs.Each(func(_ uint32, f Function) {
		if f.Kind != FuncImport {
			return
		}
		count++
		buf.WriteString(f.Import.Module)
		buf.WriteString(f.Import.Name)
		buf.WriteByte(importKindFunc)
		buf.WriteUvarint(uint64(f.Type))
	})
	m.Tables.Each(func(_ uint32, t Table) {
		if !t.Imported {
			return
		}
		count++
		buf.WriteString(t.Import.Module)
		buf.WriteString(t.Import.Name)
		buf.WriteByte(importKindTable)
		buf.WriteByte(byte(t.Type.ElemType))
		writeLimits(buf, t.Type.Min, t.Type.Max, t.Type.HasMax)
	})
	m.Memories.Each(func(_ uint32, mem Memory) {
		if !mem.Imported {
			return
		}
		count++
		buf.WriteString(mem.Import.Module)
		buf.WriteString(mem.Import.Name)
		buf.WriteByte(importKindMemory)
		writeLimits(buf, mem.Type.Min, mem.Type.Max, mem.Type.HasMax)
	})
	m.Globals.Each(func(_ uint32, g Global) {
		if !g.Imported {
			return
		}
		count++
		buf.WriteString(g.Import.Module)
		buf.WriteString(g.Import.Name)
		buf.WriteByte(importKindGlobal)
		buf.WriteByte(byte(g.Type.ValType))
		if g.Type.Mutable {
			buf.WriteByte(0x01)
		} else {
			buf.WriteByte(0x00)
		}
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}

func writeFunctionSection(m *Module, idx *moduleIndices) []byte {
	ordered := FunctionsOrderedForCodeSection(m)
	if len(ordered) == 0 {
		return nil
	}
	buf := leb128.NewBuffer()
	buf.WriteUvarint(uint64(len(ordered)))
	for _, id := range ordered {
		f := m.Funcs.MustGet(uint32(id))
		buf.WriteUvarint(uint64(idx.TypeIndex(f.Type)))
	}
	return buf.Bytes()
}

func writeTableSection(m *Module) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Tables.Each(func(_ uint32, t Table) {
		if t.Imported {
			return
		}
		count++
		buf.WriteByte(byte(t.Type.ElemType))
		writeLimits(buf, t.Type.Min, t.Type.Max, t.Type.HasMax)
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}

func writeMemorySection(m *Module) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Memories.Each(func(_ uint32, mem Memory) {
		if mem.Imported {
			return
		}
		count++
		writeLimits(buf, mem.Type.Min, mem.Type.Max, mem.Type.HasMax)
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}

func writeGlobalSection(m *Module) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Globals.Each(func(_ uint32, g Global) {
		if g.Imported {
			return
		}
		count++
		buf.WriteByte(byte(g.Type.ValType))
		if g.Type.Mutable {
			buf.WriteByte(0x01)
		} else {
			buf.WriteByte(0x00)
		}
		buf.WriteBytes(g.Init)
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}

func writeExportSection(m *Module, idx *moduleIndices) []byte {
	if len(m.Exports) == 0 {
		return nil
	}
	buf := leb128.NewBuffer()
	buf.WriteUvarint(uint64(len(m.Exports)))
	for _, e := range m.Exports {
		buf.WriteString(e.Name)
		switch e.Kind {
		case ExportFunc:
			buf.WriteByte(0x00)
			buf.WriteUvarint(uint64(idx.FuncIndex(e.Func)))
		case ExportTable:
			buf.WriteByte(0x01)
			buf.WriteUvarint(uint64(idx.TableIndex(e.Table)))
		case ExportMemory:
			buf.WriteByte(0x02)
			buf.WriteUvarint(uint64(idx.MemoryIndex(e.Memory)))
		case ExportGlobal:
			buf.WriteByte(0x03)
			buf.WriteUvarint(uint64(idx.GlobalIndex(e.Global)))
		}
	}
	return buf.Bytes()
}

func writeStartSection(m *Module, idx *moduleIndices) []byte {
	buf := leb128.NewBuffer()
	buf.WriteUvarint(uint64(idx.FuncIndex(m.Start)))
	return buf.Bytes()
}

func writeElementSection(m *Module, idx *moduleIndices) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Elements.Each(func(_ uint32, el Element) {
		count++
		tableIdx := idx.TableIndex(el.Table)
		if tableIdx == 0 {
			buf.WriteByte(0x00)
			buf.WriteBytes(el.Offset)
		} else {
			buf.WriteByte(0x02)
			buf.WriteUvarint(uint64(tableIdx))
			buf.WriteBytes(el.Offset)
			buf.WriteByte(0x00) // elemkind: funcref
		}
		buf.WriteUvarint(uint64(len(el.Funcs)))
		for _, f := range el.Funcs {
			buf.WriteUvarint(uint64(idx.FuncIndex(f)))
		}
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}

func writeDataSection(m *Module, idx *moduleIndices) []byte {
	buf := leb128.NewBuffer()
	count := 0
	m.Data.Each(func(_ uint32, d Data) {
		count++
		switch {
		case d.Passive:
			buf.WriteByte(0x01)
		case idx.MemoryIndex(d.Memory) == 0:
			buf.WriteByte(0x00)
			buf.WriteBytes(d.Offset)
		default:
			buf.WriteByte(0x02)
			buf.WriteUvarint(uint64(idx.MemoryIndex(d.Memory)))
			buf.WriteBytes(d.Offset)
		}
		buf.WriteUvarint(uint64(len(d.Bytes)))
		buf.WriteBytes(d.Bytes)
	})
	if count == 0 {
		return nil
	}
	out := leb128.NewBuffer()
	out.WriteUvarint(uint64(count))
	out.WriteBytes(buf.Bytes())
	return out.Bytes()
}
