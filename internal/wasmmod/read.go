package wasmmod

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/leb128"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// Decode parses data as a wasm binary module. Sections are expected in the
// canonical order (type, import, function, table, memory, global, export,
// start, element, code, data); a missing section is simply skipped.
func Decode(data []byte, cfg Config) (*Module, error) {
	if len(data) < 8 || !bytes.Equal(data[:4], wasmMagic[:]) {
		return nil, errors.New("wasmmod: not a wasm module (bad magic)")
	}
	if !bytes.Equal(data[4:8], wasmVersion[:]) {
		return nil, errors.New("wasmmod: unsupported wasm version")
	}

	m := NewModule(cfg)
	r := leb128.NewReader(data[8:])

	var funcTypeIndices []ir.TypeID // one per entry in the function section, in file order

	for !r.Done() {
		id, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "wasmmod: reading section id")
		}
		length, err := r.ReadUvarint()
		if err != nil {
			return nil, errors.Wrap(err, "wasmmod: reading section length")
		}
		payload, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, errors.Wrap(err, "wasmmod: reading section payload")
		}
		sr := leb128.NewReader(payload)

		switch id {
		case secCustom:
			// Custom sections carry no semantics this library round-trips.
		case secType:
			if err := readTypeSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: type section")
			}
		case secImport:
			if err := readImportSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: import section")
			}
		case secFunction:
			idxs, err := readFunctionSection(sr, m)
			if err != nil {
				return nil, errors.Wrap(err, "wasmmod: function section")
			}
			funcTypeIndices = idxs
		case secTable:
			if err := readTableSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: table section")
			}
		case secMemory:
			if err := readMemorySection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: memory section")
			}
		case secGlobal:
			if err := readGlobalSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: global section")
			}
		case secExport:
			if err := readExportSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: export section")
			}
		case secStart:
			w, err := sr.ReadUvarint()
			if err != nil {
				return nil, errors.Wrap(err, "wasmmod: start section")
			}
			m.HasStart = true
			m.Start = ir.FuncID(w)
		case secElement:
			if err := readElementSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: element section")
			}
		case secCode:
			if err := readCodeSection(sr, m, funcTypeIndices); err != nil {
				return nil, errors.Wrap(err, "wasmmod: code section")
			}
		case secData:
			if err := readDataSection(sr, m); err != nil {
				return nil, errors.Wrap(err, "wasmmod: data section")
			}
		default:
			return nil, errors.Errorf("wasmmod: unknown section id %d", id)
		}
	}

	return m, nil
}

func readLimits(r *leb128.Reader) (min, max uint32, hasMax bool, err error) {
	flag, err := r.ReadByte()
	if err != nil {
		return 0, 0, false, err
	}
	mn, err := r.ReadUvarint()
	if err != nil {
		return 0, 0, false, err
	}
	if flag == 0x01 {
		mx, err := r.ReadUvarint()
		if err != nil {
			return 0, 0, false, err
		}
		return uint32(mn), uint32(mx), true, nil
	}
	return uint32(mn), 0, false, nil
}

// readConstExpr copies the raw bytes of a constant initializer expression,
// including its terminating end opcode. MVP constant expressions (a single
// const/global.get/ref.null/ref.func instruction) never nest a block, so
// the first 0x0B encountered is unambiguously the terminator.
func readConstExpr(r *leb128.Reader) ([]byte, error) {
	buf := leb128.NewBuffer()
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "wasmmod: truncated constant expression")
		}
		buf.WriteByte(b)
		if b == 0x0B {
			break
		}
		// Copy along any LEB128/float immediates inline so we never mistake
		// an immediate byte for the terminator.
		switch b {
		case 0x41, 0x42: // i32.const, i64.const
			if err := copyVarint(r, buf); err != nil {
				return nil, err
			}
		case 0x43: // f32.const
			if err := copyBytes(r, buf, 4); err != nil {
				return nil, err
			}
		case 0x44: // f64.const
			if err := copyBytes(r, buf, 8); err != nil {
				return nil, err
			}
		case 0x23: // global.get
			if err := copyUvarint(r, buf); err != nil {
				return nil, err
			}
		case 0xD0: // ref.null
			if err := copyBytes(r, buf, 1); err != nil {
				return nil, err
			}
		case 0xD2: // ref.func
			if err := copyUvarint(r, buf); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

func copyBytes(r *leb128.Reader, buf *leb128.Buffer, n int) error {
	b, err := r.ReadBytes(n)
	if err != nil {
		return err
	}
	buf.WriteBytes(b)
	return nil
}

// copyUvarint re-encodes an unsigned LEB128 varint it just decoded, so the
// copy is byte-identical to a canonically encoded one even if the source
// used a non-minimal encoding.
func copyUvarint(r *leb128.Reader, buf *leb128.Buffer) error {
	v, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	buf.WriteUvarint(v)
	return nil
}

func copyVarint(r *leb128.Reader, buf *leb128.Buffer) error {
	v, err := r.ReadVarint()
	if err != nil {
		return err
	}
	buf.WriteVarint(v)
	return nil
}

func readTypeSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		form, err := r.ReadByte()
		if err != nil {
			return err
		}
		if form != 0x60 {
			return errors.Errorf("wasmmod: unsupported type form 0x%x", form)
		}
		params, err := readValTypeVector(r)
		if err != nil {
			return err
		}
		results, err := readValTypeVector(r)
		if err != nil {
			return err
		}
		m.Types.Alloc(ir.Signature{Params: params, Results: results})
	}
	return nil
}

func readValTypeVector(r *leb128.Reader) ([]wasmval.ValType, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	out := make([]wasmval.ValType, n)
	for i := range out {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		t, ok := wasmval.ValTypeFromByte(b)
		if !ok {
			return nil, errors.Errorf("wasmmod: unknown value type byte 0x%x", b)
		}
		out[i] = t
	}
	return out, nil
}

func readImportSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		mod, err := readString(r)
		if err != nil {
			return err
		}
		name, err := readString(r)
		if err != nil {
			return err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}
		ref := ImportRef{Module: mod, Name: name}
		switch kind {
		case importKindFunc:
			typeIdx, err := r.ReadUvarint()
			if err != nil {
				return err
			}
			m.Funcs.Alloc(Function{Type: ir.TypeID(typeIdx), Kind: FuncImport, Import: ref})
		case importKindTable:
			elemByte, err := r.ReadByte()
			if err != nil {
				return err
			}
			elem, ok := wasmval.ValTypeFromByte(elemByte)
			if !ok {
				return errors.Errorf("wasmmod: unknown table element type byte 0x%x", elemByte)
			}
			min, max, hasMax, err := readLimits(r)
			if err != nil {
				return err
			}
			m.Tables.Alloc(Table{Imported: true, Import: ref, Type: TableType{ElemType: elem, Min: min, Max: max, HasMax: hasMax}})
		case importKindMemory:
			min, max, hasMax, err := readLimits(r)
			if err != nil {
				return err
			}
			m.Memories.Alloc(Memory{Imported: true, Import: ref, Type: MemoryType{Min: min, Max: max, HasMax: hasMax}})
		case importKindGlobal:
			vtByte, err := r.ReadByte()
			if err != nil {
				return err
			}
			vt, ok := wasmval.ValTypeFromByte(vtByte)
			if !ok {
				return errors.Errorf("wasmmod: unknown global value type byte 0x%x", vtByte)
			}
			mutByte, err := r.ReadByte()
			if err != nil {
				return err
			}
			m.Globals.Alloc(Global{Imported: true, Import: ref, Type: GlobalType{ValType: vt, Mutable: mutByte == 0x01}})
		default:
			return errors.Errorf("wasmmod: unknown import kind %d", kind)
		}
	}
	return nil
}

func readString(r *leb128.Reader) (string, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readFunctionSection declares one Uninitialized-equivalent Function entry
// per type index listed, mirroring walrus's declare_local_functions: the
// body is filled in later, in parallel, by readCodeSection.
func readFunctionSection(r *leb128.Reader, m *Module) ([]ir.TypeID, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	idxs := make([]ir.TypeID, n)
	for i := range idxs {
		typeIdx, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		idxs[i] = ir.TypeID(typeIdx)
		name := ""
		if m.Config.SyntheticNames {
			name = syntheticFuncName(m.Funcs.Len())
		}
		m.Funcs.Alloc(Function{Type: idxs[i], Kind: FuncLocal, Name: name})
	}
	return idxs, nil
}

func readTableSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		elemByte, err := r.ReadByte()
		if err != nil {
			return err
		}
		elem, ok := wasmval.ValTypeFromByte(elemByte)
		if !ok {
			return errors.Errorf("wasmmod: unknown table element type byte 0x%x", elemByte)
		}
		min, max, hasMax, err := readLimits(r)
		if err != nil {
			return err
		}
		m.Tables.Alloc(Table{Type: TableType{ElemType: elem, Min: min, Max: max, HasMax: hasMax}})
	}
	return nil
}

func readMemorySection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		min, max, hasMax, err := readLimits(r)
		if err != nil {
			return err
		}
		m.Memories.Alloc(Memory{Type: MemoryType{Min: min, Max: max, HasMax: hasMax}})
	}
	return nil
}

func readGlobalSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		vtByte, err := r.ReadByte()
		if err != nil {
			return err
		}
		vt, ok := wasmval.ValTypeFromByte(vtByte)
		if !ok {
			return errors.Errorf("wasmmod: unknown global value type byte 0x%x", vtByte)
		}
		mutByte, err := r.ReadByte()
		if err != nil {
			return err
		}
		init, err := readConstExpr(r)
		if err != nil {
			return err
		}
		m.Globals.Alloc(Global{Type: GlobalType{ValType: vt, Mutable: mutByte == 0x01}, Init: init})
	}
	return nil
}

func readExportSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		name, err := readString(r)
		if err != nil {
			return err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}
		w, err := r.ReadUvarint()
		if err != nil {
			return err
		}
		e := Export{Name: name}
		switch kind {
		case 0x00:
			e.Kind = ExportFunc
			e.Func = ir.FuncID(w)
		case 0x01:
			e.Kind = ExportTable
			e.Table = ir.TableID(w)
		case 0x02:
			e.Kind = ExportMemory
			e.Memory = ir.MemoryID(w)
		case 0x03:
			e.Kind = ExportGlobal
			e.Global = ir.GlobalID(w)
		default:
			return errors.Errorf("wasmmod: unknown export kind %d", kind)
		}
		m.Exports = append(m.Exports, e)
	}
	return nil
}

func readElementSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		flag, err := r.ReadByte()
		if err != nil {
			return err
		}
		var tableIdx uint64
		var offset []byte
		switch flag {
		case 0x00:
			offset, err = readConstExpr(r)
			if err != nil {
				return err
			}
		case 0x02:
			tableIdx, err = r.ReadUvarint()
			if err != nil {
				return err
			}
			offset, err = readConstExpr(r)
			if err != nil {
				return err
			}
			if _, err := r.ReadByte(); err != nil { // elemkind
				return err
			}
		default:
			return errors.Errorf("wasmmod: unsupported element segment flag %d", flag)
		}
		count, err := r.ReadUvarint()
		if err != nil {
			return err
		}
		funcs := make([]ir.FuncID, count)
		for j := range funcs {
			w, err := r.ReadUvarint()
			if err != nil {
				return err
			}
			funcs[j] = ir.FuncID(w)
		}
		m.Elements.Alloc(Element{Table: ir.TableID(tableIdx), Offset: offset, Funcs: funcs})
	}
	return nil
}

func readDataSection(r *leb128.Reader, m *Module) error {
	n, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		flag, err := r.ReadByte()
		if err != nil {
			return err
		}
		var memIdx uint64
		var offset []byte
		var passive bool
		switch flag {
		case 0x00:
			offset, err = readConstExpr(r)
			if err != nil {
				return err
			}
		case 0x01:
			passive = true
		case 0x02:
			memIdx, err = r.ReadUvarint()
			if err != nil {
				return err
			}
			offset, err = readConstExpr(r)
			if err != nil {
				return err
			}
		default:
			return errors.Errorf("wasmmod: unsupported data segment flag %d", flag)
		}
		dataLen, err := r.ReadUvarint()
		if err != nil {
			return err
		}
		bs, err := r.ReadBytes(int(dataLen))
		if err != nil {
			return err
		}
		m.Data.Alloc(Data{Memory: ir.MemoryID(memIdx), Offset: offset, Passive: passive, Bytes: append([]byte{}, bs...)})
	}
	return nil
}

func syntheticFuncName(idx int) string {
	return "f" + strconv.Itoa(idx)
}
