package luau

import (
	"fmt"
	"strings"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// writeTableInit emits a fresh table record: its declared bounds and an
// empty backing array, populated later by element segments.
func writeTableInit(s *sink, l wasmir.Limits) {
	s.str(fmt.Sprintf("{ min = %d, max = %d, data = {} }", l.Min, l.MaxOr(0xFFFF)))
}

// writeMemoryInit emits a fresh linear memory allocation through the
// runtime's allocator, which owns growth and bounds checking.
func writeMemoryInit(s *sink, l wasmir.Limits) {
	s.str(fmt.Sprintf("rt.allocator.new(%d, %d)", l.Min, l.MaxOr(0xFFFF)))
}

func (t *Transpiler) genTableList(s *sink) {
	offset := t.mod.TableImportCount()
	for i, l := range t.mod.Tables {
		s.str(fmt.Sprintf("TABLE_LIST[%d] =", i+offset))
		writeTableInit(s, l)
	}
}

func (t *Transpiler) genMemoryList(s *sink) {
	offset := t.mod.MemoryImportCount()
	for i, l := range t.mod.Memories {
		s.str(fmt.Sprintf("MEMORY_LIST[%d] =", i+offset))
		writeMemoryInit(s, l)
	}
}

func (t *Transpiler) genGlobalList(s *sink) {
	offset := t.mod.GlobalImportCount()
	for i, g := range t.mod.Globals {
		s.str(fmt.Sprintf("GLOBAL_LIST[%d] = { value =", i+offset))
		writeConstExpr(s, g.Init)
		s.str("}")
	}
}

func (t *Transpiler) genElementList(s *sink) {
	for _, el := range t.mod.Elements {
		s.str("do ")
		s.str(fmt.Sprintf("local target = TABLE_LIST[%d].data ", el.TableIndex))
		s.str("local offset =")
		writeConstExpr(s, el.Offset)
		s.str("local data = {")
		for _, f := range el.Funcs {
			s.str(fmt.Sprintf("FUNC_LIST[%d],", f))
		}
		s.str("}")
		s.str("table.move(data, 1, #data, offset, target)")
		s.str("end ")
	}
}

func (t *Transpiler) genDataList(s *sink) {
	for _, d := range t.mod.Data {
		s.str("do ")
		s.str(fmt.Sprintf("local target = MEMORY_LIST[%d]", d.MemoryIndex))
		s.str("local offset =")
		writeConstExpr(s, d.Offset)
		s.str(`local data = "`)
		for _, b := range d.Bytes {
			s.str(fmt.Sprintf("\\x%02X", b))
		}
		s.str(`"`)
		s.str("rt.allocator.init(target, offset, data)")
		s.str("end ")
	}
}

// genImportOf emits one `UPPER[i] = wasm.module.lower.field` assignment
// per import of the given kind, in import-section order.
func (t *Transpiler) genImportOf(s *sink, kind wasmir.ExternalKind) {
	i := 0
	for _, imp := range t.mod.Imports {
		if imp.Kind != kind {
			continue
		}
		s.str(fmt.Sprintf("%s[%d] = wasm.%s.%s.%s ", strings.ToUpper(kind.String()), i, imp.Module, kind.String(), imp.Field))
		i++
	}
}

func (t *Transpiler) genImportList(s *sink) {
	t.genImportOf(s, wasmir.KindFunc)
	t.genImportOf(s, wasmir.KindTable)
	t.genImportOf(s, wasmir.KindMemory)
	t.genImportOf(s, wasmir.KindGlobal)
}

// genExportOf emits one `lower = { field = UPPER[index], ... },` record
// entry per export of the given kind.
func (t *Transpiler) genExportOf(s *sink, kind wasmir.ExternalKind) {
	s.str(kind.String() + " = {")
	for _, exp := range t.mod.Exports {
		if exp.Kind != kind {
			continue
		}
		s.str(fmt.Sprintf("%s = %s[%d],", exp.Field, strings.ToUpper(kind.String()), exp.Index))
	}
	s.str("},")
}

func (t *Transpiler) genExportList(s *sink) {
	t.genExportOf(s, wasmir.KindFunc)
	t.genExportOf(s, wasmir.KindTable)
	t.genExportOf(s, wasmir.KindMemory)
	t.genExportOf(s, wasmir.KindGlobal)
}

// genStartPoint emits run_init_code (tables, memories, globals, elements,
// data, in that fixed order) and the factory closure the host calls with
// its import object, returning the module's export record.
func (t *Transpiler) genStartPoint(s *sink) {
	s.str("local function run_init_code()")
	t.genTableList(s)
	t.genMemoryList(s)
	t.genGlobalList(s)
	t.genElementList(s)
	t.genDataList(s)
	s.str("end ")

	s.str("return function(wasm)")
	t.genImportList(s)
	s.str("run_init_code()")

	if t.mod.Start != nil {
		s.str(fmt.Sprintf("FUNC_LIST[%d]()", *t.mod.Start))
	}

	s.str("return {")
	t.genExportList(s)
	s.str("} end ")
}
