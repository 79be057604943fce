package luau

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

//go:embed runtime/runtime.lua
var runtimeSource string

// Transpiler lowers a decoded wasm module into Luau source implementing
// the same behavior, and separately vends the fixed runtime library every
// emitted module requires at load time.
type Transpiler struct {
	mod *wasmir.Module
}

// New prepares a Transpiler for mod. mod is not copied; it must not be
// mutated concurrently with a Transpile/Runtime call.
func New(mod *wasmir.Module) *Transpiler {
	return &Transpiler{mod: mod}
}

// Runtime writes the fixed Luau runtime library every transpiled module's
// `require(script.Runtime)` resolves to. It is the same text regardless of
// mod, so callers typically write it once per deployment rather than once
// per transpile.
func (t *Transpiler) Runtime(w io.Writer) error {
	_, err := io.WriteString(w, runtimeSource)
	return err
}

// Transpile writes the Luau source for mod: the runtime require, the
// localized helper bindings, the zero constants, the four flat index
// tables, every function body, and finally the module factory closure
// returned to the caller.
func (t *Transpiler) Transpile(w io.Writer) error {
	s := newSink(w)
	mod := t.mod

	s.str("local rt = require(script.Runtime)")

	t.genLocalize(s)

	s.str("local ZERO_i32 = 0 ")
	s.str("local ZERO_i64 = 0 ")
	s.str("local ZERO_f32 = 0.0 ")
	s.str("local ZERO_f64 = 0.0 ")

	writeList(s, "FUNC_LIST", mod.FuncSpace())
	writeList(s, "TABLE_LIST", mod.TableSpace())
	writeList(s, "MEMORY_LIST", mod.MemorySpace())
	writeList(s, "GLOBAL_LIST", mod.GlobalSpace())

	t.genFuncList(s)
	t.genStartPoint(s)

	return s.err
}

// writeList preallocates a flat index table sized to hold every entry
// except the first, matching table.create's "additional capacity beyond
// the first implicit slot" semantics; a zero-length space still declares
// the local (table.create(0) is a valid empty preallocation hint).
func writeList(s *sink, name string, length int) {
	n := length - 1
	if n < 0 {
		n = 0
	}
	s.str(fmt.Sprintf("local %s = table.create(%d)", name, n))
}

// genLocalize collects every runtime helper referenced across all
// functions and emits one `local cat_name = rt.cat.name` binding per
// helper, sorted for determinism, before any function body is written.
func (t *Transpiler) genLocalize(s *sink) {
	set := newOrderedHelperSet()
	for _, fn := range t.mod.Functions {
		collectHelpers(fn.Code, set)
	}
	for _, k := range set.sorted() {
		s.str(fmt.Sprintf("local %s_%s = rt.%s.%s ", k.category, k.name, k.category, k.name))
	}
}

// funcName writes "FUNC_LIST[index] =", annotated with the function's
// debug name (from the names section) as a Luau block comment when known.
func (t *Transpiler) funcName(s *sink, codeIndex, offset int) {
	s.str("FUNC_LIST")
	if name, ok := t.mod.Names[codeIndex]; ok {
		s.str(fmt.Sprintf("--[[%s]]", name))
	}
	s.str(fmt.Sprintf("[%d] =", codeIndex+offset))
}

func (t *Transpiler) genFuncList(s *sink) {
	offset := t.mod.FuncImportCount()
	fg := &funcGen{s: s, gen: t}
	for i, fn := range t.mod.Functions {
		t.funcName(s, i, offset)
		fg.writeFunction(fn)
	}
}
