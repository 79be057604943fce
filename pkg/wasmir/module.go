package wasmir

// Function is a single wasm function body, already structured into a
// statement tree by the (external) AST builder.
type Function struct {
	NumParams int
	Locals    []LocalGroup
	NumStack  int
	Code      []Stmt
}

// LocalCount returns the total number of local slots (excluding
// parameters) this function declares across all local groups.
func (f *Function) LocalCount() int {
	n := 0
	for _, g := range f.Locals {
		n += g.Count
	}
	return n
}

// Module is a fully decoded wasm module: every section addressable by a
// stable index, imports always preceding module-defined entities within
// each kind's flat index space.
type Module struct {
	Imports   []Import
	Functions []*Function
	Tables    []Limits
	Memories  []Limits
	Globals   []Global
	Exports   []Export
	Elements  []Element
	Data      []Data
	Start     *int

	// Names maps a function's code-section index (0-based, i.e. before
	// adding the function-import offset) to its debug name from the wasm
	// names section. A missing entry means no name was recorded.
	Names map[int]string
}

// importCount counts imports of the given kind.
func (m *Module) importCount(kind ExternalKind) int {
	n := 0
	for _, imp := range m.Imports {
		if imp.Kind == kind {
			n++
		}
	}
	return n
}

// FuncImportCount is the number of imported functions, i.e. the offset
// added to a code-section index to reach its slot in FUNC_LIST.
func (m *Module) FuncImportCount() int { return m.importCount(KindFunc) }

// TableImportCount is the number of imported tables.
func (m *Module) TableImportCount() int { return m.importCount(KindTable) }

// MemoryImportCount is the number of imported memories.
func (m *Module) MemoryImportCount() int { return m.importCount(KindMemory) }

// GlobalImportCount is the number of imported globals.
func (m *Module) GlobalImportCount() int { return m.importCount(KindGlobal) }

// FuncSpace is the total size of the flat function index space (imports
// plus module-defined functions).
func (m *Module) FuncSpace() int { return m.FuncImportCount() + len(m.Functions) }

// TableSpace is the total size of the flat table index space.
func (m *Module) TableSpace() int { return m.TableImportCount() + len(m.Tables) }

// MemorySpace is the total size of the flat memory index space.
func (m *Module) MemorySpace() int { return m.MemoryImportCount() + len(m.Memories) }

// GlobalSpace is the total size of the flat global index space.
func (m *Module) GlobalSpace() int { return m.GlobalImportCount() + len(m.Globals) }
