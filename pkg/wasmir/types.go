// Package wasmir defines the structured wasm AST consumed by the Luau code
// generator: a module already decoded and shaped into statement/expression
// trees with nested forward/backward loops and if/else blocks, rather than
// raw branch instructions. Nothing in this package parses wasm binaries or
// builds the tree from a linear instruction stream — both the binary
// decoder and the linear-to-structured AST builder are separate
// collaborators that hand a *Module to the generator.
package wasmir

import "fmt"

// ValType is a wasm value type.
type ValType uint8

const (
	I32 ValType = iota
	I64
	F32
	F64
)

// String returns the lowercase wasm type name, used for the ZERO_* constant
// suffixes (e.g. "ZERO_i32").
func (t ValType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return fmt.Sprintf("valtype(%d)", uint8(t))
	}
}

// Operator names a single wasm arithmetic/comparison/conversion/memory-access
// operator. Category and Name together identify a runtime helper as
// rt.Category.Name; the helper localizer binds it locally as
// "Category_Name". Native, when non-empty, is the Luau operator spelling
// that may be used in place of the helper call for binary operators whose
// semantics coincide with Luau's native operator (native comparisons never
// apply: wasm's signed/unsigned integer comparisons never match Luau's).
//
// This is the "operator discriminator" from the design notes: the two
// queries ("native operator spelling?", "runtime helper name") are the two
// accessor methods below, and are part of the input AST's contract — the
// AST builder that produces a *Module is expected to have already resolved
// them for every AnyUnOp/AnyBinOp/AnyCmpOp/AnyLoad/AnyStore node.
type Operator struct {
	Category string
	Name     string
	Native   string // "" when no native Luau spelling applies
}

// HasNative reports whether this operator has a native Luau operator
// spelling it can be emitted with directly.
func (o Operator) HasNative() bool { return o.Native != "" }

// HelperName is the local variable name the helper localizer binds this
// operator's runtime function to, and the name used at call sites.
func (o Operator) HelperName() string { return o.Category + "_" + o.Name }

// RuntimePath is the rt.Category.Name path the helper localizer reads from.
func (o Operator) RuntimePath() string { return "rt." + o.Category + "." + o.Name }

// RegRange is a contiguous run of register slots, used for call results:
// reg_{Start}, ..., reg_{End-1}.
type RegRange struct {
	Start, End int
}

// Len returns the number of registers in the range.
func (r RegRange) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no registers.
func (r RegRange) Empty() bool { return r.End <= r.Start }

// LocalGroup is one run of same-typed local variable slots declared by a
// function, following the group's value type and count as wasm encodes
// locals.
type LocalGroup struct {
	Type  ValType
	Count int
}

// ExternalKind identifies the kind of an imported or exported entity.
type ExternalKind uint8

const (
	KindFunc ExternalKind = iota
	KindTable
	KindMemory
	KindGlobal
)

func (k ExternalKind) String() string {
	switch k {
	case KindFunc:
		return "func_list"
	case KindTable:
		return "table_list"
	case KindMemory:
		return "memory_list"
	case KindGlobal:
		return "global_list"
	default:
		return fmt.Sprintf("externalkind(%d)", uint8(k))
	}
}

// Import is a single imported entity, grouped by kind in Module.Imports.
type Import struct {
	Module string
	Field  string
	Kind   ExternalKind
}

// Export is a single exported entity.
type Export struct {
	Field string
	Kind  ExternalKind
	Index int
}

// Limits bounds a table or memory: Min is the initial size, Max the
// declared maximum (nil when unbounded, in which case the generator
// substitutes the runtime convention ceiling 0xFFFF).
type Limits struct {
	Min uint32
	Max *uint32
}

// MaxOr returns Max if present, else the supplied fallback.
func (l Limits) MaxOr(fallback uint32) uint32 {
	if l.Max != nil {
		return *l.Max
	}
	return fallback
}

// Global is a module-defined global variable.
type Global struct {
	Type    ValType
	Mutable bool
	Init    []ConstInstr
}

// Element is an active element segment copying function references into a
// table at a constant-expression offset.
type Element struct {
	TableIndex int
	Offset     []ConstInstr
	Funcs      []int
}

// Data is an active data segment copying bytes into linear memory at a
// constant-expression offset.
type Data struct {
	MemoryIndex int
	Offset      []ConstInstr
	Bytes       []byte
}
