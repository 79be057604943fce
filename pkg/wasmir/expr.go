package wasmir

// Expr is the interface implemented by every expression node. It mirrors
// the evaluation-stack-free, register-based wasm expression AST: every Expr
// evaluates to exactly one value.
type Expr interface {
	exprNode()
}

// Recall reads a register slot previously written by a Memorize statement.
type Recall struct{ Var int }

func (*Recall) exprNode() {}

// Select is wasm's ternary value-select: A if Cond is nonzero, else B. Both
// arms are ordinary Exprs (not thunks) — wasm's select evaluates both
// operands before choosing, unlike a short-circuiting ternary, but wasm's
// type system guarantees neither operand can be a Lua-falsy representation
// of a valid wasm value, so emitting `(cond ~= 0 and a or b)` still picks
// the right one (see expression emitter design note in SPEC_FULL.md §4.2).
type Select struct {
	Cond, A, B Expr
}

func (*Select) exprNode() {}

// GetLocal reads a parameter or local slot by combined variable index.
type GetLocal struct{ Var int }

func (*GetLocal) exprNode() {}

// GetGlobal reads a global by index in the flat global index space.
type GetGlobal struct{ Var int }

func (*GetGlobal) exprNode() {}

// AnyLoad is a typed/sign/width-qualified linear memory load.
type AnyLoad struct {
	Op      Operator
	Pointer Expr
	Offset  uint32
}

func (*AnyLoad) exprNode() {}

// MemorySize returns a memory's current size in pages.
type MemorySize struct{ Memory int }

func (*MemorySize) exprNode() {}

// MemoryGrow grows a memory by Value pages, yielding its previous size or a
// failure sentinel.
type MemoryGrow struct {
	Memory int
	Value  Expr
}

func (*MemoryGrow) exprNode() {}

// Value is a typed literal constant.
type Value struct {
	Type    ValType
	I32     int32
	I64     int64
	F32Bits uint32
	F64Bits uint64
}

func (*Value) exprNode() {}

// AnyUnOp is a unary operator application; always emitted as a runtime
// helper call (no native Luau unary spelling covers wasm's unary ops, e.g.
// clz/ctz/popcnt/various truncating conversions).
type AnyUnOp struct {
	Op  Operator
	Rhs Expr
}

func (*AnyUnOp) exprNode() {}

// AnyBinOp is a binary operator application, native-spelled when Op has one.
type AnyBinOp struct {
	Op        Operator
	Lhs, Rhs Expr
}

func (*AnyBinOp) exprNode() {}

// AnyCmpOp is a comparison, always emitted as a runtime helper call since
// Luau's native comparison operators do not reproduce wasm's signed and
// unsigned integer comparison semantics.
type AnyCmpOp struct {
	Op        Operator
	Lhs, Rhs Expr
}

func (*AnyCmpOp) exprNode() {}
