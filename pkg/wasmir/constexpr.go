package wasmir

// ConstInstr is one instruction of a constant expression: the restricted
// sub-language used for global initializers and element/data segment
// offsets, limited to typed consts and get_global (glossary: "Constant
// expression"). There is no variant for a trailing `end` opcode or any
// other instruction. The Luau generator's writeConstExpr emits the first
// instruction of a list and ignores the rest; an empty list becomes a
// runtime "mundane expression" error.
type ConstInstr interface {
	constInstrNode()
}

// ConstI32 is an i32.const instruction.
type ConstI32 struct{ Value int32 }

func (ConstI32) constInstrNode() {}

// ConstI64 is an i64.const instruction.
type ConstI64 struct{ Value int64 }

func (ConstI64) constInstrNode() {}

// ConstF32 is an f32.const instruction, carrying the raw bit pattern so the
// numeric formatter can reinterpret it as single precision before widening.
type ConstF32 struct{ Bits uint32 }

func (ConstF32) constInstrNode() {}

// ConstF64 is an f64.const instruction.
type ConstF64 struct{ Bits uint64 }

func (ConstF64) constInstrNode() {}

// ConstGetGlobal is a get_global instruction reading an already-initialized
// earlier global.
type ConstGetGlobal struct{ Index int }

func (ConstGetGlobal) constInstrNode() {}
