package luau

import (
	"fmt"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// writeExpr emits the Luau sub-expression that evaluates to the same value
// as e. Every helper this expression touches must already have been
// localized by the collector pass before writeExpr ever runs.
func (g *funcGen) writeExpr(e wasmir.Expr) {
	switch n := e.(type) {
	case *wasmir.Recall:
		g.s.str(fmt.Sprintf("reg_%d", n.Var))

	case *wasmir.Select:
		g.s.str("(")
		g.writeExpr(n.Cond)
		g.s.str(" ~= 0 and ")
		g.writeExpr(n.A)
		g.s.str(" or ")
		g.writeExpr(n.B)
		g.s.str(")")

	case *wasmir.GetLocal:
		g.s.str(g.localName(n.Var))

	case *wasmir.GetGlobal:
		g.s.str(fmt.Sprintf("GLOBAL_LIST[%d].value", n.Var))

	case *wasmir.AnyLoad:
		g.s.str(fmt.Sprintf("%s(memory_at_0, ", n.Op.HelperName()))
		g.writeExpr(n.Pointer)
		g.s.str(fmt.Sprintf(" + %d)", n.Offset))

	case *wasmir.MemorySize:
		g.s.str(fmt.Sprintf("memory_at_%d.min", n.Memory))

	case *wasmir.MemoryGrow:
		g.s.str(fmt.Sprintf("rt.allocator.grow(memory_at_%d, ", n.Memory))
		g.writeExpr(n.Value)
		g.s.str(")")

	case *wasmir.Value:
		g.s.str(formatValue(n))

	case *wasmir.AnyUnOp:
		g.s.str(n.Op.HelperName())
		g.s.str("(")
		g.writeExpr(n.Rhs)
		g.s.str(")")

	case *wasmir.AnyBinOp:
		if n.Op.HasNative() {
			g.s.str("(")
			g.writeExpr(n.Lhs)
			g.s.str(" " + n.Op.Native + " ")
			g.writeExpr(n.Rhs)
			g.s.str(")")
		} else {
			g.s.str(n.Op.HelperName())
			g.s.str("(")
			g.writeExpr(n.Lhs)
			g.s.str(", ")
			g.writeExpr(n.Rhs)
			g.s.str(")")
		}

	case *wasmir.AnyCmpOp:
		g.s.str(n.Op.HelperName())
		g.s.str("(")
		g.writeExpr(n.Lhs)
		g.s.str(", ")
		g.writeExpr(n.Rhs)
		g.s.str(")")

	default:
		panic(fmt.Sprintf("luau: unhandled expression node %T", e))
	}
}

// writeExprList writes a comma-separated expression list, e.g. call
// arguments or a return value list.
func (g *funcGen) writeExprList(list []wasmir.Expr) {
	for i, e := range list {
		if i != 0 {
			g.s.str(", ")
		}
		g.writeExpr(e)
	}
}

func formatValue(v *wasmir.Value) string {
	switch v.Type {
	case wasmir.I32:
		return formatI32(v.I32)
	case wasmir.I64:
		return formatI64(v.I64)
	case wasmir.F32:
		return formatF32(v.F32Bits)
	case wasmir.F64:
		return formatF64(v.F64Bits)
	default:
		panic(fmt.Sprintf("luau: unhandled value type %v", v.Type))
	}
}
