package luau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

func writeExprString(t *testing.T, e wasmir.Expr) string {
	t.Helper()
	var buf strings.Builder
	g := &funcGen{s: newSink(&buf), numParams: 2}
	g.writeExpr(e)
	require.NoError(t, g.s.err)
	return buf.String()
}

func TestWriteExprRecall(t *testing.T) {
	require.Equal(t, "reg_2", writeExprString(t, &wasmir.Recall{Var: 2}))
}

func TestWriteExprSelectIsTernaryOverZero(t *testing.T) {
	out := writeExprString(t, &wasmir.Select{
		Cond: &wasmir.GetLocal{Var: 0},
		A:    &wasmir.Value{Type: wasmir.I32, I32: 1},
		B:    &wasmir.Value{Type: wasmir.I32, I32: 2},
	})
	require.Equal(t, "(param_0 ~= 0 and 1 or 2)", out)
}

func TestWriteExprAnyLoadUsesMemoryAliasAndOffset(t *testing.T) {
	out := writeExprString(t, &wasmir.AnyLoad{
		Op:      wasmir.Operator{Category: "i32", Name: "load"},
		Pointer: &wasmir.GetLocal{Var: 0},
		Offset:  8,
	})
	require.Equal(t, "i32_load(memory_at_0, param_0 + 8)", out)
}

func TestWriteExprMemorySizeAndGrow(t *testing.T) {
	require.Equal(t, "memory_at_1.min", writeExprString(t, &wasmir.MemorySize{Memory: 1}))

	out := writeExprString(t, &wasmir.MemoryGrow{
		Memory: 0,
		Value:  &wasmir.Value{Type: wasmir.I32, I32: 4},
	})
	require.Equal(t, "rt.allocator.grow(memory_at_0, 4)", out)
}

func TestWriteExprUnOpAlwaysUsesHelper(t *testing.T) {
	out := writeExprString(t, &wasmir.AnyUnOp{
		Op:  wasmir.Operator{Category: "i32", Name: "clz"},
		Rhs: &wasmir.GetLocal{Var: 0},
	})
	require.Equal(t, "i32_clz(param_0)", out)
}

func TestWriteExprBinOpNativePrefersOperator(t *testing.T) {
	out := writeExprString(t, &wasmir.AnyBinOp{
		Op:  wasmir.Operator{Category: "i32", Name: "add", Native: "+"},
		Lhs: &wasmir.GetLocal{Var: 0},
		Rhs: &wasmir.GetLocal{Var: 1},
	})
	require.Equal(t, "(param_0 + param_1)", out)
}

func TestWriteExprBinOpWithoutNativeUsesHelper(t *testing.T) {
	out := writeExprString(t, &wasmir.AnyBinOp{
		Op:  wasmir.Operator{Category: "i32", Name: "div_s"},
		Lhs: &wasmir.GetLocal{Var: 0},
		Rhs: &wasmir.GetLocal{Var: 1},
	})
	require.Equal(t, "i32_div_s(param_0, param_1)", out)
}

func TestWriteExprCmpOpAlwaysUsesHelper(t *testing.T) {
	out := writeExprString(t, &wasmir.AnyCmpOp{
		Op:  wasmir.Operator{Category: "i32", Name: "lt_s"},
		Lhs: &wasmir.GetLocal{Var: 0},
		Rhs: &wasmir.GetLocal{Var: 1},
	})
	require.Equal(t, "i32_lt_s(param_0, param_1)", out)
}

func TestWriteExprListCommaSeparates(t *testing.T) {
	var buf strings.Builder
	g := &funcGen{s: newSink(&buf)}
	g.writeExprList([]wasmir.Expr{
		&wasmir.Value{Type: wasmir.I32, I32: 1},
		&wasmir.Value{Type: wasmir.I32, I32: 2},
	})
	require.Equal(t, "1, 2", buf.String())
}
