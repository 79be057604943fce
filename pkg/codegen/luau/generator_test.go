package luau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

func TestWriteListSizesBelowTheFirstSlot(t *testing.T) {
	var buf strings.Builder
	writeList(newSink(&buf), "FUNC_LIST", 3)
	require.Equal(t, "local FUNC_LIST = table.create(2)", buf.String())

	buf.Reset()
	writeList(newSink(&buf), "FUNC_LIST", 0)
	require.Equal(t, "local FUNC_LIST = table.create(0)", buf.String())
}

func TestGenLocalizeDeduplicatesAndSorts(t *testing.T) {
	opLtS := wasmir.Operator{Category: "i32", Name: "lt_s"}
	opClz := wasmir.Operator{Category: "i32", Name: "clz"}
	mod := &wasmir.Module{
		Functions: []*wasmir.Function{
			{Code: []wasmir.Stmt{&wasmir.If{Cond: &wasmir.AnyCmpOp{Op: opLtS, Lhs: &wasmir.GetLocal{}, Rhs: &wasmir.GetLocal{}}}}},
			{Code: []wasmir.Stmt{&wasmir.Memorize{Value: &wasmir.AnyUnOp{Op: opClz, Rhs: &wasmir.GetLocal{}}}}},
			{Code: []wasmir.Stmt{&wasmir.If{Cond: &wasmir.AnyCmpOp{Op: opLtS, Lhs: &wasmir.GetLocal{}, Rhs: &wasmir.GetLocal{}}}}},
		},
	}

	var buf strings.Builder
	tr := New(mod)
	tr.genLocalize(newSink(&buf))
	out := buf.String()

	require.Equal(t, 1, strings.Count(out, "i32_lt_s"), "shared helper must be localized once")
	require.Less(t, strings.Index(out, "i32_clz"), strings.Index(out, "i32_lt_s"), "helpers must be sorted by name")
}

func TestFuncNameAnnotatesKnownNames(t *testing.T) {
	mod := &wasmir.Module{
		Functions: []*wasmir.Function{{NumParams: 0}},
		Names:     map[int]string{0: "main"},
	}
	tr := New(mod)

	var buf strings.Builder
	tr.funcName(newSink(&buf), 0, 0)
	require.Equal(t, "FUNC_LIST--[[main]][0] =", buf.String())

	buf.Reset()
	tr.funcName(newSink(&buf), 0, 3)
	require.Equal(t, "FUNC_LIST--[[main]][3] =", buf.String())
}

func TestTranspileEmitsFlatIndexTablesAndFunctions(t *testing.T) {
	mod := &wasmir.Module{
		Functions: []*wasmir.Function{{NumParams: 0, Code: nil}},
		Exports:   []wasmir.Export{{Field: "run", Kind: wasmir.KindFunc, Index: 0}},
	}

	var buf strings.Builder
	tr := New(mod)
	require.NoError(t, tr.Transpile(&buf))
	out := buf.String()

	require.Contains(t, out, "local rt = require(script.Runtime)")
	require.Contains(t, out, "local FUNC_LIST = table.create(0)")
	require.Contains(t, out, "local TABLE_LIST = table.create(0)")
	require.Contains(t, out, "local MEMORY_LIST = table.create(0)")
	require.Contains(t, out, "local GLOBAL_LIST = table.create(0)")
	require.Contains(t, out, "FUNC_LIST[0] =")
	require.Contains(t, out, "run = FUNC_LIST[0],")
}

func TestRuntimeReturnsEmbeddedSource(t *testing.T) {
	var buf strings.Builder
	tr := New(&wasmir.Module{})
	require.NoError(t, tr.Runtime(&buf))
	require.Contains(t, buf.String(), "return rt")
}
