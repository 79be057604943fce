package wasmjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

func TestDecodeAddFunction(t *testing.T) {
	src := `{
		"functions": [{
			"num_params": 2,
			"code": [{
				"type": "Return",
				"list": [{
					"type": "AnyBinOp",
					"op": {"category": "i32", "name": "add", "native": "+"},
					"lhs": {"type": "GetLocal", "var": 0},
					"rhs": {"type": "GetLocal", "var": 1}
				}]
			}]
		}],
		"exports": [{"field": "add", "kind": "func", "index": 0}],
		"names": {"0": "add"}
	}`

	mod, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mod.Functions, 1)

	fn := mod.Functions[0]
	require.Equal(t, 2, fn.NumParams)
	require.Len(t, fn.Code, 1)

	ret, ok := fn.Code[0].(*wasmir.Return)
	require.True(t, ok)
	require.Len(t, ret.List, 1)

	add, ok := ret.List[0].(*wasmir.AnyBinOp)
	require.True(t, ok)
	require.Equal(t, wasmir.Operator{Category: "i32", Name: "add", Native: "+"}, add.Op)
	require.Equal(t, &wasmir.GetLocal{Var: 0}, add.Lhs)
	require.Equal(t, &wasmir.GetLocal{Var: 1}, add.Rhs)

	require.Equal(t, []wasmir.Export{{Field: "add", Kind: wasmir.KindFunc, Index: 0}}, mod.Exports)
	require.Equal(t, map[int]string{0: "add"}, mod.Names)
}

func TestDecodeGlobalWithFloatConst(t *testing.T) {
	src := `{
		"globals": [{
			"type": "f64",
			"mutable": false,
			"init": [{"type": "F64Const", "bits": 4607182418800017408}]
		}]
	}`

	mod, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mod.Globals, 1)
	require.Equal(t, wasmir.F64, mod.Globals[0].Type)
	require.Equal(t, []wasmir.ConstInstr{wasmir.ConstF64{Bits: 4607182418800017408}}, mod.Globals[0].Init)
}

func TestDecodeUnknownStmtType(t *testing.T) {
	src := `{"functions": [{"code": [{"type": "NotAThing"}]}]}`
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err)
}

func TestDecodeCallWithoutResults(t *testing.T) {
	src := `{
		"functions": [{
			"code": [{
				"type": "Call",
				"func": 3,
				"args": [{"type": "GetLocal", "var": 0}]
			}]
		}]
	}`

	mod, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	call, ok := mod.Functions[0].Code[0].(*wasmir.Call)
	require.True(t, ok)
	require.Equal(t, 3, call.Func)
	require.True(t, call.Results.Empty())
	require.Equal(t, []wasmir.Expr{&wasmir.GetLocal{Var: 0}}, call.Args)
}

func TestDecodeCallWithResults(t *testing.T) {
	src := `{
		"functions": [{
			"code": [{
				"type": "Call",
				"func": 1,
				"results": {"start": 0, "end": 2},
				"args": []
			}]
		}]
	}`

	mod, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	call, ok := mod.Functions[0].Code[0].(*wasmir.Call)
	require.True(t, ok)
	require.Equal(t, wasmir.RegRange{Start: 0, End: 2}, call.Results)
}

func TestDecodeCallIndirectWithoutResults(t *testing.T) {
	src := `{
		"functions": [{
			"code": [{
				"type": "CallIndirect",
				"table": 0,
				"index": {"type": "GetLocal", "var": 0},
				"args": []
			}]
		}]
	}`

	mod, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	call, ok := mod.Functions[0].Code[0].(*wasmir.CallIndirect)
	require.True(t, ok)
	require.Equal(t, 0, call.Table)
	require.True(t, call.Results.Empty())
	require.Equal(t, &wasmir.GetLocal{Var: 0}, call.Index)
}

func TestDecodeBackwardLoopWithBrIf(t *testing.T) {
	src := `{
		"functions": [{
			"num_params": 1,
			"code": [{
				"type": "Backward",
				"body": [{
					"type": "BrIf",
					"target": 0,
					"cond": {"type": "GetLocal", "var": 0}
				}]
			}]
		}]
	}`

	mod, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	loop, ok := mod.Functions[0].Code[0].(*wasmir.Backward)
	require.True(t, ok)
	require.Len(t, loop.Body, 1)
	brIf, ok := loop.Body[0].(*wasmir.BrIf)
	require.True(t, ok)
	require.Equal(t, 0, brIf.Target)
}
