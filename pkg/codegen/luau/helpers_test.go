package luau

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

func TestCollectHelpersSkipsNativeBinOp(t *testing.T) {
	code := []wasmir.Stmt{
		&wasmir.Return{List: []wasmir.Expr{
			&wasmir.AnyBinOp{
				Op:  wasmir.Operator{Category: "i32", Name: "add", Native: "+"},
				Lhs: &wasmir.GetLocal{Var: 0},
				Rhs: &wasmir.GetLocal{Var: 1},
			},
		}},
	}

	set := newOrderedHelperSet()
	collectHelpers(code, set)
	require.Empty(t, set.sorted())
}

func TestCollectHelpersRecordsCmpAndLoadAndStore(t *testing.T) {
	code := []wasmir.Stmt{
		&wasmir.If{
			Cond: &wasmir.AnyCmpOp{
				Op:  wasmir.Operator{Category: "i32", Name: "lt_s"},
				Lhs: &wasmir.GetLocal{Var: 0},
				Rhs: &wasmir.Value{Type: wasmir.I32, I32: 0},
			},
			Truthy: []wasmir.Stmt{
				&wasmir.AnyStore{
					Op:      wasmir.Operator{Category: "i32", Name: "store"},
					Pointer: &wasmir.GetLocal{Var: 0},
					Value:   &wasmir.AnyLoad{Op: wasmir.Operator{Category: "i32", Name: "load"}, Pointer: &wasmir.GetLocal{Var: 0}},
				},
			},
		},
	}

	set := newOrderedHelperSet()
	collectHelpers(code, set)
	require.Equal(t, []helperKey{
		{"i32", "load"},
		{"i32", "lt_s"},
		{"i32", "store"},
	}, set.sorted())
}

func TestCollectMemoriesDefaultsToZero(t *testing.T) {
	code := []wasmir.Stmt{
		&wasmir.AnyStore{
			Op:      wasmir.Operator{Category: "i32", Name: "store"},
			Pointer: &wasmir.GetLocal{Var: 0},
			Value:   &wasmir.Value{Type: wasmir.I32},
		},
	}

	set := newOrderedIntSet()
	collectMemories(code, set)
	require.Equal(t, []int{0}, set.sorted())
}

func TestCollectMemoriesFromGrowAndSize(t *testing.T) {
	code := []wasmir.Stmt{
		&wasmir.Memorize{Var: 0, Value: &wasmir.MemorySize{Memory: 2}},
		&wasmir.Memorize{Var: 1, Value: &wasmir.MemoryGrow{Memory: 3, Value: &wasmir.Value{Type: wasmir.I32, I32: 1}}},
	}

	set := newOrderedIntSet()
	collectMemories(code, set)
	require.Equal(t, []int{2, 3}, set.sorted())
}
