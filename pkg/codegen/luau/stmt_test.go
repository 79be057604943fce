package luau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// Scenario 4: Forward containing Backward containing `br 1` — the inner
// loop's own br-gadget propagates the dispatcher by breaking out of the
// outer Forward. The outer Forward is outermost, so it emits no gadget of
// its own.
func TestTwoLevelBranchPropagatesThroughGadget(t *testing.T) {
	code := []wasmir.Stmt{
		&wasmir.Forward{Body: []wasmir.Stmt{
			&wasmir.Backward{Body: []wasmir.Stmt{
				&wasmir.Br{Target: 1},
			}},
		}},
	}

	var buf strings.Builder
	g := &funcGen{s: newSink(&buf)}
	g.writeStmtList(code)
	out := buf.String()

	require.Contains(t, out, "desired = 0 break")
	require.Contains(t, out, "if desired then if desired == 1 then desired = nil end break end")
	require.Empty(t, g.labels, "label stack must be fully unwound")
}

func TestBrAtDepthZeroInsideForwardBreaks(t *testing.T) {
	var buf strings.Builder
	g := &funcGen{s: newSink(&buf)}
	g.writeStmtList([]wasmir.Stmt{
		&wasmir.Forward{Body: []wasmir.Stmt{&wasmir.Br{Target: 0}}},
	})
	require.Contains(t, buf.String(), "do break end")
}

func TestBrAtDepthZeroInsideBackwardContinues(t *testing.T) {
	var buf strings.Builder
	g := &funcGen{s: newSink(&buf)}
	g.writeStmtList([]wasmir.Stmt{
		&wasmir.Backward{Body: []wasmir.Stmt{&wasmir.Br{Target: 0}}},
	})
	require.Contains(t, buf.String(), "do continue end")
}

func TestCallEmitsResultAssignmentAndArgs(t *testing.T) {
	var buf strings.Builder
	g := &funcGen{s: newSink(&buf)}
	g.writeStmt(&wasmir.Call{
		Func:    3,
		Results: wasmir.RegRange{Start: 0, End: 2},
		Args:    []wasmir.Expr{&wasmir.Value{Type: wasmir.I32, I32: 1}},
	})
	out := buf.String()
	require.Contains(t, out, "reg_0, reg_1 = ")
	require.Contains(t, out, "FUNC_LIST[3](1)")
}

func TestCallIndirectUsesTableData(t *testing.T) {
	var buf strings.Builder
	g := &funcGen{s: newSink(&buf)}
	g.writeStmt(&wasmir.CallIndirect{
		Table: 0,
		Index: &wasmir.Value{Type: wasmir.I32, I32: 4},
	})
	require.Contains(t, buf.String(), "TABLE_LIST[0].data[4]()")
}
