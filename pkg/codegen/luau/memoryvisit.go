package luau

import "github.com/minz/wasm2luau/pkg/wasmir"

// collectMemories walks every statement and expression reachable from code,
// recording every memory index referenced by a load, store, memory.size or
// memory.grow. The function emitter uses the result to bind only the
// `local memory_at_N = MEMORY_LIST[N]` aliases a function actually needs,
// mirroring the reference generator's memory analyzer.
func collectMemories(code []wasmir.Stmt, set *orderedIntSet) {
	for _, s := range code {
		collectMemoriesStmt(s, set)
	}
}

func collectMemoriesStmt(s wasmir.Stmt, set *orderedIntSet) {
	switch n := s.(type) {
	case *wasmir.Memorize:
		collectMemoriesExpr(n.Value, set)

	case *wasmir.Forward:
		collectMemories(n.Body, set)

	case *wasmir.Backward:
		collectMemories(n.Body, set)

	case *wasmir.If:
		collectMemoriesExpr(n.Cond, set)
		collectMemories(n.Truthy, set)
		collectMemories(n.Falsey, set)

	case *wasmir.BrIf:
		collectMemoriesExpr(n.Cond, set)

	case *wasmir.BrTable:
		collectMemoriesExpr(n.Cond, set)

	case *wasmir.Return:
		for _, e := range n.List {
			collectMemoriesExpr(e, set)
		}

	case *wasmir.Call:
		for _, e := range n.Args {
			collectMemoriesExpr(e, set)
		}

	case *wasmir.CallIndirect:
		collectMemoriesExpr(n.Index, set)
		for _, e := range n.Args {
			collectMemoriesExpr(e, set)
		}

	case *wasmir.SetLocal:
		collectMemoriesExpr(n.Value, set)

	case *wasmir.SetGlobal:
		collectMemoriesExpr(n.Value, set)

	case *wasmir.AnyStore:
		set.add(0)
		collectMemoriesExpr(n.Pointer, set)
		collectMemoriesExpr(n.Value, set)
	}
}

func collectMemoriesExpr(e wasmir.Expr, set *orderedIntSet) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *wasmir.Select:
		collectMemoriesExpr(n.Cond, set)
		collectMemoriesExpr(n.A, set)
		collectMemoriesExpr(n.B, set)

	case *wasmir.AnyLoad:
		set.add(0)
		collectMemoriesExpr(n.Pointer, set)

	case *wasmir.MemorySize:
		set.add(n.Memory)

	case *wasmir.MemoryGrow:
		set.add(n.Memory)
		collectMemoriesExpr(n.Value, set)

	case *wasmir.AnyUnOp:
		collectMemoriesExpr(n.Rhs, set)

	case *wasmir.AnyBinOp:
		collectMemoriesExpr(n.Lhs, set)
		collectMemoriesExpr(n.Rhs, set)

	case *wasmir.AnyCmpOp:
		collectMemoriesExpr(n.Lhs, set)
		collectMemoriesExpr(n.Rhs, set)
	}
}
