package luau

import "github.com/minz/wasm2luau/pkg/wasmir"

// collectHelpers walks every statement and expression reachable from code,
// recording each Operator's (category, name) into set. This mirrors the
// reference generator's localize analyzer: it never writes to the sink,
// and must run to completion before any function body is emitted, since
// the localizer's `local cat_name = rt.cat.name` lines precede every
// function in the emitted output.
func collectHelpers(code []wasmir.Stmt, set *orderedHelperSet) {
	for _, s := range code {
		collectHelpersStmt(s, set)
	}
}

func collectHelpersStmt(s wasmir.Stmt, set *orderedHelperSet) {
	switch n := s.(type) {
	case *wasmir.Unreachable:
		// nothing to record

	case *wasmir.Memorize:
		collectHelpersExpr(n.Value, set)

	case *wasmir.Forward:
		collectHelpers(n.Body, set)

	case *wasmir.Backward:
		collectHelpers(n.Body, set)

	case *wasmir.If:
		collectHelpersExpr(n.Cond, set)
		collectHelpers(n.Truthy, set)
		collectHelpers(n.Falsey, set)

	case *wasmir.Br:
		// nothing to record

	case *wasmir.BrIf:
		collectHelpersExpr(n.Cond, set)

	case *wasmir.BrTable:
		collectHelpersExpr(n.Cond, set)

	case *wasmir.Return:
		for _, e := range n.List {
			collectHelpersExpr(e, set)
		}

	case *wasmir.Call:
		for _, e := range n.Args {
			collectHelpersExpr(e, set)
		}

	case *wasmir.CallIndirect:
		collectHelpersExpr(n.Index, set)
		for _, e := range n.Args {
			collectHelpersExpr(e, set)
		}

	case *wasmir.SetLocal:
		collectHelpersExpr(n.Value, set)

	case *wasmir.SetGlobal:
		collectHelpersExpr(n.Value, set)

	case *wasmir.AnyStore:
		set.add(n.Op.Category, n.Op.Name)
		collectHelpersExpr(n.Pointer, set)
		collectHelpersExpr(n.Value, set)

	default:
		panic("luau: unhandled statement node in helper collector")
	}
}

func collectHelpersExpr(e wasmir.Expr, set *orderedHelperSet) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *wasmir.Recall, *wasmir.GetLocal, *wasmir.GetGlobal, *wasmir.Value, *wasmir.MemorySize:
		// leaves, nothing to record

	case *wasmir.Select:
		collectHelpersExpr(n.Cond, set)
		collectHelpersExpr(n.A, set)
		collectHelpersExpr(n.B, set)

	case *wasmir.AnyLoad:
		set.add(n.Op.Category, n.Op.Name)
		collectHelpersExpr(n.Pointer, set)

	case *wasmir.MemoryGrow:
		collectHelpersExpr(n.Value, set)

	case *wasmir.AnyUnOp:
		set.add(n.Op.Category, n.Op.Name)
		collectHelpersExpr(n.Rhs, set)

	case *wasmir.AnyBinOp:
		if !n.Op.HasNative() {
			set.add(n.Op.Category, n.Op.Name)
		}
		collectHelpersExpr(n.Lhs, set)
		collectHelpersExpr(n.Rhs, set)

	case *wasmir.AnyCmpOp:
		set.add(n.Op.Category, n.Op.Name)
		collectHelpersExpr(n.Lhs, set)
		collectHelpersExpr(n.Rhs, set)

	default:
		panic("luau: unhandled expression node in helper collector")
	}
}
