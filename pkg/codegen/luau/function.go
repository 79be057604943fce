package luau

import (
	"fmt"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// funcGen emits a single function body. It holds the mutable state the
// reference generator's Visitor carries (the label stack and the param
// count needed to split a local index into loc_N/param_N), plus a back
// reference to the owning Transpiler, which no emitter method reads.
type funcGen struct {
	s         *sink
	gen       *Transpiler
	labels    []labelKind
	numParams int
}

// localName resolves a local variable index to its Luau identifier: wasm
// numbers parameters and locals in one contiguous space, but the emitted
// code splits them into separate param_N/loc_N namespaces.
func (g *funcGen) localName(v int) string {
	if v < g.numParams {
		return fmt.Sprintf("param_%d", v)
	}
	return fmt.Sprintf("loc_%d", v-g.numParams)
}

// writeInOrder emits "prefix_0, prefix_1, ..., prefix_{n-1}", or nothing
// when n is 0.
func writeInOrder(s *sink, prefix string, n int) {
	if n == 0 {
		return
	}
	s.str(fmt.Sprintf("%s_%d", prefix, 0))
	for i := 1; i < n; i++ {
		s.str(fmt.Sprintf(", %s_%d", prefix, i))
	}
}

func (g *funcGen) writeParameterList(fn *wasmir.Function) {
	g.s.str("function(")
	writeInOrder(g.s, "param", fn.NumParams)
	g.s.str(")")
}

// writeMemoryAliases binds a local `memory_at_N` alias for every memory
// index this function's body actually touches, per the analysis in
// memoryvisit.go.
func (g *funcGen) writeMemoryAliases(fn *wasmir.Function) {
	set := newOrderedIntSet()
	collectMemories(fn.Code, set)
	for _, idx := range set.sorted() {
		g.s.str(fmt.Sprintf("local memory_at_%d = MEMORY_LIST[%d]", idx, idx))
	}
}

func (g *funcGen) writeVariableList(fn *wasmir.Function) {
	for _, group := range fn.Locals {
		g.s.str("local ")
		writeInOrder(g.s, "loc", group.Count)
		g.s.str(" = ")
		for i := 0; i < group.Count; i++ {
			if i != 0 {
				g.s.str(", ")
			}
			g.s.str(fmt.Sprintf("ZERO_%s ", group.Type))
		}
	}

	if fn.NumStack != 0 {
		g.s.str("local ")
		writeInOrder(g.s, "reg", fn.NumStack)
		g.s.str(" ")
	}
}

// writeFunction emits one FUNC_LIST[i] assignment's right-hand side: a
// Luau closure implementing fn's body.
func (g *funcGen) writeFunction(fn *wasmir.Function) {
	g.numParams = fn.NumParams
	g.labels = nil

	g.writeParameterList(fn)
	g.writeMemoryAliases(fn)
	g.writeVariableList(fn)
	g.writeStmtList(fn.Code)
	g.s.str("end ")
}
