package luau

import (
	"fmt"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// labelKind identifies what branching out of an enclosing structured
// construct means: Forward/If exit on br, Backward re-enters on br.
type labelKind int

const (
	labelForward labelKind = iota
	labelBackward
	labelIf
)

// pushLabel records entry into a structured construct and returns its
// stable stack index, used later by writeBrAt to compute branch depth and
// by writeBrGadget to recognize when a pending branch targets this label.
func (g *funcGen) pushLabel(kind labelKind) int {
	g.labels = append(g.labels, kind)
	return len(g.labels) - 1
}

func (g *funcGen) popLabel() {
	g.labels = g.labels[:len(g.labels)-1]
}

// writeBrGadget emits the dispatcher that runs immediately after a
// structured construct's own while-loop closes: if a pending branch (held
// in `desired`, a Lua global that no emitted code declares local) was aimed
// at this construct (index rem), clear it and either continue the enclosing
// loop or break out of it; any other pending branch also breaks out, which
// propagates it one level further. Whether a match continues or breaks
// depends on the kind of whatever construct now encloses this one —
// not on the kind of the construct that just closed — since "continue"
// must target the loop the gadget code is lexically inside of.
func (g *funcGen) writeBrGadget(rem int) {
	if len(g.labels) == 0 {
		return
	}
	switch g.labels[len(g.labels)-1] {
	case labelForward, labelIf:
		g.writeBrTarget(rem, false)
	case labelBackward:
		g.writeBrTarget(rem, true)
	}
}

func (g *funcGen) writeBrTarget(level int, inLoop bool) {
	g.s.str(fmt.Sprintf("if desired then if desired == %d then desired = nil ", level))
	if inLoop {
		g.s.str("continue ")
	}
	g.s.str("end break end ")
}

// writeBrAt emits the branch for a depth-`up` Br/BrIf. The fast path (up
// ==0) inspects the CURRENT (not yet popped) innermost label: branching to
// the construct you're directly inside means continue if it's a loop,
// otherwise a plain break out of it. Deeper branches defer to the desired
// dispatch chain, which cascades outward through each enclosing
// writeBrGadget call.
func (g *funcGen) writeBrAt(up int) {
	g.s.str("do ")
	if up == 0 {
		if len(g.labels) > 0 && g.labels[len(g.labels)-1] == labelBackward {
			g.s.str("continue ")
		} else {
			g.s.str("break ")
		}
	} else {
		level := len(g.labels) - 1 - up
		g.s.str(fmt.Sprintf("desired = %d ", level))
		g.s.str("break ")
	}
	g.s.str("end ")
}

func (g *funcGen) writeStmtList(list []wasmir.Stmt) {
	for _, s := range list {
		g.writeStmt(s)
	}
}

func (g *funcGen) writeStmt(s wasmir.Stmt) {
	switch n := s.(type) {
	case *wasmir.Unreachable:
		g.s.str(`error("out of code bounds")`)

	case *wasmir.Memorize:
		g.s.str(fmt.Sprintf("reg_%d = ", n.Var))
		g.writeExpr(n.Value)
		g.s.str(" ")

	case *wasmir.Forward:
		rem := g.pushLabel(labelForward)
		g.s.str("while true do ")
		g.writeStmtList(n.Body)
		g.s.str("break end ")
		g.popLabel()
		g.writeBrGadget(rem)

	case *wasmir.Backward:
		rem := g.pushLabel(labelBackward)
		g.s.str("while true do ")
		g.writeStmtList(n.Body)
		g.s.str("break end ")
		g.popLabel()
		g.writeBrGadget(rem)

	case *wasmir.If:
		rem := g.pushLabel(labelIf)
		g.s.str("while true do if ")
		g.writeExpr(n.Cond)
		g.s.str("~= 0 then ")
		g.writeStmtList(n.Truthy)
		if len(n.Falsey) != 0 {
			g.s.str("else ")
			g.writeStmtList(n.Falsey)
		}
		g.s.str("end break end ")
		g.popLabel()
		g.writeBrGadget(rem)

	case *wasmir.Br:
		g.writeBrAt(n.Target)

	case *wasmir.BrIf:
		g.s.str("if ")
		g.writeExpr(n.Cond)
		g.s.str("~= 0 then ")
		g.writeBrAt(n.Target)
		g.s.str("end ")

	case *wasmir.BrTable:
		g.s.str("do local temp = {")
		if len(n.Data.Targets) != 0 {
			g.s.str("[0] = ")
			for _, t := range n.Data.Targets {
				g.s.str(fmt.Sprintf("%d, ", t))
			}
		}
		g.s.str("} desired = temp[")
		g.writeExpr(n.Cond)
		g.s.str(fmt.Sprintf("] or %d break end ", n.Data.Default))

	case *wasmir.Return:
		g.s.str("do return ")
		g.writeExprList(n.List)
		g.s.str(" end ")

	case *wasmir.Call:
		g.writeResultList(n.Results)
		g.s.str(fmt.Sprintf("FUNC_LIST[%d](", n.Func))
		g.writeExprList(n.Args)
		g.s.str(")")

	case *wasmir.CallIndirect:
		g.writeResultList(n.Results)
		g.s.str(fmt.Sprintf("TABLE_LIST[%d].data[", n.Table))
		g.writeExpr(n.Index)
		g.s.str("](")
		g.writeExprList(n.Args)
		g.s.str(")")

	case *wasmir.SetLocal:
		g.s.str(g.localName(n.Var))
		g.s.str(" = ")
		g.writeExpr(n.Value)
		g.s.str(" ")

	case *wasmir.SetGlobal:
		g.s.str(fmt.Sprintf("GLOBAL_LIST[%d].value = ", n.Var))
		g.writeExpr(n.Value)
		g.s.str(" ")

	case *wasmir.AnyStore:
		g.s.str(fmt.Sprintf("%s(memory_at_0, ", n.Op.HelperName()))
		g.writeExpr(n.Pointer)
		g.s.str(fmt.Sprintf(" + %d, ", n.Offset))
		g.writeExpr(n.Value)
		g.s.str(")")

	default:
		panic(fmt.Sprintf("luau: unhandled statement node %T", n))
	}
}

// writeResultList emits the `reg_a, reg_b = ` assignment target for a call
// with one or more results; it writes nothing when the range is empty.
func (g *funcGen) writeResultList(r wasmir.RegRange) {
	if r.Empty() {
		return
	}
	for i := r.Start; i < r.End; i++ {
		if i != r.Start {
			g.s.str(", ")
		}
		g.s.str(fmt.Sprintf("reg_%d", i))
	}
	g.s.str(" = ")
}
