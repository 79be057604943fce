package luau

import (
	"fmt"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// writeConstExpr scans code for the first instruction it recognizes
// (a typed const or get_global) and emits the matching Luau expression,
// ignoring everything after it. Every ConstInstr variant is one of these,
// so only an empty list has no recognized instruction. Such a list is not
// valid wasm, but rather than panic the emitted code defers the failure to
// runtime with the same sentinel error the reference runtime used for this
// case.
func writeConstExpr(s *sink, code []wasmir.ConstInstr) {
	for _, inst := range code {
		switch n := inst.(type) {
		case wasmir.ConstI32:
			s.str(formatI32(n.Value))
			return
		case wasmir.ConstI64:
			s.str(formatI64(n.Value))
			return
		case wasmir.ConstF32:
			s.str(formatF32(n.Bits))
			return
		case wasmir.ConstF64:
			s.str(formatF64(n.Bits))
			return
		case wasmir.ConstGetGlobal:
			s.str(fmt.Sprintf("GLOBAL_LIST[%d].value", n.Index))
			return
		}
	}
	s.str(`error("mundane expression")`)
}
