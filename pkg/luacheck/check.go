// Package luacheck sanity-checks generated Luau source using an embedded
// Lua state, the same way pkg/meta uses gopher-lua to evaluate compile-time
// Lua snippets rather than shelling out to a real Luau binary.
package luacheck

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Syntax reports whether src parses as valid Lua. gopher-lua implements
// Lua 5.1 syntax, a strict subset of Luau's; code this package accepts is
// guaranteed valid Luau, though the converse does not hold (Luau-only
// syntax such as compound assignment operators would be rejected here).
// The generator emits Luau's `continue` for a branch to the top of a loop,
// so generated output containing such a branch fails this check.
func Syntax(src string) error {
	L := lua.NewState()
	defer L.Close()

	_, err := L.LoadString(src)
	if err != nil {
		return fmt.Errorf("luacheck: syntax error: %w", err)
	}
	return nil
}

// Run loads src under a fresh Lua state seeded with stub, executes it, and
// returns the resulting LValue. Generated modules open with
// `local rt = require(script.Runtime)`, a Roblox-specific idiom where
// `script` is an engine-provided Instance and `require` resolves it by
// reference rather than by string path. Neither exists in plain Lua, so
// Run stands in for both: `script.Runtime` is bound directly to stub, and
// `require` becomes the identity function, making `require(script.Runtime)`
// evaluate to exactly stub. A nil stub binds script.Runtime to a fresh
// empty table. A caller verifying only that code parses can call Syntax
// instead, which never executes anything.
func Run(src string, stub *lua.LTable) (lua.LValue, error) {
	L := lua.NewState()
	defer L.Close()

	scriptTbl := L.NewTable()
	if stub == nil {
		stub = L.NewTable()
	}
	L.SetField(scriptTbl, "Runtime", stub)
	L.SetGlobal("script", scriptTbl)
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		L.SetTop(1)
		return 1
	}))

	fn, err := L.LoadString(src)
	if err != nil {
		return nil, fmt.Errorf("luacheck: syntax error: %w", err)
	}

	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("luacheck: runtime error: %w", err)
	}

	v := L.Get(-1)
	L.Pop(1)
	return v, nil
}
