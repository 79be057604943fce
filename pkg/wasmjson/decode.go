// Package wasmjson decodes the JSON serialization of a wasmir.Module used
// by the wasm2luau CLI as a standalone, runnable stand-in for the real
// wasm decoder/AST builder (out of scope per the generator's own
// contract). It exists only so the CLI has *some* concrete input format;
// production use is expected to call pkg/codegen/luau directly from a
// real decoder's output, bypassing this package entirely.
package wasmjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

// Decode reads a JSON-encoded module from r and builds a *wasmir.Module.
func Decode(r io.Reader) (*wasmir.Module, error) {
	var raw rawModule
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("wasmjson: decode module: %w", err)
	}
	return raw.build()
}

type rawOperator struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Native   string `json:"native"`
}

func (o rawOperator) build() wasmir.Operator {
	return wasmir.Operator{Category: o.Category, Name: o.Name, Native: o.Native}
}

type rawLimits struct {
	Min uint32  `json:"min"`
	Max *uint32 `json:"max"`
}

func (l rawLimits) build() wasmir.Limits {
	return wasmir.Limits{Min: l.Min, Max: l.Max}
}

type rawLocalGroup struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func valType(s string) (wasmir.ValType, error) {
	switch s {
	case "i32":
		return wasmir.I32, nil
	case "i64":
		return wasmir.I64, nil
	case "f32":
		return wasmir.F32, nil
	case "f64":
		return wasmir.F64, nil
	default:
		return 0, fmt.Errorf("unknown value type %q", s)
	}
}

func externalKind(s string) (wasmir.ExternalKind, error) {
	switch s {
	case "func":
		return wasmir.KindFunc, nil
	case "table":
		return wasmir.KindTable, nil
	case "memory":
		return wasmir.KindMemory, nil
	case "global":
		return wasmir.KindGlobal, nil
	default:
		return 0, fmt.Errorf("unknown external kind %q", s)
	}
}

type rawImport struct {
	Module string `json:"module"`
	Field  string `json:"field"`
	Kind   string `json:"kind"`
}

type rawExport struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

type rawConstInstr struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
	Bits  uint64 `json:"bits"`
	Index int    `json:"index"`
}

func (c rawConstInstr) build() (wasmir.ConstInstr, error) {
	switch c.Type {
	case "I32Const":
		return wasmir.ConstI32{Value: int32(c.Value)}, nil
	case "I64Const":
		return wasmir.ConstI64{Value: c.Value}, nil
	case "F32Const":
		return wasmir.ConstF32{Bits: uint32(c.Bits)}, nil
	case "F64Const":
		return wasmir.ConstF64{Bits: c.Bits}, nil
	case "GetGlobal":
		return wasmir.ConstGetGlobal{Index: c.Index}, nil
	default:
		return nil, fmt.Errorf("unknown const instruction %q", c.Type)
	}
}

func buildConstExprList(raw []rawConstInstr) ([]wasmir.ConstInstr, error) {
	out := make([]wasmir.ConstInstr, 0, len(raw))
	for _, c := range raw {
		v, err := c.build()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type rawGlobal struct {
	Type    string          `json:"type"`
	Mutable bool            `json:"mutable"`
	Init    []rawConstInstr `json:"init"`
}

type rawElement struct {
	TableIndex int             `json:"table_index"`
	Offset     []rawConstInstr `json:"offset"`
	Funcs      []int           `json:"funcs"`
}

type rawData struct {
	MemoryIndex int             `json:"memory_index"`
	Offset      []rawConstInstr `json:"offset"`
	Bytes       []byte          `json:"bytes"`
}

// rawExpr is the tagged-union wire shape for every Expr variant; fields
// unused by a given Type are left zero.
type rawExpr struct {
	Type    string       `json:"type"`
	Var     int          `json:"var,omitempty"`
	Cond    *rawExpr     `json:"cond,omitempty"`
	A       *rawExpr     `json:"a,omitempty"`
	B       *rawExpr     `json:"b,omitempty"`
	Op      *rawOperator `json:"op,omitempty"`
	Pointer *rawExpr     `json:"pointer,omitempty"`
	Offset  uint32       `json:"offset,omitempty"`
	Memory  int          `json:"memory,omitempty"`
	Value   *rawExpr     `json:"value,omitempty"`
	ValType string       `json:"val_type,omitempty"`
	I32     int32        `json:"i32,omitempty"`
	I64     int64        `json:"i64,omitempty"`
	F32Bits uint32       `json:"f32_bits,omitempty"`
	F64Bits uint64       `json:"f64_bits,omitempty"`
	Rhs     *rawExpr     `json:"rhs,omitempty"`
	Lhs     *rawExpr     `json:"lhs,omitempty"`
}

func (e *rawExpr) build() (wasmir.Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Type {
	case "Recall":
		return &wasmir.Recall{Var: e.Var}, nil
	case "Select":
		cond, err := e.Cond.build()
		if err != nil {
			return nil, err
		}
		a, err := e.A.build()
		if err != nil {
			return nil, err
		}
		b, err := e.B.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.Select{Cond: cond, A: a, B: b}, nil
	case "GetLocal":
		return &wasmir.GetLocal{Var: e.Var}, nil
	case "GetGlobal":
		return &wasmir.GetGlobal{Var: e.Var}, nil
	case "AnyLoad":
		ptr, err := e.Pointer.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.AnyLoad{Op: e.Op.build(), Pointer: ptr, Offset: e.Offset}, nil
	case "MemorySize":
		return &wasmir.MemorySize{Memory: e.Memory}, nil
	case "MemoryGrow":
		v, err := e.Value.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.MemoryGrow{Memory: e.Memory, Value: v}, nil
	case "Value":
		t, err := valType(e.ValType)
		if err != nil {
			return nil, err
		}
		return &wasmir.Value{Type: t, I32: e.I32, I64: e.I64, F32Bits: e.F32Bits, F64Bits: e.F64Bits}, nil
	case "AnyUnOp":
		rhs, err := e.Rhs.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.AnyUnOp{Op: e.Op.build(), Rhs: rhs}, nil
	case "AnyBinOp":
		lhs, err := e.Lhs.build()
		if err != nil {
			return nil, err
		}
		rhs, err := e.Rhs.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.AnyBinOp{Op: e.Op.build(), Lhs: lhs, Rhs: rhs}, nil
	case "AnyCmpOp":
		lhs, err := e.Lhs.build()
		if err != nil {
			return nil, err
		}
		rhs, err := e.Rhs.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.AnyCmpOp{Op: e.Op.build(), Lhs: lhs, Rhs: rhs}, nil
	default:
		return nil, fmt.Errorf("unknown expression type %q", e.Type)
	}
}

func buildExprList(raw []*rawExpr) ([]wasmir.Expr, error) {
	out := make([]wasmir.Expr, 0, len(raw))
	for _, e := range raw {
		v, err := e.build()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type rawRegRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r rawRegRange) build() wasmir.RegRange {
	return wasmir.RegRange{Start: r.Start, End: r.End}
}

// buildRegRange builds the result range for a Call/CallIndirect, treating
// an absent "results" key (r == nil) as the empty range a void call
// encodes.
func buildRegRange(r *rawRegRange) wasmir.RegRange {
	if r == nil {
		return wasmir.RegRange{}
	}
	return r.build()
}

// rawStmt is the tagged-union wire shape for every Stmt variant.
type rawStmt struct {
	Type    string       `json:"type"`
	Var     int          `json:"var,omitempty"`
	Value   *rawExpr     `json:"value,omitempty"`
	Body    []*rawStmt   `json:"body,omitempty"`
	Cond    *rawExpr     `json:"cond,omitempty"`
	Truthy  []*rawStmt   `json:"truthy,omitempty"`
	Falsey  []*rawStmt   `json:"falsey,omitempty"`
	Target  int          `json:"target,omitempty"`
	Targets []int        `json:"targets,omitempty"`
	Default int          `json:"default,omitempty"`
	List    []*rawExpr   `json:"list,omitempty"`
	Func    int          `json:"func,omitempty"`
	Table   int          `json:"table,omitempty"`
	Index   *rawExpr     `json:"index,omitempty"`
	Results *rawRegRange `json:"results,omitempty"`
	Args    []*rawExpr   `json:"args,omitempty"`
	Op      *rawOperator `json:"op,omitempty"`
	Pointer *rawExpr     `json:"pointer,omitempty"`
	Offset  uint32       `json:"offset,omitempty"`
}

func (s *rawStmt) build() (wasmir.Stmt, error) {
	switch s.Type {
	case "Unreachable":
		return &wasmir.Unreachable{}, nil
	case "Memorize":
		v, err := s.Value.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.Memorize{Var: s.Var, Value: v}, nil
	case "Forward":
		body, err := buildStmtList(s.Body)
		if err != nil {
			return nil, err
		}
		return &wasmir.Forward{Body: body}, nil
	case "Backward":
		body, err := buildStmtList(s.Body)
		if err != nil {
			return nil, err
		}
		return &wasmir.Backward{Body: body}, nil
	case "If":
		cond, err := s.Cond.build()
		if err != nil {
			return nil, err
		}
		truthy, err := buildStmtList(s.Truthy)
		if err != nil {
			return nil, err
		}
		falsey, err := buildStmtList(s.Falsey)
		if err != nil {
			return nil, err
		}
		return &wasmir.If{Cond: cond, Truthy: truthy, Falsey: falsey}, nil
	case "Br":
		return &wasmir.Br{Target: s.Target}, nil
	case "BrIf":
		cond, err := s.Cond.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.BrIf{Cond: cond, Target: s.Target}, nil
	case "BrTable":
		cond, err := s.Cond.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.BrTable{Cond: cond, Data: wasmir.BrTableData{Targets: s.Targets, Default: s.Default}}, nil
	case "Return":
		list, err := buildExprList(s.List)
		if err != nil {
			return nil, err
		}
		return &wasmir.Return{List: list}, nil
	case "Call":
		args, err := buildExprList(s.Args)
		if err != nil {
			return nil, err
		}
		return &wasmir.Call{Func: s.Func, Results: buildRegRange(s.Results), Args: args}, nil
	case "CallIndirect":
		idx, err := s.Index.build()
		if err != nil {
			return nil, err
		}
		args, err := buildExprList(s.Args)
		if err != nil {
			return nil, err
		}
		return &wasmir.CallIndirect{Table: s.Table, Index: idx, Results: buildRegRange(s.Results), Args: args}, nil
	case "SetLocal":
		v, err := s.Value.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.SetLocal{Var: s.Var, Value: v}, nil
	case "SetGlobal":
		v, err := s.Value.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.SetGlobal{Var: s.Var, Value: v}, nil
	case "AnyStore":
		ptr, err := s.Pointer.build()
		if err != nil {
			return nil, err
		}
		v, err := s.Value.build()
		if err != nil {
			return nil, err
		}
		return &wasmir.AnyStore{Op: s.Op.build(), Pointer: ptr, Offset: s.Offset, Value: v}, nil
	default:
		return nil, fmt.Errorf("unknown statement type %q", s.Type)
	}
}

func buildStmtList(raw []*rawStmt) ([]wasmir.Stmt, error) {
	out := make([]wasmir.Stmt, 0, len(raw))
	for _, s := range raw {
		v, err := s.build()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type rawFunction struct {
	NumParams int             `json:"num_params"`
	Locals    []rawLocalGroup `json:"locals"`
	NumStack  int             `json:"num_stack"`
	Code      []*rawStmt      `json:"code"`
}

func (f rawFunction) build() (*wasmir.Function, error) {
	locals := make([]wasmir.LocalGroup, 0, len(f.Locals))
	for _, l := range f.Locals {
		t, err := valType(l.Type)
		if err != nil {
			return nil, err
		}
		locals = append(locals, wasmir.LocalGroup{Type: t, Count: l.Count})
	}
	code, err := buildStmtList(f.Code)
	if err != nil {
		return nil, err
	}
	return &wasmir.Function{NumParams: f.NumParams, Locals: locals, NumStack: f.NumStack, Code: code}, nil
}

type rawModule struct {
	Imports   []rawImport         `json:"imports"`
	Functions []rawFunction       `json:"functions"`
	Tables    []rawLimits         `json:"tables"`
	Memories  []rawLimits         `json:"memories"`
	Globals   []rawGlobal         `json:"globals"`
	Exports   []rawExport         `json:"exports"`
	Elements  []rawElement        `json:"elements"`
	Data      []rawData           `json:"data"`
	Start     *int                `json:"start"`
	Names     map[string]string   `json:"names"`
}

func (m rawModule) build() (*wasmir.Module, error) {
	mod := &wasmir.Module{Start: m.Start}

	for _, i := range m.Imports {
		kind, err := externalKind(i.Kind)
		if err != nil {
			return nil, err
		}
		mod.Imports = append(mod.Imports, wasmir.Import{Module: i.Module, Field: i.Field, Kind: kind})
	}

	for _, f := range m.Functions {
		fn, err := f.build()
		if err != nil {
			return nil, err
		}
		mod.Functions = append(mod.Functions, fn)
	}

	for _, l := range m.Tables {
		mod.Tables = append(mod.Tables, l.build())
	}
	for _, l := range m.Memories {
		mod.Memories = append(mod.Memories, l.build())
	}

	for _, g := range m.Globals {
		t, err := valType(g.Type)
		if err != nil {
			return nil, err
		}
		init, err := buildConstExprList(g.Init)
		if err != nil {
			return nil, err
		}
		mod.Globals = append(mod.Globals, wasmir.Global{Type: t, Mutable: g.Mutable, Init: init})
	}

	for _, e := range m.Exports {
		kind, err := externalKind(e.Kind)
		if err != nil {
			return nil, err
		}
		mod.Exports = append(mod.Exports, wasmir.Export{Field: e.Field, Kind: kind, Index: e.Index})
	}

	for _, el := range m.Elements {
		offset, err := buildConstExprList(el.Offset)
		if err != nil {
			return nil, err
		}
		mod.Elements = append(mod.Elements, wasmir.Element{TableIndex: el.TableIndex, Offset: offset, Funcs: el.Funcs})
	}

	for _, d := range m.Data {
		offset, err := buildConstExprList(d.Offset)
		if err != nil {
			return nil, err
		}
		mod.Data = append(mod.Data, wasmir.Data{MemoryIndex: d.MemoryIndex, Offset: offset, Bytes: d.Bytes})
	}

	if len(m.Names) > 0 {
		mod.Names = make(map[int]string, len(m.Names))
		for k, v := range m.Names {
			idx, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("names: bad index key %q: %w", k, err)
			}
			mod.Names[idx] = v
		}
	}

	return mod, nil
}
