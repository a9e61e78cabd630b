package recognizers

import "testing"

func TestDispatchVariable(t *testing.T) {
	kind, info, ok := Dispatch("integer, intent(in) :: a, b")
	if !ok || kind != "var" {
		t.Fatalf("expected var, got kind=%q ok=%v", kind, ok)
	}
	v := info.(VarInfo)
	if v.TypeWord != "INTEGER" {
		t.Errorf("unexpected type word: %q", v.TypeWord)
	}
	if len(v.Keywords) != 1 || v.Keywords[0] != "intent(in)" {
		t.Errorf("unexpected keywords: %v", v.Keywords)
	}
	if len(v.Declarators) != 2 || v.Declarators[0].Name != "a" || v.Declarators[1].Name != "b" {
		t.Errorf("unexpected declarators: %+v", v.Declarators)
	}
}

func TestDispatchVariableWithDimsAndInit(t *testing.T) {
	kind, info, ok := Dispatch("real :: x(3) = 0.0")
	if !ok || kind != "var" {
		t.Fatalf("expected var, got %q", kind)
	}
	v := info.(VarInfo)
	d := v.Declarators[0]
	if d.Name != "x" || d.Dims != "3" || d.Init != "0.0" || d.InitIsAlias {
		t.Errorf("unexpected declarator: %+v", d)
	}
}

func TestDispatchSubroutine(t *testing.T) {
	kind, info, ok := Dispatch("pure recursive subroutine foo(a, b)")
	if !ok || kind != "sub" {
		t.Fatalf("expected sub, got %q", kind)
	}
	s := info.(SubInfo)
	if s.Name != "foo" || len(s.Args) != 2 || len(s.Modifiers) != 2 {
		t.Errorf("unexpected sub info: %+v", s)
	}
}

func TestDispatchFunction(t *testing.T) {
	kind, info, ok := Dispatch("function bar(x) result(y)")
	if !ok || kind != "fun" {
		t.Fatalf("expected fun, got %q", kind)
	}
	f := info.(FunInfo)
	if f.Name != "bar" || f.ResultName != "y" || len(f.Args) != 1 {
		t.Errorf("unexpected fun info: %+v", f)
	}
}

func TestDispatchVariableFunctionDelegation(t *testing.T) {
	kind, info, ok := Dispatch("integer function baz(n)")
	if !ok || kind != "var" {
		t.Fatalf("expected var (delegating to function), got %q", kind)
	}
	v := info.(VarInfo)
	if !v.FunctionPrefix || v.Fun == nil || v.Fun.Name != "baz" {
		t.Errorf("expected delegated function info, got %+v", v)
	}
}

func TestDispatchBlockVariants(t *testing.T) {
	cases := map[string]string{
		"block":             "block",
		"outer: block":      "block",
		"do":                "do",
		"where(x > 0)":      "where",
		"if (x > 0) then":   "if",
	}
	for line, wantKeyword := range cases {
		kind, info, ok := Dispatch(line)
		if !ok || kind != "block" {
			t.Fatalf("%q: expected block, got kind=%q ok=%v", line, kind, ok)
		}
		b := info.(BlockInfo)
		if b.Keyword != wantKeyword {
			t.Errorf("%q: expected keyword %q, got %q", line, wantKeyword, b.Keyword)
		}
	}
}

func TestDispatchAssociate(t *testing.T) {
	kind, info, ok := Dispatch("associate(a => x, b => y)")
	if !ok || kind != "assoc" {
		t.Fatalf("expected assoc, got %q", kind)
	}
	a := info.(AssociateInfo)
	if len(a.Bindings) != 2 || a.Bindings[0].Name != "a" || a.Bindings[0].Expr != "x" {
		t.Errorf("unexpected bindings: %+v", a.Bindings)
	}
}

func TestDispatchSelectType(t *testing.T) {
	kind, info, ok := Dispatch("select type (p => poly)")
	if !ok || kind != "select" {
		t.Fatalf("expected select, got %q", kind)
	}
	s := info.(SelectInfo)
	if s.Kind != "type" || s.AssocName != "p" || s.Expr != "poly" {
		t.Errorf("unexpected select info: %+v", s)
	}
}

func TestDispatchDerivedTypeExtends(t *testing.T) {
	kind, info, ok := Dispatch("type, extends(base) :: child")
	if !ok || kind != "typ" {
		t.Fatalf("expected typ, got %q", kind)
	}
	ty := info.(TypeInfo)
	if ty.Name != "child" || ty.Extends != "base" {
		t.Errorf("unexpected type info: %+v", ty)
	}
}

func TestDispatchUseOnly(t *testing.T) {
	kind, info, ok := Dispatch("use mymod, only: a, b => bee")
	if !ok || kind != "use" {
		t.Fatalf("expected use, got %q", kind)
	}
	u := info.(UseInfo)
	if u.ModuleName != "mymod" || len(u.Only) != 2 || u.Rename["b"] != "bee" {
		t.Errorf("unexpected use info: %+v", u)
	}
}

func TestDispatchGeneric(t *testing.T) {
	kind, info, ok := Dispatch("generic, public :: add => add_int, add_real")
	if !ok || kind != "gen" {
		t.Fatalf("expected gen, got %q", kind)
	}
	g := info.(GenericInfo)
	if g.Name != "add" || !g.Public || len(g.Procedures) != 2 {
		t.Errorf("unexpected generic info: %+v", g)
	}
}

func TestDispatchModuleProcedureBeforeModule(t *testing.T) {
	kind, info, ok := Dispatch("module procedure foo, bar")
	if !ok || kind != "int_pro" {
		t.Fatalf("expected int_pro, got %q", kind)
	}
	mp := info.(ModuleProcedureInfo)
	if len(mp.Names) != 2 {
		t.Errorf("unexpected module procedure names: %v", mp.Names)
	}
}

func TestDispatchModule(t *testing.T) {
	kind, info, ok := Dispatch("module mymod")
	if !ok || kind != "mod" {
		t.Fatalf("expected mod, got %q", kind)
	}
	if info.(ModuleInfo).Name != "mymod" {
		t.Errorf("unexpected module name: %+v", info)
	}
}

func TestDispatchSubmodule(t *testing.T) {
	kind, info, ok := Dispatch("submodule (parent:child) impl")
	if !ok || kind != "smod" {
		t.Fatalf("expected smod, got %q", kind)
	}
	s := info.(SubmoduleInfo)
	if s.Parent != "child" || s.Name != "impl" {
		t.Errorf("unexpected submodule info: %+v", s)
	}
}

func TestDispatchInclude(t *testing.T) {
	kind, info, ok := Dispatch(`include "common.inc"`)
	if !ok || kind != "inc" {
		t.Fatalf("expected inc, got %q", kind)
	}
	if info.(IncludeInfo).Path != "common.inc" {
		t.Errorf("unexpected include path: %+v", info)
	}
}

func TestDispatchVisibility(t *testing.T) {
	kind, info, ok := Dispatch("private :: secret, hidden")
	if !ok || kind != "vis" {
		t.Fatalf("expected vis, got %q", kind)
	}
	v := info.(VisibilityInfo)
	if v.Public || len(v.Names) != 2 {
		t.Errorf("unexpected visibility info: %+v", v)
	}
}

func TestDispatchNoMatch(t *testing.T) {
	_, _, ok := Dispatch("x = x + 1")
	if ok {
		t.Errorf("expected an assignment statement to recognize as nothing")
	}
}
