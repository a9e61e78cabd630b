package preprocessor

import "testing"

func TestIfdefExcludesBranch(t *testing.T) {
	lines := []string{
		"#ifdef DEBUG",
		"print *, 'debug'",
		"#else",
		"print *, 'release'",
		"#endif",
	}
	res := Run(lines, "", map[string]string{}, nil)
	if len(res.Skips) != 1 {
		t.Fatalf("expected exactly one skip range, got %v", res.Skips)
	}
	if res.Skips[0] != [2]int{1, 3} {
		t.Errorf("expected the #ifdef..#else span (lines 1-3) to be excluded, got %v", res.Skips[0])
	}
}

func TestIfdefIncludesBranchWhenDefined(t *testing.T) {
	lines := []string{
		"#ifdef DEBUG",
		"print *, 'debug'",
		"#else",
		"print *, 'release'",
		"#endif",
	}
	res := Run(lines, "", map[string]string{"DEBUG": "True"}, nil)
	if len(res.Skips) != 1 {
		t.Fatalf("expected exactly one skip range, got %v", res.Skips)
	}
	if res.Skips[0] != [2]int{3, 5} {
		t.Errorf("expected the #else..#endif span (lines 3-5) to be excluded, got %v", res.Skips[0])
	}
}

func TestDefineAndSubstitute(t *testing.T) {
	lines := []string{
		"#define SIZE 10",
		"integer :: arr(SIZE)",
	}
	res := Run(lines, "", map[string]string{}, nil)
	if res.Lines[1] != "integer :: arr(10)" {
		t.Errorf("unexpected substituted line: %q", res.Lines[1])
	}
	if len(res.DefineLines) != 1 || res.DefineLines[0] != 1 {
		t.Errorf("expected line 1 recorded as a define line, got %v", res.DefineLines)
	}
	if res.Defs["SIZE"] != "10" {
		t.Errorf("expected SIZE=10 in the resulting defs map, got %q", res.Defs["SIZE"])
	}
}

func TestDefineFlagMacro(t *testing.T) {
	lines := []string{"#define FOO"}
	res := Run(lines, "", map[string]string{}, nil)
	if res.Defs["FOO"] != "True" {
		t.Errorf("expected a flag macro to default to True, got %q", res.Defs["FOO"])
	}
}

func TestUndef(t *testing.T) {
	lines := []string{"#undef FOO", "print *, FOO"}
	res := Run(lines, "", map[string]string{"FOO": "1"}, nil)
	if _, ok := res.Defs["FOO"]; ok {
		t.Errorf("expected FOO to be undefined after #undef")
	}
	// Substitution only rewrites identifiers still present in the defs
	// map; an undefined bare word passes through untouched (the
	// "replace unknown identifiers with False" step belongs only to
	// evalPPIf's #if/#elif expression evaluation, not line substitution).
	if res.Lines[1] != "print *, FOO" {
		t.Errorf("expected an undefined identifier to pass through unchanged, got %q", res.Lines[1])
	}
}

func TestMultilineMacro(t *testing.T) {
	lines := []string{
		`#define BIG 1 + \`,
		`  2`,
		"integer :: x = BIG",
	}
	res := Run(lines, "", map[string]string{}, nil)
	// Continuation lines are concatenated verbatim (stripped, but with
	// no separating space inserted), matching the original's
	// `defs_tmp[def_cont_name] += line.strip()`.
	if res.Defs["BIG"] != "1 +2" {
		t.Errorf("expected a concatenated multiline macro, got %q", res.Defs["BIG"])
	}
	if res.Lines[2] != "integer :: x = 1 +2" {
		t.Errorf("unexpected substitution of multiline macro: %q", res.Lines[2])
	}
}

func TestIfExpressionWithDefined(t *testing.T) {
	lines := []string{
		"#if defined(FOO) && !defined(BAR)",
		"print *, 'yes'",
		"#endif",
	}
	res := Run(lines, "", map[string]string{"FOO": "True"}, nil)
	if len(res.Skips) != 0 {
		t.Errorf("expected the branch to be included, got skips %v", res.Skips)
	}
}

func TestIfExpressionFalse(t *testing.T) {
	lines := []string{
		"#if defined(FOO)",
		"print *, 'yes'",
		"#endif",
	}
	res := Run(lines, "", map[string]string{}, nil)
	if len(res.Skips) != 1 || res.Skips[0] != [2]int{1, 3} {
		t.Errorf("expected the whole body excluded, got %v", res.Skips)
	}
}

func TestEvalPPIfComparison(t *testing.T) {
	if !evalPPIf("VERSION >= 5", map[string]string{"VERSION": "10"}) {
		t.Errorf("expected VERSION >= 5 to be true for VERSION=10")
	}
	if evalPPIf("VERSION >= 5", map[string]string{"VERSION": "1"}) {
		t.Errorf("expected VERSION >= 5 to be false for VERSION=1")
	}
}

func TestEvalPPIfUnparseableFallsBackToFalse(t *testing.T) {
	if evalPPIf("((", map[string]string{}) {
		t.Errorf("expected an unparseable expression to evaluate false")
	}
}
