package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freevryheid/fortls/internal/fsource"
	"github.com/freevryheid/fortls/pkg/fortran"
)

func newFile(lines []string) *fortran.File {
	f := &fortran.File{}
	fsource.SetContents(f, lines, false)
	return f
}

func TestBuildModuleScopeRoundTrip(t *testing.T) {
	f := newFile([]string{
		"module m",
		"  integer :: x = 3",
		"end module m",
	})
	require.NoError(t, Build(f))
	require.Empty(t, f.ParseErrors)
	require.Empty(t, f.EndErrors)
	require.Len(t, f.AST.Scopes, 1)

	mod := f.AST.Scopes[0]
	require.Equal(t, fortran.ScopeModule, mod.Kind)
	require.Equal(t, "m", mod.Name)

	vars := mod.Variables()
	require.Len(t, vars, 1)
	require.Equal(t, "x", vars[0].Name)
	// Scenario 1: initializer is not captured without the PARAMETER
	// keyword (spec §3).
	require.Empty(t, vars[0].ParamValue)
}

func TestBuildParameterCapturesValue(t *testing.T) {
	f := newFile([]string{
		"module m",
		"  integer, parameter :: x = 3",
		"end module m",
	})
	require.NoError(t, Build(f))

	vars := f.AST.Scopes[0].Variables()
	require.Len(t, vars, 1)
	require.Equal(t, "3", vars[0].ParamValue)
}

func TestBuildSubroutineWithIntent(t *testing.T) {
	f := newFile([]string{
		"subroutine foo(x)",
		"  integer, intent(in) :: x",
		"end subroutine foo",
	})
	require.NoError(t, Build(f))

	sub := f.AST.Scopes[0]
	require.Equal(t, fortran.ScopeSubroutine, sub.Kind)
	require.Equal(t, "foo", sub.Name)

	vars := sub.Variables()
	require.Len(t, vars, 1)
	require.True(t, vars[0].HasAttribute("INTENT-IN"))
}

func TestBuildFreeFormContinuationTwoVariables(t *testing.T) {
	f := newFile([]string{
		"module m",
		"  integer :: a, &",
		"             b",
		"end module m",
	})
	require.NoError(t, Build(f))

	vars := f.AST.Scopes[0].Variables()
	require.Len(t, vars, 2)
	require.Equal(t, "a", vars[0].Name)
	require.Equal(t, "b", vars[1].Name)
}

func TestBuildDerivedTypeExtends(t *testing.T) {
	f := newFile([]string{
		"module m",
		"  type, extends(base) :: child",
		"    integer :: n",
		"  end type child",
		"end module m",
	})
	require.NoError(t, Build(f))

	mod := f.AST.Scopes[0]
	require.Len(t, mod.Scopes, 1)

	typ := mod.Scopes[0]
	require.Equal(t, fortran.ScopeDerivedType, typ.Kind)
	require.Equal(t, "child", typ.Name)
	require.Equal(t, "base", typ.Extends)
}

func TestBuildEndMismatchRecordsEndError(t *testing.T) {
	f := newFile([]string{
		"module m",
		"end module n",
	})
	require.NoError(t, Build(f))
	require.Len(t, f.EndErrors, 1)
}

func TestBuildUnclosedScopeRecordsEndError(t *testing.T) {
	f := newFile([]string{
		"module m",
		"  integer :: x",
	})
	require.NoError(t, Build(f))
	require.Len(t, f.EndErrors, 1)
}

func TestBuildExternalTypedMerge(t *testing.T) {
	f := newFile([]string{
		"module m",
		"  external foo",
		"  integer :: foo",
		"end module m",
	})
	require.NoError(t, Build(f))

	vars := f.AST.Scopes[0].Variables()
	require.Len(t, vars, 1)
	require.True(t, vars[0].HasAttribute("EXTERNAL"))
	require.Equal(t, "INTEGER", vars[0].Descriptor)
}

func TestBuildSelectTypeArms(t *testing.T) {
	f := newFile([]string{
		"subroutine foo(x)",
		"  select type (x)",
		"  type is (integer)",
		"    y = 1",
		"  class default",
		"    y = 2",
		"  end select",
		"end subroutine foo",
	})
	require.NoError(t, Build(f))
	require.Empty(t, f.EndErrors)

	sub := f.AST.Scopes[0]
	require.Len(t, sub.Scopes, 1)
	require.Equal(t, fortran.ScopeSelect, sub.Scopes[0].Kind)
}
