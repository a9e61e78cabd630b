package reparse

import (
	"testing"

	"github.com/freevryheid/fortls/internal/fsource"
	"github.com/freevryheid/fortls/pkg/fortran"
)

func newFile(lines []string, fixed bool) *fortran.File {
	f := &fortran.File{Fixed: fixed}
	fsource.SetContents(f, lines, false)
	return f
}

func TestNeedsCommentLineIsFalse(t *testing.T) {
	f := newFile([]string{"! just a comment"}, false)
	if Needs(f, 0) {
		t.Error("expected comment line to not need a reparse")
	}
}

func TestNeedsLineLabelIsTrue(t *testing.T) {
	f := newFile([]string{"10 continue"}, false)
	if !Needs(f, 0) {
		t.Error("expected a labelled line to need a reparse")
	}
}

func TestNeedsSemicolonIsTrue(t *testing.T) {
	f := newFile([]string{"x = 1; y = 2"}, false)
	if !Needs(f, 0) {
		t.Error("expected a semicolon-joined line to need a reparse")
	}
}

func TestNeedsEndStatementIsTrue(t *testing.T) {
	f := newFile([]string{"end module m"}, false)
	if !Needs(f, 0) {
		t.Error("expected an end statement to need a reparse")
	}
}

func TestNeedsImplicitIsTrue(t *testing.T) {
	f := newFile([]string{"implicit none"}, false)
	if !Needs(f, 0) {
		t.Error("expected an implicit statement to need a reparse")
	}
}

func TestNeedsContainsIsTrue(t *testing.T) {
	f := newFile([]string{"contains"}, false)
	if !Needs(f, 0) {
		t.Error("expected a contains statement to need a reparse")
	}
}

func TestNeedsAssignmentIsFalse(t *testing.T) {
	f := newFile([]string{"x = 1 + 2"}, false)
	if Needs(f, 0) {
		t.Error("expected a plain assignment to not need a reparse")
	}
}

func TestNeedsCallIsFalse(t *testing.T) {
	f := newFile([]string{"call foo(x, y)"}, false)
	if Needs(f, 0) {
		t.Error("expected a call statement to not need a reparse")
	}
}

func TestNeedsDeclarationRecognizerIsTrue(t *testing.T) {
	f := newFile([]string{"integer :: x"}, false)
	if !Needs(f, 0) {
		t.Error("expected a variable declaration to need a reparse")
	}
}

func TestNeedsOutOfRangeIsTrue(t *testing.T) {
	f := newFile([]string{"x = 1"}, false)
	if !Needs(f, 5) {
		t.Error("expected an out-of-range line to need a reparse")
	}
}
