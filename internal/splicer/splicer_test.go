package splicer

import (
	"testing"

	"github.com/freevryheid/fortls/internal/fsource"
	"github.com/freevryheid/fortls/pkg/fortran"
)

func TestMaskStringsPreservesLength(t *testing.T) {
	line := `x = "a & b" // 'it''s'`
	masked := MaskStrings(line)
	if len(masked) != len(line) {
		t.Fatalf("expected masked length %d, got %d", len(line), len(masked))
	}
	if idx := indexByte(masked, '&'); idx >= 0 {
		t.Errorf("expected the masked string's internal & to be gone, found at %d", idx)
	}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func TestStripCommentFreeForm(t *testing.T) {
	got := StripComment(`integer :: i ! a comment`, false)
	if got != "integer :: i " {
		t.Errorf("unexpected stripped line: %q", got)
	}
}

func TestStripCommentKeepsOpenMPSentinel(t *testing.T) {
	line := "!$OMP PARALLEL DO"
	if got := StripComment(line, false); got != line {
		t.Errorf("expected OpenMP sentinel to survive stripping, got %q", got)
	}
}

func TestStripCommentFixedWholeLine(t *testing.T) {
	if got := StripComment("C this is a comment", true); got != "" {
		t.Errorf("expected fixed-form comment line to strip to empty, got %q", got)
	}
}

func TestSpliceFreeFormContinuation(t *testing.T) {
	f := &fortran.File{}
	fsource.SetContents(f, []string{
		"integer :: i, &",
		"  j, &",
		"  k",
	}, false)

	pre, cur, post, ok := Splice(f, 1, true, true, false)
	if !ok {
		t.Fatalf("expected a successful splice")
	}
	if len(pre) != 1 {
		t.Fatalf("expected 1 preceding line, got %d: %v", len(pre), pre)
	}
	if cur != "  j, " {
		t.Errorf("unexpected current line: %q", cur)
	}
	if len(post) != 1 || post[0] != "  k" {
		t.Errorf("unexpected post lines: %v", post)
	}
}

func TestSpliceFixedFormContinuation(t *testing.T) {
	f := &fortran.File{Fixed: true}
	fsource.SetContents(f, []string{
		"      INTEGER I,",
		"     &  J",
	}, false)

	pre, cur, post, ok := Splice(f, 0, true, true, true)
	if !ok {
		t.Fatalf("expected a successful splice")
	}
	if len(pre) != 0 {
		t.Errorf("expected no preceding lines for the first physical line, got %v", pre)
	}
	if cur != "      INTEGER I," {
		t.Errorf("unexpected current line: %q", cur)
	}
	if len(post) != 1 {
		t.Fatalf("expected 1 following continuation line, got %d: %v", len(post), post)
	}
	if post[0] != "        J" {
		t.Errorf("unexpected blanked continuation line: %q", post[0])
	}
}

func TestFindWordInLineWholeWordOnly(t *testing.T) {
	i0, i1 := FindWordInLine("integer :: ifoo, i", "i")
	if i0 < 0 {
		t.Fatalf("expected to find a standalone 'i'")
	}
	if "integer :: ifoo, i"[i0:i1] != "i" {
		t.Errorf("match span did not cover a standalone token")
	}
	if i0 != 17 {
		t.Errorf("expected the standalone 'i' at 0-based column 17, got %d", i0)
	}
}

func TestFindWordInLineNoMatch(t *testing.T) {
	if i0, _ := FindWordInLine("integer :: ifoo", "bar"); i0 != -1 {
		t.Errorf("expected no match")
	}
}
