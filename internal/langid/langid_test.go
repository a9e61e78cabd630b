package langid

import "testing"

func TestDetectFixedFormTrue(t *testing.T) {
	lines := []string{
		"      PROGRAM MAIN",
		"      INTEGER I",
		"     &     J",
		"      END",
	}
	if !DetectFixedForm(lines) {
		t.Errorf("expected fixed-form detection for column-6 continued source")
	}
}

func TestDetectFixedFormFalse(t *testing.T) {
	lines := []string{
		"module foo",
		"  integer :: i, &",
		"    j",
		"end module foo",
	}
	if DetectFixedForm(lines) {
		t.Errorf("did not expect fixed-form detection for free-form source")
	}
}

func TestDetectFixedFormSkipsCommentsAndBlanks(t *testing.T) {
	lines := []string{
		"",
		"C this is a comment",
		"      SUBROUTINE S()",
		"      END",
	}
	if !DetectFixedForm(lines) {
		t.Errorf("expected fixed-form detection to skip blank/comment lines before sampling")
	}
}

func TestDetectFixedFormEmpty(t *testing.T) {
	if DetectFixedForm(nil) {
		t.Errorf("an empty file must not be detected as fixed-form")
	}
}

func TestDocMarkersSameForBothDialects(t *testing.T) {
	free := DocMarkers(false)
	fixed := DocMarkers(true)
	if free != fixed {
		t.Errorf("expected identical marker sets for both dialects, got %+v vs %+v", free, fixed)
	}
	if !free.MatchForward(">note") {
		t.Errorf("expected forward marker to match")
	}
	if !free.MatchBackward("<note") {
		t.Errorf("expected backward marker to match")
	}
	if !free.MatchContinuation("!note") {
		t.Errorf("expected continuation marker to match")
	}
}
