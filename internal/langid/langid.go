// Package langid detects which of Fortran's two source dialects a file
// uses and exposes the doc-comment marker set for each (spec §6). It is
// the same "closed list + membership test" shape as the teacher's
// national-language-identifier table, repurposed here to a different
// closed list: fixed-form column layout versus free-form, and the
// forward/backward/continuation doc markers for each.
package langid

import "strings"

// sampleSize is N from spec §6: the number of leading non-blank,
// non-comment lines sampled to decide dialect.
const sampleSize = 10

// freeFormIndentCue is how far a free-form line can indent before it no
// longer looks like a fixed-form line with blank columns 1-5.
const freeFormIndentCue = 6

// DetectFixedForm reports whether lines reads as fixed-form Fortran: a
// majority of the first sampleSize non-blank, non-comment lines have
// blank columns 1-5 with either a statement starting in column 7 or a
// continuation character in column 6, and do not indent further than
// a fixed-form line plausibly would.
func DetectFixedForm(lines []string) bool {
	sampled := 0
	fixedLike := 0

	for _, line := range lines {
		if sampled >= sampleSize {
			break
		}
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		if isFixedCommentLine(line) {
			continue
		}
		sampled++
		if looksFixedForm(line) {
			fixedLike++
		}
	}

	if sampled == 0 {
		return false
	}
	return fixedLike*2 > sampled
}

// isFixedCommentLine reports whether line is a fixed-form comment:
// C/c/*/! in column 1, per spec §4.1.
func isFixedCommentLine(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case 'C', 'c', '*', '!':
		return true
	}
	return false
}

// looksFixedForm reports whether a single line has the fixed-form
// column shape: columns 1-5 blank, column 6 either blank (a statement
// starting in column 7) or a continuation character other than "0",
// and the line does not indent past the free-form cue.
func looksFixedForm(line string) bool {
	if len(line) < 6 {
		return false
	}
	for i := 0; i < 5; i++ {
		if line[i] != ' ' {
			return false
		}
	}
	if line[5] == '0' {
		return false
	}
	leading := 0
	for leading < len(line) && line[leading] == ' ' {
		leading++
	}
	return leading <= freeFormIndentCue
}

// DocMarkerSet holds the three doc-comment markers for one dialect
// (spec §4.3/§6): Forward attaches to the next declaration, Backward to
// the previous one, Continuation extends a pending doc block.
type DocMarkerSet struct {
	Forward      string
	Backward     string
	Continuation string
}

// FreeFormMarkers is the free-form doc-comment marker set.
var FreeFormMarkers = DocMarkerSet{Forward: "!>", Backward: "!<", Continuation: "!!"}

// FixedFormMarkers is the fixed-form doc-comment marker set: the same
// markers, recognized in the comment column rather than at column 1.
var FixedFormMarkers = DocMarkerSet{Forward: "!>", Backward: "!<", Continuation: "!!"}

// DocMarkers returns the marker set for the given dialect.
func DocMarkers(fixed bool) DocMarkerSet {
	if fixed {
		return FixedFormMarkers
	}
	return FreeFormMarkers
}

// MatchForward reports whether the comment body (text after the `!`)
// begins with the dialect's forward doc marker tail ('>').
func (m DocMarkerSet) MatchForward(commentBody string) bool {
	return strings.HasPrefix(commentBody, ">")
}

// MatchBackward reports whether the comment body begins with the
// dialect's backward doc marker tail ('<').
func (m DocMarkerSet) MatchBackward(commentBody string) bool {
	return strings.HasPrefix(commentBody, "<")
}

// MatchContinuation reports whether the comment body begins with the
// dialect's continuation doc marker tail ('!').
func (m DocMarkerSet) MatchContinuation(commentBody string) bool {
	return strings.HasPrefix(commentBody, "!")
}
