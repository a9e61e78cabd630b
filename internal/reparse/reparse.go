// Package reparse implements the Edit Reparse Heuristic (spec §4.2):
// given a line touched by a single-line edit, decide whether the
// change is structural enough to demand a full scope-stack rebuild, or
// whether the existing AST can be left alone. Ported from the
// original's check_change_reparse.
package reparse

import (
	"regexp"
	"strings"

	"github.com/freevryheid/fortls/internal/recognizers"
	"github.com/freevryheid/fortls/internal/splicer"
	"github.com/freevryheid/fortls/pkg/fortran"
)

var (
	labelRegex    = regexp.MustCompile(`^\s*(\d+)\s+`)
	endWordRegex  = regexp.MustCompile(`(?i)^end\b`)
	implicitRegex = regexp.MustCompile(`(?i)^implicit\b`)
	containsRegex = regexp.MustCompile(`(?i)^contains\s*$`)

	// nonDefRegex recognizes the closed set of statement shapes that
	// can never open, close, or redefine a declaration: assignments,
	// procedure calls, and bare control-flow keywords. A line matching
	// this never needs a reparse, since none of these kinds of
	// statement can appear in the declaration section outcome of a
	// scope (spec §4.2).
	nonDefRegex = regexp.MustCompile(`(?i)^(call\s|return\b|cycle\b|exit\b|stop\b|print\s|write\s*\(|read\s*\(|go\s*to\b|goto\b|allocate\s*\(|deallocate\s*\(|nullify\s*\(|[A-Za-z_]\w*(\s*\(.*\))?\s*=[^=])`)
)

// Needs reports whether lineNumber (0-based) in f requires a full
// rebuild of f.AST, fetching the full logical line (including backward
// continuations).
func Needs(f *fortran.File, lineNumber int) bool {
	if lineNumber < 0 || lineNumber >= f.NLines {
		return true
	}

	pre, cur, _, ok := splicer.Splice(f, lineNumber, false, true, false)
	if !ok {
		return true
	}
	if splicer.IsCommentLine(cur, f.Fixed) {
		return false
	}

	full := strings.Join(pre, "") + cur
	stripped, label := stripLineLabel(full)
	if label != "" {
		return true
	}

	masked := splicer.MaskStrings(stripped)
	if strings.ContainsRune(masked, ';') {
		return true
	}

	code := stripped
	if i := strings.IndexByte(masked, '!'); i >= 0 {
		code = stripped[:i]
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}

	if endWordRegex.MatchString(code) || implicitRegex.MatchString(code) || containsRegex.MatchString(code) {
		return true
	}
	if nonDefRegex.MatchString(code) {
		return false
	}
	if _, _, ok := recognizers.Dispatch(code); ok {
		return true
	}
	return false
}

// stripLineLabel removes a leading old-style numeric statement label
// (columns 1-5 in fixed form, or a free-form leading "10 " label) and
// returns the remainder plus the label text, mirroring the original's
// strip_line_label.
func stripLineLabel(line string) (string, string) {
	if m := labelRegex.FindStringSubmatch(line); m != nil {
		return line[len(m[0]):], m[1]
	}
	return line, ""
}
