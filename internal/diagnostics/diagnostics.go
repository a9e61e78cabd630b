// Package diagnostics implements the §4.7 Diagnostics pass: line and
// comment-line length checks plus assembly of the builder's
// EndErrors/ParseErrors into the §6 Diagnostic-record shape. Grounded
// on the teacher's diagnostics.go Provider.Analyze -> []lsp.Diagnostic
// shape and its createDiagnostic helper — the MCS-statement scanning
// logic itself does not survive since it parses a different grammar
// entirely (see DESIGN.md).
package diagnostics

import (
	"strconv"

	"github.com/freevryheid/fortls/internal/config"
	"github.com/freevryheid/fortls/internal/splicer"
	"github.com/freevryheid/fortls/pkg/fortran"
)

// Collect assembles every diagnostic for f: end-statement and
// structural errors recorded during the build pass, plus line-length
// violations checked here against opts.
func Collect(f *fortran.File, opts *config.Options) []fortran.Diagnostic {
	var out []fortran.Diagnostic

	for _, e := range f.EndErrors {
		out = append(out, createDiagnostic(e.CloseLine, e.Message, fortran.SeverityError))
	}
	for _, e := range f.ParseErrors {
		out = append(out, createDiagnostic(e.Line, e.Message, fortran.SeverityError))
	}
	out = append(out, checkLineLengths(f, opts)...)
	return out
}

// checkLineLengths flags physical lines (code or comment) that exceed
// opts.MaxLineLength/MaxCommentLineLength; zero means inactive (spec
// §6).
func checkLineLengths(f *fortran.File, opts *config.Options) []fortran.Diagnostic {
	var out []fortran.Diagnostic
	if opts == nil {
		return out
	}
	for i, line := range f.ContentsSplit {
		isComment := splicer.IsCommentLine(line, f.Fixed)
		limit := opts.MaxLineLength
		if isComment {
			limit = opts.MaxCommentLineLength
		}
		if limit <= 0 || len(line) <= limit {
			continue
		}
		msg := "line too long (" + strconv.Itoa(len(line)) + " > " + strconv.Itoa(limit) + ")"
		out = append(out, fortran.Diagnostic{
			Range: fortran.Range{
				Start: fortran.Position{Line: i, Character: limit},
				End:   fortran.Position{Line: i, Character: len(line)},
			},
			Message:  msg,
			Severity: fortran.SeverityWarning,
		})
	}
	return out
}

// createDiagnostic builds a single-point-range Diagnostic at the given
// 1-based line number, matching the teacher's createDiagnostic helper
// shape (message + severity, range derived from context).
func createDiagnostic(line int, message string, severity fortran.Severity) fortran.Diagnostic {
	l := line - 1
	if l < 0 {
		l = 0
	}
	return fortran.Diagnostic{
		Range: fortran.Range{
			Start: fortran.Position{Line: l, Character: 0},
			End:   fortran.Position{Line: l, Character: 0},
		},
		Message:  message,
		Severity: severity,
	}
}
