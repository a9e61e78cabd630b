package diagnostics

import (
	"testing"

	"github.com/freevryheid/fortls/internal/config"
	"github.com/freevryheid/fortls/pkg/fortran"
)

func TestCollectEndErrorsAndParseErrors(t *testing.T) {
	f := &fortran.File{
		ContentsSplit: []string{"module m", "end module m"},
		EndErrors: []fortran.EndError{
			{OpenLine: 1, CloseLine: 2, Message: "expected name 'm', got 'n'"},
		},
		ParseErrors: []fortran.ParseError{
			{Line: 1, Message: "'contains' outside any scope"},
		},
	}

	diags := Collect(f, config.Default())
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %+v", len(diags), diags)
	}
	if diags[0].Severity != fortran.SeverityError {
		t.Errorf("expected end error to be SeverityError, got %v", diags[0].Severity)
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("expected 0-based line 1 for CloseLine 2, got %d", diags[0].Range.Start.Line)
	}
	if diags[1].Range.Start.Line != 0 {
		t.Errorf("expected 0-based line 0 for Line 1, got %d", diags[1].Range.Start.Line)
	}
}

func TestCollectNilOptionsSkipsLineLength(t *testing.T) {
	f := &fortran.File{ContentsSplit: []string{strRepeat("x", 200)}}
	diags := Collect(f, nil)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics with nil opts, got %+v", diags)
	}
}

func TestCheckLineLengthsCode(t *testing.T) {
	opts := &config.Options{MaxLineLength: 72}
	f := &fortran.File{
		Fixed:         false,
		ContentsSplit: []string{strRepeat("a", 80)},
	}
	diags := checkLineLengths(f, opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Severity != fortran.SeverityWarning {
		t.Errorf("expected SeverityWarning, got %v", diags[0].Severity)
	}
	if diags[0].Range.Start.Character != 72 || diags[0].Range.End.Character != 80 {
		t.Errorf("unexpected range: %+v", diags[0].Range)
	}
}

func TestCheckLineLengthsComment(t *testing.T) {
	opts := &config.Options{MaxLineLength: 72, MaxCommentLineLength: 40}
	f := &fortran.File{
		Fixed:         false,
		ContentsSplit: []string{"! " + strRepeat("a", 60)},
	}
	diags := checkLineLengths(f, opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for overlong comment, got %d", len(diags))
	}
}

func TestCheckLineLengthsInactiveWhenZero(t *testing.T) {
	opts := &config.Options{}
	f := &fortran.File{ContentsSplit: []string{strRepeat("a", 500)}}
	diags := checkLineLengths(f, opts)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics when limit is 0, got %+v", diags)
	}
}

func TestCreateDiagnosticClampsNegativeLine(t *testing.T) {
	d := createDiagnostic(0, "bad", fortran.SeverityError)
	if d.Range.Start.Line != 0 {
		t.Errorf("expected clamped line 0, got %d", d.Range.Start.Line)
	}
}

func strRepeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
