package fortran

// Severity mirrors the LSP DiagnosticSeverity levels named in spec §6.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
)

// Diagnostic is the §6 "Diagnostic record": a range, a message and a
// severity. Nothing else — no code/source fields, since this module
// has exactly one source of diagnostics and callers don't need to
// disambiguate.
type Diagnostic struct {
	Range    Range
	Message  string
	Severity Severity
}
