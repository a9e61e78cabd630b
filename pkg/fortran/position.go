// Package fortran holds the public AST, diagnostic and position
// contract produced by parsing a Fortran source file. Everything here
// is stable output shape: the packages under internal/ build it, a
// later hover/completion/symbol layer consumes it.
package fortran

// Position is a zero-based line/character position in a document,
// matching LSP convention.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position
	End   Position
}
