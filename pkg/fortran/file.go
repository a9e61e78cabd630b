package fortran

// File is the §3 "Source file": the raw and preprocessed line vectors,
// dialect flag, preprocessor definitions map, content digest and the
// AST built from it. File owns the Scope tree; a Scope holds only a
// Parent back-reference to its enclosing Scope and no reference to
// its File.
type File struct {
	Path string

	// ContentsSplit is the original physical lines, one per index.
	ContentsSplit []string
	// ContentsPP is the preprocessed lines: same length as
	// ContentsSplit, initialised by SetContents as a copy of it.
	// Lines in inactive conditional branches are not blanked here;
	// PreprocSkips records their ranges.
	ContentsPP []string
	NLines     int

	Fixed bool
	Defs  map[string]string
	Hash  [16]byte

	AST *Scope

	// VariableList is the flat list of every Variable declared
	// anywhere in the file, in the order the builder encountered
	// them.
	VariableList []*Variable
	// ExternalObjs is the subset of VariableList carrying the
	// EXTERNAL attribute.
	ExternalObjs []*Variable

	ParseErrors []ParseError
	EndErrors   []EndError

	// PreprocSkips is the inclusive [start,end] 1-based line ranges
	// excluded by inactive preprocessor branches (§4.4 "skips").
	PreprocSkips [][2]int
	// PreprocDefineLines holds the 1-based line numbers of
	// #define/#undef lines, suppressed from parsing.
	PreprocDefineLines []int
}

// Clone returns a snapshot of f safe to hand to an independent parse:
// the line vectors and defs map are copied so concurrent callers (§5)
// never observe or mutate each other's working state. The AST and
// diagnostics are not copied since a clone is meant to be re-parsed,
// not reused.
func (f *File) Clone() *File {
	clone := &File{
		Path:   f.Path,
		Fixed:  f.Fixed,
		Hash:   f.Hash,
		NLines: f.NLines,
	}
	clone.ContentsSplit = append([]string(nil), f.ContentsSplit...)
	clone.ContentsPP = append([]string(nil), f.ContentsPP...)
	clone.Defs = make(map[string]string, len(f.Defs))
	for k, v := range f.Defs {
		clone.Defs[k] = v
	}
	return clone
}

// Line returns a single physical or preprocessed line, or ("", false)
// if the index is out of range.
func (f *File) Line(lineNumber int, ppContent bool) (string, bool) {
	lines := f.ContentsSplit
	if ppContent {
		lines = f.ContentsPP
	}
	if lineNumber < 0 || lineNumber >= len(lines) {
		return "", false
	}
	return lines[lineNumber], true
}
