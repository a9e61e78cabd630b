package recognizers

import "strings"

// ProgramInfo is the §4.5 item 14 "prog" tagged variant.
type ProgramInfo struct {
	Name string // empty for an unnamed program unit
}

// RecognizeProgram implements spec §4.5 item 14, ported from the
// original's read_prog_def: `program [name]`.
func RecognizeProgram(line string) (ProgramInfo, bool) {
	rest, ok := hasWordPrefix(line, "program")
	if !ok {
		return ProgramInfo{}, false
	}
	rest = trimSpace(rest)
	if rest == "" {
		return ProgramInfo{}, true
	}
	name, end := leadWord(rest)
	if name == "" || trimSpace(rest[end:]) != "" {
		return ProgramInfo{}, false
	}
	return ProgramInfo{Name: strings.ToLower(name)}, true
}
