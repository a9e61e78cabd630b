package recognizers

import "strings"

// SubmoduleInfo is the §4.5 item 15 "smod" tagged variant.
type SubmoduleInfo struct {
	Parent string
	Name   string
}

// RecognizeSubmodule implements spec §4.5 item 15, ported from the
// original's read_submod_def: `submodule(parent) name` (the ancestor
// module, or `parent:descendant` for a submodule-of-submodule).
func RecognizeSubmodule(line string) (SubmoduleInfo, bool) {
	rest, ok := hasWordPrefix(line, "submodule")
	if !ok {
		return SubmoduleInfo{}, false
	}
	content, next, ok := matchParen(rest, 0)
	if !ok {
		return SubmoduleInfo{}, false
	}
	parent := trimSpace(content)
	if idx := strings.IndexByte(parent, ':'); idx >= 0 {
		parent = trimSpace(parent[idx+1:])
	}
	rest = trimSpace(rest[next:])
	name, end := leadWord(rest)
	if name == "" || trimSpace(rest[end:]) != "" {
		return SubmoduleInfo{}, false
	}
	return SubmoduleInfo{Parent: strings.ToLower(parent), Name: strings.ToLower(name)}, true
}
