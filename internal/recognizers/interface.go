package recognizers

import "strings"

// InterfaceInfo is the §4.5 item 11 "int" tagged variant: bare,
// named, or abstract interface blocks. `assignment(=)`/`operator(.x.)`
// headers normalise to an anonymous interface since they don't
// introduce a lookup name.
type InterfaceInfo struct {
	Name     string // empty for anonymous/operator/assignment interfaces
	Abstract bool
}

// RecognizeInterface implements spec §4.5 item 11, ported from the
// original's read_int_def.
func RecognizeInterface(line string) (InterfaceInfo, bool) {
	abstract := false
	rest := line
	if r, ok := hasWordPrefix(line, "abstract"); ok {
		abstract = true
		rest = r
	}
	rest, ok := hasWordPrefix(rest, "interface")
	if !ok {
		return InterfaceInfo{}, false
	}
	rest = trimSpace(rest)
	if rest == "" {
		return InterfaceInfo{Abstract: abstract}, true
	}

	if w, _ := leadWord(rest); w == "assignment" || w == "operator" {
		return InterfaceInfo{Abstract: abstract}, true
	}
	if strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, ".") {
		return InterfaceInfo{Abstract: abstract}, true
	}

	name, end := leadWord(rest)
	if name == "" || trimSpace(rest[end:]) != "" {
		return InterfaceInfo{}, false
	}
	return InterfaceInfo{Name: strings.ToLower(name), Abstract: abstract}, true
}

// RecognizeModuleProcedure implements spec §4.5 item 13's "module
// procedure" shape, ported from the original's handling of `module
// procedure NAME[, NAME...]` inside an interface or submodule: it
// extracts the NAMEs; the builder adds them as interface members, or
// (inside a submodule) opens a new implementation scope.
func RecognizeModuleProcedure(line string) (ModuleProcedureInfo, bool) {
	rest, ok := hasWordPrefix(line, "module")
	if !ok {
		return ModuleProcedureInfo{}, false
	}
	rest, ok = hasWordPrefix(rest, "procedure")
	if !ok {
		return ModuleProcedureInfo{}, false
	}
	rest = trimSpace(rest)
	if strings.HasPrefix(rest, "::") {
		rest = trimSpace(rest[2:])
	}
	var info ModuleProcedureInfo
	for _, item := range splitTopLevel(rest, ',') {
		item = trimSpace(item)
		if item == "" {
			continue
		}
		info.Names = append(info.Names, strings.ToLower(item))
	}
	if len(info.Names) == 0 {
		return ModuleProcedureInfo{}, false
	}
	return info, true
}

// ModuleProcedureInfo is the `module procedure NAME[, NAME...]`
// variant, distinct from ModuleInfo (a bare `module NAME` scope
// opener).
type ModuleProcedureInfo struct {
	Names []string
}
