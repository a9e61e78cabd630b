package recognizers

import "strings"

// ModuleInfo is the §4.5 item 13 "mod" tagged variant: a bare `module
// NAME` scope opener (distinct from ModuleProcedureInfo).
type ModuleInfo struct {
	Name string
}

// RecognizeModule implements spec §4.5 item 13's module-scope shape,
// ported from the original's read_mod_def. `module procedure`,
// `module subroutine`/`module function` are excluded here since they
// are owned by RecognizeModuleProcedure and RecognizeSubroutine/
// RecognizeFunction respectively (the latter two run earlier in
// Dispatch; RecognizeModuleProcedure runs after this one).
func RecognizeModule(line string) (ModuleInfo, bool) {
	rest, ok := hasWordPrefix(line, "module")
	if !ok {
		return ModuleInfo{}, false
	}
	name, end := leadWord(rest)
	if name == "" || trimSpace(rest[end:]) != "" {
		return ModuleInfo{}, false
	}
	switch strings.ToLower(name) {
	case "procedure", "subroutine", "function":
		return ModuleInfo{}, false
	}
	return ModuleInfo{Name: strings.ToLower(name)}, true
}
