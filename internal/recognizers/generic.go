package recognizers

import "strings"

// GenericInfo is the §4.5 item 12 "gen" tagged variant.
type GenericInfo struct {
	Name       string
	Public     bool
	HasVisibility bool
	Procedures []string
}

// RecognizeGeneric implements spec §4.5 item 12, ported from the
// original's read_generic_def: `generic [, vis] :: name => a, b, c`.
// Guards against `assignment(=)`/`operator(.x.)` generic-interface
// headers, which RecognizeInterface owns instead.
func RecognizeGeneric(line string) (GenericInfo, bool) {
	rest, ok := hasWordPrefix(line, "generic")
	if !ok {
		return GenericInfo{}, false
	}
	rest = strings.TrimLeft(rest, " \t")

	var info GenericInfo
	for strings.HasPrefix(rest, ",") {
		rest = strings.TrimLeft(rest[1:], " \t")
		word, end := leadWord(rest)
		switch word {
		case "public":
			info.Public, info.HasVisibility = true, true
		case "private":
			info.Public, info.HasVisibility = false, true
		default:
			return GenericInfo{}, false
		}
		rest = strings.TrimLeft(rest[end:], " \t")
	}

	if !strings.HasPrefix(rest, "::") {
		return GenericInfo{}, false
	}
	rest = strings.TrimLeft(rest[2:], " \t")

	if nameWord, _ := leadWord(rest); nameWord == "assignment" || nameWord == "operator" {
		return GenericInfo{}, false
	}
	idx := indexTopLevel(rest, "=>")
	if idx < 0 {
		return GenericInfo{}, false
	}
	info.Name = strings.ToLower(trimSpace(rest[:idx]))
	rest = trimSpace(rest[idx+2:])

	for _, item := range splitTopLevel(rest, ',') {
		item = trimSpace(item)
		if item == "" {
			continue
		}
		info.Procedures = append(info.Procedures, strings.ToLower(item))
	}
	if len(info.Procedures) == 0 {
		return GenericInfo{}, false
	}
	return info, true
}
