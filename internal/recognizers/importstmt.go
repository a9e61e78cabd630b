package recognizers

import "strings"

// ImportInfo is the §4.5 item 10 "import" tagged variant. Modeled at
// the builder layer as a Use of fortran.ImportSentinelModule.
type ImportInfo struct {
	Names []string // empty for bare "import", "import, all" and "import, none" alike; the three are not distinguished
}

// RecognizeImport implements spec §4.5 item 10, ported from the
// original's read_imp_stmt: a comma-separated name list, optionally
// preceded by `, only:` or `, all`/`, none`.
func RecognizeImport(line string) (ImportInfo, bool) {
	rest, ok := hasWordPrefix(line, "import")
	if !ok {
		return ImportInfo{}, false
	}
	rest = trimSpace(rest)
	if rest == "" {
		return ImportInfo{}, true
	}
	if !strings.HasPrefix(rest, ",") && !strings.HasPrefix(rest, "::") {
		return ImportInfo{}, false
	}
	if strings.HasPrefix(rest, "::") {
		rest = trimSpace(rest[2:])
	} else {
		rest = trimSpace(rest[1:])
	}
	if word, end := leadWord(rest); word == "only" && trimSpace(rest[end:]) != "" {
		tail := trimSpace(rest[end:])
		if strings.HasPrefix(tail, ":") {
			rest = trimSpace(tail[1:])
		}
	} else if word == "all" || word == "none" {
		return ImportInfo{}, true
	}

	var info ImportInfo
	for _, item := range splitTopLevel(rest, ',') {
		item = trimSpace(item)
		if item == "" {
			continue
		}
		info.Names = append(info.Names, strings.ToLower(item))
	}
	return info, true
}
