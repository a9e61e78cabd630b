package recognizers

import "strings"

// VisibilityInfo is the §4.5 item 17 "vis" tagged variant.
type VisibilityInfo struct {
	Public bool
	Names  []string // empty sets the scope's default visibility
}

// RecognizeVisibility implements spec §4.5 item 17, ported from the
// original's read_vis_stmnt: `public`/`private` with an optional
// `::`-separated target-name list.
func RecognizeVisibility(line string) (VisibilityInfo, bool) {
	word, end := leadWord(line)
	var public bool
	switch word {
	case "public":
		public = true
	case "private":
		public = false
	default:
		return VisibilityInfo{}, false
	}
	rest := trimSpace(line[end:])
	if rest == "" {
		return VisibilityInfo{Public: public}, true
	}
	if strings.HasPrefix(rest, "::") {
		rest = trimSpace(rest[2:])
	}
	if rest == "" {
		return VisibilityInfo{Public: public}, true
	}

	var info VisibilityInfo
	info.Public = public
	for _, item := range splitTopLevel(rest, ',') {
		item = trimSpace(item)
		if item == "" {
			continue
		}
		info.Names = append(info.Names, strings.ToLower(item))
	}
	if len(info.Names) == 0 {
		return VisibilityInfo{}, false
	}
	return info, true
}
