package recognizers

import "strings"

// UseInfo is the §4.5 item 9 "use" tagged variant.
type UseInfo struct {
	ModuleName string
	Only       []string
	Rename     map[string]string // local -> remote
}

// RecognizeUse implements spec §4.5 item 9, ported from the
// original's read_use_stmt: module name, optional `only:` list,
// optional rename map (`local => remote`).
func RecognizeUse(line string) (UseInfo, bool) {
	rest, ok := hasWordPrefix(line, "use")
	if !ok {
		return UseInfo{}, false
	}
	rest = strings.TrimLeft(rest, " \t")

	for _, prefix := range []string{"intrinsic", "non_intrinsic"} {
		if tail, ok := hasWordPrefix(rest, prefix); ok {
			if strings.HasPrefix(strings.TrimLeft(tail, " \t"), "::") {
				rest = strings.TrimLeft(strings.TrimLeft(tail, " \t")[2:], " \t")
			}
			break
		}
	}
	if strings.HasPrefix(rest, "::") {
		rest = strings.TrimLeft(rest[2:], " \t")
	}

	name, end := leadWord(rest)
	if name == "" {
		return UseInfo{}, false
	}
	info := UseInfo{ModuleName: rest[:end]}
	rest = strings.TrimLeft(rest[end:], " \t")

	if rest == "" {
		return info, true
	}
	if !strings.HasPrefix(rest, ",") {
		return UseInfo{}, false
	}
	rest = strings.TrimLeft(rest[1:], " \t")

	if tail, ok := hasWordPrefix(rest, "only"); ok {
		tail = strings.TrimLeft(tail, " \t")
		if !strings.HasPrefix(tail, ":") {
			return UseInfo{}, false
		}
		list := trimSpace(tail[1:])
		for _, item := range splitTopLevel(list, ',') {
			item = trimSpace(item)
			if item == "" {
				continue
			}
			if idx := indexTopLevel(item, "=>"); idx >= 0 {
				local := trimSpace(item[:idx])
				remote := trimSpace(item[idx+2:])
				if info.Rename == nil {
					info.Rename = map[string]string{}
				}
				info.Rename[strings.ToLower(local)] = strings.ToLower(remote)
				info.Only = append(info.Only, strings.ToLower(local))
			} else {
				info.Only = append(info.Only, strings.ToLower(item))
			}
		}
		return info, true
	}

	// A bare rename-list with no `only:` clause.
	for _, item := range splitTopLevel(rest, ',') {
		item = trimSpace(item)
		if item == "" {
			continue
		}
		idx := indexTopLevel(item, "=>")
		if idx < 0 {
			return UseInfo{}, false
		}
		local := trimSpace(item[:idx])
		remote := trimSpace(item[idx+2:])
		if info.Rename == nil {
			info.Rename = map[string]string{}
		}
		info.Rename[strings.ToLower(local)] = strings.ToLower(remote)
	}
	return info, true
}
