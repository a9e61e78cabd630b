package recognizers

import "strings"

// SelectInfo is the §4.5 item 6 "select" tagged variant, covering the
// construct opener and its later case/type/class-is arms.
type SelectInfo struct {
	Kind string // "case", "type", "class", "default", "type_is", "class_is"
	// AssocName is the `name =>` binding in `select type (name=>expr)`,
	// empty otherwise.
	AssocName string
	// Expr is the selector expression, or the type/class-is argument
	// for the arm variants.
	Expr string
}

// RecognizeSelect implements spec §4.5 item 6, ported from the
// original's read_select_def: `select [case|type] (expr)` or
// `select type (name=>expr)`, plus the bare `class default`/
// `type is(...)`/`class is(...)` arm variants.
func RecognizeSelect(line string) (SelectInfo, bool) {
	if rest, ok := hasWordPrefix(line, "select"); ok {
		kind := "case"
		body := rest
		if r, ok := hasWordPrefix(rest, "type"); ok {
			kind = "type"
			body = r
		} else if r, ok := hasWordPrefix(rest, "class"); ok {
			kind = "class"
			body = r
		} else if r, ok := hasWordPrefix(rest, "case"); ok {
			body = r
		}
		content, _, ok := matchParen(body, 0)
		if !ok {
			return SelectInfo{}, false
		}
		info := SelectInfo{Kind: kind}
		if idx := indexTopLevel(content, "=>"); idx >= 0 {
			info.AssocName = trimSpace(content[:idx])
			info.Expr = trimSpace(content[idx+2:])
		} else {
			info.Expr = trimSpace(content)
		}
		return info, true
	}

	if rest, ok := hasWordPrefix(line, "class"); ok {
		if tail, ok := hasWordPrefix(rest, "default"); ok && trimSpace(tail) == "" {
			return SelectInfo{Kind: "default"}, true
		}
		if tail, ok := hasWordPrefix(rest, "is"); ok {
			if content, _, ok := matchParen(tail, 0); ok {
				return SelectInfo{Kind: "class_is", Expr: trimSpace(content)}, true
			}
		}
		return SelectInfo{}, false
	}

	if rest, ok := hasWordPrefix(line, "type"); ok {
		if tail, ok := hasWordPrefix(rest, "is"); ok {
			if content, _, ok := matchParen(tail, 0); ok {
				return SelectInfo{Kind: "type_is", Expr: trimSpace(content)}, true
			}
		}
		return SelectInfo{}, false
	}

	if strings.EqualFold(trimSpace(line), "default") {
		return SelectInfo{Kind: "default"}, true
	}

	return SelectInfo{}, false
}
