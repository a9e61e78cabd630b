package recognizers

import "strings"

// TypeInfo is the §4.5 item 7 "typ" tagged variant.
type TypeInfo struct {
	Name    string
	Extends string // parent type name, empty if absent
	Attrs   []string
}

// RecognizeDerivedType implements spec §4.5 item 7, ported from the
// original's read_type_def: `type [, attrs] [::] NAME`, where attrs
// may include `extends(parent)`.
func RecognizeDerivedType(line string) (TypeInfo, bool) {
	rest, ok := hasWordPrefix(line, "type")
	if !ok {
		return TypeInfo{}, false
	}
	// "type(" is a variable declaration (TYPE(foo) :: x), not a
	// derived-type definition; reject it here so RecognizeVariable
	// (which runs first in Dispatch anyway) owns that shape.
	if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "(") {
		return TypeInfo{}, false
	}

	var info TypeInfo
	rest = strings.TrimLeft(rest, " \t")
	for strings.HasPrefix(rest, ",") {
		rest = strings.TrimLeft(rest[1:], " \t")
		word, end := leadWord(rest)
		if word == "" {
			return TypeInfo{}, false
		}
		tail := rest[end:]
		if strings.EqualFold(word, "extends") {
			content, next, ok := matchParen(tail, 0)
			if !ok {
				return TypeInfo{}, false
			}
			info.Extends = strings.ToLower(trimSpace(content))
			rest = tail[next:]
		} else {
			info.Attrs = append(info.Attrs, strings.ToLower(word))
			rest = tail
		}
		rest = strings.TrimLeft(rest, " \t")
	}

	if strings.HasPrefix(rest, "::") {
		rest = strings.TrimLeft(rest[2:], " \t")
	}

	name, end := leadWord(rest)
	if name == "" {
		return TypeInfo{}, false
	}
	// Anything trailing the name other than blanks means this isn't a
	// bare type-definition header.
	if trimSpace(rest[end:]) != "" {
		return TypeInfo{}, false
	}
	info.Name = strings.ToLower(name)
	return info, true
}
