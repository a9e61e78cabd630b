package recognizers

import "strings"

// SubInfo is the §4.5 item 2 "SUB_info" tagged variant.
type SubInfo struct {
	Name      string
	Args      []string
	Modifiers []string
}

// RecognizeSubroutine implements spec §4.5 item 2, ported from the
// original's read_sub_def: zero or more modifier keywords (pure,
// elemental, recursive, impure, module, non_recursive, atomic),
// consumed and remembered, then `subroutine NAME[(args)]`.
func RecognizeSubroutine(line string) (SubInfo, bool) {
	rest, mods := consumeModifiers(line)
	tail, ok := hasWordPrefix(rest, "subroutine")
	if !ok {
		return SubInfo{}, false
	}
	name, end := leadWord(tail)
	if name == "" {
		return SubInfo{}, false
	}
	info := SubInfo{Name: strings.ToLower(name), Modifiers: mods}
	after := tail[end:]
	if content, _, ok := matchParen(after, 0); ok {
		info.Args = splitArgs(content)
	}
	return info, true
}

// consumeModifiers strips any leading run of construct-modifier
// keywords from line, returning what's left and the modifiers found
// in source order, lower-cased.
func consumeModifiers(line string) (rest string, mods []string) {
	rest = line
	for {
		word, end := leadWord(rest)
		if word == "" || !store.IsConstructModifier(word) {
			return rest, mods
		}
		mods = append(mods, word)
		rest = rest[end:]
		rest = strings.TrimLeft(rest, " \t")
	}
}

// splitArgs splits a parenthesised argument list on top-level commas,
// trimming and lower-casing each name. A lone "*" alt-return marker is
// kept as-is.
func splitArgs(s string) []string {
	s = trimSpace(s)
	if s == "" {
		return nil
	}
	parts := splitTopLevel(s, ',')
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = trimSpace(p)
		if p == "" {
			continue
		}
		if p != "*" {
			p = strings.ToLower(p)
		}
		out = append(out, p)
	}
	return out
}
