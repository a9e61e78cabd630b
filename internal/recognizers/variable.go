package recognizers

import (
	"strings"

	"github.com/freevryheid/fortls/internal/data"
)

// Declarator is one comma-separated entity in a variable declaration's
// declarator list: NAME[(dims)][*len][= init | => target].
type Declarator struct {
	Name        string
	Dims        string // raw dimension-spec text, empty if absent
	Len         string // raw *len text, empty if absent
	Init        string // raw initializer/target text, empty if absent
	InitIsAlias bool   // true for "=> target", false for "= value"
}

// VarInfo is the §4.5 item 1 "VAR_info" tagged variant.
type VarInfo struct {
	TypeWord    string // canonical, uppercased, e.g. "INTEGER", "TYPE(FOO)"
	Keywords    []string
	Declarators []Declarator
	// FunctionPrefix is set when the type word introduces a function
	// declaration (e.g. "integer function f(x)") rather than a
	// declarator list; Fun holds the delegated function parse.
	FunctionPrefix bool
	Fun            *FunInfo
}

var store = data.Default()

// RecognizeVariable implements spec §4.5 item 1, ported from the
// original's read_var_def: a leading type word, an optional balanced
// kind/length spec, a comma-separated keyword-attribute list, then
// either a function prefix (delegated to RecognizeFunction) or a `::`
// separator followed by a comma-separated declarator list.
func RecognizeVariable(line string) (VarInfo, bool) {
	typeWord, rest, ok := matchTypeWord(line)
	if !ok {
		return VarInfo{}, false
	}

	info := VarInfo{TypeWord: typeWord}

	rest = strings.TrimLeft(rest, " \t")
	for strings.HasPrefix(rest, ",") {
		rest = strings.TrimLeft(rest[1:], " \t")
		kw, tail, ok := matchKeyword(rest)
		if !ok {
			break
		}
		info.Keywords = append(info.Keywords, kw)
		rest = strings.TrimLeft(tail, " \t")
	}

	if strings.HasPrefix(rest, "::") {
		rest = strings.TrimLeft(rest[2:], " \t")
	} else if fw, _ := leadWord(rest); fw == "function" {
		fun, ok := RecognizeFunction(rest)
		if !ok {
			return VarInfo{}, false
		}
		info.FunctionPrefix = true
		info.Fun = &fun
		return info, true
	}
	// Otherwise rest is a declarator list with no `::` separator, e.g.
	// "integer i" — legal pre-F90 style, still a declaration.

	if rest == "" && info.Keywords == nil {
		// Bare "integer" with nothing else is not a declaration.
		return VarInfo{}, false
	}

	decls := splitTopLevel(rest, ',')
	for _, d := range decls {
		d = trimSpace(d)
		if d == "" {
			continue
		}
		decl, ok := parseDeclarator(d)
		if !ok {
			return VarInfo{}, false
		}
		info.Declarators = append(info.Declarators, decl)
	}
	if len(info.Declarators) == 0 {
		return VarInfo{}, false
	}
	return info, true
}

// matchTypeWord recognizes one of the closed-set type words at the
// start of line, including its optional balanced kind/length spec
// (e.g. "character(len=10)", "type(foo)"), and returns the canonical
// descriptor text plus the remainder of the line.
func matchTypeWord(line string) (typeWord string, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	upper := strings.ToUpper(trimmed)

	// Two-word type words first so "double precision" isn't mistaken
	// for anything shorter.
	for _, tw := range []string{"DOUBLE PRECISION", "DOUBLE COMPLEX"} {
		if strings.HasPrefix(upper, tw) {
			after := trimmed[len(tw):]
			if after != "" && isIdentByte(after[0]) {
				continue
			}
			return tw, after, true
		}
	}

	word, end := leadWord(trimmed)
	canonical := strings.ToUpper(word)
	if !store.IsTypeWord(canonical) {
		return "", "", false
	}
	rest = trimmed[end:]

	if content, next, ok := matchParen(rest, 0); ok {
		canonical = canonical + "(" + strings.ToUpper(trimSpace(content)) + ")"
		rest = rest[next:]
	} else if canonical == "TYPE" || canonical == "CLASS" {
		// Without a parenthesised spec these words open a derived-type
		// definition or a select-type arm, not a declaration.
		return "", "", false
	} else if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "*") {
		tail := strings.TrimLeft(rest, " \t")[1:]
		tail = strings.TrimLeft(tail, " \t")
		n, end := leadNumber(tail)
		canonical = canonical + "*" + n
		rest = tail[end:]
	}
	return canonical, rest, true
}

func leadNumber(s string) (string, int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], i
}

// matchKeyword recognizes one attribute keyword, with its optional
// parenthesised argument (e.g. "intent(in)", "dimension(:,:)"), and
// returns it lower-cased with the paren argument intact.
func matchKeyword(s string) (kw string, rest string, ok bool) {
	word, end := leadWord(s)
	if word == "" {
		return "", s, false
	}
	rest = s[end:]
	if content, next, ok := matchParen(rest, 0); ok {
		kw = word + "(" + strings.ToLower(trimSpace(content)) + ")"
		rest = rest[next:]
		return kw, rest, true
	}
	return word, rest, true
}

// parseDeclarator parses one NAME[(dims)][*len][= init|=> target]
// entity from a declarator-list element.
func parseDeclarator(s string) (Declarator, bool) {
	word, end := leadWord(s)
	if word == "" {
		return Declarator{}, false
	}
	d := Declarator{Name: strings.ToLower(word)}
	rest := s[end:]

	if content, next, ok := matchParen(rest, 0); ok {
		d.Dims = trimSpace(content)
		rest = rest[next:]
	}

	rest = strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(rest, "*") {
		tail := strings.TrimLeft(rest[1:], " \t")
		if content, next, ok := matchParen(tail, 0); ok {
			d.Len = trimSpace(content)
			rest = tail[next:]
		} else {
			n, end := leadNumber(tail)
			d.Len = n
			rest = tail[end:]
		}
	}

	rest = strings.TrimLeft(rest, " \t")
	switch {
	case strings.HasPrefix(rest, "=>"):
		d.Init = trimSpace(rest[2:])
		d.InitIsAlias = true
	case strings.HasPrefix(rest, "="):
		d.Init = trimSpace(rest[1:])
	}
	return d, true
}
