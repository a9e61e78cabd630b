// Package recognizers implements the Pattern Recognizers (spec §4.5):
// ~17 stateless predicates that classify a stripped, comment-free,
// continuation-joined logical line and extract its fields. Ported from
// the original's read_var_def/read_sub_def/read_fun_def/... family,
// laid out one file per statement kind the way the teacher splits its
// statement parsers across apar.go/assign.go/delete.go/feature.go/
// function.go/hold.go.
package recognizers

import "strings"

// splitTopLevel splits s on sep, ignoring any sep that falls inside a
// matching pair of parens or inside a quoted string. Ported from the
// original's bracket-aware comma splitting used throughout
// read_var_def's declarator and keyword lists.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// matchParen returns the content between the first balanced paren pair
// starting at or after s[from], and the index just past the closing
// paren. ok is false if s[from:] doesn't open with '(' or never
// balances.
func matchParen(s string, from int) (content string, end int, ok bool) {
	i := from
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i >= len(s) || s[i] != '(' {
		return "", from, false
	}
	depth := 0
	var quote byte
	start := i + 1
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return s[start:i], i + 1, true
			}
		}
	}
	return "", from, false
}

// trimSpace is strings.TrimSpace, aliased for readability at call
// sites that otherwise read oddly with the stdlib name repeated.
func trimSpace(s string) string { return strings.TrimSpace(s) }

// leadWord returns the leading run of identifier runes in s (after
// skipping leading blanks) lower-cased, and the index right after it
// in the original string.
func leadWord(s string) (word string, end int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return strings.ToLower(s[start:i]), i
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// hasWordPrefix reports whether s, after skipping leading blanks,
// begins with word followed by a non-identifier byte or end of
// string, case-insensitively, and returns the remainder of s just past
// word (with any immediately following blanks skipped).
func hasWordPrefix(s, word string) (rest string, ok bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if len(s)-i < len(word) {
		return "", false
	}
	if !strings.EqualFold(s[i:i+len(word)], word) {
		return "", false
	}
	j := i + len(word)
	if j < len(s) && isIdentByte(s[j]) {
		return "", false
	}
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	return s[j:], true
}

// Dispatch runs the ordered, first-match-wins recognizer list from
// spec §4.5 and returns the kind tag and typed info of whichever
// recognizer matched. kind is "" and ok is false when line recognizes
// as nothing (spec §7: "malformed declaration... line skipped
// silently").
func Dispatch(line string) (kind string, info any, ok bool) {
	line = trimSpace(line)
	if line == "" {
		return "", nil, false
	}

	if v, ok := RecognizeVariable(line); ok {
		return "var", v, true
	}
	if v, ok := RecognizeSubroutine(line); ok {
		return "sub", v, true
	}
	if v, ok := RecognizeFunction(line); ok {
		return "fun", v, true
	}
	if v, ok := RecognizeBlock(line); ok {
		return "block", v, true
	}
	if v, ok := RecognizeAssociate(line); ok {
		return "assoc", v, true
	}
	if v, ok := RecognizeSelect(line); ok {
		return "select", v, true
	}
	if v, ok := RecognizeDerivedType(line); ok {
		return "typ", v, true
	}
	if v, ok := RecognizeEnum(line); ok {
		return "enum", v, true
	}
	if v, ok := RecognizeUse(line); ok {
		return "use", v, true
	}
	if v, ok := RecognizeImport(line); ok {
		return "import", v, true
	}
	if v, ok := RecognizeInterface(line); ok {
		return "int", v, true
	}
	if v, ok := RecognizeGeneric(line); ok {
		return "gen", v, true
	}
	if v, ok := RecognizeModule(line); ok {
		return "mod", v, true
	}
	if v, ok := RecognizeModuleProcedure(line); ok {
		return "int_pro", v, true
	}
	if v, ok := RecognizeProgram(line); ok {
		return "prog", v, true
	}
	if v, ok := RecognizeSubmodule(line); ok {
		return "smod", v, true
	}
	if v, ok := RecognizeInclude(line); ok {
		return "inc", v, true
	}
	if v, ok := RecognizeVisibility(line); ok {
		return "vis", v, true
	}
	return "", nil, false
}
