package recognizers

import "strings"

// FunInfo is the §4.5 item 3 "FUN_info" tagged variant.
type FunInfo struct {
	Name       string
	Args       []string
	Modifiers  []string
	ResultName string // empty unless an explicit result(name) clause is present
}

// RecognizeFunction implements spec §4.5 item 3, ported from the
// original's read_fun_def: the same modifier handling as subroutines,
// then `function NAME[(args)] [result(name)]`. When reached via
// RecognizeVariable's delegation (a type word directly followed by
// "function"), the caller attaches the type/keywords already seen to
// the resulting Fun's result signature; this recognizer itself only
// extracts the bare function shape.
func RecognizeFunction(line string) (FunInfo, bool) {
	rest, mods := consumeModifiers(line)
	tail, ok := hasWordPrefix(rest, "function")
	if !ok {
		return FunInfo{}, false
	}
	name, end := leadWord(tail)
	if name == "" {
		return FunInfo{}, false
	}
	info := FunInfo{Name: strings.ToLower(name), Modifiers: mods}
	after := tail[end:]
	if content, next, ok := matchParen(after, 0); ok {
		info.Args = splitArgs(content)
		after = after[next:]
	}

	if resTail, ok := hasWordPrefix(after, "result"); ok {
		if content, _, ok := matchParen(resTail, 0); ok {
			info.ResultName = strings.ToLower(trimSpace(content))
		}
	}
	return info, true
}
