// Package preprocessor implements the C-style preprocessor pass (spec
// §4.4): conditional inclusion/exclusion accounting, #define/#undef
// bookkeeping (including multiline macros), #include resolution, and
// word-boundary macro substitution. Ported from the original's
// preprocess_file/eval_pp_if.
package preprocessor

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/freevryheid/fortls/internal/logger"
)

var (
	ppRegex        = regexp.MustCompile(`^\s*#\s*(if\s+|ifdef\b|ifndef\b|elif\b|else\b|endif\b)`)
	ppDefRegex     = regexp.MustCompile(`^\s*#\s*(define|undef)\s+(\w+)`)
	ppIncludeRegex = regexp.MustCompile(`^\s*#\s*include\s+"([^"]+)"`)
	definedRegex   = regexp.MustCompile(`defined\s*\(\s*(\w+)\s*\)`)
	wordRegex      = regexp.MustCompile(`\b[A-Za-z_]\w*\b`)
)

// Result is the output of a preprocessor pass: the line-for-line
// substituted source (same length/indexing as the input), the
// finalized exclusion ranges, the lines suppressed as #define/#undef
// directives, and the definitions map as it stood at end of file
// (which a caller threads into the next file's pp_defs, per spec
// §4.4's include semantics).
type Result struct {
	Lines       []string
	Skips       [][2]int
	DefineLines []int
	Defs        map[string]string
}

// Run preprocesses lines from filePath (used only to resolve relative
// #include directives and to seed include_dirs with the file's own
// directory; may be "" for an in-memory buffer with no includes).
// ppDefs and includeDirs are read-only caller inputs; Run never
// mutates them.
func Run(lines []string, filePath string, ppDefs map[string]string, includeDirs []string) Result {
	dirs := includeDirs
	if filePath != "" {
		dirs = append([]string{filepath.Dir(filePath)}, includeDirs...)
	}
	visited := map[string]bool{}
	if filePath != "" {
		if abs, err := filepath.Abs(filePath); err == nil {
			visited[abs] = true
		}
	}
	return run(lines, dirs, copyDefs(ppDefs), visited)
}

func copyDefs(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func run(lines []string, includeDirs []string, defsTmp map[string]string, visited map[string]bool) Result {
	var (
		skips       [][2]int
		defineLines []int
		output      = make([]string, 0, len(lines))
		stack       [][2]int
		defCont     string
		defRegexes  = map[string]*regexp.Regexp{}
	)

	for i, line := range lines {
		lineNo := i + 1

		if defCont != "" {
			output = append(output, "")
			trimmed := strings.TrimRight(line, " \t\r")
			if !strings.HasSuffix(trimmed, "\\") {
				defsTmp[defCont] += strings.TrimSpace(line)
				defCont = ""
			} else {
				defsTmp[defCont] += strings.TrimSpace(trimmed[:len(trimmed)-1])
			}
			continue
		}

		if loc := ppRegex.FindStringSubmatchIndex(line); loc != nil {
			output = append(output, line)
			kind := ppKind(line[loc[2]:loc[3]])

			switch kind {
			case "if", "ifdef", "ifndef":
				var isTrue bool
				switch kind {
				case "if":
					isTrue = evalPPIf(line[loc[3]:], defsTmp)
				case "ifdef":
					name := strings.TrimSpace(line[loc[1]:])
					isTrue = hasDef(defsTmp, name)
				case "ifndef":
					name := strings.TrimSpace(line[loc[1]:])
					isTrue = !hasDef(defsTmp, name)
				}
				if isTrue {
					stack = append(stack, [2]int{-1, -1})
				} else {
					stack = append(stack, [2]int{lineNo, -1})
				}
				continue
			}

			if len(stack) == 0 {
				continue
			}

			top := len(stack) - 1
			switch kind {
			case "elif":
				if stack[top][0] < 0 {
					stack[top][0] = lineNo
				} else if evalPPIf(line[loc[3]:], defsTmp) {
					stack[top][1] = lineNo - 1
					stack = append(stack, [2]int{-1, -1})
				}
			case "else":
				if stack[top][0] < 0 {
					stack[top][0] = lineNo
				} else {
					stack[top][1] = lineNo
				}
			case "endif":
				if stack[top][0] < 0 {
					stack = stack[:top]
					continue
				}
				if stack[top][1] < 0 {
					stack[top][1] = lineNo
				}
				skips = append(skips, stack[top])
				stack = stack[:top]
			}
			continue
		}

		if loc := ppDefRegex.FindStringSubmatchIndex(line); loc != nil && (len(stack) == 0 || stack[len(stack)-1][0] < 0) {
			output = append(output, line)
			defineLines = append(defineLines, lineNo)

			verb := line[loc[2]:loc[3]]
			name := line[loc[4]:loc[5]]
			rest := line[loc[1]:]

			switch verb {
			case "define":
				if !hasDef(defsTmp, name) {
					eqInd := strings.IndexByte(rest, ' ')
					if eqInd >= 0 {
						trimmedLine := strings.TrimRight(line, " \t\r")
						if strings.HasSuffix(trimmedLine, "\\") {
							value := line[loc[1]+eqInd : len(line)-1]
							defsTmp[name] = strings.TrimSpace(value)
							defCont = name
						} else {
							defsTmp[name] = strings.TrimSpace(rest[eqInd:])
						}
					} else {
						defsTmp[name] = "True"
					}
				}
			case "undef":
				delete(defsTmp, name)
			}
			continue
		}

		if loc := ppIncludeRegex.FindStringSubmatchIndex(line); loc != nil && (len(stack) == 0 || stack[len(stack)-1][0] < 0) {
			includeName := line[loc[2]:loc[3]]
			if path := resolveInclude(includeDirs, includeName); path != "" {
				if abs, err := filepath.Abs(path); err == nil && !visited[abs] {
					if raw, err := os.ReadFile(path); err == nil {
						visited[abs] = true
						sub := run(splitLines(string(raw)), append([]string{filepath.Dir(path)}, includeDirs...), defsTmp, visited)
						defsTmp = sub.Defs
					}
				} else if err == nil {
					logger.Debug("include %s already being processed, skipped", abs)
				}
			} else {
				logger.Debug("include %q not found", includeName)
			}
		}

		output = append(output, substituteDefs(line, defsTmp, defRegexes))
	}

	return Result{Lines: output, Skips: skips, DefineLines: defineLines, Defs: defsTmp}
}

// ppKind classifies the captured directive keyword text (possibly with
// trailing whitespace, for "if ") into a bare kind tag.
func ppKind(captured string) string {
	trimmed := strings.TrimSpace(captured)
	switch {
	case trimmed == "if":
		return "if"
	case trimmed == "ifndef":
		return "ifndef"
	case trimmed == "ifdef":
		return "ifdef"
	case trimmed == "elif":
		return "elif"
	case trimmed == "else":
		return "else"
	case trimmed == "endif":
		return "endif"
	}
	return ""
}

func hasDef(defs map[string]string, name string) bool {
	_, ok := defs[name]
	return ok
}

func resolveInclude(includeDirs []string, name string) string {
	for _, dir := range includeDirs {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func substituteDefs(line string, defs map[string]string, cache map[string]*regexp.Regexp) string {
	for name, value := range defs {
		re := cache[name]
		if re == nil {
			re = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
			cache[name] = re
		}
		if re.MatchString(line) {
			line = re.ReplaceAllString(line, value)
		}
	}
	return line
}

func splitLines(contents string) []string {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	contents = strings.ReplaceAll(contents, "\r", "\n")
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// evalPPIf evaluates a `#if`/`#elif` expression against the working
// definitions map, spec §4.4 steps (1)-(4). Any expression this small
// evaluator cannot parse yields false, the same fallback the original
// gets from a bare `except: return False` around Python's `eval`.
func evalPPIf(text string, defs map[string]string) (result bool) {
	defer func() {
		if recover() != nil {
			result = false
		}
	}()
	substituted := replaceVars(replaceDefined(text, defs), defs)
	expr := replaceOps(substituted)
	value, ok := evalBoolExpr(expr)
	if !ok {
		return false
	}
	return value
}

// Sentinels standing in for a `defined(X)` result while replaceVars
// runs: they must contain no word characters, or replaceVars' own
// identifier substitution would try to rewrite them.
const (
	definedTrueSentinel  = "\x01\x02\x01"
	definedFalseSentinel = "\x01\x03\x01"
)

func replaceDefined(text string, defs map[string]string) string {
	return definedRegex.ReplaceAllStringFunc(text, func(m string) string {
		sub := definedRegex.FindStringSubmatch(m)
		if hasDef(defs, sub[1]) {
			return definedTrueSentinel
		}
		return definedFalseSentinel
	})
}

func replaceVars(text string, defs map[string]string) string {
	out := wordRegex.ReplaceAllStringFunc(text, func(word string) string {
		if v, ok := defs[word]; ok {
			return v
		}
		return "False"
	})
	out = strings.ReplaceAll(out, definedTrueSentinel, "True")
	out = strings.ReplaceAll(out, definedFalseSentinel, "False")
	return out
}

func replaceOps(expr string) string {
	expr = strings.ReplaceAll(expr, "&&", " and ")
	expr = strings.ReplaceAll(expr, "||", " or ")
	expr = strings.ReplaceAll(expr, "!=", " <> ")
	expr = strings.ReplaceAll(expr, "!", " not ")
	expr = strings.ReplaceAll(expr, " <> ", " != ")
	return expr
}

var ppTokenSpacer = strings.NewReplacer(
	"!=", " != ", "==", " == ", "<=", " <= ", ">=", " >= ",
	"<", " < ", ">", " > ", "(", " ( ", ")", " ) ",
)

func tokenizePP(expr string) []string {
	return strings.Fields(ppTokenSpacer.Replace(expr))
}

type ppParser struct {
	tokens []string
	pos    int
}

func (p *ppParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *ppParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func evalBoolExpr(expr string) (bool, bool) {
	tokens := tokenizePP(expr)
	if len(tokens) == 0 {
		return false, false
	}
	p := &ppParser{tokens: tokens}
	v, ok := p.parseOr()
	if !ok || p.pos != len(p.tokens) {
		return false, false
	}
	return toBool(v), true
}

func (p *ppParser) parseOr() (any, bool) {
	left, ok := p.parseAnd()
	if !ok {
		return nil, false
	}
	for strings.EqualFold(p.peek(), "or") {
		p.next()
		right, ok := p.parseAnd()
		if !ok {
			return nil, false
		}
		left = toBool(left) || toBool(right)
	}
	return left, true
}

func (p *ppParser) parseAnd() (any, bool) {
	left, ok := p.parseNot()
	if !ok {
		return nil, false
	}
	for strings.EqualFold(p.peek(), "and") {
		p.next()
		right, ok := p.parseNot()
		if !ok {
			return nil, false
		}
		left = toBool(left) && toBool(right)
	}
	return left, true
}

func (p *ppParser) parseNot() (any, bool) {
	if strings.EqualFold(p.peek(), "not") {
		p.next()
		v, ok := p.parseNot()
		if !ok {
			return nil, false
		}
		return !toBool(v), true
	}
	return p.parseComparison()
}

func (p *ppParser) parseComparison() (any, bool) {
	left, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	switch p.peek() {
	case "!=", "==", "<", "<=", ">", ">=":
		op := p.next()
		right, ok := p.parseAtom()
		if !ok {
			return nil, false
		}
		return compareValues(left, right, op), true
	}
	return left, true
}

func (p *ppParser) parseAtom() (any, bool) {
	tok := p.next()
	switch {
	case tok == "":
		return nil, false
	case tok == "(":
		v, ok := p.parseOr()
		if !ok {
			return nil, false
		}
		if p.peek() != ")" {
			return nil, false
		}
		p.next()
		return v, true
	case strings.EqualFold(tok, "True"):
		return true, true
	case strings.EqualFold(tok, "False"):
		return false, true
	default:
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return f, true
		}
		return tok, true
	}
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && !strings.EqualFold(t, "false")
	}
	return false
}

func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func compareValues(left, right any, op string) bool {
	if lb, lok := left.(bool); lok {
		if rb, rok := right.(bool); rok {
			switch op {
			case "==":
				return lb == rb
			case "!=":
				return lb != rb
			}
			return false
		}
	}
	if lf, lok := toFloat(left); lok {
		if rf, rok := toFloat(right); rok {
			switch op {
			case "==":
				return lf == rf
			case "!=":
				return lf != rf
			case "<":
				return lf < rf
			case "<=":
				return lf <= rf
			case ">":
				return lf > rf
			case ">=":
				return lf >= rf
			}
		}
	}
	ls, rs := fmt.Sprint(left), fmt.Sprint(right)
	switch op {
	case "==":
		return ls == rs
	case "!=":
		return ls != rs
	}
	return false
}
