// Package builder implements the Scope Stack & AST Builder (spec
// §4.6): it walks a file's preprocessed line stream through the
// splicer and recognizer dispatch, maintaining a scope stack rooted at
// the implicit "none" scope, and assembles the §3 AST. Ported from the
// original's process_file main loop.
package builder

import (
	"regexp"
	"strings"

	"github.com/freevryheid/fortls/internal/data"
	"github.com/freevryheid/fortls/internal/langid"
	"github.com/freevryheid/fortls/internal/logger"
	"github.com/freevryheid/fortls/internal/splicer"
	"github.com/freevryheid/fortls/pkg/fortran"
)

var endRegex = regexp.MustCompile(`(?i)^end\s*(module|submodule|program|subroutine|function|type|interface|enum|block|do|if|where|select|associate)?\s*([A-Za-z_]\w*)?$`)

var labelRegex = regexp.MustCompile(`^(\d+)\s+(.*)$`)

var store = data.Default()

// docState is the §9 doc-comment state machine: a pending buffer of
// forward-marked (`!>`) lines waiting to attach to the next
// declaration.
type docState struct {
	forward []string
}

type builder struct {
	file  *fortran.File
	stack []*fortran.Scope
	doc   docState

	anonCounters map[string]int
	labelStack   []labelFrame

	// externalByName and typedByName index, per enclosing scope,
	// variables declared with the EXTERNAL attribute and typed
	// variables respectively, each not yet merged with an opposite-
	// flavour declaration of the same name (spec §4.6 "External
	// resolution").
	externalByName map[*fortran.Scope]map[string]*fortran.Variable
	typedByName    map[*fortran.Scope]map[string]*fortran.Variable

	lastDecl fortran.Declaration
}

type labelFrame struct {
	label string
	scope *fortran.Scope
}

// Build drives f's preprocessed lines through the splicer and
// recognizer dispatch and populates f.AST, f.VariableList,
// f.ExternalObjs, f.ParseErrors, and f.EndErrors.
func Build(f *fortran.File) error {
	b := &builder{
		file:           f,
		anonCounters:   map[string]int{},
		externalByName: map[*fortran.Scope]map[string]*fortran.Variable{},
	}
	root := &fortran.Scope{Kind: fortran.ScopeNone, Name: "none", SLine: 1}
	b.stack = []*fortran.Scope{root}
	f.AST = root
	f.VariableList = nil
	f.ExternalObjs = nil
	f.ParseErrors = nil
	f.EndErrors = nil

	consumed := make([]bool, f.NLines)

	for i := 0; i < f.NLines; i++ {
		lineNo := i + 1
		if consumed[i] {
			continue
		}
		if b.excluded(lineNo) {
			continue
		}
		raw, ok := f.Line(i, true)
		if !ok {
			continue
		}
		if strings.TrimRight(raw, " \t\r") == "" {
			continue
		}

		if splicer.IsCommentLine(raw, f.Fixed) && !splicer.IsOpenMPSentinel(raw, f.Fixed) {
			b.handleComment(raw, lineNo)
			continue
		}

		pre, cur, post, ok := splicer.Splice(f, i, true, false, true)
		_ = pre
		if !ok {
			continue
		}
		for j := 1; j <= len(post); j++ {
			consumed[i+j] = true
		}

		logical := strings.TrimSpace(splicer.StripComment(cur, f.Fixed))
		for _, p := range post {
			seg := strings.TrimSpace(splicer.StripComment(p, f.Fixed))
			if seg == "" {
				continue
			}
			if logical == "" {
				logical = seg
			} else {
				logical = logical + " " + seg
			}
		}
		if logical == "" {
			continue
		}

		for _, stmt := range splitSemicolons(logical) {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			b.statement(stmt, lineNo)
		}
	}

	b.flushForwardDoc()

	for len(b.stack) > 1 {
		top := b.stack[len(b.stack)-1]
		f.EndErrors = append(f.EndErrors, fortran.EndError{
			OpenLine:  top.SLine,
			CloseLine: f.NLines,
			Message:   "unclosed " + top.Kind.String() + " scope '" + top.Name + "'",
		})
		top.ELine = f.NLines
		b.stack = b.stack[:len(b.stack)-1]
	}

	if len(f.EndErrors) > 0 || len(f.ParseErrors) > 0 {
		logger.Debug("build %s: %d end error(s), %d parse error(s)", f.Path, len(f.EndErrors), len(f.ParseErrors))
	}
	return nil
}

// excluded reports whether lineNo falls inside a preprocessor skip
// range or is a #define/#undef line (spec §4.6 "skipping those inside
// skips or equal to a #define line").
func (b *builder) excluded(lineNo int) bool {
	for _, r := range b.file.PreprocSkips {
		if lineNo >= r[0] && lineNo <= r[1] {
			return true
		}
	}
	for _, l := range b.file.PreprocDefineLines {
		if l == lineNo {
			return true
		}
	}
	return false
}

func (b *builder) top() *fortran.Scope {
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(s *fortran.Scope) {
	s.Parent = b.top()
	s.Parent.Scopes = append(s.Parent.Scopes, s)
	b.stack = append(b.stack, s)
}

func (b *builder) pop() *fortran.Scope {
	s := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	return s
}

// anonName returns the next synthetic scope name for token, counted
// independently per token (spec §3's synthetic-name set: "BLOCK",
// "DO", "WHERE", "IF", "SELECT", "ENUM", "PROGRAM", plus the
// irregular "ASSOC" for associate constructs and "GEN_INT" for
// anonymous interfaces — callers pass the exact token, not the
// construct keyword, since the two don't always match).
func (b *builder) anonName(token string) string {
	b.anonCounters[token]++
	return "#" + strings.ToUpper(token) + itoa(b.anonCounters[token])
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// handleComment feeds one comment physical line into the doc-comment
// state machine (spec §9): forward (`!>`) lines accumulate onto the
// pending buffer; continuation (`!!`) lines extend a pending forward
// buffer and are dropped when none is open; backward (`!<`) lines
// attach immediately to the most recently
// emitted declaration. Any other comment flushes (discards) a pending
// forward buffer, since a plain comment breaks the doc-comment/
// declaration adjacency the original requires.
func (b *builder) handleComment(raw string, lineNo int) {
	markers := langid.DocMarkers(b.file.Fixed)
	body := commentMarkerBody(raw, b.file.Fixed)

	switch {
	case markers.MatchForward(body):
		b.doc.forward = append(b.doc.forward, strings.TrimSpace(body[1:]))
	case markers.MatchBackward(body):
		text := strings.TrimSpace(body[1:])
		if b.lastDecl != nil {
			b.attachDoc(b.lastDecl, text, true)
		}
	case markers.MatchContinuation(body) && len(b.doc.forward) > 0:
		b.doc.forward = append(b.doc.forward, strings.TrimSpace(body[1:]))
	default:
		b.doc.forward = nil
	}
}

// attachDoc appends text to decl's doc comment. Since Declaration is
// an interface and only DocComment itself carries text, doc text for
// non-DocComment declarations is recorded as a standalone DocComment
// node, appended to the current scope's Decls list in both the
// forward and backward (trailing) case.
func (b *builder) attachDoc(decl fortran.Declaration, text string, trailing bool) {
	if text == "" {
		return
	}
	dc := &fortran.DocComment{Text: "!! " + text, Line: decl.DeclLine()}
	scope := b.top()
	if trailing {
		scope.Decls = append(scope.Decls, dc)
		return
	}
	scope.Decls = append(scope.Decls, dc)
}

// flushForwardDoc emits any still-pending forward doc buffer as a
// standalone DocComment when EOF is reached with no declaration to
// attach to.
func (b *builder) flushForwardDoc() {
	if len(b.doc.forward) == 0 {
		return
	}
	text := b.takeForwardDoc()
	b.top().Decls = append(b.top().Decls, &fortran.DocComment{Text: text, Line: b.file.NLines})
}

// takeForwardDoc consumes and returns the pending forward-doc buffer
// (joined with "!! " line prefixes per spec §6), clearing it.
func (b *builder) takeForwardDoc() string {
	if len(b.doc.forward) == 0 {
		return ""
	}
	text := "!! " + strings.Join(b.doc.forward, "\n!! ")
	b.doc.forward = nil
	return text
}

func commentMarkerBody(line string, fixed bool) string {
	if fixed {
		if len(line) == 0 {
			return ""
		}
		return line[1:]
	}
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] != '!' {
		return ""
	}
	return trimmed[1:]
}

// splitSemicolons splits a logical line on top-level (outside strings/
// parens) semicolons, per spec §4.6.
func splitSemicolons(line string) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
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
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			parts = append(parts, line[start:i])
			start = i + 1
		}
	}
	parts = append(parts, line[start:])
	return parts
}
