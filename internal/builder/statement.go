package builder

import (
	"regexp"
	"strings"

	"github.com/freevryheid/fortls/internal/recognizers"
	"github.com/freevryheid/fortls/pkg/fortran"
)

var doLabelRegex = regexp.MustCompile(`(?i)^do\s+(\d+)\b`)

// statement processes one semicolon-split logical statement, per spec
// §4.6: end-statement closing, labelled-DO closing, contains/implicit
// bookkeeping, SELECT TYPE/CLASS arm handling, and ordinary recognizer
// dispatch.
func (b *builder) statement(stmt string, lineNo int) {
	if m := labelRegex.FindStringSubmatch(stmt); m != nil {
		b.closeLabelledDo(m[1], lineNo)
		stmt = strings.TrimSpace(m[2])
		if stmt == "" {
			return
		}
	}

	if m := endRegex.FindStringSubmatch(stmt); m != nil {
		b.closeEnd(m[1], m[2], lineNo)
		return
	}

	lower := strings.ToLower(stmt)
	if lower == "contains" {
		b.handleContains(lineNo)
		return
	}
	if strings.HasPrefix(lower, "implicit") {
		b.handleImplicit(lineNo)
		return
	}

	kind, info, ok := recognizers.Dispatch(stmt)
	if !ok {
		return
	}

	switch kind {
	case "var":
		b.handleVar(info.(recognizers.VarInfo), lineNo)
	case "sub":
		b.openSubroutine(info.(recognizers.SubInfo), lineNo)
	case "fun":
		b.openFunction(info.(recognizers.FunInfo), "", nil, lineNo)
	case "block":
		b.handleBlock(info.(recognizers.BlockInfo), stmt, lineNo)
	case "assoc":
		b.openAssociate(info.(recognizers.AssociateInfo), lineNo)
	case "select":
		b.handleSelect(info.(recognizers.SelectInfo), lineNo)
	case "typ":
		b.openDerivedType(info.(recognizers.TypeInfo), lineNo)
	case "enum":
		b.push(&fortran.Scope{Kind: fortran.ScopeEnum, Name: b.anonName("enum"), SLine: lineNo})
	case "use":
		b.addUse(info.(recognizers.UseInfo), lineNo)
	case "import":
		b.addImport(info.(recognizers.ImportInfo), lineNo)
	case "int":
		b.openInterface(info.(recognizers.InterfaceInfo), lineNo)
	case "gen":
		b.addGeneric(info.(recognizers.GenericInfo), lineNo)
	case "mod":
		b.push(&fortran.Scope{Kind: fortran.ScopeModule, Name: info.(recognizers.ModuleInfo).Name, SLine: lineNo, VisibilityDefault: 1})
	case "int_pro":
		b.handleModuleProcedure(info.(recognizers.ModuleProcedureInfo), lineNo)
	case "prog":
		name := info.(recognizers.ProgramInfo).Name
		if name == "" {
			name = b.anonName("program")
		}
		b.push(&fortran.Scope{Kind: fortran.ScopeProgram, Name: name, SLine: lineNo})
	case "smod":
		smod := info.(recognizers.SubmoduleInfo)
		b.push(&fortran.Scope{Kind: fortran.ScopeSubmodule, Name: smod.Name, Extends: smod.Parent, SLine: lineNo})
	case "inc":
		decl := &fortran.Include{Path: info.(recognizers.IncludeInfo).Path, Line: lineNo}
		b.top().Decls = append(b.top().Decls, decl)
		b.lastDecl = decl
	case "vis":
		b.handleVisibility(info.(recognizers.VisibilityInfo), lineNo)
	}
}

func (b *builder) closeLabelledDo(label string, lineNo int) {
	for len(b.labelStack) > 0 && b.labelStack[len(b.labelStack)-1].label == label {
		frame := b.labelStack[len(b.labelStack)-1]
		b.labelStack = b.labelStack[:len(b.labelStack)-1]
		if b.top() == frame.scope && b.top().Kind == fortran.ScopeDo {
			b.closeScope(lineNo, "do", "")
		}
	}
}

// closeEnd closes the current scope for an `end[word[name]]` line,
// asserting word against the scope kind and name against the scope
// name (spec §4.6); a mismatch records an EndError but the scope still
// closes.
func (b *builder) closeEnd(word, name string, lineNo int) {
	b.closeSelectInnerIfOpen(lineNo)
	b.closeScope(lineNo, strings.ToLower(word), strings.ToLower(name))
}

func (b *builder) closeScope(lineNo int, word, name string) {
	if len(b.stack) <= 1 {
		b.file.EndErrors = append(b.file.EndErrors, fortran.EndError{
			CloseLine: lineNo,
			Message:   "end statement with no open scope",
		})
		return
	}
	top := b.pop()
	top.ELine = lineNo

	if word != "" && !kindMatchesWord(top.Kind, word) {
		b.file.EndErrors = append(b.file.EndErrors, fortran.EndError{
			OpenLine:  top.SLine,
			CloseLine: lineNo,
			Message:   "expected 'end " + top.Kind.String() + "', got 'end " + word + "'",
		})
	}
	if name != "" && top.Name != "" && !strings.EqualFold(name, top.Name) {
		b.file.EndErrors = append(b.file.EndErrors, fortran.EndError{
			OpenLine:  top.SLine,
			CloseLine: lineNo,
			Message:   "expected name '" + top.Name + "', got '" + name + "'",
		})
	} else if name != "" && top.Name == "" {
		b.file.EndErrors = append(b.file.EndErrors, fortran.EndError{
			OpenLine:  top.SLine,
			CloseLine: lineNo,
			Message:   "unexpected name '" + name + "' on end statement",
		})
	}
}

func kindMatchesWord(kind fortran.ScopeKind, word string) bool {
	return kind.String() == word
}

// closeSelectInnerIfOpen auto-closes an open SELECT TYPE/CLASS arm
// sub-scope before the outer `end select` closes the construct itself
// (spec §4.6).
func (b *builder) closeSelectInnerIfOpen(lineNo int) {
	if len(b.stack) < 2 {
		return
	}
	top := b.top()
	if top.Kind == fortran.ScopeSelect && top.Name != "" && strings.HasPrefix(top.Name, "#case") {
		top.ELine = lineNo
		b.pop()
	}
}

func (b *builder) handleContains(lineNo int) {
	s := b.top()
	if s.Kind == fortran.ScopeNone {
		b.file.ParseErrors = append(b.file.ParseErrors, fortran.ParseError{Line: lineNo, Message: "'contains' outside any scope"})
		return
	}
	if s.ContainsSeen {
		b.file.ParseErrors = append(b.file.ParseErrors, fortran.ParseError{Line: lineNo, Message: "duplicate 'contains' in scope '" + s.Name + "'"})
		return
	}
	s.ContainsSeen = true
}

func (b *builder) handleImplicit(lineNo int) {
	s := b.top()
	if s.Kind == fortran.ScopeNone {
		b.file.ParseErrors = append(b.file.ParseErrors, fortran.ParseError{Line: lineNo, Message: "'implicit' outside any scope"})
		return
	}
	s.Implicit = true
}

func (b *builder) handleVisibility(info recognizers.VisibilityInfo, lineNo int) {
	s := b.top()
	if s.Kind == fortran.ScopeNone {
		b.file.ParseErrors = append(b.file.ParseErrors, fortran.ParseError{Line: lineNo, Message: "visibility statement outside any scope"})
		return
	}
	if len(info.Names) == 0 {
		if info.Public {
			s.VisibilityDefault = 1
		} else {
			s.VisibilityDefault = -1
		}
		return
	}
	decl := &fortran.Visibility{Public: info.Public, Names: info.Names, Line: lineNo}
	s.Decls = append(s.Decls, decl)
	b.lastDecl = decl
}
