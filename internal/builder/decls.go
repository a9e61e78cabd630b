package builder

import (
	"strings"

	"github.com/freevryheid/fortls/internal/recognizers"
	"github.com/freevryheid/fortls/pkg/fortran"
)

// addDecl attaches any pending forward doc-comment buffer ahead of d,
// appends d to the current scope, and records it as the most recent
// declaration for a trailing `!<` backward doc comment to attach to.
func (b *builder) addDecl(d fortran.Declaration) {
	if doc := b.takeForwardDoc(); doc != "" {
		b.top().Decls = append(b.top().Decls, &fortran.DocComment{Text: doc, Line: d.DeclLine()})
	}
	b.top().Decls = append(b.top().Decls, d)
	b.lastDecl = d
}

// externalMaps returns the current scope's typed-pending and
// external-pending name indices for spec §4.6's "External resolution"
// merge, allocating them on first use. Exact multiple-match counting
// is approximated by map presence (see DESIGN.md): in valid Fortran a
// name is declared at most once per flavour within a scope anyway.
func (b *builder) externalMaps() (map[string]*fortran.Variable, map[string]*fortran.Variable) {
	s := b.top()
	if b.externalByName[s] == nil {
		b.externalByName[s] = map[string]*fortran.Variable{}
	}
	if b.typedByName == nil {
		b.typedByName = map[*fortran.Scope]map[string]*fortran.Variable{}
	}
	if b.typedByName[s] == nil {
		b.typedByName[s] = map[string]*fortran.Variable{}
	}
	return b.typedByName[s], b.externalByName[s]
}

func (b *builder) handleVar(info recognizers.VarInfo, lineNo int) {
	if info.FunctionPrefix && info.Fun != nil {
		b.openFunction(*info.Fun, info.TypeWord, info.Keywords, lineNo)
		return
	}

	isExternal := info.TypeWord == "EXTERNAL"
	typedIdx, externalIdx := b.externalMaps()

	attrs := make([]string, 0, len(info.Keywords))
	for _, kw := range info.Keywords {
		if tag, ok := store.CanonicalAttribute(kw); ok {
			attrs = append(attrs, tag)
		} else {
			attrs = append(attrs, strings.ToUpper(kw))
		}
	}

	for _, d := range info.Declarators {
		name := d.Name

		if isExternal {
			if existing, ok := typedIdx[name]; ok {
				if !existing.HasAttribute("EXTERNAL") {
					existing.Attributes = append(existing.Attributes, "EXTERNAL")
				}
				delete(typedIdx, name)
				continue
			}
			v := &fortran.Variable{Name: name, Descriptor: info.TypeWord, Attributes: append([]string(nil), attrs...), Line: lineNo}
			b.addDecl(v)
			b.file.VariableList = append(b.file.VariableList, v)
			b.file.ExternalObjs = append(b.file.ExternalObjs, v)
			externalIdx[name] = v
			continue
		}

		if existing, ok := externalIdx[name]; ok {
			existing.Descriptor = descriptorFor(info.TypeWord, d)
			merged := append(existing.Attributes, attrs...)
			if !containsString(merged, "EXTERNAL") {
				merged = append(merged, "EXTERNAL")
			}
			existing.Attributes = dedupe(merged)
			if d.Init != "" && containsString(existing.Attributes, "PARAMETER") {
				existing.ParamValue = d.Init
			}
			delete(externalIdx, name)
			continue
		}

		v := &fortran.Variable{
			Name:       name,
			Descriptor: descriptorFor(info.TypeWord, d),
			Attributes: append([]string(nil), attrs...),
			Line:       lineNo,
		}
		if d.InitIsAlias {
			v.LinkTarget = d.Init
		} else if d.Init != "" && containsString(v.Attributes, "PARAMETER") {
			// The original only captures the initializer text when the
			// declarator carries the PARAMETER attribute (spec §3): a
			// plain "integer :: x = 3" initializer is not recorded.
			v.ParamValue = d.Init
		}
		b.addDecl(v)
		b.file.VariableList = append(b.file.VariableList, v)
		typedIdx[name] = v
	}
}

func descriptorFor(typeWord string, d recognizers.Declarator) string {
	if d.Len == "" {
		return typeWord
	}
	return typeWord + "*" + d.Len
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	seen := map[string]bool{}
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func (b *builder) openSubroutine(info recognizers.SubInfo, lineNo int) {
	s := &fortran.Scope{Kind: fortran.ScopeSubroutine, Name: info.Name, SLine: lineNo}
	s.Sub = &fortran.SubroutineSignature{
		Name:            info.Name,
		Args:            info.Args,
		Keywords:        info.Modifiers,
		ModuleProcedure: containsString(info.Modifiers, "module"),
	}
	b.push(s)
}

func (b *builder) openFunction(info recognizers.FunInfo, typeWord string, keywords []string, lineNo int) {
	s := &fortran.Scope{Kind: fortran.ScopeFunction, Name: info.Name, SLine: lineNo}
	s.Func = &fortran.FunctionSignature{
		Name:            info.Name,
		Args:            info.Args,
		Keywords:        info.Modifiers,
		ModuleProcedure: containsString(info.Modifiers, "module"),
		Result: fortran.ResultSignature{
			Type:     typeWord,
			Name:     info.ResultName,
			Keywords: keywords,
		},
	}
	b.push(s)
}

func (b *builder) handleBlock(info recognizers.BlockInfo, stmt string, lineNo int) {
	name := info.Label
	switch info.Keyword {
	case "block":
		if name == "" {
			name = b.anonName("block")
		}
		b.push(&fortran.Scope{Kind: fortran.ScopeBlock, Name: name, SLine: lineNo})
	case "do":
		if name == "" {
			name = b.anonName("do")
		}
		s := &fortran.Scope{Kind: fortran.ScopeDo, Name: name, SLine: lineNo}
		b.push(s)
		if m := doLabelRegex.FindStringSubmatch(stmt); m != nil {
			b.labelStack = append(b.labelStack, labelFrame{label: m[1], scope: s})
		}
	case "where":
		if name == "" {
			name = b.anonName("where")
		}
		b.push(&fortran.Scope{Kind: fortran.ScopeWhere, Name: name, SLine: lineNo})
	case "if":
		if name == "" {
			name = b.anonName("if")
		}
		b.push(&fortran.Scope{Kind: fortran.ScopeIf, Name: name, SLine: lineNo})
	}
}

func (b *builder) openAssociate(info recognizers.AssociateInfo, lineNo int) {
	s := &fortran.Scope{Kind: fortran.ScopeAssociate, Name: b.anonName("ASSOC"), SLine: lineNo}
	b.push(s)
	for _, bind := range info.Bindings {
		v := &fortran.Variable{Name: bind.Name, Descriptor: "ASSOCIATE(" + bind.Expr + ")", Line: lineNo}
		b.addDecl(v)
		b.file.VariableList = append(b.file.VariableList, v)
	}
}

func (b *builder) handleSelect(info recognizers.SelectInfo, lineNo int) {
	switch info.Kind {
	case "case", "type", "class":
		var sk fortran.SelectKind
		switch info.Kind {
		case "type":
			sk = fortran.SelectType
		case "class":
			sk = fortran.SelectClass
		default:
			sk = fortran.SelectCase
		}
		b.push(&fortran.Scope{Kind: fortran.ScopeSelect, Select: sk, Name: b.anonName("select"), SLine: lineNo})
		if info.AssocName != "" {
			v := &fortran.Variable{Name: info.AssocName, Descriptor: "ASSOCIATE(" + info.Expr + ")", Line: lineNo}
			b.addDecl(v)
			b.file.VariableList = append(b.file.VariableList, v)
		}
	case "default", "type_is", "class_is":
		// A new arm auto-closes any previously open arm sub-scope
		// before opening its own (spec §4.6).
		b.closeSelectInnerIfOpen(lineNo)
		if len(b.stack) > 0 && b.top().Kind == fortran.ScopeSelect {
			var sk fortran.SelectKind
			switch info.Kind {
			case "type_is":
				sk = fortran.SelectType
			case "class_is":
				sk = fortran.SelectClass
			default:
				sk = fortran.SelectDefault
			}
			b.push(&fortran.Scope{Kind: fortran.ScopeSelect, Select: sk, Name: "#case" + itoa(len(b.stack)), SLine: lineNo})
		}
	}
}

func (b *builder) openDerivedType(info recognizers.TypeInfo, lineNo int) {
	b.push(&fortran.Scope{Kind: fortran.ScopeDerivedType, Name: info.Name, Extends: info.Extends, SLine: lineNo})
}

func (b *builder) addUse(info recognizers.UseInfo, lineNo int) {
	decl := &fortran.Use{ModuleName: info.ModuleName, Only: info.Only, Rename: info.Rename, Line: lineNo}
	b.addDecl(decl)
}

func (b *builder) addImport(info recognizers.ImportInfo, lineNo int) {
	decl := &fortran.Use{ModuleName: fortran.ImportSentinelModule, Only: info.Names, Line: lineNo}
	b.addDecl(decl)
}

func (b *builder) openInterface(info recognizers.InterfaceInfo, lineNo int) {
	name := info.Name
	if name == "" {
		name = b.anonName("GEN_INT")
	}
	b.push(&fortran.Scope{Kind: fortran.ScopeInterface, Name: name, SLine: lineNo})
}

func (b *builder) addGeneric(info recognizers.GenericInfo, lineNo int) {
	public := b.top().VisibilityDefault >= 0
	if info.HasVisibility {
		public = info.Public
	}
	decl := &fortran.GenericBinding{Name: info.Name, Procedures: info.Procedures, Public: public, Line: lineNo}
	b.addDecl(decl)
}

func (b *builder) handleModuleProcedure(info recognizers.ModuleProcedureInfo, lineNo int) {
	s := b.top()
	if s.Kind == fortran.ScopeInterface {
		for _, name := range info.Names {
			decl := &fortran.InterfaceMember{Name: name, Line: lineNo}
			b.addDecl(decl)
		}
		return
	}
	if s.Kind == fortran.ScopeSubmodule && len(info.Names) > 0 {
		b.push(&fortran.Scope{Kind: fortran.ScopeSubmoduleProcedureImpl, Name: info.Names[0], SLine: lineNo})
	}
}
