package fortran

// ScopeKind is the closed set of lexical scope kinds from spec §3.
type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeModule
	ScopeSubmodule
	ScopeProgram
	ScopeSubroutine
	ScopeFunction
	ScopeDerivedType
	ScopeInterface
	ScopeEnum
	ScopeBlock
	ScopeDo
	ScopeIf
	ScopeWhere
	ScopeSelect
	ScopeAssociate
	ScopeSubmoduleProcedureImpl
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeNone:
		return "none"
	case ScopeModule:
		return "module"
	case ScopeSubmodule:
		return "submodule"
	case ScopeProgram:
		return "program"
	case ScopeSubroutine:
		return "subroutine"
	case ScopeFunction:
		return "function"
	case ScopeDerivedType:
		return "type"
	case ScopeInterface:
		return "interface"
	case ScopeEnum:
		return "enum"
	case ScopeBlock:
		return "block"
	case ScopeDo:
		return "do"
	case ScopeIf:
		return "if"
	case ScopeWhere:
		return "where"
	case ScopeSelect:
		return "select"
	case ScopeAssociate:
		return "associate"
	case ScopeSubmoduleProcedureImpl:
		return "submodule_procedure"
	default:
		return "unknown"
	}
}

// SelectKind is Select's sub-kind, per spec §3.
type SelectKind int

const (
	SelectNone SelectKind = iota
	SelectCase
	SelectType
	SelectClass
	SelectDefault
)

// Declaration is any child of a scope that is not itself a scope:
// variables, use statements, includes, doc blocks, interface members.
type Declaration interface {
	declNode()
	DeclLine() int
}

// Variable is the §3 "Variable record".
type Variable struct {
	Name       string // lower-cased
	Descriptor string // type-word plus kind/length suffix, uppercase
	Attributes []string
	LinkTarget string // optional; empty if unset
	ParamValue string // optional literal value for hover; empty if unset
	Line       int
}

func (*Variable) declNode()     {}
func (v *Variable) DeclLine() int { return v.Line }

// HasAttribute reports whether the canonical attribute tag is present.
func (v *Variable) HasAttribute(tag string) bool {
	for _, a := range v.Attributes {
		if a == tag {
			return true
		}
	}
	return false
}

// Use is the §3 "Use record". An `import` inside an interface is
// modeled as a Use of the sentinel module name "#IMPORT".
type Use struct {
	ModuleName string // original case preserved
	Only       []string
	Rename     map[string]string // local -> remote
	Line       int
}

func (*Use) declNode()       {}
func (u *Use) DeclLine() int { return u.Line }

// ImportSentinelModule is the synthetic module name used to model an
// `import` statement inside an interface body as a Use.
const ImportSentinelModule = "#IMPORT"

// Include is a Fortran `include "file"` statement (distinct from the
// preprocessor's `#include`).
type Include struct {
	Path string
	Line int
}

func (*Include) declNode()     {}
func (i *Include) DeclLine() int { return i.Line }

// DocComment is an attached doc-comment block (`!>`, `!<`, `!!`, or
// the fixed-form column equivalents), already joined into one string
// with "!! " line prefixes per spec §6.
type DocComment struct {
	Text string
	Line int
}

func (*DocComment) declNode()     {}
func (d *DocComment) DeclLine() int { return d.Line }

// InterfaceMember is one `module procedure NAME` entry inside an
// interface scope.
type InterfaceMember struct {
	Name string
	Line int
}

func (*InterfaceMember) declNode()     {}
func (m *InterfaceMember) DeclLine() int { return m.Line }

// GenericBinding is the §3 "Generic/interface binding".
type GenericBinding struct {
	Name       string
	Procedures []string
	Public     bool
	Line       int
}

func (*GenericBinding) declNode()     {}
func (g *GenericBinding) DeclLine() int { return g.Line }

// Visibility is an explicit `public`/`private` statement with an
// optional target-name list (an empty list sets the scope default).
type Visibility struct {
	Public bool
	Names  []string
	Line   int
}

func (*Visibility) declNode()     {}
func (v *Visibility) DeclLine() int { return v.Line }

// ResultSignature is a function's result clause: an optional declared
// type, an optional distinct result name, and any keyword attributes
// observed on the type that introduced it.
type ResultSignature struct {
	Type     string // empty if undeclared at this point
	Name     string // empty if the function name is also the result name
	Keywords []string
}

// FunctionSignature is the §3 "Function record", attached to a
// ScopeFunction scope.
type FunctionSignature struct {
	Name            string
	Args            []string
	Keywords        []string
	ModuleProcedure bool
	Result          ResultSignature
}

// SubroutineSignature is the analogous record for subroutines.
type SubroutineSignature struct {
	Name            string
	Args            []string
	Keywords        []string
	ModuleProcedure bool
}

// EndError records a mismatched or dangling `end` statement (§4.7).
type EndError struct {
	OpenLine  int
	CloseLine int
	Message   string
}

// ParseError records a structural diagnostic raised during the build
// pass that isn't tied to a single scope boundary (§4.7): implicit/
// contains/visibility outside scope, duplicate contains.
type ParseError struct {
	Line    int
	Message string
}

// Scope is a node in the §3 AST: a rooted tree whose root is the
// implicit "none" scope, which is never popped off the builder's
// stack.
type Scope struct {
	Kind    ScopeKind
	Select  SelectKind // meaningful only when Kind == ScopeSelect
	Name    string
	SLine   int
	ELine   int
	Parent  *Scope // back-reference, not an ownership edge
	Scopes  []*Scope
	Decls   []Declaration

	VisibilityDefault int // +1 public, -1 private
	Implicit          bool
	ContainsSeen      bool

	Func *FunctionSignature // non-nil iff Kind == ScopeFunction
	Sub  *SubroutineSignature // non-nil iff Kind == ScopeSubroutine

	Extends string // parent type name; meaningful only for ScopeDerivedType
}

// Variables returns the scope's direct Variable declarations in
// source order.
func (s *Scope) Variables() []*Variable {
	var out []*Variable
	for _, d := range s.Decls {
		if v, ok := d.(*Variable); ok {
			out = append(out, v)
		}
	}
	return out
}

// Uses returns the scope's direct Use declarations in source order.
func (s *Scope) Uses() []*Use {
	var out []*Use
	for _, d := range s.Decls {
		if u, ok := d.(*Use); ok {
			out = append(out, u)
		}
	}
	return out
}

// InterfaceMembers returns the scope's `module procedure` members in
// source order.
func (s *Scope) InterfaceMembers() []*InterfaceMember {
	var out []*InterfaceMember
	for _, d := range s.Decls {
		if m, ok := d.(*InterfaceMember); ok {
			out = append(out, m)
		}
	}
	return out
}

// GenericBindings returns the scope's `generic ::` bindings in source
// order.
func (s *Scope) GenericBindings() []*GenericBinding {
	var out []*GenericBinding
	for _, d := range s.Decls {
		if g, ok := d.(*GenericBinding); ok {
			out = append(out, g)
		}
	}
	return out
}
