// Package data holds the static declaration-keyword tables consulted
// by internal/recognizers: the closed set of type words that can
// start a variable declaration, and the keyword -> canonical
// attribute-tag mapping from spec §4.5. The table is seeded from an
// embedded JSON fixture and can be overridden from disk, the same
// Store-loading shape as the teacher's internal/data package.
package data

import (
	_ "embed"
	"encoding/json"
	"os"
	"sort"
	"strings"
)

//go:embed tables.json
var defaultTables []byte

// AttributeEntry maps one source keyword (e.g. "intent(in)") to its
// canonical tag (e.g. "INTENT-IN"). The original keyword text is kept
// alongside the tag so a caller can still show the user's own spelling
// on hover.
type AttributeEntry struct {
	Keyword   string `json:"keyword"`
	Canonical string `json:"canonical"`
}

// Store holds the shared keyword/type-word tables.
type Store struct {
	// TypeWords is the closed set of type words that introduce a
	// variable declaration (spec §3 invariant): INTEGER, REAL,
	// COMPLEX, LOGICAL, CHARACTER, DOUBLE PRECISION, DOUBLE COMPLEX,
	// TYPE, CLASS, PROCEDURE, EXTERNAL, ENUMERATOR.
	TypeWords []string `json:"type_words"`
	// ConstructModifiers is the set of subroutine/function modifier
	// keywords from spec §4.5 item 2/3: pure, elemental, recursive,
	// impure, module, non_recursive, atomic.
	ConstructModifiers []string `json:"construct_modifiers"`
	// Attributes is the keyword -> canonical attribute tag table.
	Attributes []AttributeEntry `json:"attributes"`

	typeWordSet     map[string]bool
	modifierSet     map[string]bool
	attributeByWord map[string]string
}

func (s *Store) index() {
	s.typeWordSet = make(map[string]bool, len(s.TypeWords))
	for _, w := range s.TypeWords {
		s.typeWordSet[w] = true
	}
	s.modifierSet = make(map[string]bool, len(s.ConstructModifiers))
	for _, w := range s.ConstructModifiers {
		s.modifierSet[w] = true
	}
	s.attributeByWord = make(map[string]string, len(s.Attributes))
	for _, a := range s.Attributes {
		s.attributeByWord[a.Keyword] = a.Canonical
	}
}

// IsTypeWord reports whether word (already uppercased) is a
// declaration-introducing type word.
func (s *Store) IsTypeWord(word string) bool {
	return s.typeWordSet[word]
}

// IsConstructModifier reports whether word (already lowercased) is a
// subroutine/function modifier keyword.
func (s *Store) IsConstructModifier(word string) bool {
	return s.modifierSet[word]
}

// CanonicalAttribute maps a source keyword (lowercased, parens intact,
// e.g. "dimension(:,:)") to its canonical tag. Entries like
// "intent(in)" are matched as exact, fixed-argument literals; a
// keyword whose argument is open-ended (spec §4.5's "dimension(...)"
// -> "DIM(...)") is matched by its head word instead, with the
// original argument reattached, e.g. "dimension(4)" -> "DIM(4)". ok is
// false when there is no mapping at all; the builder then falls back
// to the whole keyword uppercased. Only the tag is stored on the
// declaration; the keyword's original spelling is not kept.
func (s *Store) CanonicalAttribute(keyword string) (tag string, ok bool) {
	if tag, ok := s.attributeByWord[keyword]; ok {
		return tag, true
	}
	if i := strings.IndexByte(keyword, '('); i >= 0 && strings.HasSuffix(keyword, ")") {
		head := keyword[:i]
		if tag, ok := s.attributeByWord[head]; ok {
			return tag + keyword[i:], true
		}
	}
	return "", false
}

// SortedTypeWords returns the type-word list sorted, for deterministic
// diagnostics/tests.
func (s *Store) SortedTypeWords() []string {
	out := append([]string(nil), s.TypeWords...)
	sort.Strings(out)
	return out
}

// Default returns the Store built from the embedded fixture.
func Default() *Store {
	store, err := parse(defaultTables)
	if err != nil {
		// The embedded fixture ships with the binary; a decode
		// failure here means the build itself is broken.
		panic("data: embedded tables.json is invalid: " + err.Error())
	}
	return store
}

// Load reads and parses a tables file from disk, overriding the
// embedded default. Mirrors the teacher's data.Load(dataPath) shape.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

func parse(raw []byte) (*Store, error) {
	var store Store
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, err
	}
	store.index()
	return &store, nil
}
