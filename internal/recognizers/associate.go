package recognizers

// AssociateBinding is one `name => expr` pair inside an associate
// construct's binding list.
type AssociateBinding struct {
	Name string
	Expr string
}

// AssociateInfo is the §4.5 item 5 "assoc" tagged variant.
type AssociateInfo struct {
	Bindings []AssociateBinding
}

// RecognizeAssociate implements spec §4.5 item 5, ported from the
// original's read_associate_def: `associate(a=>x, b=>y)`.
func RecognizeAssociate(line string) (AssociateInfo, bool) {
	rest, ok := hasWordPrefix(line, "associate")
	if !ok {
		return AssociateInfo{}, false
	}
	content, _, ok := matchParen(rest, 0)
	if !ok {
		return AssociateInfo{}, false
	}

	var info AssociateInfo
	for _, part := range splitTopLevel(content, ',') {
		part = trimSpace(part)
		if part == "" {
			continue
		}
		idx := indexTopLevel(part, "=>")
		if idx < 0 {
			return AssociateInfo{}, false
		}
		info.Bindings = append(info.Bindings, AssociateBinding{
			Name: trimSpace(part[:idx]),
			Expr: trimSpace(part[idx+2:]),
		})
	}
	if len(info.Bindings) == 0 {
		return AssociateInfo{}, false
	}
	return info, true
}

// indexTopLevel finds the first occurrence of sep outside parens/
// quotes.
func indexTopLevel(s, sep string) int {
	depth := 0
	var quote byte
	for i := 0; i+len(sep) <= len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			continue
		case c == '\'' || c == '"':
			quote = c
			continue
		case c == '(':
			depth++
			continue
		case c == ')':
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth == 0 && s[i:i+len(sep)] == sep {
			return i
		}
	}
	return -1
}
