// Package splicer implements the Comment & Continuation Splicer (spec
// §4.3): string masking, comment stripping, and assembling a logical
// line from a physical line plus its continuation neighbours. Ported
// from the original's fortran_file.get_code_line/strip_comment and
// reused by internal/reparse and internal/builder.
package splicer

import (
	"regexp"
	"strings"

	"github.com/freevryheid/fortls/pkg/fortran"
)

var freeContRegex = regexp.MustCompile(`^[ \t]*&`)

// MaskStrings replaces every quoted substring in line (single- or
// double-quoted, with the standard doubled-quote escape) with spaces
// of equal length, so callers can search for unquoted `&`/`!`/`;`
// without the result's column indices shifting (spec §4.3
// "maintain_len=true"). Masking is per byte, so byte offsets found in
// the result are valid offsets into line.
func MaskStrings(line string) string {
	src := []byte(line)
	out := make([]byte, len(src))
	copy(out, src)

	i := 0
	for i < len(src) {
		c := src[i]
		if c != '\'' && c != '"' {
			i++
			continue
		}
		quote := c
		start := i
		i++
		for i < len(src) {
			if src[i] == quote {
				if i+1 < len(src) && src[i+1] == quote {
					i += 2
					continue
				}
				i++
				break
			}
			i++
		}
		for j := start; j < i && j < len(out); j++ {
			out[j] = ' '
		}
	}
	return string(out)
}

// IsFixedCommentLine reports whether line is a fixed-form comment:
// C/c/*/! in column 1, or a line that is entirely blank (spec §4.3).
// A statement line (columns 1-6 blank, code from column 7) is not a
// comment.
func IsFixedCommentLine(line string) bool {
	if line == "" {
		return true
	}
	switch line[0] {
	case 'C', 'c', '*', '!':
		return true
	}
	return strings.TrimSpace(line) == ""
}

// IsFreeCommentLine reports whether line's first non-blank rune is
// `!`.
func IsFreeCommentLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "!")
}

// IsOpenMPSentinel reports whether line is an OpenMP sentinel comment
// (`!$OMP`, `C$OMP`, `*$OMP`), which spec §4.3 treats as code rather
// than comment when stripping.
func IsOpenMPSentinel(line string, fixed bool) bool {
	if fixed {
		if len(line) < 5 {
			return false
		}
		switch strings.ToUpper(line[:5]) {
		case "!$OMP", "C$OMP", "*$OMP":
			return true
		}
		return false
	}
	trimmed := strings.ToUpper(strings.TrimLeft(line, " \t"))
	return strings.HasPrefix(trimmed, "!$OMP")
}

// IsCommentLine reports whether line is a comment in the given
// dialect.
func IsCommentLine(line string, fixed bool) bool {
	if fixed {
		return IsFixedCommentLine(line)
	}
	return IsFreeCommentLine(line)
}

// StripComment removes a trailing (free-form) or whole-line
// (fixed-form) comment from line, leaving OpenMP sentinel lines
// untouched since those are code, not comment (spec §4.3).
func StripComment(line string, fixed bool) string {
	if fixed {
		if IsFixedCommentLine(line) && !IsOpenMPSentinel(line, true) {
			return ""
		}
		return line
	}
	if IsOpenMPSentinel(line, false) {
		return line
	}
	masked := MaskStrings(line)
	if idx := strings.IndexByte(masked, '!'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// isFixedContinuation reports whether line continues the previous
// physical line: column 6 non-blank, non-zero, columns 1-5 blank
// (spec §4.3).
func isFixedContinuation(line string) bool {
	if len(line) < 6 {
		return false
	}
	for i := 0; i < 5; i++ {
		if line[i] != ' ' {
			return false
		}
	}
	c := line[5]
	return c != ' ' && c != '0'
}

// freeLeadingContinuation reports whether line opens with a leading
// `&` continuation marker, and if so, where the marker ends (spec
// §4.3's "optional leading `&`").
func freeLeadingContinuation(line string) (end int, ok bool) {
	loc := freeContRegex.FindStringIndex(line)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

// blankPrefix replaces line[:n] with spaces, leaving the remainder
// untouched, keeping column positions meaningful.
func blankPrefix(line string, n int) string {
	if n > len(line) {
		n = len(line)
	}
	return strings.Repeat(" ", n) + line[n:]
}

// Splice assembles the logical line containing lineNumber: the
// current line (with any continuation-marker prefix blanked), the
// preceding physical lines it continues from (oldest first), and the
// following physical lines that continue it. Ported line-for-line from
// the original's get_code_line, one branch per dialect and direction.
func Splice(f *fortran.File, lineNumber int, forward, backward, ppContent bool) (pre []string, cur string, post []string, ok bool) {
	curLine, exists := f.Line(lineNumber, ppContent)
	if !exists {
		return nil, "", nil, false
	}
	cur = curLine

	if backward {
		if f.Fixed {
			pre = spliceFixedBackward(f, lineNumber, &cur, ppContent)
		} else {
			pre = spliceFreeBackward(f, lineNumber, &cur, ppContent)
		}
	}

	if forward {
		if f.Fixed {
			post = spliceFixedForward(f, lineNumber, ppContent)
		} else {
			post = spliceFreeForward(f, lineNumber, &cur, ppContent)
		}
	}

	return pre, cur, post, true
}

func spliceFixedBackward(f *fortran.File, lineNumber int, cur *string, ppContent bool) []string {
	var pre []string
	tmpLine := *cur
	lineInd := lineNumber - 1
	for lineInd >= 0 {
		if !isFixedContinuation(tmpLine) {
			break
		}
		prevLine := tmpLine
		next, exists := f.Line(lineInd, ppContent)
		if !exists {
			break
		}
		tmpLine = next
		if lineInd == lineNumber-1 {
			*cur = blankPrefix(*cur, 6)
		} else {
			pre[len(pre)-1] = blankPrefix(prevLine, 6)
		}
		pre = append(pre, tmpLine)
		lineInd--
	}
	reverse(pre)
	return pre
}

func spliceFixedForward(f *fortran.File, lineNumber int, ppContent bool) []string {
	var post []string
	lineInd := lineNumber + 1
	if lineInd >= f.NLines {
		return post
	}
	nextLine, exists := f.Line(lineInd, ppContent)
	if !exists {
		return post
	}
	lineInd++
	for isFixedContinuation(nextLine) && lineInd <= f.NLines {
		post = append(post, blankPrefix(nextLine, 6))
		if lineInd >= f.NLines {
			break
		}
		next, exists := f.Line(lineInd, ppContent)
		if !exists {
			break
		}
		nextLine = next
		lineInd++
	}
	return post
}

func spliceFreeBackward(f *fortran.File, lineNumber int, cur *string, ppContent bool) []string {
	var pre []string

	if end, ok := freeLeadingContinuation(*cur); ok {
		*cur = blankPrefix(*cur, end)
	}

	lineInd := lineNumber - 1
	for lineInd >= 0 {
		raw, exists := f.Line(lineInd, ppContent)
		if !exists {
			break
		}
		tmpLine := MaskStrings(raw)
		noComment := tmpLine
		if idx := strings.IndexByte(tmpLine, '!'); idx >= 0 {
			noComment = tmpLine[:idx]
		}
		contInd := strings.LastIndexByte(noComment, '&')

		rawNoComment := raw
		if idx := strings.IndexByte(tmpLine, '!'); idx >= 0 && idx < len(raw) {
			rawNoComment = raw[:idx]
		}

		if end, ok := freeLeadingContinuation(noComment); ok {
			if contInd == end-1 {
				break
			}
			noComment = blankPrefix(noComment, end)
			rawNoComment = blankPrefix(rawNoComment, end)
		}

		if contInd >= 0 {
			pre = append(pre, rawNoComment[:contInd])
		} else {
			break
		}
		lineInd--
	}
	reverse(pre)
	return pre
}

func spliceFreeForward(f *fortran.File, lineNumber int, cur *string, ppContent bool) []string {
	var post []string

	lineStripped := MaskStrings(*cur)
	iAmper := strings.IndexByte(lineStripped, '&')
	iComm := strings.IndexByte(lineStripped, '!')
	if iComm < 0 {
		iComm = iAmper + 1
	}

	nextLine := ""
	lineInd := lineNumber + 1
	for iAmper >= 0 && iAmper < iComm {
		if lineInd == lineNumber+1 {
			if iAmper <= len(*cur) {
				*cur = (*cur)[:iAmper]
			}
		} else if nextLine != "" && len(post) > 0 {
			if iAmper <= len(nextLine) {
				post[len(post)-1] = nextLine[:iAmper]
			}
		}

		if lineInd >= f.NLines {
			break
		}
		raw, exists := f.Line(lineInd, ppContent)
		if !exists {
			break
		}
		nextLine = raw
		lineInd++

		if strings.TrimRight(nextLine, " \t\r") == "" || IsFreeCommentLine(nextLine) {
			nextLine = ""
			post = append(post, "")
			continue
		}
		if end, ok := freeLeadingContinuation(nextLine); ok {
			nextLine = blankPrefix(nextLine, end)
		}
		post = append(post, nextLine)

		lineStripped = MaskStrings(nextLine)
		iAmper = strings.IndexByte(lineStripped, '&')
		iComm = strings.IndexByte(lineStripped, '!')
		if iComm < 0 {
			iComm = iAmper + 1
		}
	}
	return post
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// isIdentChar reports whether b can appear inside a Fortran
// identifier.
func isIdentChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// FindWordInLine finds the first whole-word, case-insensitive
// occurrence of word in line, returning its [start, end) span, or
// (-1, -1) if absent. Ported from the original's find_word_in_line
// word-boundary search.
func FindWordInLine(line, word string) (int, int) {
	lower := strings.ToLower(line)
	needle := strings.ToLower(word)
	if needle == "" {
		return -1, -1
	}
	searchFrom := 0
	for {
		idx := strings.Index(lower[searchFrom:], needle)
		if idx < 0 {
			return -1, -1
		}
		idx += searchFrom
		end := idx + len(needle)
		beforeOK := idx == 0 || !isIdentChar(lower[idx-1])
		afterOK := end >= len(lower) || !isIdentChar(lower[end])
		if beforeOK && afterOK {
			return idx, end
		}
		searchFrom = idx + 1
	}
}

// WordAt locates word in the logical line containing lineNumber,
// searching the current line first, then backward and forward
// continuation lines. Returns the physical line number the match was
// found on and its column span, or (-1, -1, -1) if not found. Ported
// from the original's find_word_in_code_line.
func WordAt(f *fortran.File, lineNumber int, word string, forward, backward, ppContent bool) (line, start, end int) {
	preLines, curLine, postLines, ok := Splice(f, lineNumber, forward, backward, ppContent)
	if !ok {
		return -1, -1, -1
	}

	if i0, i1 := FindWordInLine(curLine, word); i0 >= 0 {
		return lineNumber, i0, i1
	}

	if backward {
		for i := len(preLines) - 1; i >= 0; i-- {
			if i0, i1 := FindWordInLine(preLines[i], word); i0 >= 0 {
				return lineNumber - (len(preLines) - i), i0, i1
			}
		}
	}

	if forward {
		for i, l := range postLines {
			if i0, i1 := FindWordInLine(l, word); i0 >= 0 {
				return lineNumber + i + 1, i0, i1
			}
		}
	}

	return -1, -1, -1
}
