package rematch

import (
	"regexp"
	"strings"
)

// stdProgram is a pattern compiled by the standard library engine.
// Compile flags become inline (?imsU) directives and Anchored becomes a
// \A wrapper, since stdlib regexp has no separate option word.
type stdProgram struct {
	re *regexp.Regexp
}

func compileStd(pattern string, flags Flags) (program, error) {
	var inline strings.Builder

	if flags&CaseInsensitive != 0 {
		inline.WriteByte('i')
	}
	if flags&Multiline != 0 {
		inline.WriteByte('m')
	}
	if flags&DotAll != 0 {
		inline.WriteByte('s')
	}
	if flags&Ungreedy != 0 {
		inline.WriteByte('U')
	}

	expr := pattern
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + expr
	}
	if flags&Anchored != 0 {
		expr = `\A(?:` + expr + `)`
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Offset: -1, Err: err}
	}

	return &stdProgram{re: re}, nil
}

func (p *stdProgram) findAll(text string, from, to int) []RawMatch {
	if from >= to {
		return nil
	}

	idx := p.re.FindAllStringSubmatchIndex(text[from:to], -1)
	if idx == nil {
		return nil
	}

	raws := make([]RawMatch, len(idx))
	for i, m := range idx {
		groups := make([]ByteSpan, len(m)/2)
		for g := range groups {
			start, end := m[2*g], m[2*g+1]
			if start < 0 {
				groups[g] = ByteSpan{Start: -1, End: -1}
			} else {
				// Rebase slice-relative offsets to the whole text.
				groups[g] = ByteSpan{Start: from + start, End: from + end}
			}
		}

		raws[i] = RawMatch{
			Kind:   KindMatch,
			Span:   groups[0],
			Groups: groups,
		}
	}

	return raws
}

func (p *stdProgram) hasMatch(text string, from, to int) bool {
	if from >= to {
		return false
	}

	return p.re.MatchString(text[from:to])
}

func (p *stdProgram) groupCount() int {
	return p.re.NumSubexp() + 1
}

func (p *stdProgram) close() {}

// needsPCRE reports whether the pattern uses constructs the stdlib
// engine cannot express: lookarounds or backreferences.
func needsPCRE(pattern string) bool {
	for _, tok := range []string{"(?=", "(?!", "(?<=", "(?<!"} {
		if containsUnescaped(pattern, tok) {
			return true
		}
	}

	return hasBackref(pattern)
}

// containsUnescaped reports whether substr occurs in s at a position not
// preceded by a backslash escape.
func containsUnescaped(s, substr string) bool {
	escaped := false

	for i := 0; i+len(substr) <= len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		if s[i] == '\\' {
			escaped = true
			continue
		}
		if strings.HasPrefix(s[i:], substr) {
			return true
		}
	}

	return false
}

// hasBackref reports whether the pattern contains a \1..\9 reference to
// an earlier capturing group. Non-capturing and named group openers do
// not count toward the group total.
func hasBackref(pattern string) bool {
	groups := 0
	escaped := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if escaped {
			if groups > 0 && c >= '1' && c <= '9' {
				return true
			}
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case '(':
			if i+2 < len(pattern) && pattern[i+1] == '?' &&
				(pattern[i+2] == ':' || pattern[i+2] == 'P') {
				continue
			}
			groups++
		}
	}

	return false
}
