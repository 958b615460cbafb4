// Package rematch provides regular-expression matching with a layered,
// lazily materialized result model: [Group], [Match] and
// [MatchCollection].
//
// Pattern compilation and the search itself are delegated to one of two
// engines. Simple patterns use the standard library's regexp engine; if
// the pattern contains PCRE-specific constructs such as
// lookahead/lookbehind assertions or backreferences, a PCRE2 engine
// (loaded as a shared library at runtime) is employed. [FlagPCRE] forces
// the latter.
//
// Spans in results are measured in extended grapheme clusters rather than
// bytes, so positions stay valid across multi-byte and combining
// sequences. Matches and their groups are materialized on first access
// and cached; [MatchCollection.ClearCache] and [Match.ClearCache] reset
// those caches without touching the underlying raw results, and
// [Notifier] fans an external low-memory signal out to registered caches.
//
// Basic usage:
//
//	p := rematch.MustCompile(`p([a-z]+)ch`, 0)
//	defer p.Close()
//
//	matches := p.FindAll("peach punch")
//	for _, m := range matches.ToSlice() {
//		fmt.Println(m.Text(), m.Span())
//	}
package rematch

// Flags control pattern compilation. Flag words are shared by both
// engines; each engine maps them onto its own option mechanism.
type Flags uint32

const (
	// CaseInsensitive makes letters match both cases.
	CaseInsensitive Flags = 1 << iota
	// Multiline lets ^ and $ match at line boundaries.
	Multiline
	// DotAll lets . match newlines.
	DotAll
	// Ungreedy swaps the greediness of quantifiers.
	Ungreedy
	// Anchored pins matches to the start of the search range.
	Anchored
	// FlagPCRE forces the PCRE2 engine even when the stdlib engine could
	// serve the pattern.
	FlagPCRE

	flagsMask = FlagPCRE<<1 - 1
)

// Pattern is a compiled regular expression bound to one engine.
//
// A Pattern is safe for concurrent use with the stdlib engine; the PCRE2
// engine reuses per-pattern match data, so share one Pattern across
// goroutines only behind external synchronization.
type Pattern struct {
	prog    program
	pattern string
	flags   Flags
}

// Compile compiles the pattern under the given flags and returns a
// [Pattern]. Failure is always a [*PatternError]; compilation is
// deterministic, so retrying cannot help.
func Compile(pattern string, flags Flags) (*Pattern, error) {
	if flags&^flagsMask != 0 {
		return nil, &PatternError{Pattern: pattern, Offset: -1, Err: errUnknownFlags}
	}

	var (
		prog program
		err  error
	)

	if flags&FlagPCRE != 0 || needsPCRE(pattern) {
		prog, err = compilePCRE(pattern, flags)
	} else {
		prog, err = compileStd(pattern, flags)
	}
	if err != nil {
		return nil, err
	}

	return &Pattern{prog: prog, pattern: pattern, flags: flags}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, flags Flags) *Pattern {
	p, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}

	return p
}

// Close frees the resources associated with the compiled pattern. Only
// the PCRE2 engine holds any; closing a stdlib-backed Pattern is a no-op.
func (p *Pattern) Close() {
	p.prog.close()
}

// String returns the source pattern text.
func (p *Pattern) String() string {
	return p.pattern
}

// GroupCount returns the number of groups each match of this pattern
// carries, including the whole-match group 0.
func (p *Pattern) GroupCount() int {
	return p.prog.groupCount()
}

// HasMatch reports whether text contains a match. It is the cheap
// existence check: no captures are extracted and no collection is built.
func (p *Pattern) HasMatch(text string) bool {
	if text == "" {
		return false
	}

	return p.prog.hasMatch(text, 0, len(text))
}

// FindAll searches all of text and returns its match collection. Empty
// text is a fast-path success with zero matches, not an error.
func (p *Pattern) FindAll(text string) *MatchCollection {
	ix := newTextIndex(text)

	if text == "" {
		return newMatchCollection(text, ix, nil)
	}

	return newMatchCollection(text, ix, p.prog.findAll(text, 0, len(text)))
}

// FindAllRange searches the sub-range rng of text, bounded in character
// positions, and returns only matches whose span lies within it. rng must
// satisfy 0 <= rng.Start <= rng.End <= number of characters in text;
// anything else is a caller contract violation and panics.
func (p *Pattern) FindAllRange(text string, rng Span) *MatchCollection {
	ix := newTextIndex(text)

	if rng.IsAbsent() || rng.Start < 0 || rng.End < rng.Start || rng.End > ix.clusters() {
		panic("rematch: search range out of bounds")
	}

	from, to := ix.off(rng.Start), ix.off(rng.End)

	return newMatchCollection(text, ix, p.prog.findAll(text, from, to))
}

// EnumFlags describe the state of one enumeration callback.
type EnumFlags uint32

// EnumCompleted is set on the final callback of an enumeration.
const EnumCompleted EnumFlags = 1 << iota

// Enumerate invokes fn once per match in order. A raw result that is not
// a regular content match is delivered as a nil Match rather than
// aborting the enumeration. fn returns false to stop early.
func (p *Pattern) Enumerate(text string, fn func(m *Match, flags EnumFlags) bool) {
	if text == "" {
		return
	}

	raws := p.prog.findAll(text, 0, len(text))
	ix := newTextIndex(text)

	for i, r := range raws {
		m, _ := matchFromRaw(r, text, ix)

		var fl EnumFlags
		if i == len(raws)-1 {
			fl |= EnumCompleted
		}

		if !fn(m, fl) {
			return
		}
	}
}
