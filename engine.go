package rematch

// ByteSpan is a half-open [Start, End) byte range as reported by a search
// engine. {-1, -1} marks a capturing group that did not participate in
// the match (the PCRE2 ovector convention).
type ByteSpan struct {
	Start, End int
}

// IsAbsent reports whether the span marks a non-participating group.
func (b ByteSpan) IsAbsent() bool {
	return b.Start < 0
}

// RawKind discriminates content matches from engine control events.
type RawKind int

const (
	// KindMatch is a regular content match.
	KindMatch RawKind = iota
	// KindControl is a non-content event reported by an engine during
	// enumeration. It carries no usable spans.
	KindControl
)

// RawMatch is one raw result from a search engine: the overall match span
// plus the per-group spans, some possibly absent. Groups[0] mirrors Span.
type RawMatch struct {
	Kind   RawKind
	Span   ByteSpan
	Groups []ByteSpan
}

// program is the compiled-pattern boundary between the result model and a
// concrete engine. Offsets at this level are bytes; conversion to
// character positions happens in the result layer.
type program interface {
	// findAll returns every non-overlapping match whose span lies within
	// text[from:to], in order.
	findAll(text string, from, to int) []RawMatch
	// hasMatch reports whether text[from:to] contains a match, without
	// extracting captures.
	hasMatch(text string, from, to int) bool
	// groupCount returns the number of groups per match, including the
	// whole-match group 0.
	groupCount() int
	// close frees engine resources, if any.
	close()
}
