package rematch

// Group is a single capturing group materialized within one match: its
// span in the source text plus the captured text itself. Index 0 of a
// match's group sequence always mirrors the match as a whole.
//
// Groups carry no name. The underlying engines do not report group names,
// so the capability is statically absent; see [Match.Named].
type Group struct {
	span Span
	text string
}

// NewGroup returns a Group covering span with the given captured text.
func NewGroup(span Span, text string) Group {
	return Group{span: span, text: text}
}

// Span returns the group's character span in the source text.
func (g Group) Span() Span {
	return g.span
}

// Text returns the captured text.
func (g Group) Text() string {
	return g.text
}

func (g Group) String() string {
	return g.text
}
