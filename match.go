package rematch

// groupSource backs one lazily materialized group: either a pre-built
// value (direct construction) or a byte span resolved against the source
// text (derived from a RawMatch).
type groupSource struct {
	pre  *Group
	span ByteSpan
}

// Match is a single search result: the whole-match span and text plus an
// ordered, lazily materialized sequence of capturing groups. Group 0
// always mirrors the match itself, whichever way the Match was built.
//
// A Match is immutable once constructed; the only internal mutation is
// the monotonic group-cache fill, which [Match.ClearCache] resets.
type Match struct {
	span   Span
	text   string
	groups *lazySeq[groupSource, Group]
}

// NewMatch builds a Match directly from its span, text and pre-built
// capturing groups. captures holds groups 1..n; group 0 is synthesized
// from the match itself so that both construction paths agree on it.
func NewMatch(span Span, text string, captures []Group) *Match {
	src := make([]groupSource, len(captures)+1)
	self := Group{span: span, text: text}
	src[0] = groupSource{pre: &self}

	for i := range captures {
		g := captures[i]
		src[i+1] = groupSource{pre: &g}
	}

	return &Match{
		span: span,
		text: text,
		groups: newLazySeq(src, func(_ int, gs groupSource) (Group, bool) {
			return *gs.pre, true
		}),
	}
}

// MatchFromRaw derives a Match from one raw engine result over its source
// text. It returns ok == false when the raw result is not a regular
// content match or its span does not fit the text; a bad element fails
// locally instead of propagating an engine-level fault.
func MatchFromRaw(raw RawMatch, text string) (*Match, bool) {
	if raw.Kind != KindMatch {
		return nil, false
	}

	return matchFromRaw(raw, text, newTextIndex(text))
}

// matchFromRaw is the shared derivation path; collections pass their own
// textIndex so it is built once per searched text.
func matchFromRaw(raw RawMatch, text string, ix *textIndex) (*Match, bool) {
	if raw.Kind != KindMatch {
		return nil, false
	}

	if raw.Span.IsAbsent() || raw.Span.Start > raw.Span.End || raw.Span.End > len(text) {
		return nil, false
	}

	src := make([]groupSource, max(len(raw.Groups), 1))
	for i, bs := range raw.Groups {
		src[i] = groupSource{span: bs}
	}

	// Group 0 mirrors the overall span even if the engine reported
	// something else in slot 0.
	src[0] = groupSource{span: raw.Span}

	m := &Match{
		span: ix.span(raw.Span),
		text: text[raw.Span.Start:raw.Span.End],
	}
	m.groups = newLazySeq(src, func(_ int, gs groupSource) (Group, bool) {
		if gs.pre != nil {
			return *gs.pre, true
		}
		if gs.span.IsAbsent() || gs.span.Start > gs.span.End || gs.span.End > len(text) {
			return Group{}, false
		}
		return Group{span: ix.span(gs.span), text: text[gs.span.Start:gs.span.End]}, true
	})

	return m, true
}

// Span returns the whole-match character span.
func (m *Match) Span() Span {
	return m.span
}

// Text returns the matched text.
func (m *Match) Text() string {
	return m.text
}

// GroupCount returns the number of groups, including the whole-match
// group 0.
func (m *Match) GroupCount() int {
	return m.groups.size()
}

// Group returns the group at index i, materializing and caching it on
// first access. ok is false when the group did not participate in the
// match. Index 0 is always present and equals the match itself.
// i must be in [0, GroupCount()).
func (m *Match) Group(i int) (Group, bool) {
	return m.groups.at(i)
}

// GroupText returns the text captured by group i, or ok == false when the
// group did not participate.
func (m *Match) GroupText(i int) (string, bool) {
	g, ok := m.Group(i)
	if !ok {
		return "", false
	}
	return g.text, true
}

// Named always fails with [ErrNamedGroupsUnsupported]: the underlying
// engines report groups by index only.
func (m *Match) Named(name string) (Group, error) {
	return Group{}, ErrNamedGroupsUnsupported
}

// ClearCache drops every materialized group. Re-accessing a group yields
// a value equal to the one held before the reset.
func (m *Match) ClearCache() {
	m.groups.clear()
}

// Equal reports whether two matches agree on span, text and every group.
func (m *Match) Equal(o *Match) bool {
	if m == nil || o == nil {
		return m == o
	}

	if m.span != o.span || m.text != o.text || m.GroupCount() != o.GroupCount() {
		return false
	}

	for i := 0; i < m.GroupCount(); i++ {
		a, aok := m.Group(i)
		b, bok := o.Group(i)
		if aok != bok || a != b {
			return false
		}
	}

	return true
}

func (m *Match) String() string {
	return m.text
}
