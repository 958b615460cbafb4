package rematch

import (
	"iter"
	"slices"
)

// MatchCollection is the full ordered result set of one search over a
// text. Raw results are fixed at construction; the Match for each
// position is materialized on demand and cached, so accessing the same
// index twice returns the identical *Match until [MatchCollection.ClearCache].
//
// Three access modes agree on every element at every index: sequential
// iteration ([MatchCollection.All], [MatchCollection.Cursor]), random
// access ([MatchCollection.At]) and bulk conversion
// ([MatchCollection.ToSlice]).
type MatchCollection struct {
	text string
	ix   *textIndex
	seq  *lazySeq[RawMatch, *Match]
}

// NewMatchCollection wraps caller-supplied raw results over their source
// text. The raw slice is copied; the collection owns it exclusively.
func NewMatchCollection(text string, raw []RawMatch) *MatchCollection {
	return newMatchCollection(text, newTextIndex(text), slices.Clone(raw))
}

func newMatchCollection(text string, ix *textIndex, raw []RawMatch) *MatchCollection {
	c := &MatchCollection{text: text, ix: ix}
	c.seq = newLazySeq(raw, func(_ int, r RawMatch) (*Match, bool) {
		return matchFromRaw(r, text, ix)
	})

	return c
}

// Len returns the number of raw results in the collection.
func (c *MatchCollection) Len() int {
	return c.seq.size()
}

// Text returns the searched source text.
func (c *MatchCollection) Text() string {
	return c.text
}

// At returns the Match at position i, materializing and caching it on
// first access. It returns nil for a malformed raw result; one bad
// element does not invalidate the rest of the collection. i must be in
// [0, Len()); out-of-range access panics.
func (c *MatchCollection) At(i int) *Match {
	m, ok := c.seq.at(i)
	if !ok {
		return nil
	}

	return m
}

// All returns an iterator over (position, Match) pairs in order. Every
// range over it starts a fresh pass; the sequence is restartable, not
// single-shot.
func (c *MatchCollection) All() iter.Seq2[int, *Match] {
	return func(yield func(int, *Match) bool) {
		for i := 0; i < c.Len(); i++ {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

// Cursor returns a fresh forward cursor positioned before the first
// match.
func (c *MatchCollection) Cursor() *Cursor {
	return &Cursor{c: c}
}

// ToSlice materializes every Match from scratch, in order. It is
// element-wise equal to accessing each index individually but neither
// reads nor populates the single-access cache; malformed raw results are
// skipped.
func (c *MatchCollection) ToSlice() []*Match {
	return c.seq.all()
}

// ClearCache resets every materialized Match slot to empty. Raw results
// are untouched, so re-access yields equal values. Intended as the target
// of an external low-memory signal; see [Notifier].
func (c *MatchCollection) ClearCache() {
	c.seq.clear()
}

// Cursor is a single forward pass over a collection. Each call to Next
// materializes (or re-uses) the Match at the current position and
// advances; after the last match the cursor is exhausted for good. A new
// pass means a new Cursor.
type Cursor struct {
	c   *MatchCollection
	pos int
}

// Next returns the next Match and true, or nil and false once the cursor
// is exhausted.
func (cur *Cursor) Next() (*Match, bool) {
	if cur.pos >= cur.c.Len() {
		return nil, false
	}

	m := cur.c.At(cur.pos)
	cur.pos++

	return m, true
}
