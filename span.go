package rematch

import (
	"fmt"
	"sort"

	"github.com/rivo/uniseg"
)

// Span is a half-open [Start, End) range of character positions in one
// specific text. Positions count extended grapheme clusters, not bytes or
// runes, so a span stays meaningful across multi-byte and combining
// sequences.
//
// A span may be absent: a capturing group that did not participate in a
// match has no span at all, which is distinct from matching the empty
// string (a zero-length span).
type Span struct {
	Start, End int
}

// Absent is the span of a capturing group that did not participate in a
// match.
var Absent = Span{-1, -1}

// IsAbsent reports whether the span denotes a non-participating group.
func (s Span) IsAbsent() bool {
	return s.Start < 0
}

// IsEmpty reports whether the span is present but covers no characters.
func (s Span) IsEmpty() bool {
	return !s.IsAbsent() && s.Start == s.End
}

// Len returns the number of characters covered by the span, or 0 if the
// span is absent.
func (s Span) Len() int {
	if s.IsAbsent() {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	if s.IsAbsent() {
		return "[absent]"
	}
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// textIndex maps between byte offsets and grapheme cluster positions of
// one text. It is built once per searched text and shared by every match
// derived from it.
type textIndex struct {
	text   string
	starts []int // byte offset of each cluster start, ascending
}

func newTextIndex(text string) *textIndex {
	ix := &textIndex{text: text}

	state := -1
	off := 0

	for rest := text; rest != ""; {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		ix.starts = append(ix.starts, off)
		off += len(cluster)
		rest, state = tail, newState
	}

	return ix
}

// clusters returns the number of grapheme clusters in the indexed text.
func (ix *textIndex) clusters() int {
	return len(ix.starts)
}

// pos converts a byte offset to the position of the cluster containing
// it. len(text) converts to the one-past-last position.
func (ix *textIndex) pos(off int) int {
	if off >= len(ix.text) {
		return len(ix.starts)
	}

	// Rightmost cluster start at or before off.
	return sort.SearchInts(ix.starts, off+1) - 1
}

// off converts a cluster position back to its byte offset.
func (ix *textIndex) off(pos int) int {
	if pos >= len(ix.starts) {
		return len(ix.text)
	}

	return ix.starts[pos]
}

// span converts an engine-level byte span to character positions.
func (ix *textIndex) span(bs ByteSpan) Span {
	if bs.IsAbsent() {
		return Absent
	}

	return Span{Start: ix.pos(bs.Start), End: ix.pos(bs.End)}
}
