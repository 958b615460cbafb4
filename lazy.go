package rematch

import "sync"

// lazySeq is a lazily materialized, cached view over a fixed raw slice.
// Slot i is converted at most once between cache resets; two concurrent
// accesses at the same index converge on the same cached value.
//
// all() deliberately rebuilds every element from the raw slice instead of
// draining the slot cache: bulk conversion gains nothing from per-slot
// bookkeeping and must not depend on what single-element access has
// already materialized.
type lazySeq[R, E any] struct {
	mu    sync.Mutex
	raw   []R
	cache []*E
	conv  func(i int, r R) (E, bool)
}

func newLazySeq[R, E any](raw []R, conv func(int, R) (E, bool)) *lazySeq[R, E] {
	return &lazySeq[R, E]{
		raw:   raw,
		cache: make([]*E, len(raw)),
		conv:  conv,
	}
}

func (s *lazySeq[R, E]) size() int {
	return len(s.raw)
}

// at returns the element at position i, converting and caching it on
// first access. ok is false when the raw element cannot be materialized
// (a non-participating group, a malformed raw result). Out-of-range i
// panics; bounds are the caller's responsibility.
func (s *lazySeq[R, E]) at(i int) (e E, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.cache[i]; p != nil {
		return *p, true
	}

	e, ok = s.conv(i, s.raw[i])
	if !ok {
		var zero E
		return zero, false
	}

	s.cache[i] = &e

	return e, true
}

// all materializes every convertible element from scratch, in order.
// Elements whose conversion fails are skipped; the slot cache is neither
// read nor populated.
func (s *lazySeq[R, E]) all() []E {
	out := make([]E, 0, len(s.raw))

	for i, r := range s.raw {
		if e, ok := s.conv(i, r); ok {
			out = append(out, e)
		}
	}

	return out
}

// clear resets every cache slot to empty. The raw slice is untouched, so
// subsequent access re-materializes equal values.
func (s *lazySeq[R, E]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.cache)
}
