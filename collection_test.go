package rematch_test

import (
	"testing"

	"github.com/dwisiswant0/rematch"
	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T) *rematch.MatchCollection {
	t.Helper()

	p := rematch.MustCompile(`p([a-z]+)ch`, 0)
	t.Cleanup(p.Close)

	return p.FindAll("peach punch pinch")
}

func TestAccessModesAgree(t *testing.T) {
	c := collect(t)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	bulk := c.ToSlice()
	if len(bulk) != c.Len() {
		t.Fatalf("ToSlice() length = %d, want %d", len(bulk), c.Len())
	}

	steps := 0
	for i, m := range c.All() {
		if !m.Equal(bulk[i]) {
			t.Errorf("iteration element %d differs from bulk element", i)
		}
		if !m.Equal(c.At(i)) {
			t.Errorf("iteration element %d differs from At(%d)", i, i)
		}
		steps++
	}

	if steps != c.Len() {
		t.Errorf("iteration yielded %d elements, want %d", steps, c.Len())
	}
}

func TestCacheIdentity(t *testing.T) {
	c := collect(t)

	first := c.At(1)
	if second := c.At(1); second != first {
		t.Error("At(1) returned a different instance on second access")
	}

	// Bulk conversion must not disturb the single-access cache.
	c.ToSlice()
	if c.At(1) != first {
		t.Error("ToSlice() invalidated the cached instance at index 1")
	}

	c.ClearCache()

	third := c.At(1)
	if third == first {
		t.Error("At(1) returned the old instance after ClearCache")
	}
	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("match content changed across cache reset (-before +after):\n%s", diff)
	}
}

func TestIterationRestartable(t *testing.T) {
	c := collect(t)

	var pass1, pass2 []string
	for _, m := range c.All() {
		pass1 = append(pass1, m.Text())
	}
	for _, m := range c.All() {
		pass2 = append(pass2, m.Text())
	}

	if diff := cmp.Diff(pass1, pass2); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestCursor(t *testing.T) {
	c := collect(t)

	cur := c.Cursor()
	var texts []string
	for {
		m, ok := cur.Next()
		if !ok {
			break
		}
		texts = append(texts, m.Text())
	}

	if diff := cmp.Diff([]string{"peach", "punch", "pinch"}, texts); diff != "" {
		t.Errorf("cursor pass mismatch (-want +got):\n%s", diff)
	}

	// Exhausted is terminal for this cursor.
	if m, ok := cur.Next(); ok || m != nil {
		t.Errorf("exhausted cursor returned (%v, %v)", m, ok)
	}

	// A fresh cursor starts over.
	if m, ok := c.Cursor().Next(); !ok || m.Text() != "peach" {
		t.Errorf("fresh cursor returned (%v, %v), want first match", m, ok)
	}
}

func TestMalformedRawResult(t *testing.T) {
	raw := []rematch.RawMatch{
		{Kind: rematch.KindMatch, Span: rematch.ByteSpan{Start: 0, End: 1},
			Groups: []rematch.ByteSpan{{Start: 0, End: 1}}},
		{Kind: rematch.KindControl},
		{Kind: rematch.KindMatch, Span: rematch.ByteSpan{Start: 2, End: 3},
			Groups: []rematch.ByteSpan{{Start: 2, End: 3}}},
	}

	c := rematch.NewMatchCollection("a b", raw)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	// The bad element fails locally; its neighbors are unaffected.
	if m := c.At(1); m != nil {
		t.Errorf("At(1) = %v, want nil for control event", m)
	}
	if m := c.At(0); m == nil || m.Text() != "a" {
		t.Errorf("At(0) = %v, want match for %q", m, "a")
	}
	if m := c.At(2); m == nil || m.Text() != "b" {
		t.Errorf("At(2) = %v, want match for %q", m, "b")
	}

	if got := c.ToSlice(); len(got) != 2 {
		t.Errorf("ToSlice() kept %d matches, want 2", len(got))
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	c := collect(t)

	defer func() {
		if recover() == nil {
			t.Error("At(Len()) did not panic")
		}
	}()
	c.At(c.Len())
}

func TestNotifier(t *testing.T) {
	n := rematch.NewNotifier()

	c1 := collect(t)
	c2 := collect(t)

	unregister := n.Register(c1)
	n.Register(c2)

	m1, m2 := c1.At(0), c2.At(0)

	n.Broadcast()

	if c1.At(0) == m1 {
		t.Error("broadcast did not clear first collection's cache")
	}
	if c2.At(0) == m2 {
		t.Error("broadcast did not clear second collection's cache")
	}

	// Content survives the reset.
	if got := c1.At(0); !got.Equal(m1) {
		t.Errorf("post-broadcast At(0) = %v, want value equal to %v", got, m1)
	}

	// Unregistered holders stop receiving the signal.
	unregister()
	keep := c1.At(0)
	n.Broadcast()
	if c1.At(0) != keep {
		t.Error("unregistered collection was still cleared")
	}
}
