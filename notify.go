package rematch

import "sync"

// CacheClearer is anything holding a resettable materialization cache.
// *Match and *MatchCollection implement it.
type CacheClearer interface {
	ClearCache()
}

// Notifier fans an external low-memory signal out to registered caches.
// The library never originates the signal: the host wires whatever
// notification its runtime provides to [Notifier.Broadcast]. Hosts
// without such a signal simply never broadcast.
type Notifier struct {
	mu      sync.Mutex
	nextID  int
	holders map[int]CacheClearer
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{holders: make(map[int]CacheClearer)}
}

// Register subscribes c to future broadcasts and returns a function that
// removes the subscription. Callers should unregister when they drop the
// holder, since the Notifier keeps it reachable.
func (n *Notifier) Register(c CacheClearer) (unregister func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.holders[id] = c
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.holders, id)
		n.mu.Unlock()
	}
}

// Broadcast clears every registered cache.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	holders := make([]CacheClearer, 0, len(n.holders))
	for _, h := range n.holders {
		holders = append(holders, h)
	}
	n.mu.Unlock()

	for _, h := range holders {
		h.ClearCache()
	}
}
