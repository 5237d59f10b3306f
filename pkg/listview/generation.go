package listview

import (
	"errors"
	"sync"
)

// ErrStale marks a load whose result was discarded because a newer
// load began while it was in flight.
var ErrStale = errors.New("listview: stale load discarded")

// Generation guards a reloadable view against stale responses. Each
// load takes a ticket with Begin; when the fetch completes, the result
// is applied only if IsCurrent still holds — a reload started later
// wins even if it finished first.
type Generation struct {
	mu sync.Mutex
	n  uint64
}

// Begin starts a new load and invalidates all earlier tickets.
func (g *Generation) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.n
}

// IsCurrent reports whether ticket is still the newest load.
func (g *Generation) IsCurrent(ticket uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n == ticket
}
