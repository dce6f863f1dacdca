package workflow

import "sync"

// inflightGuard admits at most one save per entity id at a time. A second
// save arriving while the first is still running is turned away instead of
// queued, so double-clicked submits cannot write twice.
type inflightGuard struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{
		ids: make(map[string]struct{}),
	}
}

func (g *inflightGuard) acquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.ids[id]; busy {
		return false
	}
	g.ids[id] = struct{}{}
	return true
}

func (g *inflightGuard) release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.ids, id)
}
