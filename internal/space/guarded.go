package space

import "sync"

// #region guarded

// Guarded wraps a StateSpace behind a single mutex covering the whole scalar
// mapping. Update is a read-modify-write over one entry while Check and
// Resolve read the entire mapping, so no finer-grained locking is safe
// without additional invariants.
type Guarded struct {
	mu    sync.Mutex
	inner StateSpace
}

var _ StateSpace = (*Guarded)(nil)

// Guard wraps sp for concurrent use. The wrapped space must not be touched
// directly while the wrapper is in use.
func Guard(sp StateSpace) *Guarded {
	return &Guarded{inner: sp}
}

func (g *Guarded) Check() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Check()
}

func (g *Guarded) Update(selector string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Update(selector)
}

func (g *Guarded) Resolve() Resolution {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Resolve()
}

// #endregion guarded
