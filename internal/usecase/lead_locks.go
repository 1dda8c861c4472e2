package usecase

import "sync"

// leadLocks is a set of lead ids with a conversion in flight. Conversions of
// different leads do not wait on each other.
type leadLocks struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newLeadLocks() *leadLocks {
	return &leadLocks{active: make(map[string]struct{})}
}

// acquire returns ok=false when id is already held. The returned release
// must be called exactly once.
func (l *leadLocks) acquire(id string) (release func(), ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.active[id]; busy {
		return nil, false
	}
	l.active[id] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.active, id)
			l.mu.Unlock()
		})
	}, true
}
