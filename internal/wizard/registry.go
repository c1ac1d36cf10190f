package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	mu      sync.Mutex
	owner   string
	wizard  *Wizard
	touched time.Time
}

// Registry keeps the drafts owners are working on. Actions on one draft run
// one at a time; drafts left alone for longer than the idle timeout are
// dropped by Sweep.
type Registry struct {
	mu     sync.Mutex
	drafts map[string]*entry
	idle   time.Duration
	now    func() time.Time
}

func NewRegistry(idle time.Duration) *Registry {
	return &Registry{
		drafts: make(map[string]*entry),
		idle:   idle,
		now:    time.Now,
	}
}

// Create stores w for owner and returns its draft id.
func (r *Registry) Create(owner string, w *Wizard) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[id] = &entry{owner: owner, wizard: w, touched: r.now()}
	return id
}

func (r *Registry) lookup(id, owner string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.drafts[id]
	if !ok || e.owner != owner {
		return nil, ErrDraftNotFound
	}
	return e, nil
}

// With runs fn on the draft while holding it. Drafts of other owners are
// reported as not found.
func (r *Registry) With(id, owner string, fn func(w *Wizard) error) error {
	e, err := r.lookup(id, owner)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The draft may have been swept or discarded while we waited.
	if _, err := r.lookup(id, owner); err != nil {
		return err
	}

	defer func() {
		r.mu.Lock()
		e.touched = r.now()
		r.mu.Unlock()
	}()
	return fn(e.wizard)
}

func (r *Registry) Discard(id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.drafts[id]
	if !ok || e.owner != owner {
		return ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

// DiscardAll drops every draft of owner and returns how many went.
func (r *Registry) DiscardAll(owner string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, e := range r.drafts {
		if e.owner == owner {
			delete(r.drafts, id)
			n++
		}
	}
	return n
}

// Sweep drops drafts idle for longer than the timeout and returns how many
// went. A draft with an action in flight is never dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idle)
	n := 0
	for id, e := range r.drafts {
		if !e.touched.Before(cutoff) {
			continue
		}
		if !e.mu.TryLock() {
			continue
		}
		delete(r.drafts, id)
		e.mu.Unlock()
		n++
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}
