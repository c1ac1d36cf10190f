package viewer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Pending remembers the enquiries shown to shoppers and not yet confirmed, so
// confirmation can span two requests. Each id confirms once, for the product
// it was issued for, until it expires.
type Pending struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]pendingEnquiry
}

type pendingEnquiry struct {
	productID string
	expires   time.Time
}

func NewPending(ttl time.Duration) *Pending {
	return &Pending{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]pendingEnquiry),
	}
}

// Request records that v showed its enquiry and returns the id that confirms
// it.
func (p *Pending) Request(v *Viewer) (id, message string) {
	message = v.RequestEnquiry()
	id = uuid.NewString()

	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	for k, e := range p.entries {
		if now.After(e.expires) {
			delete(p.entries, k)
		}
	}
	p.entries[id] = pendingEnquiry{productID: v.Product.ID, expires: now.Add(p.ttl)}
	return id, message
}

// Confirm spends id and returns the deep link for v. An unknown, expired or
// spent id is ErrEnquiryNotRequested, as is one issued for another product,
// which stays pending for its own.
func (p *Pending) Confirm(id string, v *Viewer, number string) (string, error) {
	p.mu.Lock()
	e, ok := p.entries[id]
	ok = ok && e.productID == v.Product.ID
	if ok {
		delete(p.entries, id)
	}
	now := p.now()
	p.mu.Unlock()

	if !ok || now.After(e.expires) {
		return "", ErrEnquiryNotRequested
	}
	v.RequestEnquiry()
	return v.ConfirmEnquiry(number)
}

// Cancel drops id. Unknown ids are ignored.
func (p *Pending) Cancel(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, id)
}

func (p *Pending) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
