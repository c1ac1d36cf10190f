package main

import (
	"context"
	"sync"
	"time"

	"milan/internal/auth"
)

// verifiedOwners remembers the tokens the backend accepted and the username it
// reported for each. It is only used when no token secret is configured, in
// which case the claims of a token prove nothing on their own.
type verifiedOwners struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	tokens map[string]verifiedOwner
}

type verifiedOwner struct {
	username string
	until    time.Time
}

func newVerifiedOwners(ttl time.Duration) *verifiedOwners {
	return &verifiedOwners{
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]verifiedOwner),
	}
}

func (v *verifiedOwners) lookup(token string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	o, ok := v.tokens[token]
	if !ok || !v.now().Before(o.until) {
		return "", false
	}
	return o.username, true
}

// store keeps token for the ttl, or until the token expires if that is sooner.
func (v *verifiedOwners) store(s *auth.Session, username string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	for k, o := range v.tokens {
		if !now.Before(o.until) {
			delete(v.tokens, k)
		}
	}

	until := now.Add(v.ttl)
	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(until) {
		until = s.ExpiresAt
	}
	v.tokens[s.Token] = verifiedOwner{username: username, until: until}
}

func (v *verifiedOwners) forget(token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.tokens, token)
}

func (v *verifiedOwners) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.tokens)
}

// verifyOwner has the backend vouch for the token of s, once per ttl, and
// takes the owner's identity from its answer rather than from the claims.
func (app *application) verifyOwner(ctx context.Context, s *auth.Session) error {
	username, ok := app.owners.lookup(s.Token)
	if !ok {
		var err error
		username, err = app.backend.WithToken(s.Token).VerifyOwner(ctx)
		if err != nil {
			return err
		}
		app.owners.store(s, username)
	}
	if username != "" {
		s.Subject = username
	}
	return nil
}
