package auth

import "time"

// TokenParser turns a bearer token into an owner session.
type TokenParser interface {
	Parse(token string) (*Session, error)
}

// Session is the owner's login state. Authentication status is derived from
// the token and its expiry, never stored separately.
type Session struct {
	Token     string    `json:"-"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAuthenticated(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
