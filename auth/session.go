// Package auth handles the dashboard's session against the upstream
// API: login, owner registration and token persistence. Tokens are
// issued and validated upstream; this side only stores them and drops
// them on logout.
package auth

import (
	"context"

	"github.com/menuly/restaurant-admin/client"
)

// SessionStore is the slice of the device store the session needs.
type SessionStore interface {
	Token() string
	SetToken(token string)
	User() map[string]any
	SetUser(u map[string]any)
	ClearSession()
}

// Session ties the auth endpoints to persisted credentials.
type Session struct {
	api   *client.Client
	store SessionStore
}

func NewSession(api *client.Client, store SessionStore) *Session {
	return &Session{api: api, store: store}
}

// Login authenticates and persists the resulting token and user.
// Callers surface failures through client.NormalizeError.
func (s *Session) Login(ctx context.Context, email, password string) error {
	res, err := s.api.Login(ctx, client.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	if res.Token != "" {
		s.store.SetToken(res.Token)
	}
	if res.User != nil {
		s.store.SetUser(res.User)
	}
	return nil
}

// RegisterOwner registers a restaurant owner and, when the backend
// issues a token right away, starts the session.
func (s *Session) RegisterOwner(ctx context.Context, in client.OwnerRegistration) error {
	res, err := s.api.RegisterOwner(ctx, in)
	if err != nil {
		return err
	}
	if res.Token != "" {
		s.store.SetToken(res.Token)
	}
	if res.User != nil {
		s.store.SetUser(res.User)
	}
	return nil
}

// Logout drops the persisted session. Purely local: there is no
// upstream logout endpoint.
func (s *Session) Logout() {
	s.store.ClearSession()
}

// CurrentUser returns the persisted user record, nil when logged out.
func (s *Session) CurrentUser() map[string]any {
	return s.store.User()
}

// LoggedIn reports whether a token is stored.
func (s *Session) LoggedIn() bool {
	return s.store.Token() != ""
}
