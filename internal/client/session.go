// Package client is a programmatic Go client for the movie service API.
// It owns the pieces the browser frontend kept in page state: the session,
// per-movie favorite state with optimistic updates, and the recently-viewed
// list.
package client

import "sync"

// Session is the single owner of the account's token and email. Consumers
// subscribe to be told when the session is torn down (logout or a rejected
// token) instead of polling shared state.
type Session struct {
	mu          sync.Mutex
	token       string
	email       string
	subscribers []func()
}

func NewSession() *Session {
	return &Session{}
}

// Init installs credentials, typically right after a successful login.
func (s *Session) Init(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.email = email
}

// Token returns the current session token, empty when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Email returns the signed-in account email.
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Active reports whether a session is present.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Subscribe registers fn to run whenever the session is cleared.
// The caller typically redirects to the login entry point there.
func (s *Session) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Clear drops the credentials and notifies subscribers. Safe to call when
// already signed out.
func (s *Session) Clear() {
	s.mu.Lock()
	wasActive := s.token != ""
	s.token = ""
	s.email = ""
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	if !wasActive {
		return
	}
	for _, fn := range subs {
		fn()
	}
}
