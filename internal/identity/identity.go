// Package identity is the boundary to the external identity provider. The
// sync gateway reacts only to UID transitions between empty and non-empty;
// how a UID is obtained (OAuth, session cookie, env var) is not its concern.
package identity

import "sync"

// Identity describes a signed-in user.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Provider supplies the current identity and change notifications.
type Provider interface {
	// Current returns the signed-in identity, or nil when signed out.
	Current() *Identity

	// OnChange registers fn to run after every sign-in or sign-out, with
	// the new identity (nil on sign-out).
	OnChange(fn func(*Identity))
}

// Static is a Provider driven by explicit SignIn/SignOut calls. The CLI uses
// it with credentials from the environment; tests drive it directly.
type Static struct {
	mu        sync.Mutex
	current   *Identity
	listeners []func(*Identity)
}

// NewStatic creates a signed-out Static provider.
func NewStatic() *Static {
	return &Static{}
}

// Current implements Provider.
func (s *Static) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// OnChange implements Provider.
func (s *Static) OnChange(fn func(*Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SignIn sets the identity and notifies listeners. Signing in with the same
// UID again is a no-op.
func (s *Static) SignIn(id Identity) {
	s.mu.Lock()
	if s.current != nil && s.current.UID == id.UID {
		s.mu.Unlock()
		return
	}
	s.current = &id
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		copied := id
		fn(&copied)
	}
}

// SignOut clears the identity and notifies listeners.
func (s *Static) SignOut() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}
