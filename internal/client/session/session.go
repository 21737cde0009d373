// Package session holds the authenticated identity for the running client:
// one owned store with explicit set/patch/clear operations instead of
// ambient globals. Views read it; only the login/logout and profile flows
// mutate it.
package session

import "sync"

// Identity is the cached view of the authenticated profile. Display fields
// (name, avatar) are patched after every successful store write so they
// never go stale, and never ahead of the store.
type Identity struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Company     string
	Dob         int64
	Avatar      string
}

// Fields is a partial identity used with Patch. Nil members are left
// untouched on merge.
type Fields struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Address     *string
	Company     *string
	Dob         *int64
	Avatar      *string
}

// Store is the process-wide session state. It is safe for concurrent
// readers; the CLI mutates it from its command loop and reads it from the
// liveness watcher goroutine.
type Store struct {
	mu       sync.RWMutex
	identity Identity
	token    string
	authed   bool
	subs     []func(Identity, bool)
}

func NewStore() *Store {
	return &Store{}
}

// SetCredentials installs the identity after a successful login together
// with the session marker token.
func (s *Store) SetCredentials(id Identity, token string) {
	s.mu.Lock()
	s.identity = id
	s.token = token
	s.authed = true
	s.mu.Unlock()
	s.notify()
}

// Patch merges the provided fields into the current identity. It is a no-op
// when nobody is logged in. Callers must only invoke it after the remote
// write has succeeded.
func (s *Store) Patch(f Fields) {
	s.mu.Lock()
	if !s.authed {
		s.mu.Unlock()
		return
	}
	if f.Name != nil {
		s.identity.Name = *f.Name
	}
	if f.Email != nil {
		s.identity.Email = *f.Email
	}
	if f.PhoneNumber != nil {
		s.identity.PhoneNumber = *f.PhoneNumber
	}
	if f.Address != nil {
		s.identity.Address = *f.Address
	}
	if f.Company != nil {
		s.identity.Company = *f.Company
	}
	if f.Dob != nil {
		s.identity.Dob = *f.Dob
	}
	if f.Avatar != nil {
		s.identity.Avatar = *f.Avatar
	}
	s.mu.Unlock()
	s.notify()
}

// Clear destroys the session on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.identity = Identity{}
	s.token = ""
	s.authed = false
	s.mu.Unlock()
	s.notify()
}

// Current returns a copy of the identity and whether anyone is logged in.
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.authed
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// Token returns the session marker issued at login, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers fn to run after every mutation with a copy of the new
// state. Used by view code to re-render without polling.
func (s *Store) Subscribe(fn func(Identity, bool)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	id, authed := s.identity, s.authed
	subs := make([]func(Identity, bool), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(id, authed)
	}
}
