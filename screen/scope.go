package screen

import "sync"

// Scope ties asynchronous state commits to a view's visible lifetime. A
// fetch started while a screen is up may finish after the user has moved on;
// committing through the scope makes those late results no-ops instead of
// racing the next screen's state. Closing is advisory: requests already in
// flight are not aborted, only their commits are discarded.
type Scope struct {
	mu     sync.Mutex
	closed bool
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Commit runs fn only while the scope is active and reports whether it ran.
// Commits are serialized, so fn may mutate the view state without further
// locking.
func (s *Scope) Commit(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	fn()
	return true
}

func (s *Scope) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
