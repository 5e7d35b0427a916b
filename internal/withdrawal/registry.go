package withdrawal

import "sync"

// Registry holds one session per user, created on demand. Each session
// serializes its own transitions, so events for one user run to completion
// before the next one is applied.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*Session),
	}
}

func (r *Registry) Get(userID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, exists := r.sessions[userID]
	if !exists {
		sess = NewSession()
		r.sessions[userID] = sess
	}
	return sess
}

func (r *Registry) Drop(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
