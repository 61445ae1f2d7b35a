// Package memory keeps in-progress quote sessions in process memory.
package memory

import (
	"context"
	"sync"

	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
)

type entry struct {
	mu sync.Mutex
	s  *session.Session
}

// SessionStore serializes mutations per session. Sessions never leave the store
// by reference: callers always receive clones.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entry)}
}

func (st *SessionStore) Create(_ context.Context, s *session.Session) error {
	if s == nil || s.ID == "" {
		return eris.New("session store: session without id")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[s.ID]; ok {
		return eris.Errorf("session store: session %s already exists", s.ID)
	}
	st.sessions[s.ID] = &entry{s: s.Clone()}
	return nil
}

func (st *SessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	e := st.lookup(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return nil, nil
	}
	return e.s.Clone(), nil
}

// Update runs fn on a working copy under the session lock. The copy replaces the
// stored session only when fn returns nil.
func (st *SessionStore) Update(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error) {
	e := st.lookup(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	work := e.s.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	e.s = work
	return work.Clone(), nil
}

// Delete refuses a session whose finalization is running.
func (st *SessionStore) Delete(_ context.Context, id string) (bool, error) {
	e := st.lookup(id)
	if e == nil {
		return false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return false, nil
	}
	if e.s.Finalizing() {
		return false, session.ErrFinalizeInProgress
	}
	// A concurrent Update waiting on the entry sees the tombstone.
	e.s = nil

	st.mu.Lock()
	if st.sessions[id] == e {
		delete(st.sessions, id)
	}
	st.mu.Unlock()
	return true, nil
}

// Len reports how many sessions are live.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *SessionStore) lookup(id string) *entry {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}
