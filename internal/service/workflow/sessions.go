package workflow

import (
	"sync"
	"time"

	"tms/internal/entities"
)

// editSession buffers one actor's edit of one entity. The snapshot is the
// entity state at the moment editing started; cancelling restores it.
type editSession struct {
	snapshot  *entities.Entity
	expiresAt time.Time
}

// SessionStore keeps open edit sessions in memory, keyed by entity and
// actor. An entity can be open in at most one session per actor; sessions
// expire after the configured TTL and are reaped by a background task.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]editSession
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]editSession),
	}
}

func sessionKey(entityID, actorID string) string {
	return entityID + "/" + actorID
}

// Start opens a session holding a deep copy of the entity. Starting over an
// existing session replaces its snapshot and resets the TTL.
func (s *SessionStore) Start(e *entities.Entity, actorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionKey(e.ID, actorID)] = editSession{
		snapshot:  e.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns a copy of the session snapshot, or false if the actor has no
// live session for the entity.
func (s *SessionStore) Get(entityID, actorID string) (*entities.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey(entityID, actorID)]
	if !ok || time.Now().After(session.expiresAt) {
		return nil, false
	}
	return session.snapshot.Clone(), true
}

// End closes the session and returns its snapshot, or false if none was
// open.
func (s *SessionStore) End(entityID, actorID string) (*entities.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(entityID, actorID)
	session, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	delete(s.sessions, key)

	if time.Now().After(session.expiresAt) {
		return nil, false
	}
	return session.snapshot, true
}

// PruneExpired drops every expired session and returns how many were
// removed.
func (s *SessionStore) PruneExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for key, session := range s.sessions {
		if now.After(session.expiresAt) {
			delete(s.sessions, key)
			pruned++
		}
	}
	return pruned
}

// Len reports the number of live sessions, expired ones included until the
// next prune.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
