package interview

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Turn records one question/answer exchange within a session.
type Turn struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Critique Critique `json:"critique"`
}

// Session is one multi-turn practice run: a fixed question list walked
// through one answer at a time.
type Session struct {
	ID        string    `json:"id"`
	JobTitle  string    `json:"job_title,omitempty"`
	Mode      string    `json:"mode"`
	Level     string    `json:"level,omitempty"`
	Questions []string  `json:"questions"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return len(s.Turns) >= len(s.Questions)
}

// CurrentQuestion returns the next unanswered question, or "" when the
// session is complete.
func (s *Session) CurrentQuestion() string {
	if s.Done() {
		return ""
	}
	return s.Questions[len(s.Turns)]
}

// ErrSessionNotFound indicates an unknown session id.
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrSessionComplete indicates an answer was submitted to a finished session.
type ErrSessionComplete struct {
	ID string
}

func (e *ErrSessionComplete) Error() string {
	return fmt.Sprintf("session already complete: %s", e.ID)
}

// SessionStore keeps practice sessions in memory. Sessions live for the
// process lifetime only, matching the per-visit session state of the UI
// this serves; there is no persistence layer.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a new session over the given questions and returns a
// snapshot of it.
func (st *SessionStore) Create(opts QuestionOptions, questions []string) Session {
	session := &Session{
		ID:        uuid.NewString(),
		JobTitle:  opts.JobTitle,
		Mode:      opts.Mode,
		Level:     opts.Level,
		Questions: questions,
		Turns:     []Turn{},
		CreatedAt: time.Now().UTC(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return *session
}

// Get returns a snapshot of the session with the given id.
func (st *SessionStore) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return Session{}, &ErrSessionNotFound{ID: id}
	}
	return snapshot(session), nil
}

// Submit records an answered turn against the session's current question
// and returns the updated snapshot.
func (st *SessionStore) Submit(id, answer string, critique Critique) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return Session{}, &ErrSessionNotFound{ID: id}
	}
	if session.Done() {
		return Session{}, &ErrSessionComplete{ID: id}
	}

	session.Turns = append(session.Turns, Turn{
		Question: session.CurrentQuestion(),
		Answer:   answer,
		Critique: critique,
	})

	return snapshot(session), nil
}

// snapshot copies a session so callers never share the store's slices.
func snapshot(session *Session) Session {
	copied := *session
	copied.Questions = append([]string(nil), session.Questions...)
	copied.Turns = append([]Turn(nil), session.Turns...)
	return copied
}
