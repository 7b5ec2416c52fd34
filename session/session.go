// Package session keeps per-session generation history in memory.
// Nothing here outlives the process: idle sessions are expired by a
// janitor and there is no persistence of any kind.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/omghumre/ui-generator-agent/logger"
)

// ErrNotFound is returned when a session id is unknown or expired
var ErrNotFound = fmt.Errorf("session not found")

// Version is one generated revision of the UI code. Code is the extracted
// code block; Raw is the model output verbatim. Framework is the target
// the version was generated for, which can differ between versions of the
// same session.
type Version struct {
	Number    int       `json:"number"`
	Framework string    `json:"framework"`
	Code      string    `json:"code"`
	Raw       string    `json:"raw"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackEntry records one improve round's human feedback
type FeedbackEntry struct {
	Version    int       `json:"version"`
	Categories []string  `json:"categories,omitempty"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session holds the generation history for one user interaction
type Session struct {
	ID        string          `json:"id"`
	Framework string          `json:"framework"`
	Versions  []Version       `json:"versions"`
	Feedback  []FeedbackEntry `json:"feedback"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LatestVersion returns the most recent version, if any
func (s *Session) LatestVersion() (Version, bool) {
	if len(s.Versions) == 0 {
		return Version{}, false
	}
	return s.Versions[len(s.Versions)-1], true
}

// VersionByNumber returns the numbered version, if it exists
func (s *Session) VersionByNumber(number int) (Version, bool) {
	for _, v := range s.Versions {
		if v.Number == number {
			return v, true
		}
	}
	return Version{}, false
}

// Store is an in-memory, mutex-guarded session store keyed by session id
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewStore creates a session store whose janitor expires sessions idle
// for longer than ttl
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go s.janitor()

	return s
}

// Create starts a new session targeting the given framework
func (s *Store) Create(framework string) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		Framework: framework,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	logger.Debugf("Created session %s for framework %s", sess.ID, framework)

	return copySession(sess)
}

// Get returns a snapshot of the session with the given id
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return copySession(sess), nil
}

// AddVersion appends a new code version and returns it. Version numbers
// increase monotonically within a session. The session's framework follows
// the most recent version so later rounds target what the user last chose.
func (s *Store) AddVersion(id, framework, code, raw, model string) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Version{}, ErrNotFound
	}

	version := Version{
		Number:    len(sess.Versions) + 1,
		Framework: framework,
		Code:      code,
		Raw:       raw,
		Model:     model,
		CreatedAt: time.Now(),
	}
	sess.Versions = append(sess.Versions, version)
	sess.Framework = framework
	sess.UpdatedAt = version.CreatedAt

	return version, nil
}

// AddFeedback records an improve round's feedback against a version
func (s *Store) AddFeedback(id string, entry FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}

	entry.CreatedAt = time.Now()
	sess.Feedback = append(sess.Feedback, entry)
	sess.UpdatedAt = entry.CreatedAt

	return nil
}

// Delete removes a session ("Start Over")
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)

	return nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the janitor
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *Store) janitor() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.expire()
		}
	}
}

func (s *Store) expire() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			logger.Debugf("Expired idle session %s", id)
		}
	}
}

// copySession snapshots a session so callers never share slices with the store
func copySession(sess *Session) *Session {
	out := *sess
	out.Versions = append([]Version(nil), sess.Versions...)
	out.Feedback = append([]FeedbackEntry(nil), sess.Feedback...)
	return &out
}
