package session

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/classifier"
	"github.com/ayusman/mudra/internal/predict"
	"github.com/ayusman/mudra/internal/sequence"
	"github.com/ayusman/mudra/internal/wordmatch"
)

// Config holds the per-component configuration applied to every session
// the manager creates.
type Config struct {
	Classifier classifier.Config
	Sequence   sequence.Config
	Matcher    wordmatch.Config

	// Vocabulary overrides the compiled-in sign vocabulary when non-nil.
	Vocabulary *wordmatch.Vocabulary
}

// DefaultConfig returns the standard configuration for all components.
func DefaultConfig() Config {
	return Config{
		Classifier: classifier.DefaultConfig(),
		Sequence:   sequence.DefaultConfig(),
		Matcher:    wordmatch.DefaultConfig(),
	}
}

// Manager maintains the registry of active sessions. Sessions share the
// read-only vocabulary and predictor; everything mutable lives inside the
// individual session.
type Manager struct {
	cfg       Config
	vocab     wordmatch.Vocabulary
	predictor *predict.Predictor

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager validates the vocabulary once and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Classifier == (classifier.Config{}) {
		cfg.Classifier = classifier.DefaultConfig()
	}
	if cfg.Sequence == (sequence.Config{}) {
		cfg.Sequence = sequence.DefaultConfig()
	}
	if cfg.Matcher == (wordmatch.Config{}) {
		cfg.Matcher = wordmatch.DefaultConfig()
	}

	vocab := wordmatch.DefaultVocabulary()
	if cfg.Vocabulary != nil {
		vocab = *cfg.Vocabulary
	}
	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	return &Manager{
		cfg:       cfg,
		vocab:     vocab,
		predictor: predict.NewDefault(),
		sessions:  make(map[string]*Session),
	}, nil
}

// Create registers and returns a new session.
func (m *Manager) Create() (*Session, error) {
	matcher, err := wordmatch.New(m.vocab, m.cfg.Matcher)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:         uuid.NewString(),
		classifier: classifier.NewWithConfig(m.cfg.Classifier),
		buffer:     sequence.NewBufferWithConfig(m.cfg.Sequence),
		matcher:    matcher,
		predictor:  m.predictor,
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	log.Printf("Session %s created", s.id)
	return s, nil
}

// Get returns the session with the given ID, if registered.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove unregisters a session. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		log.Printf("Session %s removed", id)
	}
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
