package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// Manager tracks live sessions by ID.
type Manager struct {
	store  ports.SnapshotStore
	logger *slog.Logger
	newID  func() string

	mu       sync.Mutex
	sessions map[string]*Session
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator replaces the UUID generator used by Start.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

// NewManager creates a Manager persisting snapshots to store.
func NewManager(store ports.SnapshotStore, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		logger:   logger,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start creates a session with a fresh ID and empty state.
func (m *Manager) Start(ctx context.Context) *Session {
	s := newSession(m.newID(), document.Empty(), m.store, m.logger)

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.DebugContext(ctx, "session started", slog.String("session_id", s.id))
	return s
}

// Get returns the live session for id, restoring it from its snapshot when it
// is not in memory. A missing snapshot yields an empty state. An unreadable
// snapshot is logged and also yields an empty state, marked not persisted.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, domain.NewValidationError(map[string]string{"session_id": domain.MsgRequired})
	}

	if s, ok := m.lookup(id); ok {
		return s, nil
	}

	state, persisted := m.restore(ctx, id)
	restored := newSession(id, state, m.store, m.logger)
	restored.persisted.Store(persisted)

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have restored the same session meanwhile.
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	m.sessions[id] = restored
	return restored, nil
}

func (m *Manager) lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) restore(ctx context.Context, id string) (document.State, bool) {
	snap, err := m.store.Load(ctx, document.SnapshotKey(id))
	if errors.Is(err, domain.ErrNotFound) {
		return document.Empty(), true
	}
	if err == nil {
		var state document.State
		state, err = document.Decode(snap)
		if err == nil {
			m.logger.DebugContext(ctx, "session restored",
				slog.String("session_id", id),
				slog.String("category", state.Category),
			)
			return state, true
		}
	}

	m.logger.WarnContext(ctx, "snapshot read failed, starting empty",
		slog.String("operation", "restore"),
		slog.String("session_id", id),
		slog.Any("error", fmt.Errorf("restoring session: %w", err)),
	)
	return document.Empty(), false
}

// End evicts the session from memory. The snapshot is kept, so a later Get
// with the same ID restores the state. Ending an unknown session is a no-op.
func (m *Manager) End(ctx context.Context, id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	m.logger.DebugContext(ctx, "session ended", slog.String("session_id", id))
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
