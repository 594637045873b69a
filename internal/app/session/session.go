// Package session owns the per-session document state. A Manager creates
// sessions on demand, restores them from their persisted snapshot, and
// writes a new snapshot after every mutation.
package session

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// Session is the single owner of one document state.
type Session struct {
	id        string
	state     *SafeRef[document.State]
	store     ports.SnapshotStore
	logger    *slog.Logger
	persisted atomic.Bool
}

func newSession(id string, state document.State, store ports.SnapshotStore, logger *slog.Logger) *Session {
	s := &Session{
		id:     id,
		state:  NewRef(state),
		store:  store,
		logger: logger,
	}
	s.persisted.Store(true)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current state. The value is never mutated afterwards and
// needs no copy.
func (s *Session) State() document.State { return s.state.Get() }

// Persisted reports whether the latest snapshot read or write succeeded.
func (s *Session) Persisted() bool { return s.persisted.Load() }

// SetCategory replaces the selected category and keeps the form data.
func (s *Session) SetCategory(ctx context.Context, id string) document.State {
	return s.mutate(ctx, func(st document.State) document.State {
		return st.WithCategory(id)
	})
}

// SetFormData merges values into the stored form data.
func (s *Session) SetFormData(ctx context.Context, values form.Values) document.State {
	return s.mutate(ctx, func(st document.State) document.State {
		return st.WithFormData(values)
	})
}

// Submit stores values and selects the category in one write.
func (s *Session) Submit(ctx context.Context, categoryID string, values form.Values) document.State {
	return s.mutate(ctx, func(st document.State) document.State {
		return st.WithFormData(values).WithCategory(categoryID)
	})
}

// Reset restores the empty state.
func (s *Session) Reset(ctx context.Context) document.State {
	return s.mutate(ctx, func(document.State) document.State {
		return document.Empty()
	})
}

func (s *Session) mutate(ctx context.Context, fn func(document.State) document.State) document.State {
	return s.state.Swap(fn, func(st document.State) {
		s.persist(ctx, st)
	})
}

// persist writes the snapshot. Failure leaves the session in memory only.
func (s *Session) persist(ctx context.Context, st document.State) {
	snap, err := document.Encode(st)
	if err == nil {
		err = s.store.Save(ctx, document.SnapshotKey(s.id), snap)
	}
	if err != nil {
		s.persisted.Store(false)
		s.logger.WarnContext(ctx, "snapshot write failed, continuing in memory",
			slog.String("operation", "persist"),
			slog.String("session_id", s.id),
			slog.Any("error", err),
		)
		return
	}
	s.persisted.Store(true)
}
