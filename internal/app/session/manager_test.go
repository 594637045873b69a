package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/storage"
	"github.com/sahilbrid/nyaay-saathi/internal/app/session"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedID(id string) session.Option {
	return session.WithIDGenerator(func() string { return id })
}

func TestManager_StartIsEmpty(t *testing.T) {
	t.Parallel()

	m := session.NewManager(storage.NewMemory(), discardLogger(), fixedID("s-1"))
	s := m.Start(context.Background())

	assert.Equal(t, "s-1", s.ID())
	assert.Equal(t, document.Empty(), s.State())
	assert.True(t, s.Persisted())
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetReturnsLiveSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), discardLogger(), fixedID("s-1"))
	started := m.Start(ctx)

	got, err := m.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Same(t, started, got)
}

func TestManager_GetEmptyID(t *testing.T) {
	t.Parallel()

	m := session.NewManager(storage.NewMemory(), discardLogger())
	_, err := m.Get(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestManager_SnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()
	data := form.Values{"fullName": "Asha Rao", "employerName": "Acme Co", "unpaidAmount": "1200"}

	first := session.NewManager(store, discardLogger(), fixedID("s-1"))
	s := first.Start(ctx)
	s.SetFormData(ctx, data)
	s.SetCategory(ctx, "wage-theft")

	// A fresh manager simulates a reload: nothing in memory, snapshot on disk.
	second := session.NewManager(store, discardLogger())
	restored, err := second.Get(ctx, "s-1")
	require.NoError(t, err)

	assert.Equal(t, document.State{Category: "wage-theft", FormData: data}, restored.State())
	assert.True(t, restored.Persisted())
}

func TestManager_EndKeepsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), discardLogger(), fixedID("s-1"))
	s := m.Start(ctx)
	s.SetCategory(ctx, "family-law")

	m.End(ctx, "s-1")
	assert.Equal(t, 0, m.Len())

	again, err := m.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.NotSame(t, s, again)
	assert.Equal(t, "family-law", again.State().Category)

	// Ending an unknown session is a no-op.
	m.End(ctx, "missing")
}

func TestSession_Mutations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), discardLogger())
	s := m.Start(ctx)

	st := s.SetFormData(ctx, form.Values{"fullName": "Asha", "city": "Pune"})
	assert.Equal(t, form.Values{"fullName": "Asha", "city": "Pune"}, st.FormData)

	st = s.SetFormData(ctx, form.Values{"fullName": "Asha Rao"})
	assert.Equal(t, form.Values{"fullName": "Asha Rao", "city": "Pune"}, st.FormData)

	st = s.SetCategory(ctx, "wage-theft")
	assert.Equal(t, "wage-theft", st.Category)
	assert.Len(t, st.FormData, 2, "selecting a category keeps form data")

	st = s.Submit(ctx, "family-law", form.Values{"spouseName": "Ravi"})
	assert.Equal(t, "family-law", st.Category)
	assert.Equal(t, "Ravi", st.FormData["spouseName"])

	st = s.Reset(ctx)
	assert.Equal(t, document.Empty(), st)
	assert.Equal(t, document.Empty(), s.State())
}

func TestSession_SaveFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mocks.NewMockSnapshotStore(t)
	store.EXPECT().Save(mock.Anything, document.SnapshotKey("s-1"), mock.Anything).
		Return(errors.New("disk full")).Once()
	store.EXPECT().Save(mock.Anything, document.SnapshotKey("s-1"), mock.Anything).
		Return(nil).Once()

	m := session.NewManager(store, discardLogger(), fixedID("s-1"))
	s := m.Start(ctx)

	st := s.SetCategory(ctx, "wage-theft")
	assert.Equal(t, "wage-theft", st.Category, "state still changes in memory")
	assert.False(t, s.Persisted())

	s.SetFormData(ctx, form.Values{"fullName": "Asha Rao"})
	assert.True(t, s.Persisted(), "a later successful write clears the flag")
}

func TestManager_LoadFailureStartsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := mocks.NewMockSnapshotStore(t)
	store.EXPECT().Load(mock.Anything, document.SnapshotKey("s-1")).
		Return(nil, errors.New("connection refused"))

	m := session.NewManager(store, discardLogger())
	s, err := m.Get(ctx, "s-1")
	require.NoError(t, err)

	assert.Equal(t, document.Empty(), s.State())
	assert.False(t, s.Persisted())
}

func TestManager_CorruptSnapshotStartsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Save(ctx, document.SnapshotKey("s-1"), document.Snapshot("{not json")))

	m := session.NewManager(store, discardLogger())
	s, err := m.Get(ctx, "s-1")
	require.NoError(t, err)

	assert.Equal(t, document.Empty(), s.State())
	assert.False(t, s.Persisted())
}

func TestManager_ConcurrentGetRestoresOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), discardLogger())

	const callers = 20
	got := make([]*session.Session, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			s, err := m.Get(ctx, "shared")
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			got[i] = s
		})
	}
	wg.Wait()

	for _, s := range got[1:] {
		assert.Same(t, got[0], s)
	}
	assert.Equal(t, 1, m.Len())
}
