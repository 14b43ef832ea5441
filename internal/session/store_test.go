package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Load(ctx context.Context, playerID string) (*Snapshot, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Snapshot), args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, snap *Snapshot) error {
	return m.Called(ctx, snap).Error(0)
}

func newTestStore(t *testing.T, repo Repository) *Store {
	t.Helper()
	return NewStore(StoreConfig{CacheSize: 8, TTL: time.Minute, StartingBalance: 500}, testCatalog(t), fixedSampler(0.5), repo)
}

func TestStore_CreatesSessionOnFirstContact(t *testing.T) {
	repo := NewMemoryRepository()
	store := newTestStore(t, repo)

	var balance int
	err := store.View(context.Background(), "alice", func(st *State) error {
		balance = st.Wallet.Balance()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 500, balance)
	assert.Equal(t, 1, repo.Len(), "new sessions are persisted immediately")
	assert.Equal(t, 1, store.Len())
}

func TestStore_WritesThroughOnError(t *testing.T) {
	repo := NewMemoryRepository()
	store := newTestStore(t, repo)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithSession(ctx, "alice", func(st *State) error {
		require.NoError(t, st.Holdings.RemoveCase("starter_case"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	snap, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CaseCounts["starter_case"])
}

func TestStore_ReloadsEvictedSession(t *testing.T) {
	repo := NewMemoryRepository()
	store := NewStore(StoreConfig{CacheSize: 1, TTL: time.Minute, StartingBalance: 500}, testCatalog(t), fixedSampler(0.5), repo)
	ctx := context.Background()

	require.NoError(t, store.WithSession(ctx, "alice", func(st *State) error {
		return st.Wallet.TryDeduct(120)
	}))
	// Loading bob evicts alice from the single-entry cache.
	require.NoError(t, store.View(ctx, "bob", func(*State) error { return nil }))

	var balance, starters int
	require.NoError(t, store.View(ctx, "alice", func(st *State) error {
		balance = st.Wallet.Balance()
		starters = st.Holdings.CaseCount("starter_case")
		return nil
	}))
	assert.Equal(t, 380, balance)
	assert.Equal(t, 2, starters, "free grants are not repeated on reload")
}

func TestStore_LoadFailure(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Load", mock.Anything, "alice").Return(nil, errors.New("disk on fire"))
	store := newTestStore(t, repo)

	err := store.WithSession(context.Background(), "alice", func(*State) error {
		t.Fatal("fn must not run when the session cannot load")
		return nil
	})
	assert.ErrorContains(t, err, "disk on fire")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStore_SaveFailure(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Load", mock.Anything, "alice").Return(nil, ErrSnapshotNotFound)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("read-only"))
	store := newTestStore(t, repo)

	err := store.View(context.Background(), "alice", func(*State) error { return nil })
	assert.ErrorContains(t, err, "read-only")
	repo.AssertExpectations(t)
}

func TestStore_SerialisesPerPlayer(t *testing.T) {
	store := newTestStore(t, NewMemoryRepository())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithSession(ctx, "alice", func(st *State) error {
				return st.Wallet.Credit(1)
			})
		}()
	}
	wg.Wait()

	require.NoError(t, store.View(ctx, "alice", func(st *State) error {
		assert.Equal(t, 550, st.Wallet.Balance())
		return nil
	}))
}
