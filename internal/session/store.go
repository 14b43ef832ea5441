package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/concurrency"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/metrics"
	"github.com/osse101/CaseForge_Go/internal/quality"
)

// StoreConfig sizes the session cache.
type StoreConfig struct {
	CacheSize       int
	TTL             time.Duration
	StartingBalance int
}

// Store keeps hot sessions in an expiring LRU, serialises operations per
// player and writes every change through to the repository, so an evicted
// session is always reloadable.
type Store struct {
	cache   *expirable.LRU[string, *State]
	locks   *concurrency.LockManager
	repo    Repository
	catalog *catalog.Registry
	sampler quality.Sampler
	cfg     StoreConfig
}

// NewStore creates a session store.
func NewStore(cfg StoreConfig, reg *catalog.Registry, sampler quality.Sampler, repo Repository) *Store {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	onEvict := func(playerID string, _ *State) {
		metrics.SessionsEvicted.Inc()
		slog.Debug(LogMsgSessionEvicted, logger.AttrKeyPlayerID, playerID)
	}
	return &Store{
		cache:   expirable.NewLRU[string, *State](cfg.CacheSize, onEvict, cfg.TTL),
		locks:   concurrency.NewLockManager(),
		repo:    repo,
		catalog: reg,
		sampler: sampler,
		cfg:     cfg,
	}
}

// WithSession runs fn against the player's session while holding the player's
// lock, creating the session on first contact. The session is saved after fn
// returns, whether or not fn failed: operations leave state consistent on error.
func (s *Store) WithSession(ctx context.Context, playerID string, fn func(*State) error) error {
	return s.locks.Do(playerID, func() error {
		st, err := s.get(ctx, playerID)
		if err != nil {
			return err
		}

		fnErr := fn(st)
		st.Touch()

		if err := s.repo.Save(ctx, st.Snapshot()); err != nil {
			return fmt.Errorf(ErrMsgSaveSnapshotFailed, playerID, err)
		}
		s.cache.Add(playerID, st)
		return fnErr
	})
}

// View runs fn against the session without persisting afterwards.
// fn must not mutate the state.
func (s *Store) View(ctx context.Context, playerID string, fn func(*State) error) error {
	return s.locks.Do(playerID, func() error {
		st, err := s.get(ctx, playerID)
		if err != nil {
			return err
		}
		return fn(st)
	})
}

// Len returns the number of cached sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

// get returns the cached session, restoring or creating it when absent.
// Callers hold the player's lock.
func (s *Store) get(ctx context.Context, playerID string) (*State, error) {
	if st, ok := s.cache.Get(playerID); ok {
		return st, nil
	}

	log := logger.FromContext(ctx)

	snap, err := s.repo.Load(ctx, playerID)
	switch {
	case errors.Is(err, ErrSnapshotNotFound):
		st := New(playerID, s.catalog, s.cfg.StartingBalance)
		if err := s.repo.Save(ctx, st.Snapshot()); err != nil {
			return nil, fmt.Errorf(ErrMsgSaveSnapshotFailed, playerID, err)
		}
		metrics.SessionsCreated.Inc()
		log.Info(LogMsgSessionCreated, "balance", st.Wallet.Balance(), "granted", st.GrantedPresets)
		s.cache.Add(playerID, st)
		return st, nil
	case err != nil:
		return nil, fmt.Errorf(ErrMsgLoadSnapshotFailed, playerID, err)
	}

	st, err := Restore(ctx, snap, s.catalog, s.sampler)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRestoreFailed, playerID, err)
	}
	if granted := st.ApplyFreeGrants(s.catalog); len(granted) > 0 {
		log.Info(LogMsgFreeGrantsApplied, "cases", granted)
		if err := s.repo.Save(ctx, st.Snapshot()); err != nil {
			return nil, fmt.Errorf(ErrMsgSaveSnapshotFailed, playerID, err)
		}
	}
	log.Debug(LogMsgSessionRestored, "instances", st.Holdings.InstanceCount())
	s.cache.Add(playerID, st)
	return st, nil
}
