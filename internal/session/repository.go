package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrSnapshotNotFound is returned by repositories when no snapshot exists for a player.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Repository persists session snapshots.
type Repository interface {
	Load(ctx context.Context, playerID string) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// MemoryRepository keeps encoded snapshots in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

// Load decodes the stored snapshot for playerID.
func (r *MemoryRepository) Load(_ context.Context, playerID string) (*Snapshot, error) {
	r.mu.RLock()
	blob, ok := r.blobs[playerID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSnapshotNotFound
	}

	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save encodes and stores snap, replacing any previous snapshot.
func (r *MemoryRepository) Save(_ context.Context, snap *Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.blobs[snap.PlayerID] = blob
	r.mu.Unlock()
	return nil
}

// Len returns the number of stored snapshots.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}
