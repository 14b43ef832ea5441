package session

import "time"

// SnapshotVersion is the current snapshot layout. Version 0 snapshots carry
// per-template counts and quality lists instead of instance records.
const SnapshotVersion = 1

// Store defaults
const (
	DefaultCacheSize       = 1024
	DefaultTTL             = 30 * time.Minute
	DefaultStartingBalance = 500
)

// Log messages
const (
	LogMsgSessionCreated      = "Created new player session"
	LogMsgSessionRestored     = "Restored player session"
	LogMsgFreeGrantsApplied   = "Granted new free cases"
	LogMsgSessionEvicted      = "Session evicted from cache"
	LogMsgSkippedUnknownItem  = "Skipped snapshot item with unknown template"
	LogMsgSkippedUnknownCase  = "Skipped snapshot case not in catalog"
	LogMsgSkippedStalePending = "Discarded pending drop for unknown template"
)

// Error message formats
const (
	ErrMsgLoadSnapshotFailed = "failed to load session for %s: %w"
	ErrMsgSaveSnapshotFailed = "failed to save session for %s: %w"
	ErrMsgRestoreFailed      = "failed to restore session for %s: %w"
)
