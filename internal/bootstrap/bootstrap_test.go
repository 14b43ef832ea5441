package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/game"
	"github.com/osse101/CaseForge_Go/internal/testing/leaktest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:            "error",
		LogFormat:           "text",
		Environment:         "dev",
		RNGSeed:             7,
		StartingBalance:     500,
		EventDeadLetterPath: filepath.Join(t.TempDir(), "events", "deadletter.jsonl"),
		EventMaxRetries:     1,
		EventRetryDelay:     time.Millisecond,
	}
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)

	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = events.DeadLetter.Close() })

	_, err = os.Stat(cfg.EventDeadLetterPath)
	assert.NoError(t, err, "dead-letter file created along with its directory")

	received := make(chan event.Event, 1)
	events.Bus.Subscribe(event.FundsDeposited, func(_ context.Context, e event.Event) error {
		received <- e
		return nil
	})
	require.NoError(t, events.Bus.Publish(context.Background(), event.NewFundsDepositedEvent("alice", 10)))

	select {
	case e := <-received:
		assert.Equal(t, event.FundsDeposited, e.Type)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBuildEngine(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	engine, err := BuildEngine(ctx, cfg, event.NewMemoryBus())
	require.NoError(t, err)

	assert.NotEmpty(t, engine.CatalogCases())
	view, err := engine.Holdings(ctx, "alice", game.HoldingsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 500, view.Balance)
}

func TestBuildEngine_Errors(t *testing.T) {
	dir := t.TempDir()
	badTuning := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(badTuning, []byte("crafting:\n  fee_rate: 2\n"), 0o600))

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"missing catalog", func(c *config.Config) { c.CatalogPath = filepath.Join(dir, "nope.json") }, ErrMsgFailedLoadCatalog},
		{"missing tuning", func(c *config.Config) { c.TuningPath = filepath.Join(dir, "nope.yaml") }, ErrMsgFailedLoadTuning},
		{"invalid tuning", func(c *config.Config) { c.TuningPath = badTuning }, ErrMsgFailedLoadTuning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			_, err := BuildEngine(context.Background(), cfg, event.NewMemoryBus())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGracefulShutdown_ClosesEvents(t *testing.T) {
	leaktest.Guard(t, 0)
	events, err := InitializeEventSystem(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GracefulShutdown(ctx, ShutdownComponents{Events: events})

	assert.Error(t, events.DeadLetter.Close(), "already closed")
}
