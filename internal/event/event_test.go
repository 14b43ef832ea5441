package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/testing/leaktest"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got CaseOpenedPayloadV1

	bus.Subscribe(CaseOpened, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[CaseOpenedPayloadV1](e.Payload)
		got = p
		return err
	})

	require.NoError(t, bus.Publish(context.Background(), NewCaseOpenedEvent("alice", "starter_case", "pistol_mk1", 0.81, 79)))
	assert.Equal(t, "alice", got.PlayerID)
	assert.Equal(t, "pistol_mk1", got.TemplateID)
	assert.Equal(t, 79, got.AdjustedPrice)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), NewFundsDepositedEvent("alice", 10)))
}

func TestMemoryBus_HandlerErrorsJoined(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(ItemSold, func(context.Context, Event) error { calls++; return errors.New("one") })
	bus.Subscribe(ItemSold, func(context.Context, Event) error { calls++; return nil })

	err := bus.Publish(context.Background(), NewItemSoldEvent("alice", "pistol_mk1", 88))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestPublish_NilBus(t *testing.T) {
	assert.NotPanics(t, func() {
		Publish(context.Background(), nil, NewFundsDepositedEvent("alice", 10))
	})
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"player_id": "bob", "amount": 42}
	p, err := DecodePayload[FundsDepositedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "bob", p.PlayerID)
	assert.Equal(t, 42, p.Amount)
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(2*time.Second, 3))
}

type flakyBus struct {
	*MemoryBus
	failures int32
	calls    atomic.Int32
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	if b.calls.Add(1) <= b.failures {
		return errors.New("transient")
	}
	return b.MemoryBus.Publish(ctx, e)
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	leaktest.Guard(t, 0)
	inner := &flakyBus{MemoryBus: NewMemoryBus(), failures: 2}
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, nil)

	require.NoError(t, p.Publish(context.Background(), NewFundsDepositedEvent("alice", 1)))
	require.NoError(t, p.Shutdown(context.Background()))

	assert.Equal(t, int32(3), inner.calls.Load())
}

func TestResilientPublisher_DeadLettersAfterExhaustion(t *testing.T) {
	leaktest.Guard(t, 0)
	path := filepath.Join(t.TempDir(), "dead.jsonl")
	dlq, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dlq.Close()

	inner := &flakyBus{MemoryBus: NewMemoryBus(), failures: 100}
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond}, dlq)

	require.NoError(t, p.Publish(context.Background(), NewItemSoldEvent("alice", "knife_rusty", 220)))
	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, ItemSold, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "transient", entry.LastError)
}
