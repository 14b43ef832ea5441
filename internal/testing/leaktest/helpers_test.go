package leaktest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf without failing the outer test.
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.failed = true
	_ = fmt.Sprintf(format, args...)
}

func TestGoroutineChecker_NoLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	g := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() { close(done) }()
	<-done

	g.Check(0)
	assert.False(t, rec.failed)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	g := NewGoroutineChecker(rec)
	g.wait = 20 * time.Millisecond

	stop := make(chan struct{})
	defer close(stop)
	for range 3 {
		go func() { <-stop }()
	}

	g.Check(1)
	assert.True(t, rec.failed)
}
