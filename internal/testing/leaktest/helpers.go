// Package leaktest checks that code under test does not leave goroutines
// running after it reports completion.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 5 * time.Millisecond
	// DefaultWait bounds how long Check waits for goroutines to exit.
	DefaultWait = time.Second
)

// GoroutineChecker records the goroutine count at creation and compares it
// against the count at Check.
type GoroutineChecker struct {
	t      testing.TB
	before int
	wait   time.Duration
}

// NewGoroutineChecker snapshots the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), wait: DefaultWait}
}

// Check fails the test when more than tolerance extra goroutines are still
// alive after the wait period.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.wait)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.Gosched()
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// Guard registers a Check(tolerance) to run when the test ends.
func Guard(t testing.TB, tolerance int) {
	t.Helper()
	g := NewGoroutineChecker(t)
	t.Cleanup(func() { g.Check(tolerance) })
}
