// Package gate implements the exclusive-access discipline around a shared
// engine instance: every call, read or write, requires full mutual
// exclusion, and acquisition is a single non-blocking attempt that fails
// fast under contention instead of queuing the caller.
package gate

import (
	"errors"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrContended is returned when the gate is already held by another
	// in-flight call. Transient; callers decide whether to retry.
	ErrContended = errors.New("gate contended")

	// ErrThrottled is returned when the admission limiter rejects the call
	// before the gate is attempted. Transient, like ErrContended.
	ErrThrottled = errors.New("gate throttled")
)

// Gate serializes access to one engine instance. Acquisition never blocks:
// a held gate rejects new calls immediately with ErrContended.
//
// An optional admission limiter bounds the call rate; calls over budget are
// rejected with ErrThrottled without touching the gate.
type Gate struct {
	sem     *semaphore.Weighted
	limiter *rate.Limiter // nil if unlimited
}

// New creates an unlimited gate.
func New() *Gate {
	return &Gate{sem: semaphore.NewWeighted(1)}
}

// NewLimited creates a gate whose admission rate is capped at opsPerSec
// with the given burst. A non-positive opsPerSec means unlimited.
func NewLimited(opsPerSec float64, burst int) *Gate {
	g := New()
	if opsPerSec > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(opsPerSec), burst)
	}
	return g
}

// Do runs fn while holding the gate. It returns ErrThrottled when the
// admission limiter rejects the call, ErrContended when the gate is held,
// and otherwise whatever fn returns. fn must not call back into the gate.
func (g *Gate) Do(fn func() error) error {
	if g.limiter != nil && !g.limiter.Allow() {
		return ErrThrottled
	}
	if !g.sem.TryAcquire(1) {
		return ErrContended
	}
	defer g.sem.Release(1)
	return fn()
}

// TryLock acquires the gate directly, returning false when it is held.
// Callers that succeed must call Unlock. Most callers want Do; TryLock
// exists for tests and embedders that need to pin the gate across checks.
func (g *Gate) TryLock() bool {
	return g.sem.TryAcquire(1)
}

// Unlock releases a gate acquired via TryLock.
func (g *Gate) Unlock() {
	g.sem.Release(1)
}
