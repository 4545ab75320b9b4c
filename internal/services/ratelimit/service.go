// Package ratelimit decides whether an inbound request may proceed.
// Admission is a true sliding window: the count covers the trailing window
// ending at the current request, not a fixed bucket that resets at a
// boundary, so capacity returns one request at a time as old requests age
// out of the window.
package ratelimit

import (
	"context"
	"log"
	"time"

	"walletledger/internal/repositories/counter"
)

// Default admission policy: 100 requests per identifier per 60 seconds.
const (
	DefaultLimit  = 100
	DefaultWindow = 60 * time.Second
)

// Decision is the outcome of one admission check.
type Decision struct {
	Admitted  bool
	Limit     int64
	Remaining int64
	// ResetAt is when the oldest counted request leaves the window,
	// freeing one slot.
	ResetAt time.Time
	// RetryAfter is how long a rejected caller should wait, zero when
	// admitted. Never below one second so clients do not busy-retry.
	RetryAfter time.Duration
}

// Limiter is the rate admission controller.
type Limiter struct {
	store  counter.Store
	limit  int64
	window time.Duration
	now    func() time.Time
}

// Config overrides the default admission policy. Zero values keep defaults.
type Config struct {
	Limit  int64
	Window time.Duration
}

// NewLimiter creates an admission controller backed by the given counter store.
func NewLimiter(store counter.Store, cfg Config) *Limiter {
	if store == nil {
		panic("counter store is required")
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	return &Limiter{
		store:  store,
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    time.Now,
	}
}

// Check records the request against identifier and decides admission.
//
// Failure policy is FAIL-OPEN: when the counter store is unreachable the
// request is admitted and the error logged, trading strict enforcement for
// availability of the ledger API.
func (l *Limiter) Check(ctx context.Context, identifier string) Decision {
	usage, err := l.store.IncrementAndGet(ctx, identifier, l.window, l.limit)
	if err != nil {
		log.Printf("rate limiter: counter store unavailable, admitting %q: %v", identifier, err)
		return Decision{Admitted: true, Limit: l.limit, Remaining: l.limit}
	}

	d := Decision{
		Admitted:  usage.Admitted,
		Limit:     l.limit,
		Remaining: l.limit - usage.Count,
	}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !usage.OldestAt.IsZero() {
		d.ResetAt = usage.OldestAt.Add(l.window)
	}
	if !d.Admitted {
		d.RetryAfter = d.ResetAt.Sub(l.now())
		if d.RetryAfter < time.Second {
			d.RetryAfter = time.Second
		}
	}
	return d
}
