package storelingo

import (
	"context"
	"sync"
	"time"
)

const (
	// defaultPacingWindow is the minimum spacing enforced between calls when
	// the allowance is nearly exhausted.
	defaultPacingWindow = time.Second
	// defaultAllowanceThreshold is the remaining-call level at which pacing
	// engages.
	defaultAllowanceThreshold = 2
)

// CallMeta carries the rate-limit metadata observed on an API response.
// HasRemaining is false when the response carried no rate-limit information.
type CallMeta struct {
	Remaining    int
	HasRemaining bool
}

// RateGovernor paces outbound calls against one shared external rate limit.
// It is a soft admission-control heuristic, not a token bucket: it only
// engages when the remaining allowance (as reported by the API itself) is at
// or below a small threshold, and then spaces calls one pacing window apart.
//
// One governor guards one rate domain. Callers against the same domain are
// expected to be sequential; the mutex keeps the state safe when distinct
// jobs share a governor.
type RateGovernor struct {
	mu        sync.Mutex
	remaining int // -1 until first metadata is observed
	lastCall  time.Time
	window    time.Duration
	threshold int

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// GovernorOption configures a RateGovernor.
type GovernorOption func(*RateGovernor)

// WithPacingWindow overrides the pacing window (default 1s).
func WithPacingWindow(d time.Duration) GovernorOption {
	return func(g *RateGovernor) {
		if d > 0 {
			g.window = d
		}
	}
}

// WithAllowanceThreshold overrides the remaining-call level at which pacing
// engages (default 2).
func WithAllowanceThreshold(n int) GovernorOption {
	return func(g *RateGovernor) {
		g.threshold = n
	}
}

// withClock injects a fake clock and sleeper for tests.
func withClock(now func() time.Time, sleep func(context.Context, time.Duration) error) GovernorOption {
	return func(g *RateGovernor) {
		g.now = now
		g.sleep = sleep
	}
}

// NewRateGovernor creates a governor with no observed allowance yet; pacing
// stays disengaged until response metadata reports one.
func NewRateGovernor(opts ...GovernorOption) *RateGovernor {
	g := &RateGovernor{
		remaining: -1,
		window:    defaultPacingWindow,
		threshold: defaultAllowanceThreshold,
		now:       time.Now,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BeforeCall suspends the caller for the unexpired remainder of the pacing
// window when the allowance is nearly exhausted and the previous call was
// less than one window ago. Returns only the context's error if the wait is
// interrupted.
func (g *RateGovernor) BeforeCall(ctx context.Context) error {
	g.mu.Lock()
	var wait time.Duration
	if g.remaining >= 0 && g.remaining <= g.threshold && !g.lastCall.IsZero() {
		since := g.now().Sub(g.lastCall)
		if since < g.window {
			wait = g.window - since
		}
	}
	g.mu.Unlock()

	if wait > 0 {
		return g.sleep(ctx, wait)
	}
	return nil
}

// AfterCall records that a call completed. The remaining allowance is updated
// only when the response carried rate-limit metadata; its absence leaves the
// prior value unchanged. AfterCall never fails.
func (g *RateGovernor) AfterCall(meta CallMeta) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if meta.HasRemaining {
		g.remaining = meta.Remaining
	}
	g.lastCall = g.now()
}

// Remaining returns the last observed call allowance, or -1 if none has been
// observed yet.
func (g *RateGovernor) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining
}

// sleepContext waits for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
