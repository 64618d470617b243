package storelingo

import (
	"context"
	"testing"
	"time"
)

// fakeClock drives the governor's clock and records pacing sleeps.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestGovernor(clock *fakeClock, opts ...GovernorOption) *RateGovernor {
	opts = append(opts, withClock(clock.Now, clock.Sleep))
	return NewRateGovernor(opts...)
}

func TestRateGovernor_NoPacingBeforeMetadata(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)

	for i := 0; i < 5; i++ {
		if err := g.BeforeCall(context.Background()); err != nil {
			t.Fatalf("BeforeCall failed: %v", err)
		}
		g.AfterCall(CallMeta{})
	}

	if len(clock.sleeps) != 0 {
		t.Errorf("Expected no pacing without rate metadata, got %d sleeps", len(clock.sleeps))
	}
	if g.Remaining() != -1 {
		t.Errorf("Remaining should stay -1 without metadata, got %d", g.Remaining())
	}
}

func TestRateGovernor_PacesNearExhaustion(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)

	g.AfterCall(CallMeta{Remaining: 2, HasRemaining: true})
	clock.Advance(300 * time.Millisecond)

	if err := g.BeforeCall(context.Background()); err != nil {
		t.Fatalf("BeforeCall failed: %v", err)
	}

	if len(clock.sleeps) != 1 {
		t.Fatalf("Expected one pacing sleep, got %d", len(clock.sleeps))
	}
	if clock.sleeps[0] != 700*time.Millisecond {
		t.Errorf("Expected 700ms remainder, got %v", clock.sleeps[0])
	}
}

func TestRateGovernor_NoPacingWithHeadroom(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)

	g.AfterCall(CallMeta{Remaining: 30, HasRemaining: true})
	clock.Advance(100 * time.Millisecond)

	if err := g.BeforeCall(context.Background()); err != nil {
		t.Fatalf("BeforeCall failed: %v", err)
	}
	if len(clock.sleeps) != 0 {
		t.Errorf("Expected no pacing with ample allowance, got %d sleeps", len(clock.sleeps))
	}
}

func TestRateGovernor_NoPacingAfterWindowElapsed(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)

	g.AfterCall(CallMeta{Remaining: 1, HasRemaining: true})
	clock.Advance(time.Second)

	if err := g.BeforeCall(context.Background()); err != nil {
		t.Fatalf("BeforeCall failed: %v", err)
	}
	if len(clock.sleeps) != 0 {
		t.Errorf("Expected no pacing once the window has elapsed, got %d sleeps", len(clock.sleeps))
	}
}

func TestRateGovernor_MissingMetadataKeepsState(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)

	g.AfterCall(CallMeta{Remaining: 5, HasRemaining: true})
	g.AfterCall(CallMeta{})

	if g.Remaining() != 5 {
		t.Errorf("Missing metadata should leave allowance unchanged, got %d", g.Remaining())
	}
}

func TestRateGovernor_CustomThresholdAndWindow(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock,
		WithPacingWindow(2*time.Second),
		WithAllowanceThreshold(5),
	)

	g.AfterCall(CallMeta{Remaining: 5, HasRemaining: true})
	clock.Advance(500 * time.Millisecond)

	if err := g.BeforeCall(context.Background()); err != nil {
		t.Fatalf("BeforeCall failed: %v", err)
	}
	if len(clock.sleeps) != 1 || clock.sleeps[0] != 1500*time.Millisecond {
		t.Errorf("Expected one 1.5s sleep, got %v", clock.sleeps)
	}
}

func TestRateGovernor_ZeroRemainingPaces(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)

	g.AfterCall(CallMeta{Remaining: 0, HasRemaining: true})

	if err := g.BeforeCall(context.Background()); err != nil {
		t.Fatalf("BeforeCall failed: %v", err)
	}
	if len(clock.sleeps) != 1 {
		t.Errorf("Expected pacing at zero allowance, got %d sleeps", len(clock.sleeps))
	}
}
