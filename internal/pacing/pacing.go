// Package pacing spaces out calls to the posting client.
//
// A Pacer holds a single-token rate limiter that starts empty, so the first
// Wait pauses for a full interval and later Waits keep at least one interval
// between them. Time is read from an injected Clock and pauses go through an
// injected Sleeper; tests substitute both and never block.
package pacing

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the pause taken before posting.
const DefaultInterval = 3 * time.Second

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Sleeper pauses for d or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Option configures a Pacer.
type Option func(*Pacer)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(p *Pacer) { p.clock = c }
}

// WithSleeper overrides how pauses are taken.
func WithSleeper(s Sleeper) Option {
	return func(p *Pacer) { p.sleeper = s }
}

// Pacer enforces a minimum interval before each paced action.
type Pacer struct {
	interval time.Duration
	limiter  *rate.Limiter
	clock    Clock
	sleeper  Sleeper
}

// New creates a Pacer. An interval of zero or less disables pausing.
func New(interval time.Duration, opts ...Option) *Pacer {
	p := &Pacer{interval: interval, clock: systemClock{}, sleeper: timerSleeper{}}
	for _, opt := range opts {
		opt(p)
	}

	if interval <= 0 {
		p.limiter = rate.NewLimiter(rate.Inf, 1)
		return p
	}
	p.limiter = rate.NewLimiter(rate.Every(interval), 1)
	// Start with an empty bucket: the first action waits a full interval.
	p.limiter.AllowN(p.clock.Now(), 1)
	return p
}

// Interval returns the configured minimum interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next action may run and returns the pause taken.
func (p *Pacer) Wait(ctx context.Context) (time.Duration, error) {
	now := p.clock.Now()
	r := p.limiter.ReserveN(now, 1)
	if !r.OK() {
		return 0, fmt.Errorf("pacing: reservation refused for interval %s", p.interval)
	}

	delay := r.DelayFrom(now)
	if delay <= 0 {
		return 0, nil
	}
	if err := p.sleeper.Sleep(ctx, delay); err != nil {
		r.CancelAt(p.clock.Now())
		return 0, fmt.Errorf("pacing: %w", err)
	}
	return delay, nil
}
