package testutil

import (
	"sync"
	"time"
)

// DefaultStart is the first instant returned by a StepClock built with a
// zero start time.
var DefaultStart = time.Date(2024, time.May, 4, 18, 30, 0, 0, time.Local)

// StepClock is a deterministic wall clock for tests.
//
// Each call to Now() returns the current instant and then advances it by
// Step, so consecutive inserts never share a timestamp.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	Step  time.Duration
}

// NewStepClock creates a clock starting at start and advancing one second
// per call. A zero start uses DefaultStart.
func NewStepClock(start time.Time) *StepClock {
	if start.IsZero() {
		start = DefaultStart
	}
	return &StepClock{start: start, now: start, Step: time.Second}
}

// Now returns the current instant and advances the clock by Step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// Peek returns the current instant without advancing.
func (c *StepClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without returning a reading.
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Reset rewinds the clock to its start instant.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}
