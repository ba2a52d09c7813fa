package testutil

import (
	"context"
	"sync"
	"time"
)

// RecordingSleeper records requested pauses instead of sleeping.
//
// If Clock is set, each pause advances it, so code that re-reads the clock
// after sleeping sees time pass.
type RecordingSleeper struct {
	mu     sync.Mutex
	Clock  *StepClock
	pauses []time.Duration
}

// Sleep records d and returns immediately unless ctx is already done.
func (s *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauses = append(s.pauses, d)
	if s.Clock != nil {
		s.Clock.Advance(d)
	}
	return nil
}

// Pauses returns a copy of the recorded pauses in call order.
func (s *RecordingSleeper) Pauses() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.pauses...)
}
