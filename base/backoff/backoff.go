package backoff

import (
	"context"
	"math"
	"time"
)

type BackoffStrategy interface {
	GetBackoffDuration(int, time.Duration, time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     BackoffStrategy
}

func NewBackoff(strategy BackoffStrategy, start time.Duration, limit time.Duration) *Backoff {
	backoff := Backoff{strategy: strategy, start: start, limit: limit}
	backoff.Reset()
	return &backoff
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Count returns how many times Backoff has completed since the last Reset
func (b *Backoff) Count() int {
	return b.count
}

// Backoff sleeps for NextDuration, returning early with the context error when ctx is done.
func (b *Backoff) Backoff(ctx context.Context) error {
	if b.NextDuration <= 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.advance()
		return nil
	}
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		b.advance()
		return nil
	}
}

func (b *Backoff) advance() {
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.getNextDuration()
}

func (b *Backoff) getNextDuration() time.Duration {
	backoff := b.strategy.GetBackoffDuration(b.count, b.start, b.LastDuration)
	if b.limit > 0 && backoff > b.limit {
		backoff = b.limit
	}
	return backoff
}

type exponential struct{}

func (exponential) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	period := int64(math.Pow(2, float64(backoffCount)))
	return time.Duration(period) * start
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(exponential{}, start, limit)
}

type linear struct{}

func (linear) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	return time.Duration(backoffCount) * start
}

func NewLinear(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(linear{}, start, limit)
}

type constant struct{}

func (constant) GetBackoffDuration(_ int, start time.Duration, _ time.Duration) time.Duration {
	return start
}

// NewConstant waits the same delay every time. It is used to pace successive
// reads against an rpc endpoint.
func NewConstant(delay time.Duration) *Backoff {
	return NewBackoff(constant{}, delay, 0)
}
