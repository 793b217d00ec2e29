package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"time"

	"hotel-board/internal/pkg/errs"
)

const (
	defaultMaxRetries   = 2
	defaultBaseDelay    = 100 * time.Millisecond
	defaultJitterFactor = 0.2
)

var (
	ErrNegativeMaxRetries  = errs.New("max retries must not be negative")
	ErrNegativeBaseDelay   = errs.New("base delay must not be negative")
	ErrInvalidJitterFactor = errs.New("jitter factor must be between 0.0 and 1.0")
)

type Func func(ctx context.Context, attempt int) error

type config struct {
	maxRetries   int
	baseDelay    time.Duration
	jitterFactor float64
	retryIf      func(error) bool
	onRetry      func(attempt int, wait time.Duration, err error)
}

type Option func(*config) error

// Do runs fn once and then up to maxRetries more times while retryIf accepts the error.
// Without WithRetryIf nothing is retried.
func Do(ctx context.Context, fn Func, options ...Option) error {
	cfg := &config{
		maxRetries:   defaultMaxRetries,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
		retryIf:      func(error) bool { return false },
	}
	for _, option := range options {
		if err := option(cfg); err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.maxRetries; attempt++ {
		if attempt > 0 {
			wait := Backoff(attempt-1, cfg.baseDelay, cfg.jitterFactor)
			if cfg.onRetry != nil {
				cfg.onRetry(attempt, wait, lastErr)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if !cfg.retryIf(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// Backoff is base * 2^attempt plus up to jitterFactor of that as random jitter.
func Backoff(attempt int, base time.Duration, jitterFactor float64) time.Duration {
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(randInt63n(int64(float64(wait)*jitterFactor)))
}

func randInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a positive value above
	return int64(uval) % n
}

func WithMaxRetries(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return ErrNegativeMaxRetries
		}
		c.maxRetries = n
		return nil
	}
}

func WithBaseDelay(d time.Duration) Option {
	return func(c *config) error {
		if d < 0 {
			return ErrNegativeBaseDelay
		}
		c.baseDelay = d
		return nil
	}
}

func WithJitterFactor(f float64) Option {
	return func(c *config) error {
		if f < 0.0 || f > 1.0 {
			return ErrInvalidJitterFactor
		}
		c.jitterFactor = f
		return nil
	}
}

func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) error {
		if fn != nil {
			c.retryIf = fn
		}
		return nil
	}
}

// WithOnRetry is called before each retry with the error that caused it.
func WithOnRetry(fn func(attempt int, wait time.Duration, err error)) Option {
	return func(c *config) error {
		c.onRetry = fn
		return nil
	}
}
