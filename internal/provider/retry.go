package provider

import (
	"context"
	"fmt"
	"time"
)

// Default retry settings for transient provider failures.
const (
	DefaultMaxAttempts    = 3
	DefaultInitialBackoff = 500 * time.Millisecond
)

// RetryConfig bounds the retry behavior around Provider.Complete.
type RetryConfig struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// InitialBackoff is the delay before the first retry; it doubles
	// after every failed attempt.
	InitialBackoff time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = DefaultInitialBackoff
	}
	return c
}

// CompleteWithRetry calls p.Complete, retrying retryable failures with
// exponential backoff up to the attempt cap. Non-retryable errors return
// immediately. When the cap is exhausted the last underlying error is
// returned.
func CompleteWithRetry(ctx context.Context, p Provider, req CompletionRequest, cfg RetryConfig) (CompletionResponse, error) {
	cfg = cfg.withDefaults()

	var lastErr error
	backoff := cfg.InitialBackoff

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return CompletionResponse{}, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		resp, err := p.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !IsRetryable(err) {
			return CompletionResponse{}, err
		}
		lastErr = err
	}

	return CompletionResponse{}, fmt.Errorf("retry attempts exhausted: %w", lastErr)
}
