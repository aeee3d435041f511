package batch

import (
	"context"
	"time"

	"github.com/fwojciec/rake"
)

// LoadFunc is the signature for a document load function.
type LoadFunc func(ctx context.Context, source string) (*rake.Document, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// LoadWithRetryDelays loads source, retrying with the given delays between
// attempts. ENOTFOUND and EINVALID errors are returned without retrying.
// The logger function, if provided, is called for each retry attempt.
func LoadWithRetryDelays(ctx context.Context, source string, load LoadFunc, logger LogFunc, delays []time.Duration) (*rake.Document, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := load(ctx, source)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", source, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}

func retryable(err error) bool {
	switch rake.ErrorCode(err) {
	case rake.ENOTFOUND, rake.EINVALID:
		return false
	}
	return true
}
