// Package backoff retries operations against external services with
// deterministic exponential delays.
package backoff

import (
	"context"
	"strings"
	"time"

	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

// fastFailMarkers are status codes embedded in error text that signal
// unrecoverable auth/billing failures; retrying cannot help.
var fastFailMarkers = []string{"401", "402", "403"}

// Run invokes op, retrying on failure with delay = baseDelay * 2^attempt.
// maxAttempts counts additional tries beyond the first. Errors carrying a 401,
// 402 or 403 marker fail immediately; a 429 marker doubles the computed delay.
// No jitter: delays are deterministic given the attempt index.
func Run[T any](ctx context.Context, logg *logger.Logger, name string, maxAttempts int, baseDelay time.Duration, op func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if isFastFail(err) {
			logg.Warn(logg.WithFields(ctx, map[string]any{
				"operation": name,
				"attempt":   attempt + 1,
				"error":     err.Error(),
			}), "operation failed with non-retryable status")
			return zero, err
		}
		if attempt == maxAttempts {
			break
		}

		delay := baseDelay << attempt
		if isRateLimited(err) {
			delay *= 2
		}

		logg.Warn(logg.WithFields(ctx, map[string]any{
			"operation": name,
			"attempt":   attempt + 1,
			"delay":     delay.String(),
			"error":     err.Error(),
		}), "operation failed, retrying")

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}

func isFastFail(err error) bool {
	msg := err.Error()
	for _, marker := range fastFailMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isRateLimited(err error) bool {
	return strings.Contains(err.Error(), "429")
}
