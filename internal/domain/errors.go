package domain

import (
	"context"
	"errors"
)

// The closed error taxonomy for content fetching and persistence. Callers
// discriminate with errors.Is; everything else a component returns must wrap
// one of these.
var (
	// ErrInvalidInput marks a malformed or non-absolute http(s) URL. It is
	// user-correctable and surfaced inline, never as a hard failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrContentUnavailable means the parser tier ran but produced nothing
	// usable. It triggers the fallback tier and is not shown to users.
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrServiceUnavailable means the fallback extraction API is down or
	// rate-limited. It is terminal for the fetch.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrNetwork marks connectivity failures. Terminal, but retryable by
	// user action.
	ErrNetwork = errors.New("network error")

	// ErrNotFound means a persisted record vanished between a read and a
	// write, e.g. deleted on another device mid-operation. Treated as a
	// recoverable no-op by flows that hit it after a suspension point.
	ErrNotFound = errors.New("not found")

	// ErrCancelled marks an operation superseded by newer intent. It must
	// never surface as a user-visible error.
	ErrCancelled = errors.New("cancelled")
)

// CancelOrWrap maps context cancellation onto ErrCancelled so callers can
// keep superseded work out of error reporting; any other error is returned
// unchanged.
func CancelOrWrap(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return errors.Join(ErrCancelled, err)
	}
	return err
}

// IsCancelled reports whether err stems from a superseded operation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
