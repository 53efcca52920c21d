package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelOrWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, CancelOrWrap(context.Background(), nil))
	})

	t.Run("plain error passes through", func(t *testing.T) {
		err := errors.New("boom")
		got := CancelOrWrap(context.Background(), err)
		assert.Equal(t, err, got)
		assert.False(t, IsCancelled(got))
	})

	t.Run("cancelled context wraps", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		got := CancelOrWrap(ctx, errors.New("request aborted"))
		assert.True(t, IsCancelled(got))
		assert.ErrorIs(t, got, ErrCancelled)
	})

	t.Run("context.Canceled wraps without ctx", func(t *testing.T) {
		got := CancelOrWrap(context.Background(), context.Canceled)
		assert.True(t, IsCancelled(got))
	})
}
