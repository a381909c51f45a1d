package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForStop(t *testing.T) {
	t.Run("shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, stopShutdown, waitForStop(ctx, nil, nil))
	})

	t.Run("device error", func(t *testing.T) {
		errChan := make(chan error, 1)
		errChan <- errors.New("read failed")
		assert.Equal(t, stopDisconnect, waitForStop(context.Background(), errChan, nil))
	})

	t.Run("wake while listener is stuck", func(t *testing.T) {
		// The listener never reports an error after sleep.
		errChan := make(chan error)
		wakeCh := make(chan struct{}, 1)
		wakeCh <- struct{}{}
		assert.Equal(t, stopWake, waitForStop(context.Background(), errChan, wakeCh))
	})
}

func TestCloseDevice(t *testing.T) {
	t.Run("closes", func(t *testing.T) {
		closed := false
		assert.True(t, closeDevice(context.Background(), func() { closed = true }, time.Second))
		assert.True(t, closed)
	})

	block := make(chan struct{})
	defer close(block)
	stuck := func() { <-block }

	t.Run("blocked close times out", func(t *testing.T) {
		start := time.Now()
		assert.True(t, closeDevice(context.Background(), stuck, 20*time.Millisecond))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("blocked close on shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.False(t, closeDevice(ctx, stuck, time.Minute))
	})
}
