package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseWorker(t *testing.T) {
	t.Run(`job runs until context is done`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var calls atomic.Int32
		done := make(chan struct{})
		worker := NewInstance("TestWorker", time.Millisecond, 5*time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) { calls.Add(1) })
			close(done)
		}()
		require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})

	t.Run(`panic in job does not stop the worker`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var calls atomic.Int32
		worker := NewInstance("PanicWorker", time.Millisecond, time.Millisecond)
		go worker.Run(ctx, func(ctx context.Context) {
			if calls.Add(1) == 1 {
				panic("boom")
			}
		})
		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	})
}
