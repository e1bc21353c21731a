package vocabularyworker

import (
	vocabularyhandler "candidate-browser/lib/vocabulary"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// flakyFetcher отвечает ошибкой, пока listing api не поднят
type flakyFetcher struct {
	up    atomic.Bool
	calls atomic.Int32
}

func (f *flakyFetcher) Sources(ctx context.Context) ([]string, error) {
	f.calls.Add(1)
	if !f.up.Load() {
		return nil, errors.New("connection refused")
	}
	return []string{"LinkedIn", "Referral"}, nil
}

func (f *flakyFetcher) ApplicationTypes(ctx context.Context) ([]string, error) {
	if !f.up.Load() {
		return nil, errors.New("connection refused")
	}
	return []string{"active", "archived"}, nil
}

func TestStartWorker(t *testing.T) {
	initialRetryDelay = 5 * time.Millisecond
	t.Cleanup(func() { initialRetryDelay = time.Second })

	t.Run(`failed first load is retried before the refresh interval`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		fetcher := &flakyFetcher{}
		provider := vocabularyhandler.NewInstance(fetcher)
		require.Error(t, provider.Refresh(ctx))

		StartWorker(ctx, provider, 10*time.Minute)
		require.Eventually(t, func() bool { return fetcher.calls.Load() >= 3 }, time.Second, time.Millisecond)
		require.Empty(t, provider.Get().Sources)

		fetcher.up.Store(true)
		require.Eventually(t, func() bool { return len(provider.Get().Sources) == 2 }, 2*time.Second, time.Millisecond)
		require.Equal(t, []string{"active", "archived"}, provider.Get().ApplicationTypes)
	})

	t.Run(`retries stop with context`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &flakyFetcher{}
		StartWorker(ctx, vocabularyhandler.NewInstance(fetcher), 10*time.Minute)
		require.Eventually(t, func() bool { return fetcher.calls.Load() >= 1 }, time.Second, time.Millisecond)
		cancel()
		time.Sleep(30 * time.Millisecond)
		calls := fetcher.calls.Load()
		time.Sleep(100 * time.Millisecond)
		require.Equal(t, calls, fetcher.calls.Load())
	})
}
