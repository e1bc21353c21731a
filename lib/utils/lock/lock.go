package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

const retryInterval = 50 * time.Millisecond

// WithDelay выполняет safeCode под блокировкой key.
// success = false если блокировку не удалось получить за wait или контекст завершен.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, struct{}{}); !loaded {
			break
		}
		select {
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-ticker.C:
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

func IsLocked(key string) bool {
	_, ok := lockMap.Load(key)
	return ok
}
