package vocabularyworker

import (
	baseworker "candidate-browser/lib/utils/base-worker"
	vocabularyhandler "candidate-browser/lib/vocabulary"
	"context"
	"time"
)

// первая пауза между попытками начальной загрузки, дальше удваивается до интервала обновления
var initialRetryDelay = time.Second

// StartWorker загружает значения фильтров сразу, до первого успеха повторяет с нарастающей паузой,
// затем обновляет их с интервалом refreshInterval
func StartWorker(ctx context.Context, provider vocabularyhandler.Provider, refreshInterval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("VocabularyRefreshWorker", refreshInterval, refreshInterval),
		provider: provider,
	}
	retryDelay := initialRetryDelay
	go func() {
		if !i.warmUp(ctx, retryDelay, refreshInterval) {
			return
		}
		i.Run(ctx, i.handle)
	}()
}

type impl struct {
	baseworker.BaseImpl
	provider vocabularyhandler.Provider
}

func (i impl) handle(ctx context.Context) {
	if err := i.provider.Refresh(ctx); err != nil {
		i.GetLogger().WithError(err).Error("ошибка обновления значений фильтров")
	}
}

// warmUp false - контекст завершен до успешной загрузки
func (i impl) warmUp(ctx context.Context, delay, maxDelay time.Duration) bool {
	logger := i.GetLogger()
	for {
		err := i.provider.Refresh(ctx)
		if err == nil {
			logger.Info("значения фильтров загружены")
			return true
		}
		logger.WithError(err).WithField("retry_in", delay.String()).Warn("значения фильтров не загружены")
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay *= 2
		if maxDelay > 0 && delay > maxDelay {
			delay = maxDelay
		}
	}
}
