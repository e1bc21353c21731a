package vocabularyhandler

import (
	candidateapimodels "candidate-browser/models/api/candidate"
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Fetcher значения фильтров, listing api или локальный файл
type Fetcher interface {
	Sources(ctx context.Context) ([]string, error)
	ApplicationTypes(ctx context.Context) ([]string, error)
}

type Provider interface {
	// Get последние полученные значения фильтров
	Get() candidateapimodels.FiltersView
	// Refresh запрашивает обе категории параллельно. При ошибке сохраняются предыдущие значения.
	Refresh(ctx context.Context) error
}

var Instance Provider

func NewHandler(fetcher Fetcher) {
	Instance = NewInstance(fetcher)
}

func NewInstance(fetcher Fetcher) Provider {
	return &impl{
		fetcher: fetcher,
		current: candidateapimodels.FiltersView{
			ApplicationTypes: []string{},
			Sources:          []string{},
		},
	}
}

type impl struct {
	fetcher Fetcher
	mu      sync.RWMutex
	current candidateapimodels.FiltersView
}

func (i *impl) Get() candidateapimodels.FiltersView {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return candidateapimodels.FiltersView{
		ApplicationTypes: slices.Clone(i.current.ApplicationTypes),
		Sources:          slices.Clone(i.current.Sources),
	}
}

func (i *impl) Refresh(ctx context.Context) error {
	var sources, applicationTypes []string
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := i.fetcher.Sources(gCtx)
		if err != nil {
			return errors.Wrap(err, "ошибка получения списка источников")
		}
		sources = list
		return nil
	})
	g.Go(func() error {
		list, err := i.fetcher.ApplicationTypes(gCtx)
		if err != nil {
			return errors.Wrap(err, "ошибка получения списка типов заявки")
		}
		applicationTypes = list
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("значения фильтров не обновлены")
		return err
	}
	if sources == nil {
		sources = []string{}
	}
	if applicationTypes == nil {
		applicationTypes = []string{}
	}

	i.mu.Lock()
	i.current = candidateapimodels.FiltersView{
		ApplicationTypes: applicationTypes,
		Sources:          sources,
	}
	i.mu.Unlock()
	log.
		WithField("sources_count", len(sources)).
		WithField("application_types_count", len(applicationTypes)).
		Debug("значения фильтров обновлены")
	return nil
}
