package vocabularyhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	sources          []string
	applicationTypes []string
	err              error
}

func (f *fakeFetcher) Sources(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sources, nil
}

func (f *fakeFetcher) ApplicationTypes(ctx context.Context) ([]string, error) {
	return f.applicationTypes, nil
}

func TestVocabulary(t *testing.T) {
	t.Run(`empty before refresh`, func(t *testing.T) {
		provider := NewInstance(&fakeFetcher{})
		view := provider.Get()
		require.NotNil(t, view.Sources)
		require.NotNil(t, view.ApplicationTypes)
		require.Empty(t, view.Sources)
	})

	t.Run(`refresh loads both categories`, func(t *testing.T) {
		provider := NewInstance(&fakeFetcher{
			sources:          []string{"LinkedIn", "Referral"},
			applicationTypes: []string{"active", "archived"},
		})
		require.NoError(t, provider.Refresh(context.Background()))
		view := provider.Get()
		require.Equal(t, []string{"LinkedIn", "Referral"}, view.Sources)
		require.Equal(t, []string{"active", "archived"}, view.ApplicationTypes)
	})

	t.Run(`failed refresh keeps previous values`, func(t *testing.T) {
		fetcher := &fakeFetcher{
			sources:          []string{"Indeed"},
			applicationTypes: []string{"active"},
		}
		provider := NewInstance(fetcher)
		require.NoError(t, provider.Refresh(context.Background()))
		fetcher.err = errors.New("listing unavailable")
		fetcher.applicationTypes = []string{"archived"}
		require.Error(t, provider.Refresh(context.Background()))
		view := provider.Get()
		require.Equal(t, []string{"Indeed"}, view.Sources)
		require.Equal(t, []string{"active"}, view.ApplicationTypes)
	})

	t.Run(`Get returns a copy`, func(t *testing.T) {
		provider := NewInstance(&fakeFetcher{sources: []string{"Indeed"}, applicationTypes: []string{"active"}})
		require.NoError(t, provider.Refresh(context.Background()))
		view := provider.Get()
		view.Sources[0] = "changed"
		require.Equal(t, []string{"Indeed"}, provider.Get().Sources)
	})
}
