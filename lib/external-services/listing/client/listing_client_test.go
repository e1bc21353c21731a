package listingclient

import (
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestProvider(host string) Provider {
	return NewProvider(Config{Host: host, Timeout: 2 * time.Second, RateLimit: 1000, RateBurst: 10})
}

func TestListingClient(t *testing.T) {
	t.Run(`EncodeQuery repeats filter parameters`, func(t *testing.T) {
		values := EncodeQuery(candidateapimodels.ListRequest{
			Page:             1,
			PerPage:          5,
			SortBy:           models.SortFieldLastActivity,
			SortOrder:        models.SortOrderDesc,
			ApplicationTypes: []string{"active", "archived"},
			Sources:          []string{"LinkedIn"},
		})
		require.Equal(t, "1", values.Get("page"))
		require.Equal(t, "5", values.Get("per_page"))
		require.Equal(t, "last_activity", values.Get("sort_by"))
		require.Equal(t, "desc", values.Get("sort_order"))
		require.Equal(t, []string{"active", "archived"}, values["application_type"])
		require.Equal(t, []string{"LinkedIn"}, values["source"])
		_, hasSearch := values["search"]
		require.False(t, hasSearch)
	})

	t.Run(`List sends query and parses response`, func(t *testing.T) {
		var got url.Values
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			got = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Alex Fin"},{"id":2,"name":"Rahul Jain"}],"meta":{"total_pages":3,"total":12}}`))
		}))
		defer server.Close()

		provider := newTestProvider(server.URL + "/api/")
		res, err := provider.List(context.Background(), candidateapimodels.ListRequest{
			Page:      2,
			PerPage:   5,
			SortBy:    models.SortFieldName,
			SortOrder: models.SortOrderAsc,
			Search:    "alex",
			Sources:   []string{"Referral", "Indeed"},
		})
		require.NoError(t, err)
		require.Len(t, res.Candidates, 2)
		require.Equal(t, 3, res.TotalPages)
		require.True(t, res.TotalKnown)
		require.Equal(t, 12, res.Total)
		require.Equal(t, "/api/candidates", gotPath)
		require.Equal(t, "2", got.Get("page"))
		require.Equal(t, "alex", got.Get("search"))
		require.Equal(t, "name", got.Get("sort_by"))
		require.Equal(t, []string{"Referral", "Indeed"}, got["source"])
	})

	t.Run(`missing meta defaults to one page`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		res, err := newTestProvider(server.URL).List(context.Background(), candidateapimodels.ListRequest{Page: 1, PerPage: 5})
		require.NoError(t, err)
		require.NotNil(t, res.Candidates)
		require.Empty(t, res.Candidates)
		require.Equal(t, 1, res.TotalPages)
		require.False(t, res.TotalKnown)
	})

	t.Run(`server error is returned`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		}))
		defer server.Close()

		_, err := newTestProvider(server.URL).List(context.Background(), candidateapimodels.ListRequest{Page: 1, PerPage: 5})
		require.Error(t, err)
		require.Contains(t, err.Error(), "500")
	})

	t.Run(`malformed body is returned as error`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": [`))
		}))
		defer server.Close()

		_, err := newTestProvider(server.URL).List(context.Background(), candidateapimodels.ListRequest{Page: 1, PerPage: 5})
		require.Error(t, err)
	})

	t.Run(`cancelled context is returned`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestProvider("http://127.0.0.1:1").List(ctx, candidateapimodels.ListRequest{Page: 1, PerPage: 5})
		require.Error(t, err)
	})

	t.Run(`vocabulary endpoints`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sources":
				_, _ = w.Write([]byte(`{"sources":["LinkedIn","Referral"]}`))
			case "/application_types":
				_, _ = w.Write([]byte(`{"application_type":["active","archived"]}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		provider := newTestProvider(server.URL)
		sources, err := provider.Sources(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"LinkedIn", "Referral"}, sources)
		types, err := provider.ApplicationTypes(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"active", "archived"}, types)
	})
}
