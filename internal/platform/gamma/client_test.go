package gamma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

func TestFetchMarketByNumericID(t *testing.T) {
	var gotPath, gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"id":"12345","question":"Will X happen?","active":true,"volume":"1500.50"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret-key", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("12345"))

	require.Equal(t, domain.FetchFound, outcome.Status)
	assert.Equal(t, "/markets/12345", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)

	m := outcome.Raw.ToDomainMarket()
	assert.Equal(t, "Will X happen?", m.Title)
	assert.Equal(t, domain.MarketStatusActive, m.Status)
	assert.Equal(t, 1500.50, m.Volume)
}

func TestFetchMarketBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "some-market-slug", r.URL.Query().Get("slug"))
		w.Write([]byte(`[{"id":"9","question":"q"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("some-market-slug"))
	require.Equal(t, domain.FetchFound, outcome.Status)
	assert.Equal(t, "9", outcome.Raw.ToDomainMarket().ID)
}

func TestFetchMarketEmptyListingIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("missing-slug"))
	assert.Equal(t, domain.FetchNotFound, outcome.Status)
}

func TestFetchMarketStatusTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       domain.FetchStatus
	}{
		{"404 is not found", http.StatusNotFound, domain.FetchNotFound},
		{"401 is unauthorized", http.StatusUnauthorized, domain.FetchUnauthorized},
		{"403 is unauthorized", http.StatusForbidden, domain.FetchUnauthorized},
		{"429 is rate limited", http.StatusTooManyRequests, domain.FetchRateLimited},
		{"500 is unreachable", http.StatusInternalServerError, domain.FetchUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.statusCode)
			}))
			defer srv.Close()

			client := New(srv.URL, "", time.Second)
			outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("12345"))
			assert.Equal(t, tt.want, outcome.Status)
			assert.Error(t, outcome.Err)
		})
	}
}

func TestFetchMarketUnparsableBodyIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("12345"))
	assert.Equal(t, domain.FetchMalformed, outcome.Status)
}

func TestFetchMarketConnectionFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("12345"))
	assert.Equal(t, domain.FetchUnreachable, outcome.Status)
}

func TestFetchMarketAddressKeysUnsupported(t *testing.T) {
	// Gamma has no address-keyed lookup; the adapter must answer NotFound
	// without issuing a request.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for address keys")
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	key := domain.ClassifyKey("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.Equal(t, domain.KeyAddress, key.Kind)
	assert.Equal(t, domain.FetchNotFound, client.FetchMarket(context.Background(), key).Status)
}

func TestListMarketsServerSideFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "5", q.Get("offset"))
		assert.Equal(t, "true", q.Get("active"))
		assert.Equal(t, "false", q.Get("closed"))
		w.Write([]byte(`[{"id":"1","question":"a","active":true},{"id":"2","question":"b","active":true}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	markets, filtered, err := client.ListMarkets(context.Background(), domain.ListFilter{
		Status: string(domain.MarketStatusActive),
		Limit:  10,
		Offset: 5,
	})
	require.NoError(t, err)
	assert.True(t, filtered, "gamma filters server-side")
	require.Len(t, markets, 2)
	assert.Equal(t, "a", markets[0].Title)
}
