package clob

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

func TestFetchMarketByConditionID(t *testing.T) {
	const cid = "0x26ee82bee2493a302d21283cb578f7e2fff2dd15743854f53034d12420863b55"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/"+cid, r.URL.Path)
		w.Write([]byte(`{"condition_id":"` + cid + `","question":"q","active":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey(cid))
	require.Equal(t, domain.FetchFound, outcome.Status)
	assert.Equal(t, cid, outcome.Raw.ToDomainMarket().ConditionID)
}

func TestFetchMarketEmptyObjectIsNotFound(t *testing.T) {
	// The book answers unknown ids with 200 and an empty object, not 404.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("unknown-slug"))
	assert.Equal(t, domain.FetchNotFound, outcome.Status)
}

func TestFetchMarketNumericKeysUnsupported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for numeric keys")
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	outcome := client.FetchMarket(context.Background(), domain.ClassifyKey("12345"))
	assert.Equal(t, domain.FetchNotFound, outcome.Status)
}

func TestListMarketsDecodesCursorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"data": [
				{"condition_id": "0xaaa", "question": "a", "active": true},
				{"condition_id": "0xbbb", "question": "b", "closed": true}
			],
			"next_cursor": "MTA="
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	markets, filtered, err := client.ListMarkets(context.Background(), domain.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.False(t, filtered, "the book cannot filter server-side")
	require.Len(t, markets, 2)
	assert.Equal(t, domain.MarketStatusClosed, markets[1].Status)
}
