package clob

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

func TestGetPriceHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "111", q.Get("market"))
		assert.Equal(t, "1d", q.Get("interval"))
		w.Write([]byte(`{"history":[{"t":1735689600,"p":0.52},{"t":1735693200,"p":0.55}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	points, err := client.GetPriceHistory(context.Background(), "111", "1d")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), points[0].Timestamp)
	assert.Equal(t, 0.52, points[0].Price)
	assert.Equal(t, 0.55, points[1].Price)
}

func TestGetPriceHistoryEmptySeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"history":[]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", time.Second)
	points, err := client.GetPriceHistory(context.Background(), "111", "")
	require.NoError(t, err)
	assert.Empty(t, points, "a thinly traded token legitimately has no points")
}

func TestGetPriceHistoryInvalidInterval(t *testing.T) {
	client := New("http://unused.invalid", "", time.Second)
	_, err := client.GetPriceHistory(context.Background(), "111", "2y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestValidInterval(t *testing.T) {
	for _, interval := range []string{"1h", "6h", "1d", "1w", "1m", "max"} {
		assert.True(t, ValidInterval(interval), interval)
	}
	assert.False(t, ValidInterval("2y"))
	assert.False(t, ValidInterval(""))
}
