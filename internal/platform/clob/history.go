package clob

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

// Intervals accepted by the price-history endpoint.
var validIntervals = map[string]bool{
	"1h": true, "6h": true, "1d": true, "1w": true, "1m": true, "max": true,
}

// DefaultInterval is used when the caller does not specify one.
const DefaultInterval = "1w"

// ValidInterval reports whether the order-book API accepts the interval.
func ValidInterval(interval string) bool {
	return validIntervals[interval]
}

// historyResponse is the /prices-history envelope: unix-second timestamps
// paired with float prices.
type historyResponse struct {
	History []struct {
		T int64   `json:"t"`
		P float64 `json:"p"`
	} `json:"history"`
}

// GetPriceHistory returns the price series for one outcome token over the
// given interval. An empty series is a valid answer for thinly traded
// tokens, not an error.
func (c *Client) GetPriceHistory(ctx context.Context, tokenID, interval string) ([]domain.PricePoint, error) {
	if interval == "" {
		interval = DefaultInterval
	}
	if !ValidInterval(interval) {
		return nil, fmt.Errorf("clob: %w: interval %q", domain.ErrInvalidArgument, interval)
	}

	params := url.Values{}
	params.Set("market", tokenID)
	params.Set("interval", interval)

	body, err := c.rest.Get(ctx, "/prices-history?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("clob: get price history for %s: %w", tokenID, err)
	}

	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("clob: %w: decode price history: %v", domain.ErrMalformed, err)
	}

	points := make([]domain.PricePoint, 0, len(resp.History))
	for _, h := range resp.History {
		points = append(points, domain.PricePoint{
			Timestamp: time.Unix(h.T, 0).UTC(),
			Price:     h.P,
		})
	}
	return points, nil
}
