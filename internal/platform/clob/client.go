// Package clob is the source adapter for the on-chain order-book API. It is
// last in the fallback order: its records are the sparsest, but it is the
// only provider carrying live token prices and price history.
package clob

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
	"github.com/predictionlabs/polymarket-mcp/internal/platform"
)

// Client is the REST client for the order-book API.
type Client struct {
	rest *platform.Client
}

// New creates an order-book adapter.
//
// baseURL is the API root, e.g. "https://clob.polymarket.com".
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{rest: platform.NewClient(baseURL, apiKey, timeout)}
}

// Name identifies this adapter in resolver logs.
func (c *Client) Name() string { return "clob" }

// FetchMarket looks a market up on the order book. The book is keyed by
// condition id; Address keys are re-derived to checksum form first, and
// Slug keys are passed through as-is since legacy callers routinely supply
// condition ids that the classifier could not distinguish from slugs.
// Numeric catalog ids have no meaning here and report NotFound unqueried.
func (c *Client) FetchMarket(ctx context.Context, key domain.MarketKey) domain.FetchOutcome {
	var lookup string
	switch key.Kind {
	case domain.KeyConditionID, domain.KeySlug:
		lookup = key.Value
	case domain.KeyAddress:
		lookup = key.ChecksumAddress()
	default:
		return domain.OutcomeFromError(fmt.Errorf("clob: %w: no lookup for %s keys", domain.ErrNotFound, key.Kind))
	}

	body, err := c.rest.Get(ctx, "/markets/"+url.PathEscape(lookup))
	if err != nil {
		return domain.OutcomeFromError(fmt.Errorf("clob: get market %s: %w", lookup, err))
	}

	var m APIMarket
	if err := json.Unmarshal(body, &m); err != nil {
		return domain.OutcomeFromError(fmt.Errorf("clob: %w: decode market: %v", domain.ErrMalformed, err))
	}
	if m.ConditionID == "" {
		// The book answers unknown ids with an empty object rather than 404.
		return domain.OutcomeFromError(fmt.Errorf("clob: %w: market %s", domain.ErrNotFound, lookup))
	}
	return domain.Found(&m)
}

// marketsPage is the cursor-paginated envelope around order-book listings.
type marketsPage struct {
	Data       []APIMarket `json:"data"`
	NextCursor string      `json:"next_cursor"`
}

// ListMarkets returns the first page of order-book markets. The book knows
// nothing of status filters or offsets, so the second return value reports
// the filter as not applied; the paginator finishes client-side.
func (c *Client) ListMarkets(ctx context.Context, filter domain.ListFilter) ([]domain.Market, bool, error) {
	body, err := c.rest.Get(ctx, "/markets")
	if err != nil {
		return nil, false, fmt.Errorf("clob: list markets: %w", err)
	}

	var page marketsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, false, fmt.Errorf("clob: %w: decode markets page: %v", domain.ErrMalformed, err)
	}

	markets := make([]domain.Market, 0, len(page.Data))
	for i := range page.Data {
		markets = append(markets, page.Data[i].ToDomainMarket())
	}
	return markets, false, nil
}
