// Package gamma is the source adapter for the Polymarket Gamma catalog API,
// the freshest and richest of the upstream providers. It is first in the
// fallback order.
package gamma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
	"github.com/predictionlabs/polymarket-mcp/internal/platform"
)

// Client is the REST client for the Gamma API.
type Client struct {
	rest *platform.Client
}

// New creates a Gamma adapter.
//
// baseURL is the Gamma API root, e.g. "https://gamma-api.polymarket.com".
// apiKey may be empty; Gamma serves public data unauthenticated.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{rest: platform.NewClient(baseURL, apiKey, timeout)}
}

// Name identifies this adapter in resolver logs.
func (c *Client) Name() string { return "gamma" }

// FetchMarket looks a market up by whichever key form Gamma accepts:
// numeric catalog id, slug, or condition id. Gamma has no address-keyed
// lookup, so Address keys report NotFound without a request; absence from
// one source is not conclusive and the resolver moves on.
func (c *Client) FetchMarket(ctx context.Context, key domain.MarketKey) domain.FetchOutcome {
	switch key.Kind {
	case domain.KeyNumericID:
		return c.fetchByID(ctx, key.Value)
	case domain.KeySlug:
		return c.fetchByQuery(ctx, "slug", key.Value)
	case domain.KeyConditionID:
		return c.fetchByQuery(ctx, "condition_ids", key.Value)
	default:
		return domain.OutcomeFromError(fmt.Errorf("gamma: %w: no lookup for %s keys", domain.ErrNotFound, key.Kind))
	}
}

func (c *Client) fetchByID(ctx context.Context, id string) domain.FetchOutcome {
	body, err := c.rest.Get(ctx, "/markets/"+url.PathEscape(id))
	if err != nil {
		return domain.OutcomeFromError(fmt.Errorf("gamma: get market %s: %w", id, err))
	}

	var m APIMarket
	if err := json.Unmarshal(body, &m); err != nil {
		return domain.OutcomeFromError(fmt.Errorf("gamma: %w: decode market: %v", domain.ErrMalformed, err))
	}
	return domain.Found(&m)
}

// fetchByQuery queries /markets with a single filter parameter and takes the
// first result. An empty result set is an explicit NotFound, not a failure.
func (c *Client) fetchByQuery(ctx context.Context, param, value string) domain.FetchOutcome {
	params := url.Values{}
	params.Set(param, value)

	body, err := c.rest.Get(ctx, "/markets?"+params.Encode())
	if err != nil {
		return domain.OutcomeFromError(fmt.Errorf("gamma: get market by %s: %w", param, err))
	}

	var markets []APIMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		return domain.OutcomeFromError(fmt.Errorf("gamma: %w: decode markets: %v", domain.ErrMalformed, err))
	}
	if len(markets) == 0 {
		return domain.OutcomeFromError(fmt.Errorf("gamma: %w: %s=%s", domain.ErrNotFound, param, value))
	}
	return domain.Found(&markets[0])
}

// ListMarkets returns a page of markets. Gamma applies status flags,
// pagination, and ordering server-side, so the second return value reports
// the filter as already applied.
func (c *Client) ListMarkets(ctx context.Context, filter domain.ListFilter) ([]domain.Market, bool, error) {
	filter = filter.Clamped()

	params := url.Values{}
	params.Set("limit", strconv.Itoa(filter.Limit))
	params.Set("offset", strconv.Itoa(filter.Offset))
	if filter.Active != nil {
		params.Set("active", strconv.FormatBool(*filter.Active))
	}
	if filter.Closed != nil {
		params.Set("closed", strconv.FormatBool(*filter.Closed))
	}
	if filter.Archived != nil {
		params.Set("archived", strconv.FormatBool(*filter.Archived))
	}
	switch filter.Status {
	case string(domain.MarketStatusActive):
		params.Set("active", "true")
		params.Set("closed", "false")
	case string(domain.MarketStatusClosed), string(domain.MarketStatusResolved):
		// Gamma's flag pair cannot separate resolved from merely closed;
		// closed=true is the closest server-side filter for both.
		params.Set("closed", "true")
	}
	if filter.Order != "" {
		params.Set("order", filter.Order)
		params.Set("ascending", "false")
	}

	body, err := c.rest.Get(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, false, fmt.Errorf("gamma: list markets: %w", err)
	}

	var apiMarkets []APIMarket
	if err := json.Unmarshal(body, &apiMarkets); err != nil {
		return nil, false, fmt.Errorf("gamma: %w: decode markets: %v", domain.ErrMalformed, err)
	}

	markets := make([]domain.Market, 0, len(apiMarkets))
	for i := range apiMarkets {
		markets = append(markets, apiMarkets[i].ToDomainMarket())
	}
	return markets, true, nil
}
