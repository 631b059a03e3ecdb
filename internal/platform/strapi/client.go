// Package strapi is the source adapter for the legacy Strapi catalog API.
// It lags Gamma on freshness but still carries markets that predate the
// Gamma catalog, so it sits second in the fallback order.
package strapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
	"github.com/predictionlabs/polymarket-mcp/internal/platform"
)

// listFetchSize is how many records a listing pulls from the legacy API.
// Strapi cannot filter by status server-side, so the paginator trims the
// result client-side.
const listFetchSize = 500

// Client is the REST client for the legacy Strapi catalog.
type Client struct {
	rest *platform.Client
}

// New creates a Strapi adapter.
//
// baseURL is the catalog root, e.g. "https://strapi-matic.poly.market".
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{rest: platform.NewClient(baseURL, apiKey, timeout)}
}

// Name identifies this adapter in resolver logs.
func (c *Client) Name() string { return "strapi" }

// FetchMarket looks a market up by whichever key form the legacy catalog
// accepts. Address keys are re-derived to their EIP-55 checksum form first;
// the catalog indexes the market maker address case-sensitively and callers
// cannot be trusted to supply correct casing.
func (c *Client) FetchMarket(ctx context.Context, key domain.MarketKey) domain.FetchOutcome {
	switch key.Kind {
	case domain.KeyNumericID:
		return c.fetchByID(ctx, key.Value)
	case domain.KeySlug:
		return c.fetchByQuery(ctx, "slug", key.Value)
	case domain.KeyConditionID:
		return c.fetchByQuery(ctx, "conditionId", key.Value)
	case domain.KeyAddress:
		return c.fetchByQuery(ctx, "marketMakerAddress", key.ChecksumAddress())
	default:
		return domain.OutcomeFromError(fmt.Errorf("strapi: %w: no lookup for %s keys", domain.ErrNotFound, key.Kind))
	}
}

func (c *Client) fetchByID(ctx context.Context, id string) domain.FetchOutcome {
	body, err := c.rest.Get(ctx, "/markets/"+url.PathEscape(id))
	if err != nil {
		return domain.OutcomeFromError(fmt.Errorf("strapi: get market %s: %w", id, err))
	}

	var m APIMarket
	if err := json.Unmarshal(body, &m); err != nil {
		return domain.OutcomeFromError(fmt.Errorf("strapi: %w: decode market: %v", domain.ErrMalformed, err))
	}
	return domain.Found(&m)
}

func (c *Client) fetchByQuery(ctx context.Context, param, value string) domain.FetchOutcome {
	params := url.Values{}
	params.Set(param, value)

	body, err := c.rest.Get(ctx, "/markets?"+params.Encode())
	if err != nil {
		return domain.OutcomeFromError(fmt.Errorf("strapi: get market by %s: %w", param, err))
	}

	var markets []APIMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		return domain.OutcomeFromError(fmt.Errorf("strapi: %w: decode markets: %v", domain.ErrMalformed, err))
	}
	if len(markets) == 0 {
		return domain.OutcomeFromError(fmt.Errorf("strapi: %w: %s=%s", domain.ErrNotFound, param, value))
	}
	return domain.Found(&markets[0])
}

// ListMarkets pulls a block of records from the legacy catalog. Strapi only
// supports _limit/_start/_sort, not the status flags, so the second return
// value reports the filter as not applied and the paginator finishes the
// job client-side. Sorting is best-effort: only a volume ordering maps onto
// a legacy _sort key.
func (c *Client) ListMarkets(ctx context.Context, filter domain.ListFilter) ([]domain.Market, bool, error) {
	params := url.Values{}
	params.Set("_limit", fmt.Sprintf("%d", listFetchSize))
	params.Set("_start", "0")
	if filter.Order == "volume" {
		params.Set("_sort", "volume:desc")
	}

	body, err := c.rest.Get(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, false, fmt.Errorf("strapi: list markets: %w", err)
	}

	var apiMarkets []APIMarket
	if err := json.Unmarshal(body, &apiMarkets); err != nil {
		return nil, false, fmt.Errorf("strapi: %w: decode markets: %v", domain.ErrMalformed, err)
	}

	markets := make([]domain.Market, 0, len(apiMarkets))
	for i := range apiMarkets {
		markets = append(markets, apiMarkets[i].ToDomainMarket())
	}
	return markets, false, nil
}
