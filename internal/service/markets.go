// Package service exposes the named market-data operations to the tool
// boundary. It validates caller arguments, runs the resolution pipeline,
// and guarantees that everything it returns is either canonical records or
// a classified error.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
	"github.com/predictionlabs/polymarket-mcp/internal/listing"
	"github.com/predictionlabs/polymarket-mcp/internal/platform/clob"
	"github.com/predictionlabs/polymarket-mcp/internal/resolve"
)

// HistoryProvider serves price history for an outcome token. Only the
// order-book adapter implements it.
type HistoryProvider interface {
	GetPriceHistory(ctx context.Context, tokenID, interval string) ([]domain.PricePoint, error)
}

// MarketHistory is the result of the history operation: the resolved market
// plus the price series of its primary outcome token.
type MarketHistory struct {
	Market   domain.Market
	TokenID  string
	Interval string
	Points   []domain.PricePoint
}

// Service implements the market-data operations.
type Service struct {
	resolver *resolve.Resolver
	history  HistoryProvider
	logger   *slog.Logger
}

// New creates the service over a resolver and a history provider.
func New(resolver *resolve.Resolver, history HistoryProvider, logger *slog.Logger) *Service {
	return &Service{
		resolver: resolver,
		history:  history,
		logger:   logger.With(slog.String("component", "service")),
	}
}

// GetMarketInfo resolves a single market by a caller-supplied identifier of
// any supported form.
func (s *Service) GetMarketInfo(ctx context.Context, marketID string) (domain.Market, error) {
	marketID = strings.TrimSpace(marketID)
	if marketID == "" {
		return domain.Market{}, domain.Classified(domain.ErrorKindInvalidArgument, "missing market_id parameter")
	}

	key := domain.ClassifyKey(marketID)
	return s.resolver.Resolve(ctx, key)
}

// ListMarkets returns a filtered, paginated market listing. When the
// answering source already applied the filter server-side the result passes
// through unchanged; otherwise it is filtered and sliced here.
func (s *Service) ListMarkets(ctx context.Context, filter domain.ListFilter) ([]domain.Market, error) {
	switch filter.Status {
	case "", string(domain.MarketStatusActive), string(domain.MarketStatusClosed), string(domain.MarketStatusResolved):
	default:
		return nil, domain.Classified(domain.ErrorKindInvalidArgument, "unknown status filter %q", filter.Status)
	}
	filter = filter.Clamped()

	markets, filtered, err := s.resolver.List(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	if filtered {
		return markets, nil
	}
	return listing.Paginate(markets, filter), nil
}

// GetMarketPrices resolves a market and returns it with its current outcome
// prices. An empty outcome list is a valid answer for markets whose source
// carries no prices.
func (s *Service) GetMarketPrices(ctx context.Context, marketID string) (domain.Market, error) {
	return s.GetMarketInfo(ctx, marketID)
}

// GetMarketHistory resolves a market and fetches the price series of its
// primary outcome token over the given interval.
func (s *Service) GetMarketHistory(ctx context.Context, marketID, interval string) (MarketHistory, error) {
	if interval == "" {
		interval = clob.DefaultInterval
	}
	if !clob.ValidInterval(interval) {
		return MarketHistory{}, domain.Classified(domain.ErrorKindInvalidArgument, "unknown interval %q", interval)
	}

	market, err := s.GetMarketInfo(ctx, marketID)
	if err != nil {
		return MarketHistory{}, err
	}
	if len(market.TokenIDs) == 0 {
		return MarketHistory{}, domain.Classified(domain.ErrorKindNotFound,
			"market %q has no order-book tokens, so no price history exists", marketID)
	}

	tokenID := market.TokenIDs[0]
	points, err := s.history.GetPriceHistory(ctx, tokenID, interval)
	if err != nil {
		return MarketHistory{}, classify(err)
	}

	return MarketHistory{
		Market:   market,
		TokenID:  tokenID,
		Interval: interval,
		Points:   points,
	}, nil
}

// classify converts any pipeline error into a ClassifiedError. Errors that
// already carry a classification pass through untouched.
func classify(err error) error {
	var ce *domain.ClassifiedError
	if errors.As(err, &ce) {
		return ce
	}
	return domain.Classified(domain.KindOf(err), "%v", err)
}
