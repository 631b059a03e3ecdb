// Package resolve implements the market resolution pipeline: given a
// classified identifier, it drives the source adapters in priority order and
// returns the first successful payload, normalized, or the most specific
// failure recorded along the way.
package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

// Adapter is one upstream source. Implementations must map every provider
// failure into the FetchOutcome taxonomy and never retry internally.
type Adapter interface {
	Name() string
	FetchMarket(ctx context.Context, key domain.MarketKey) domain.FetchOutcome
	ListMarkets(ctx context.Context, filter domain.ListFilter) (markets []domain.Market, filtered bool, err error)
}

// Resolver sequences adapter queries. Adapters are tried strictly in the
// order given (freshest catalog first); one attempt per adapter per
// invocation, no retries. Resolver holds no per-invocation state and is
// safe for concurrent use.
type Resolver struct {
	adapters []Adapter
	logger   *slog.Logger
}

// New creates a Resolver over the given adapters in priority order.
func New(logger *slog.Logger, adapters ...Adapter) *Resolver {
	return &Resolver{
		adapters: adapters,
		logger:   logger.With(slog.String("component", "resolver")),
	}
}

// Resolve returns the canonical market for the given key, or a
// *domain.ClassifiedError when every adapter is exhausted without a Found.
// A NotFound from one source is not conclusive; quota and credential
// failures on one source must not block an alternate source, so every
// non-Found outcome moves on to the next adapter.
func (r *Resolver) Resolve(ctx context.Context, key domain.MarketKey) (domain.Market, error) {
	var worst recordedFailure

	for _, adapter := range r.adapters {
		if err := ctx.Err(); err != nil {
			return domain.Market{}, domain.Classified(domain.ErrorKindUnreachable, "resolution cancelled: %v", err)
		}

		outcome := adapter.FetchMarket(ctx, key)
		if outcome.Status == domain.FetchFound {
			r.logger.DebugContext(ctx, "market resolved",
				slog.String("adapter", adapter.Name()),
				slog.String("key_kind", string(key.Kind)),
			)
			return outcome.Raw.ToDomainMarket(), nil
		}

		r.logger.DebugContext(ctx, "adapter miss",
			slog.String("adapter", adapter.Name()),
			slog.String("outcome", outcome.Status.String()),
		)
		worst.record(adapter.Name(), outcome)
	}

	return domain.Market{}, worst.classified(key)
}

// List returns markets from the first adapter that answers, together with
// whether that adapter applied the filter server-side. The same priority
// order and failure-continuation rules as Resolve apply.
func (r *Resolver) List(ctx context.Context, filter domain.ListFilter) ([]domain.Market, bool, error) {
	var worst recordedFailure

	for _, adapter := range r.adapters {
		if err := ctx.Err(); err != nil {
			return nil, false, domain.Classified(domain.ErrorKindUnreachable, "listing cancelled: %v", err)
		}

		markets, filtered, err := adapter.ListMarkets(ctx, filter)
		if err != nil {
			r.logger.DebugContext(ctx, "adapter listing failed",
				slog.String("adapter", adapter.Name()),
				slog.String("error", err.Error()),
			)
			worst.record(adapter.Name(), domain.OutcomeFromError(err))
			continue
		}
		return markets, filtered, nil
	}

	return nil, false, worst.classifiedList()
}

// recordedFailure keeps the most specific failure seen so far. Credential
// and quota problems are more actionable for the caller than transient
// transport noise, so they rank above it; NotFound ranks last.
type recordedFailure struct {
	adapter string
	outcome domain.FetchOutcome
	seen    bool
}

func failureRank(status domain.FetchStatus) int {
	switch status {
	case domain.FetchUnauthorized:
		return 4
	case domain.FetchRateLimited:
		return 3
	case domain.FetchMalformed:
		return 2
	case domain.FetchUnreachable:
		return 1
	case domain.FetchNotFound:
		return 0
	}
	return -1
}

func (f *recordedFailure) record(adapter string, outcome domain.FetchOutcome) {
	if !f.seen || failureRank(outcome.Status) > failureRank(f.outcome.Status) {
		f.adapter = adapter
		f.outcome = outcome
		f.seen = true
	}
}

func (f *recordedFailure) classified(key domain.MarketKey) *domain.ClassifiedError {
	if !f.seen {
		return domain.Classified(domain.ErrorKindNotFound, "market %q not found on any source", key.Value)
	}
	return domain.Classified(f.kind(), "%s (last source: %s)", f.message(), f.adapter)
}

func (f *recordedFailure) classifiedList() *domain.ClassifiedError {
	if !f.seen {
		return domain.Classified(domain.ErrorKindNotFound, "no source returned a listing")
	}
	return domain.Classified(f.kind(), "%s (last source: %s)", f.message(), f.adapter)
}

func (f *recordedFailure) kind() domain.ErrorKind {
	switch f.outcome.Status {
	case domain.FetchRateLimited:
		return domain.ErrorKindRateLimited
	case domain.FetchUnauthorized:
		return domain.ErrorKindUnauthorized
	case domain.FetchMalformed:
		return domain.ErrorKindMalformed
	case domain.FetchUnreachable:
		return domain.ErrorKindUnreachable
	default:
		return domain.ErrorKindNotFound
	}
}

func (f *recordedFailure) message() string {
	if f.outcome.Err != nil {
		return f.outcome.Err.Error()
	}
	return fmt.Sprintf("fetch %s", f.outcome.Status)
}
