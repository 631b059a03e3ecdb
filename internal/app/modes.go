package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/predictionlabs/polymarket-mcp/internal/platform/clob"
	"github.com/predictionlabs/polymarket-mcp/internal/server"
)

// ServeMode runs the MCP stdio server until the context is cancelled. This
// is the default mode and the one MCP clients launch.
func (a *App) ServeMode(ctx context.Context, deps *Deps) error {
	return deps.Server.Serve(ctx)
}

// GetMode resolves one market and prints it to stdout. It exists for
// debugging the resolution pipeline without an MCP client in the loop.
func (a *App) GetMode(ctx context.Context, deps *Deps) error {
	if a.opts.Market == "" {
		return fmt.Errorf("app: get mode requires -market")
	}

	market, err := deps.Service.GetMarketInfo(ctx, a.opts.Market)
	if err != nil {
		return fmt.Errorf("app: get market: %w", err)
	}
	fmt.Fprintln(os.Stdout, server.FormatMarketInfo(market))

	if a.opts.Interval != "" {
		history, err := deps.Service.GetMarketHistory(ctx, a.opts.Market, a.opts.Interval)
		if err != nil {
			return fmt.Errorf("app: get history: %w", err)
		}
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, server.FormatMarketHistory(history))
	}
	return nil
}

// WatchMode resolves one market through the fallback pipeline, then
// subscribes to the order-book feed for its outcome tokens and logs every
// price update until the context is cancelled or the feed drops.
func (a *App) WatchMode(ctx context.Context, deps *Deps) error {
	if a.opts.Market == "" {
		return fmt.Errorf("app: watch mode requires -market")
	}

	market, err := deps.Service.GetMarketInfo(ctx, a.opts.Market)
	if err != nil {
		return fmt.Errorf("app: resolve market: %w", err)
	}
	if len(market.TokenIDs) == 0 {
		return fmt.Errorf("app: market %q has no order-book tokens to watch", a.opts.Market)
	}

	labels := make(map[string]string, len(market.TokenIDs))
	for i, tokenID := range market.TokenIDs {
		if i < len(market.Outcomes) {
			labels[tokenID] = market.Outcomes[i].Label
		}
	}

	ws := clob.NewWSClient(a.cfg.Clob.WSHost)
	a.closers = append(a.closers, ws.Close)

	logger := a.logger.With(slog.String("market", market.ID))
	ws.OnPrice(func(u clob.PriceUpdate) {
		logger.Info("price update",
			slog.String("outcome", labels[u.AssetID]),
			slog.String("asset_id", u.AssetID),
			slog.Float64("price", u.Price),
			slog.Float64("size", u.Size),
			slog.Time("at", u.Timestamp),
		)
	})

	if err := ws.Connect(ctx); err != nil {
		return fmt.Errorf("app: connect price feed: %w", err)
	}
	if err := ws.Subscribe(market.TokenIDs); err != nil {
		return fmt.Errorf("app: subscribe price feed: %w", err)
	}

	logger.InfoContext(ctx, "watching market",
		slog.String("title", market.Title),
		slog.Int("tokens", len(market.TokenIDs)),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		ws.Close()
		return ctx.Err()
	})
	g.Go(func() error {
		<-ws.Done()
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("app: price feed disconnected")
	})
	return g.Wait()
}
