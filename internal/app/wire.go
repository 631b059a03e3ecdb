package app

import (
	"log/slog"

	"github.com/predictionlabs/polymarket-mcp/internal/config"
	"github.com/predictionlabs/polymarket-mcp/internal/platform/clob"
	"github.com/predictionlabs/polymarket-mcp/internal/platform/gamma"
	"github.com/predictionlabs/polymarket-mcp/internal/platform/strapi"
	"github.com/predictionlabs/polymarket-mcp/internal/resolve"
	"github.com/predictionlabs/polymarket-mcp/internal/server"
	"github.com/predictionlabs/polymarket-mcp/internal/service"
)

// Deps holds the wired dependency graph. Adapters appear in resolver
// priority order: the Gamma catalog first for freshness and richness, the
// legacy Strapi catalog second, the order book last.
type Deps struct {
	Resolver *resolve.Resolver
	Service  *service.Service
	Server   *server.Server
	Clob     *clob.Client
}

// Wire constructs every component from the configuration. All clients are
// plain HTTP clients with no background state, so wiring cannot fail and
// needs no cleanup beyond process exit.
func Wire(cfg *config.Config, logger *slog.Logger) *Deps {
	timeout := cfg.RequestTimeout.Duration

	gammaClient := gamma.New(cfg.Gamma.Host, cfg.Gamma.APIKey, timeout)
	strapiClient := strapi.New(cfg.Strapi.Host, cfg.Strapi.APIKey, timeout)
	clobClient := clob.New(cfg.Clob.Host, cfg.Clob.APIKey, timeout)

	resolver := resolve.New(logger, gammaClient, strapiClient, clobClient)
	svc := service.New(resolver, clobClient, logger)

	return &Deps{
		Resolver: resolver,
		Service:  svc,
		Server:   server.New(svc, logger),
		Clob:     clobClient,
	}
}
