// Package server exposes the market-data operations as MCP tools over
// stdio. It owns argument extraction, invocation logging, and rendering;
// the pipeline behind it only ever sees validated values and only ever
// returns canonical records or classified errors.
package server

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
	"github.com/predictionlabs/polymarket-mcp/internal/service"
)

const (
	serverName    = "polymarket-mcp"
	serverVersion = "0.1.0"
)

// Server is the MCP stdio server for the market-data tools.
type Server struct {
	svc    *service.Service
	logger *slog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates the server and registers the four tools.
func New(svc *service.Service, logger *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		logger: logger.With(slog.String("component", "server")),
	}

	m := mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	m.AddTool(toolGetMarketInfo, s.handleGetMarketInfo)
	m.AddTool(toolListMarkets, s.handleListMarkets)
	m.AddTool(toolGetMarketPrices, s.handleGetMarketPrices)
	m.AddTool(toolGetMarketHistory, s.handleGetMarketHistory)
	s.mcp = m

	return s
}

// Serve speaks the MCP protocol on stdin/stdout until ctx is cancelled.
// Logs must go to stderr; stdout belongs to the protocol.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "serving MCP over stdio",
		slog.String("server", serverName),
		slog.String("version", serverVersion),
	)
	stdio := mcpserver.NewStdioServer(s.mcp)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) handleGetMarketInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := s.invocationLogger("get-market-info")

	marketID := req.GetString("market_id", "")
	market, err := s.svc.GetMarketInfo(ctx, marketID)
	if err != nil {
		return s.toolError(ctx, logger, err), nil
	}

	logger.InfoContext(ctx, "market resolved",
		slog.String("market_id", marketID),
		slog.String("status", string(market.Status)),
	)
	return mcp.NewToolResultText(FormatMarketInfo(market)), nil
}

func (s *Server) handleListMarkets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := s.invocationLogger("list-markets")

	filter := domain.ListFilter{
		Status: req.GetString("status", ""),
		Limit:  req.GetInt("limit", domain.ListLimitDefault),
		Offset: req.GetInt("offset", 0),
		Order:  req.GetString("order", ""),
	}

	markets, err := s.svc.ListMarkets(ctx, filter)
	if err != nil {
		return s.toolError(ctx, logger, err), nil
	}

	logger.InfoContext(ctx, "markets listed", slog.Int("count", len(markets)))
	return mcp.NewToolResultText(FormatMarketList(markets)), nil
}

func (s *Server) handleGetMarketPrices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := s.invocationLogger("get-market-prices")

	market, err := s.svc.GetMarketPrices(ctx, req.GetString("market_id", ""))
	if err != nil {
		return s.toolError(ctx, logger, err), nil
	}

	logger.InfoContext(ctx, "prices fetched", slog.Int("outcomes", len(market.Outcomes)))
	return mcp.NewToolResultText(FormatMarketPrices(market)), nil
}

func (s *Server) handleGetMarketHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := s.invocationLogger("get-market-history")

	history, err := s.svc.GetMarketHistory(ctx,
		req.GetString("market_id", ""),
		req.GetString("interval", ""),
	)
	if err != nil {
		return s.toolError(ctx, logger, err), nil
	}

	logger.InfoContext(ctx, "history fetched",
		slog.String("token_id", history.TokenID),
		slog.Int("points", len(history.Points)),
	)
	return mcp.NewToolResultText(FormatMarketHistory(history)), nil
}

// invocationLogger tags every log line of one tool call with a fresh
// invocation id so interleaved calls can be told apart.
func (s *Server) invocationLogger(tool string) *slog.Logger {
	return s.logger.With(
		slog.String("tool", tool),
		slog.String("invocation_id", uuid.NewString()),
	)
}

// toolError renders a classified error as a tool result. Only the taxonomy
// kind and the human-readable cause cross the boundary.
func (s *Server) toolError(ctx context.Context, logger *slog.Logger, err error) *mcp.CallToolResult {
	var ce *domain.ClassifiedError
	if !errors.As(err, &ce) {
		ce = domain.Classified(domain.KindOf(err), "%v", err)
	}

	logger.WarnContext(ctx, "tool call failed",
		slog.String("kind", string(ce.Kind)),
		slog.String("message", ce.Message),
	)
	return mcp.NewToolResultError(ce.Error())
}
