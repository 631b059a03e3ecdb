package server

import "github.com/mark3labs/mcp-go/mcp"

// Tool declarations for the prediction-market MCP server. Descriptions are
// what the calling model reads to decide which tool to use.

var toolGetMarketInfo = mcp.NewTool("get-market-info",
	mcp.WithDescription(
		"Get detailed information about a specific prediction market: title, "+
			"category, status, volume, liquidity, end date, and current outcomes."),
	mcp.WithString("market_id",
		mcp.Required(),
		mcp.Description("Market identifier: numeric catalog ID, URL slug, condition ID (0x + 64 hex), or market address (0x + 40 hex)")),
)

var toolListMarkets = mcp.NewTool("list-markets",
	mcp.WithDescription(
		"List prediction markets with optional status filtering and pagination."),
	mcp.WithString("status",
		mcp.Description("Filter by market status"),
		mcp.Enum("active", "closed", "resolved")),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of markets to return (1-100, default 20)")),
	mcp.WithNumber("offset",
		mcp.Description("Number of markets to skip (default 0)")),
	mcp.WithString("order",
		mcp.Description("Sort key, best-effort (e.g. 'volume'). Sources that cannot sort return their native order.")),
)

var toolGetMarketPrices = mcp.NewTool("get-market-prices",
	mcp.WithDescription(
		"Get the current outcome prices (probabilities) for a prediction market."),
	mcp.WithString("market_id",
		mcp.Required(),
		mcp.Description("Market identifier: numeric catalog ID, URL slug, condition ID, or market address")),
)

var toolGetMarketHistory = mcp.NewTool("get-market-history",
	mcp.WithDescription(
		"Get the price history of a prediction market's primary outcome token."),
	mcp.WithString("market_id",
		mcp.Required(),
		mcp.Description("Market identifier: numeric catalog ID, URL slug, condition ID, or market address")),
	mcp.WithString("interval",
		mcp.Description("History window (default 1w)"),
		mcp.Enum("1h", "6h", "1d", "1w", "1m", "max")),
)
