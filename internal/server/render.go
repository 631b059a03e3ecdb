package server

import (
	"fmt"
	"strings"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
	"github.com/predictionlabs/polymarket-mcp/internal/service"
)

// Rendering of canonical records into the plain-text answers the tools
// return. The pipeline itself never produces display text; it all happens
// here at the boundary.

func FormatMarketInfo(m domain.Market) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", m.Title)
	fmt.Fprintf(&b, "Category: %s\n", orNA(m.Category))
	fmt.Fprintf(&b, "Status: %s\n", m.Status)
	fmt.Fprintf(&b, "End Date: %s\n", orNA(m.EndDate))
	fmt.Fprintf(&b, "Volume: $%.2f\n", m.Volume)
	fmt.Fprintf(&b, "Liquidity: $%.2f\n", m.Liquidity)

	if len(m.Outcomes) > 0 {
		b.WriteString("\nOutcomes:\n")
		for _, o := range m.Outcomes {
			fmt.Fprintf(&b, "- %s: %.1f%%\n", o.Label, o.Price*100)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatMarketList(markets []domain.Market) string {
	if len(markets) == 0 {
		return "No markets matched the given filters."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d market(s):\n", len(markets))
	for i, m := range markets {
		fmt.Fprintf(&b, "%d. %s [%s] volume $%.2f (id %s)\n", i+1, m.Title, m.Status, m.Volume, m.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatMarketPrices(m domain.Market) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current prices for %s:\n", m.Title)
	if len(m.Outcomes) == 0 {
		b.WriteString("No outcome prices available.")
		return b.String()
	}
	for _, o := range m.Outcomes {
		fmt.Fprintf(&b, "- %s: %.3f (%.1f%%)\n", o.Label, o.Price, o.Price*100)
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatMarketHistory(h service.MarketHistory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Price history for %s (token %s, interval %s):\n", h.Market.Title, h.TokenID, h.Interval)
	if len(h.Points) == 0 {
		b.WriteString("No trades recorded in this window.")
		return b.String()
	}
	for _, p := range h.Points {
		fmt.Fprintf(&b, "- %s: %.3f\n", p.Timestamp.Format("2006-01-02 15:04 MST"), p.Price)
	}
	return strings.TrimRight(b.String(), "\n")
}

func orNA(s string) string {
	if s == "" {
		return domain.TitleSentinel
	}
	return s
}
