// Package domain defines the provider-agnostic types shared across the
// market-data pipeline: the canonical Market record, the market key
// classification, the per-fetch outcome taxonomy, and the sentinel errors
// adapters map provider failures onto.
package domain

import "time"

// MarketStatus represents the lifecycle state of a market. It is always one
// of the four values below; raw provider flags never leak through.
type MarketStatus string

const (
	MarketStatusActive   MarketStatus = "active"
	MarketStatusClosed   MarketStatus = "closed"
	MarketStatusResolved MarketStatus = "resolved"
	MarketStatusUnknown  MarketStatus = "unknown"
)

// Outcome is one possible resolution of a market with its current price.
// Prices are probabilities in [0,1].
type Outcome struct {
	Label string
	Price float64
}

// PricePoint is a single sample in a market's price history.
type PricePoint struct {
	Timestamp time.Time
	Price     float64
}

// Market is the canonical, provider-agnostic market record. Each source
// adapter maps its own response shape into this one; missing upstream fields
// become sentinel defaults ("N/A", 0, empty slice) rather than errors.
type Market struct {
	ID          string // provider-native identifier
	Title       string // "N/A" when absent upstream
	Slug        string
	ConditionID string
	Category    string
	Status      MarketStatus
	Archived    bool
	Volume      float64 // whole currency units
	Liquidity   float64
	EndDate     string // ISO-8601, passed through uninterpreted
	Outcomes    []Outcome
	TokenIDs    []string // order-book asset ids, when the provider exposes them
}

// TitleSentinel is used for markets whose upstream record carries no title.
const TitleSentinel = "N/A"
