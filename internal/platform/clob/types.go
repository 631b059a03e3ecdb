package clob

import (
	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

// APIToken is one outcome token in an order-book market record.
type APIToken struct {
	TokenID string  `json:"token_id"`
	Outcome string  `json:"outcome"`
	Price   float64 `json:"price"`
	Winner  bool    `json:"winner"`
}

// APIMarket is a market as returned by the order-book API. The book is
// keyed by condition id and carries no volume or liquidity figures; those
// canonical fields default to 0 here.
type APIMarket struct {
	ConditionID     string     `json:"condition_id"`
	QuestionID      string     `json:"question_id"`
	Question        string     `json:"question"`
	Description     string     `json:"description"`
	MarketSlug      string     `json:"market_slug"`
	EndDateISO      string     `json:"end_date_iso"`
	Active          bool       `json:"active"`
	Closed          bool       `json:"closed"`
	Archived        bool       `json:"archived"`
	AcceptingOrders bool       `json:"accepting_orders"`
	Tokens          []APIToken `json:"tokens"`
	Tags            []string   `json:"tags"`
}

// ToDomainMarket maps an order-book payload into the canonical record. A
// closed market with a declared winner token is Resolved; otherwise the
// usual closed-over-active flag precedence applies.
func (m *APIMarket) ToDomainMarket() domain.Market {
	dm := domain.Market{
		ID:          m.ConditionID,
		Title:       firstNonEmpty(m.Question, m.MarketSlug),
		Slug:        m.MarketSlug,
		ConditionID: m.ConditionID,
		EndDate:     m.EndDateISO,
		Status:      m.status(),
		Archived:    m.Archived,
	}
	if dm.Title == "" {
		dm.Title = domain.TitleSentinel
	}
	if len(m.Tags) > 0 {
		dm.Category = m.Tags[0]
	}
	for _, tok := range m.Tokens {
		label := tok.Outcome
		if label == "" {
			label = domain.TitleSentinel
		}
		dm.Outcomes = append(dm.Outcomes, domain.Outcome{Label: label, Price: tok.Price})
		if tok.TokenID != "" {
			dm.TokenIDs = append(dm.TokenIDs, tok.TokenID)
		}
	}
	return dm
}

func (m *APIMarket) status() domain.MarketStatus {
	if m.Closed {
		for _, tok := range m.Tokens {
			if tok.Winner {
				return domain.MarketStatusResolved
			}
		}
		return domain.MarketStatusClosed
	}
	if m.Active {
		return domain.MarketStatusActive
	}
	return domain.MarketStatusUnknown
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
