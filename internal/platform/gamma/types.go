package gamma

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

// flexBool unmarshals from JSON bool or string ("true"/"false") so Gamma
// responses work whether "active" is sent as bool or string.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexBool(strings.EqualFold(s, "true") || s == "1")
	return nil
}

// flexNumber unmarshals from a JSON number or a numeric-looking string.
// Anything else decodes to 0 rather than failing the whole record: a
// partially populated market beats no market.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexNumber(n)
	return nil
}

// stringArray unmarshals Gamma's double-encoded JSON arrays, e.g.
// "[\"Yes\",\"No\"]". A plain array is accepted too; anything unparsable
// decodes to nil.
type stringArray []string

func (a *stringArray) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*a = direct
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		*a = nil
		return nil
	}
	var inner []string
	if err := json.Unmarshal([]byte(encoded), &inner); err != nil {
		*a = nil
		return nil
	}
	*a = inner
	return nil
}

// APIMarket is a market as returned by the Gamma catalog API. Field names
// here are the single source of truth for what Gamma calls each canonical
// field.
type APIMarket struct {
	ID            string      `json:"id"`
	Question      string      `json:"question"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	ConditionID   string      `json:"conditionId"`
	Category      string      `json:"category"`
	Active        flexBool    `json:"active"`
	Closed        flexBool    `json:"closed"`
	Archived      flexBool    `json:"archived"`
	Volume        flexNumber  `json:"volume"`
	Liquidity     flexNumber  `json:"liquidity"`
	EndDate       string      `json:"endDate"`
	Outcomes      stringArray `json:"outcomes"`      // double-encoded: "[\"Yes\",\"No\"]"
	OutcomePrices stringArray `json:"outcomePrices"` // double-encoded: "[\"0.52\",\"0.48\"]"
	ClobTokenIDs  stringArray `json:"clobTokenIds"`  // double-encoded
}

// ToDomainMarket maps a Gamma payload into the canonical record. Status is
// derived from the active/closed flag pair with closed taking precedence
// when both are set inconsistently; outcomes and prices are zipped
// positionally, dropping indexes beyond the shorter slice.
func (m *APIMarket) ToDomainMarket() domain.Market {
	dm := domain.Market{
		ID:          m.ID,
		Title:       firstNonEmpty(m.Question, m.Title),
		Slug:        m.Slug,
		ConditionID: m.ConditionID,
		Category:    m.Category,
		Volume:      float64(m.Volume),
		Liquidity:   float64(m.Liquidity),
		EndDate:     m.EndDate,
		Status:      statusFromFlags(bool(m.Active), bool(m.Closed)),
		Archived:    bool(m.Archived),
		Outcomes:    zipOutcomes(m.Outcomes, m.OutcomePrices),
		TokenIDs:    m.ClobTokenIDs,
	}
	if dm.Title == "" {
		dm.Title = domain.TitleSentinel
	}
	return dm
}

// statusFromFlags derives the canonical status from the two independent
// provider booleans. Closed wins over active when both flags are set.
func statusFromFlags(active, closed bool) domain.MarketStatus {
	switch {
	case closed:
		return domain.MarketStatusClosed
	case active:
		return domain.MarketStatusActive
	default:
		return domain.MarketStatusUnknown
	}
}

// zipOutcomes pairs labels with prices positionally. Excess entries on
// either side are dropped; a missing or unparsable price slot becomes 0.
func zipOutcomes(labels, prices []string) []domain.Outcome {
	n := len(labels)
	if len(prices) < n {
		n = len(prices)
	}
	outcomes := make([]domain.Outcome, 0, n)
	for i := 0; i < n; i++ {
		price, err := strconv.ParseFloat(strings.TrimSpace(prices[i]), 64)
		if err != nil {
			price = 0
		}
		outcomes = append(outcomes, domain.Outcome{Label: labels[i], Price: price})
	}
	return outcomes
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
