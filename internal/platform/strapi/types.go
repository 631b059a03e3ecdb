package strapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

// looseNumber tolerates the legacy API's mix of JSON numbers and
// numeric-looking strings. Non-numeric values decode to 0.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = looseNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = looseNumber(f)
	return nil
}

// APIOutcome is an outcome entry in a legacy market record. Unlike Gamma's
// parallel arrays, Strapi pairs each label with its price in one object.
// Older records use "title" where newer ones use "name".
type APIOutcome struct {
	Name  string      `json:"name"`
	Title string      `json:"title"`
	Price looseNumber `json:"price"`
}

// APIMarket is a market as returned by the legacy Strapi catalog. Ids are
// JSON numbers, amounts are floats, and newer records carry an explicit
// status string alongside the older active/closed flag pair.
type APIMarket struct {
	ID                 json.Number  `json:"id"`
	Question           string       `json:"question"`
	Title              string       `json:"title"`
	Slug               string       `json:"slug"`
	ConditionID        string       `json:"conditionId"`
	Category           string       `json:"category"`
	Status             string       `json:"status"`
	Active             *bool        `json:"active"`
	Closed             *bool        `json:"closed"`
	Archived           bool         `json:"archived"`
	Volume             looseNumber  `json:"volume"`
	Liquidity          looseNumber  `json:"liquidity"`
	EndDate            string       `json:"endDate"`
	MarketMakerAddress string       `json:"marketMakerAddress"`
	Outcomes           []APIOutcome `json:"outcomes"`
}

// ToDomainMarket maps a legacy payload into the canonical record. The
// explicit status string wins when present and recognized; otherwise status
// falls back to the flag pair with closed taking precedence over active.
func (m *APIMarket) ToDomainMarket() domain.Market {
	dm := domain.Market{
		ID:          m.ID.String(),
		Title:       firstNonEmpty(m.Question, m.Title),
		Slug:        m.Slug,
		ConditionID: m.ConditionID,
		Category:    m.Category,
		Status:      m.status(),
		Archived:    m.Archived,
		Volume:      float64(m.Volume),
		Liquidity:   float64(m.Liquidity),
		EndDate:     m.EndDate,
	}
	if dm.ID == "" {
		// json.Number zero value stringifies to "", not "0".
		dm.ID = m.Slug
	}
	if dm.Title == "" {
		dm.Title = domain.TitleSentinel
	}
	for _, o := range m.Outcomes {
		label := firstNonEmpty(o.Name, o.Title)
		if label == "" {
			label = domain.TitleSentinel
		}
		dm.Outcomes = append(dm.Outcomes, domain.Outcome{Label: label, Price: float64(o.Price)})
	}
	return dm
}

func (m *APIMarket) status() domain.MarketStatus {
	switch strings.ToLower(m.Status) {
	case "active", "open":
		return domain.MarketStatusActive
	case "closed":
		return domain.MarketStatusClosed
	case "resolved", "settled":
		return domain.MarketStatusResolved
	}
	switch {
	case m.Closed != nil && *m.Closed:
		return domain.MarketStatusClosed
	case m.Active != nil && *m.Active:
		return domain.MarketStatusActive
	default:
		return domain.MarketStatusUnknown
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
