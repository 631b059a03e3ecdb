package clob

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

func TestToDomainMarketStatus(t *testing.T) {
	tests := []struct {
		name string
		m    APIMarket
		want domain.MarketStatus
	}{
		{"active", APIMarket{Active: true}, domain.MarketStatusActive},
		{"closed without winner", APIMarket{Closed: true}, domain.MarketStatusClosed},
		{
			"closed with winner token is resolved",
			APIMarket{Closed: true, Tokens: []APIToken{{Outcome: "Yes"}, {Outcome: "No", Winner: true}}},
			domain.MarketStatusResolved,
		},
		{
			"winner alone does not resolve an open market",
			APIMarket{Active: true, Tokens: []APIToken{{Outcome: "Yes", Winner: true}}},
			domain.MarketStatusActive,
		},
		{"neither flag", APIMarket{}, domain.MarketStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.ToDomainMarket().Status)
		})
	}
}

func TestToDomainMarketTokens(t *testing.T) {
	raw := `{
		"condition_id": "0xabc",
		"question": "Will Z happen?",
		"market_slug": "will-z-happen",
		"end_date_iso": "2026-12-31T00:00:00Z",
		"active": true,
		"tags": ["Politics", "US"],
		"tokens": [
			{"token_id": "111", "outcome": "Yes", "price": 0.61},
			{"token_id": "222", "outcome": "No", "price": 0.39}
		]
	}`
	var m APIMarket
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	dm := m.ToDomainMarket()
	assert.Equal(t, "0xabc", dm.ID)
	assert.Equal(t, "0xabc", dm.ConditionID)
	assert.Equal(t, "Will Z happen?", dm.Title)
	assert.Equal(t, "Politics", dm.Category)
	assert.Equal(t, []string{"111", "222"}, dm.TokenIDs)
	require.Len(t, dm.Outcomes, 2)
	assert.Equal(t, domain.Outcome{Label: "Yes", Price: 0.61}, dm.Outcomes[0])
	assert.Equal(t, 0.0, dm.Volume, "the book carries no volume figures")
}

func TestToDomainMarketTitleFallsBackToSlug(t *testing.T) {
	m := APIMarket{ConditionID: "0xabc", MarketSlug: "will-z-happen"}
	assert.Equal(t, "will-z-happen", m.ToDomainMarket().Title)

	m = APIMarket{ConditionID: "0xabc"}
	assert.Equal(t, domain.TitleSentinel, m.ToDomainMarket().Title)
}
