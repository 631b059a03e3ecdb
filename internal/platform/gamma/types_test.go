package gamma

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictionlabs/polymarket-mcp/internal/domain"
)

func TestToDomainMarketStatusPrecedence(t *testing.T) {
	tests := []struct {
		name           string
		active, closed bool
		want           domain.MarketStatus
	}{
		{"active only", true, false, domain.MarketStatusActive},
		{"closed only", false, true, domain.MarketStatusClosed},
		{"both set, closed wins", true, true, domain.MarketStatusClosed},
		{"neither set", false, false, domain.MarketStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := APIMarket{Active: flexBool(tt.active), Closed: flexBool(tt.closed)}
			assert.Equal(t, tt.want, m.ToDomainMarket().Status)
		})
	}
}

func TestToDomainMarketTolerantNumbers(t *testing.T) {
	var m APIMarket
	raw := `{"id":"42","question":"Will X happen?","active":true,"volume":"unknown","liquidity":"250.75"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	dm := m.ToDomainMarket()
	assert.Equal(t, 0.0, dm.Volume, "non-numeric volume coerces to 0, not an error")
	assert.Equal(t, 250.75, dm.Liquidity)
	assert.Equal(t, domain.MarketStatusActive, dm.Status)
}

func TestToDomainMarketStringEncodedBooleans(t *testing.T) {
	var m APIMarket
	raw := `{"id":"42","question":"q","active":"true","closed":"false","volume":1500.5}`
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	dm := m.ToDomainMarket()
	assert.Equal(t, domain.MarketStatusActive, dm.Status)
	assert.Equal(t, 1500.5, dm.Volume)
}

func TestToDomainMarketOutcomeZipping(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.Outcome
	}{
		{
			name: "paired labels and prices",
			raw:  `{"outcomes":"[\"Yes\",\"No\"]","outcomePrices":"[\"0.52\",\"0.48\"]"}`,
			want: []domain.Outcome{{Label: "Yes", Price: 0.52}, {Label: "No", Price: 0.48}},
		},
		{
			name: "more labels than prices drops the excess",
			raw:  `{"outcomes":"[\"Yes\",\"No\",\"Maybe\"]","outcomePrices":"[\"0.6\",\"0.4\"]"}`,
			want: []domain.Outcome{{Label: "Yes", Price: 0.6}, {Label: "No", Price: 0.4}},
		},
		{
			name: "more prices than labels drops the excess",
			raw:  `{"outcomes":"[\"Yes\"]","outcomePrices":"[\"0.6\",\"0.4\"]"}`,
			want: []domain.Outcome{{Label: "Yes", Price: 0.6}},
		},
		{
			name: "unparsable encoded prices yields empty outcomes",
			raw:  `{"outcomes":"[\"Yes\",\"No\"]","outcomePrices":"not json at all"}`,
			want: []domain.Outcome{},
		},
		{
			name: "non-numeric price slot coerces to 0",
			raw:  `{"outcomes":"[\"Yes\",\"No\"]","outcomePrices":"[\"0.52\",\"n/a\"]"}`,
			want: []domain.Outcome{{Label: "Yes", Price: 0.52}, {Label: "No", Price: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m APIMarket
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &m))
			assert.Equal(t, tt.want, m.ToDomainMarket().Outcomes)
		})
	}
}

func TestToDomainMarketTitleFallback(t *testing.T) {
	m := APIMarket{Question: "Will X happen?", Title: "ignored"}
	assert.Equal(t, "Will X happen?", m.ToDomainMarket().Title)

	m = APIMarket{Title: "Secondary title"}
	assert.Equal(t, "Secondary title", m.ToDomainMarket().Title)

	m = APIMarket{}
	assert.Equal(t, domain.TitleSentinel, m.ToDomainMarket().Title)
}

func TestToDomainMarketTokenIDs(t *testing.T) {
	var m APIMarket
	raw := `{"id":"42","clobTokenIds":"[\"111\",\"222\"]"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, []string{"111", "222"}, m.ToDomainMarket().TokenIDs)
}
