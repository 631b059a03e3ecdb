// Package listing applies caller-specified filters, pagination, and
// best-effort ordering to listings whose upstream source could not do so
// server-side.
package listing

import "github.com/predictionlabs/polymarket-mcp/internal/domain"

// Paginate filters markets by the status/active/closed/archived predicates
// and slices out [offset, offset+limit). Limit is clamped to [1,100] and
// offset to >= 0; an offset past the end yields an empty page, not an
// error. Ordering is best-effort: when the upstream ignored the requested
// sort key the result is NOT re-sorted here, so callers see the upstream's
// native order rather than a silently different one.
func Paginate(markets []domain.Market, filter domain.ListFilter) []domain.Market {
	filter = filter.Clamped()

	kept := make([]domain.Market, 0, len(markets))
	for _, m := range markets {
		if matches(m, filter) {
			kept = append(kept, m)
		}
	}

	if filter.Offset >= len(kept) {
		return []domain.Market{}
	}
	end := filter.Offset + filter.Limit
	if end > len(kept) {
		end = len(kept)
	}
	return kept[filter.Offset:end]
}

func matches(m domain.Market, filter domain.ListFilter) bool {
	if filter.Status != "" && string(m.Status) != filter.Status {
		return false
	}
	if filter.Active != nil && *filter.Active != (m.Status == domain.MarketStatusActive) {
		return false
	}
	if filter.Closed != nil {
		closed := m.Status == domain.MarketStatusClosed || m.Status == domain.MarketStatusResolved
		if *filter.Closed != closed {
			return false
		}
	}
	if filter.Archived != nil && *filter.Archived != m.Archived {
		return false
	}
	return true
}
