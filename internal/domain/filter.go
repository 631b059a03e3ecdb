package domain

// Listing limits. Callers may ask for anything; the paginator clamps.
const (
	ListLimitDefault = 20
	ListLimitMax     = 100
)

// ListFilter holds caller-specified listing parameters. Nil tri-state
// pointers mean "not specified" so that filtering on false is possible.
type ListFilter struct {
	Status   string // "", "active", "closed", "resolved"
	Active   *bool
	Closed   *bool
	Archived *bool
	Limit    int
	Offset   int
	Order    string // best-effort sort key, e.g. "volume"
}

// Clamped returns a copy with Limit forced into [1, ListLimitMax] and
// Offset forced to >= 0. A zero Limit takes the default.
func (f ListFilter) Clamped() ListFilter {
	if f.Limit <= 0 {
		f.Limit = ListLimitDefault
	}
	if f.Limit > ListLimitMax {
		f.Limit = ListLimitMax
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
