package domain

import "errors"

// FetchStatus is the per-adapter fetch result taxonomy. The orchestrator
// reasons over these tags; distinct causes are never collapsed into a
// generic failure.
type FetchStatus int

const (
	FetchFound FetchStatus = iota
	FetchNotFound
	FetchRateLimited
	FetchUnauthorized
	FetchUnreachable
	FetchMalformed
)

// String returns the tag name for logging.
func (s FetchStatus) String() string {
	switch s {
	case FetchFound:
		return "found"
	case FetchNotFound:
		return "not_found"
	case FetchRateLimited:
		return "rate_limited"
	case FetchUnauthorized:
		return "unauthorized"
	case FetchUnreachable:
		return "unreachable"
	case FetchMalformed:
		return "malformed_response"
	}
	return "unknown"
}

// RawMarket is a provider payload that knows how to normalize itself into
// the canonical Market record. Each adapter package implements it on its own
// DTO type, keeping the "what does this provider call this field" mapping in
// one place per provider.
type RawMarket interface {
	ToDomainMarket() Market
}

// FetchOutcome is the tagged result of one adapter fetch. Raw is non-nil
// only when Status is FetchFound; Err carries the wrapped sentinel for
// failure statuses. Constructed and discarded within a single invocation.
type FetchOutcome struct {
	Status FetchStatus
	Raw    RawMarket
	Err    error
}

// Found wraps a successfully fetched provider payload.
func Found(raw RawMarket) FetchOutcome {
	return FetchOutcome{Status: FetchFound, Raw: raw}
}

// OutcomeFromError maps an adapter error (wrapping one of the sentinel
// errors) to its fetch outcome tag. Errors wrapping no sentinel are treated
// as Unreachable, the transport-failure tag.
func OutcomeFromError(err error) FetchOutcome {
	status := FetchUnreachable
	switch {
	case errors.Is(err, ErrNotFound):
		status = FetchNotFound
	case errors.Is(err, ErrRateLimited):
		status = FetchRateLimited
	case errors.Is(err, ErrUnauthorized):
		status = FetchUnauthorized
	case errors.Is(err, ErrMalformed):
		status = FetchMalformed
	}
	return FetchOutcome{Status: status, Err: err}
}
