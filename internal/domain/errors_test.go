package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedErrorUnwrapsToSentinel(t *testing.T) {
	err := Classified(ErrorKindRateLimited, "quota exhausted on %s", "gamma")

	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "rate_limited: quota exhausted on gamma", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{fmt.Errorf("gamma: %w: slug=x", ErrNotFound), ErrorKindNotFound},
		{fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrRateLimited)), ErrorKindRateLimited},
		{fmt.Errorf("strapi: %w", ErrUnauthorized), ErrorKindUnauthorized},
		{fmt.Errorf("clob: %w: decode", ErrMalformed), ErrorKindMalformed},
		{fmt.Errorf("%w: missing id", ErrInvalidArgument), ErrorKindInvalidArgument},
		{errors.New("dial tcp: connection refused"), ErrorKindUnreachable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), "error: %v", tt.err)
	}
}

func TestOutcomeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want FetchStatus
	}{
		{fmt.Errorf("gamma: %w", ErrNotFound), FetchNotFound},
		{fmt.Errorf("gamma: %w", ErrRateLimited), FetchRateLimited},
		{fmt.Errorf("gamma: %w", ErrUnauthorized), FetchUnauthorized},
		{fmt.Errorf("gamma: %w", ErrMalformed), FetchMalformed},
		{fmt.Errorf("gamma: %w", ErrUnreachable), FetchUnreachable},
		{errors.New("something else entirely"), FetchUnreachable},
	}

	for _, tt := range tests {
		outcome := OutcomeFromError(tt.err)
		require.Equal(t, tt.want, outcome.Status, "error: %v", tt.err)
		assert.Equal(t, tt.err, outcome.Err)
		assert.Nil(t, outcome.Raw)
	}
}
