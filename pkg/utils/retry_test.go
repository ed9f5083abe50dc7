package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		results   []error
		stop      []error
		wantErr   error
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after retry",
			results:   []error{errTemporary, nil},
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			results:   []error{errTemporary, errTemporary, errTemporary, nil},
			wantErr:   errTemporary,
			wantCalls: 3,
		},
		{
			name:      "stop error is not retried",
			results:   []error{errFatal, nil},
			stop:      []error{errFatal},
			wantErr:   errFatal,
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), cfg, func() error {
				res := tc.results[calls]
				calls++
				return res
			}, tc.stop...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errTemporary := errors.New("temporary")
	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour}, func() error {
		calls++
		return errTemporary
	})

	assert.ErrorIs(t, err, errTemporary)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
