package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFailureError(t *testing.T) {
	err := &CheckFailureError{
		Message: "3 check(s) failed across 1 document(s)",
	}

	assert.Equal(t, "3 check(s) failed across 1 document(s)", err.Error())
}

func TestErrorTypeDetection(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
	}{
		{
			name:     "CheckFailureError",
			err:      &CheckFailureError{Message: "check failure"},
			wantType: "CheckFailureError",
		},
		{
			name:     "regular error",
			err:      errors.New("config error"),
			wantType: "other",
		},
		{
			name:     "wrapped CheckFailureError",
			err:      errors.Join(&CheckFailureError{Message: "check failure"}, errors.New("additional context")),
			wantType: "CheckFailureError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checkFailureErr *CheckFailureError
			isCheckFailure := errors.As(tt.err, &checkFailureErr)

			if tt.wantType == "CheckFailureError" {
				assert.True(t, isCheckFailure, "expected error to be detected as CheckFailureError")
			} else {
				assert.False(t, isCheckFailure, "expected error NOT to be detected as CheckFailureError")
			}
		})
	}
}
