package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAttemptState(t *testing.T) {
	tests := []struct {
		name         string
		before       int
		wantAttempts int
		wantLocked   bool
	}{
		{
			name:         "first failure",
			before:       0,
			wantAttempts: 1,
			wantLocked:   false,
		},
		{
			name:         "fourth failure stays unlocked",
			before:       3,
			wantAttempts: 4,
			wantLocked:   false,
		},
		{
			name:         "fifth failure locks",
			before:       4,
			wantAttempts: 5,
			wantLocked:   true,
		},
		{
			name:         "beyond threshold stays locked",
			before:       7,
			wantAttempts: 8,
			wantLocked:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts, locked := NextAttemptState(tt.before)
			assert.Equal(t, tt.wantAttempts, attempts)
			assert.Equal(t, tt.wantLocked, locked)
		})
	}
}
