package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingAfter(t *testing.T) {
	tests := []struct {
		name  string
		max   int
		count int64
		want  int
	}{
		{"first hit", 10, 1, 9},
		{"at limit", 10, 10, 0},
		{"over limit", 10, 11, 0},
		{"far over limit", 10, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remainingAfter(tt.max, tt.count))
		})
	}
}
