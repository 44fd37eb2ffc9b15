package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{5, 15},
		{6, 48},
		{7, 105},
		{9, 945},
		{25, 7905853580625},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DoubleFactorial(tt.n), "n=%d", tt.n)
	}
}
