package transition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestBeta2_Uranium238(t *testing.T) {
	// B(E2; 2->0) = 0.3 e^2 b^2 = 3000 e^2 fm^4
	b := BarnToFm(mp("E2"), 0.3)
	want := math.Sqrt(5*3000) * 4 * math.Pi / (2 * 92 * 1.44 * 1.2 * 1.2 * math.Pow(238, 2.0/3.0))

	got := Beta2(b, 238, 92)
	assert.True(t, scalar.EqualWithinRel(want, got, 1e-12), "want %g, got %g", want, got)
	assert.InDelta(t, 0.10503, got, 5e-5)
}

func TestBeta2_ScalesWithSqrtB(t *testing.T) {
	assert.True(t, scalar.EqualWithinRel(2*Beta2(100, 152, 62), Beta2(400, 152, 62), 1e-12))
}
