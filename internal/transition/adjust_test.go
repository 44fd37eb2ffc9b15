package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPartialLifetime_UnitBranchingIsIdentity(t *testing.T) {
	for _, tau := range []float64{1e-15, 2.5e-12, 1} {
		assert.True(t, scalar.EqualWithinRel(tau, PartialLifetime(tau, 1), 1e-15), "tau=%g", tau)
	}
}

func TestPartialLifetime_Branching(t *testing.T) {
	assert.True(t, scalar.EqualWithinRel(4e-12, PartialLifetime(1e-12, 0.25), 1e-15))
}

func TestNormalizeBranching_RelativeIntensityMatchesFraction(t *testing.T) {
	for _, v := range []float64{0.01, 0.5, 1, 3, 250} {
		fraction := v / (v + 1)
		fromIntensity := PartialLifetime(2e-12, NormalizeBranching(v, true))
		fromFraction := PartialLifetime(2e-12, NormalizeBranching(fraction, false))
		assert.Equal(t, fromFraction, fromIntensity, "v=%g", v)
	}
}

func TestApplyConversion(t *testing.T) {
	assert.Equal(t, 1e-12, ApplyConversion(1e-12, 0))
	assert.True(t, scalar.EqualWithinRel(1.35e-12, ApplyConversion(1e-12, 0.35), 1e-15))
}

func TestSplitMixing_Conservation(t *testing.T) {
	for _, delta := range []float64{-3, -0.2, 0.05, 0.7, 1, 12} {
		tau := 3.3e-12
		lower, upper := SplitMixing(tau, delta)

		// the L share times δ² equals the L+1 share
		assert.True(t, scalar.EqualWithinRel(lower, upper*delta*delta, 1e-12), "delta=%g", delta)
		// partial rates add up to the combined rate
		assert.True(t, scalar.EqualWithinRel(1/tau, 1/lower+1/upper, 1e-12), "delta=%g", delta)
	}
}

func TestAdjust_Order(t *testing.T) {
	s := Spec{
		Multipole:         mp("E2"),
		Mode:              FromLifetime,
		LifetimeS:         1e-12,
		Branching:         3,
		RelativeIntensity: true,
		ICC:               0.5,
		HasMixing:         true,
		Mixing:            0.5,
	}
	parts := Adjust(s)
	require.Len(t, parts, 2)

	// branching 3 -> 0.75, partial 1e-12/0.75, ICC x1.5, mixing x1.25 and x5
	gamma := 1e-12 / 0.75 * 1.5
	assert.Equal(t, mp("E2"), parts[0].Multipole)
	assert.Equal(t, mp("M3"), parts[1].Multipole)
	assert.True(t, scalar.EqualWithinRel(gamma*1.25, parts[0].LifetimeS, 1e-12))
	assert.True(t, scalar.EqualWithinRel(gamma*5, parts[1].LifetimeS, 1e-12))
}

func TestAdjust_NoMixing(t *testing.T) {
	s := Spec{Multipole: mp("M1"), LifetimeS: 2e-12, Branching: 1}
	parts := Adjust(s)
	require.Len(t, parts, 1)
	assert.InEpsilon(t, 2e-12, parts[0].LifetimeS, 1e-15)
}
