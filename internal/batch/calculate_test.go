package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/roach88/bcalc/internal/transition"
)

func TestCalculate_IndependentEntries(t *testing.T) {
	src := `
transitions: [
	{name: "ok", energy_kev: 1000, multipole: "E2", half_life: 1},
	{name: "bad_branching", energy_kev: 1000, multipole: "E2", lifetime: 1, branching: 1.5},
	{name: "m1", energy_kev: 500, multipole: "M1", probability: 0.05},
]
`
	b, errs := Load("batch.cue", []byte(src))
	require.Empty(t, errs)

	outcomes := Calculate(b)
	require.Len(t, outcomes, 3)
	assert.Equal(t, 1, CountFailed(outcomes))

	ok := outcomes[0]
	require.False(t, ok.Failed())
	require.Len(t, ok.Result.Components, 1)
	assert.True(t, scalar.EqualWithinRel(564.6777604, ok.Result.Components[0].BFm, 1e-8))

	bad := outcomes[1]
	assert.True(t, bad.Failed())
	assert.True(t, transition.HasCode(bad.Err, transition.CodeInvalidBranching))
	assert.Equal(t, "bad_branching", bad.Entry.Label())

	m1 := outcomes[2]
	require.False(t, m1.Failed())
	assert.True(t, scalar.EqualWithinRel(9.0825606, m1.Result.Components[0].LifetimePs, 1e-7))
}

func TestCalculate_ConflictingInputsReachValidator(t *testing.T) {
	src := `transitions: [{energy_kev: 1000, multipole: "E2", lifetime: 1, probability: 3}]`
	b, errs := Load("batch.cue", []byte(src))
	require.Empty(t, errs)

	outcomes := Calculate(b)
	require.Len(t, outcomes, 1)
	assert.True(t, transition.HasCode(outcomes[0].Err, transition.CodeConflictingInput))
}
