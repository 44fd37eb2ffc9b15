package batch

import (
	"github.com/roach88/bcalc/internal/transition"
)

// Outcome is the result of one batch entry.
type Outcome struct {
	Entry  Entry
	Result *transition.Result
	Err    error
}

// Failed reports whether the entry did not produce a result.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Calculate runs every entry through transition.Calculate. Entries are
// independent: one failing entry does not affect the others.
func Calculate(b *Batch) []Outcome {
	outcomes := make([]Outcome, len(b.Entries))
	for i, entry := range b.Entries {
		outcomes[i] = Outcome{Entry: entry}
		params, err := entry.Request.Params()
		if err != nil {
			outcomes[i].Err = err
			continue
		}
		outcomes[i].Result, outcomes[i].Err = transition.Calculate(params)
	}
	return outcomes
}

// CountFailed returns how many outcomes failed.
func CountFailed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}
