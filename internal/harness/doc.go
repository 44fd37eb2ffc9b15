// Package harness runs regression scenarios against the transition calculator.
//
// A scenario is a YAML file listing calculation requests together with the
// numbers each one must produce. The harness feeds every request through
// transition.Calculate, compares the results within a relative tolerance and
// can snapshot the full output as canonical JSON for golden-file comparison.
//
// # Scenario Format
//
//	name: e2_half_life
//	description: "E2, 1000 keV, half-life 1 ps"
//	tolerance: 1e-6
//	cases:
//	  - name: b_from_half_life
//	    params:
//	      energy_kev: 1000
//	      multipole: E2
//	      half_life: 1
//	    expect:
//	      b_fm: 564.6777604
//	  - name: magnetic_monopole
//	    params: { energy_kev: 500, multipole: M0, lifetime: 1 }
//	    expect:
//	      error_code: E202
//
// Params use the field names of transition.Request. Expect fields are all
// optional; only the ones present are checked. Component selects which
// multipole of a mixed transition the numeric checks apply to (0 is the
// pure L component, 1 the paired L+1 component).
//
// Unknown fields are rejected so a misspelled expectation cannot pass
// silently.
//
// # Golden Snapshots
//
// Snapshot renders every case outcome as RFC 8785 canonical JSON with
// floats formatted to seven significant digits, so snapshots are stable
// across platforms and readable in diffs.
package harness
