// Package transition converts between gamma-ray transition lifetimes and
// reduced transition probabilities B(σL).
//
// # Pipeline
//
// A calculation runs in fixed stages, each a pure function of its input:
//
//	Params --Validate--> Spec --Adjust--> []Partial --convert--> []Component
//	                                                        \--> β₂
//
// Validate checks every rule and returns all failures together as
// ValidationErrors. Adjust applies branching, internal conversion and
// δ-mixing to the measured lifetime. The converter uses
//
//	B = 1 / (fac(L, σ, E) · τ)
//
// with fac as defined by RateFactor.
//
// # Units
//
// Lifetimes are carried in seconds and energies in keV. B values are
// computed in fm-based units (e² fm^2L for electric, μN² fm^(2L-2) for
// magnetic) and rebased to barns (1 b = 100 fm²) or to Weisskopf units
// for reporting.
//
// # Determinism
//
// The package holds no mutable state. Identical Params always produce
// identical Results.
package transition
