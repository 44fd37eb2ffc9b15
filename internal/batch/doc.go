// Package batch loads CUE files holding many transition requests.
//
// A batch file declares a list of requests using the field names of
// transition.Request, plus an optional name per entry:
//
//	transitions: [
//		{name: "152Sm 2+", energy_kev: 121.78, multipole: "E2", half_life: 1.4, time_unit: "ns", a: 152},
//		{energy_kev: 500, multipole: "M1", probability: 0.05},
//	]
//
// The file is unified with an embedded schema (schema.cue) before decoding,
// so type errors and out-of-range literals are reported with file positions
// before any entry is calculated. Each entry is then validated and
// calculated independently.
package batch
