// Package objective scores a districting plan by the number of districts
// each side wins.
//
// A district is won by the side with the strictly larger tally; exact ties
// follow an explicit TieRule (TieNone by default). Evaluate returns the full
// per-district breakdown; Seats is the allocation-free variant used inside
// the annealing loop.
package objective
