// Package analytics derives dashboard view models from in-memory record
// collections: totals, savings rate, category breakdowns, trends, budget
// status, debt amortization, goal pacing, recurring schedules, and
// behavioural insights.
//
// Every function in this package is pure and deterministic: no I/O, no
// clocks (callers pass the reference time), no mutation of its inputs. All
// ratio computations guard their denominators, so the package is total over
// well-formed input and never produces NaN or Inf. Input validation belongs
// to the HTTP binding layer, not here.
package analytics
