// Package sweep evaluates many (q, r0, r1) extension tuples concurrently and
// tallies which of them pass brownext validation.
//
// RandomParams draws tuples the way the validation harness expects: for each
// draw a prime power q near a uniform value in [2, qmax], then (q,0,0),
// (q,r0,0) and (q,0,r1) with r0 ∈ [1,4] and r1 ∈ [0,q].
//
// Run builds and checks every tuple with a bounded errgroup. Tuples share no
// mutable state; a construction fault or a failed check is recorded as a
// failed Result and never aborts the sweep. Only Sink errors and context
// cancellation stop Run early.
package sweep
