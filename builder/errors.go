// SPDX-License-Identifier: MIT
// Package: topogen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"

	"github.com/katalvlaran/topogen/gf"
)

// ErrTooFewVertices indicates that a numeric parameter (n, degree, order q)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// or was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNotPrimePower is re-exported from gf: Polarity(q) wraps it when q is
// not a prime power.
var ErrNotPrimePower = gf.ErrNotPrimePower
